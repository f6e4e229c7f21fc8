package prompt

const campaignFormat = `
## Introduction
(Brief overview introducing the world, its theme, and its tone.)

---

## World Background
- **World History:** (Key points from {backstory})
- **Timeline Highlights:** (Notable events from {timeline})
- **Universe Overview:** (Summary from {universe})
- **World Theme:** (Summary from {world_theme})
- **Story Tone:** (Summary from {tone})

---

## Key Locations
**Location 1**
(2-4 sentence description)

**Location 2**
(2-4 sentence description)

**Location 3**
(2-4 sentence description)

---

## Major Factions
- **Faction 1:** (Summary: motivations, rivals, influence)
- **Faction 2:** (Summary: motivations, rivals, influence)

---

## Current Conflicts
- Conflict 1: (Brief description)
- Conflict 2: (Brief description)

---

## Unique Features
- **Magic/Technology Systems:** (Brief description)
- **Cultural Practices:** (Brief description)

---

## Adventure Hooks
- **Hook 1:** (1-2 sentence idea)
- **Hook 2:** (1-2 sentence idea)
- **Hook 3:** (1-2 sentence idea)
`

// CampaignSettingPrompt returns the campaign setting template. A non-empty
// existing setting selects the enhance variant.
func CampaignSettingPrompt(existing string) Template {
	if existing != "" {
		return newTemplate("campaign_setting", ModeEnhance, `Enhance the existing campaign setting for a TTRPG world. Use the context below to deepen the setting while staying true to established elements.

World Name: {name}
World History: {backstory}
Timeline: {timeline}
Universe: {universe}
World Theme: {world_theme}
Story Tone: {tone}

Existing Campaign Setting:
{campaign}

Guidelines:
1. Preserve the original setting's key locations, factions, and conflicts.
2. Expand on the current state of the world and immediate tensions.
3. Add 2-3 additional locations, factions, or conflicts that enrich the setting.
4. Maintain consistency with the world's history, timeline, theme, and universe.
5. Include potential adventure hooks and campaign arcs.

Use the following format for your response:
`+campaignFormat+`
Respond only with the enhanced campaign setting, following the structure above.`)
	}
	return newTemplate("campaign_setting", ModeCreate, `Create a detailed campaign setting for a TTRPG world using the provided attributes.

World Name: {name}
World History: {backstory}
Timeline: {timeline}
Universe: {universe}
World Theme: {world_theme}
Story Tone: {tone}

Instructions:
- Write using the format below.
- Ensure consistency with the provided world history, timeline, universe, and theme.
- Richly describe locations, factions, and conflicts to inspire storytelling.
- Create a setting full of potential adventure hooks and campaign arcs.

Use the following format for your response:
`+campaignFormat+`
Respond only with the final campaign setting, following the structure above.`)
}

// HiddenElementsPrompt returns the hidden elements template. There is no
// enhance variant; secrets are always generated fresh from the assembled
// campaign context.
func HiddenElementsPrompt() Template {
	return newTemplate("hidden_elements", ModeCreate, `Create a list of hidden elements and secrets for a TTRPG world. These should be unknown to most inhabitants but discoverable by players during campaigns.

World Name: {name}
World History: {backstory}
Timeline: {timeline}
Campaign Setting: {campaign}
Universe: {universe}
World Theme: {world_theme}
Story Tone: {tone}

Instructions:
- Create 5-8 hidden elements or secrets that could be revealed during gameplay
- Include a mix of:
  - Ancient mysteries or forgotten knowledge
  - Hidden locations or dungeons
  - Secret organizations or cults
  - Concealed magical artifacts or technology
  - Conspiracies or plots by powerful entities
- Each secret should connect to the established world history or setting
- Format as a list with brief descriptions (2-3 sentences each)
- Include potential clues or ways players might discover these secrets

Respond only with the final list of hidden elements.`)
}
