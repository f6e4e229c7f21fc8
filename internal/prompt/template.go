// Package prompt assembles the instruction templates sent to the chat model.
// Templates carry fixed instruction text with {field} placeholders that are
// interpolated at render time from caller-supplied vars, never at build time.
package prompt

import (
	"fmt"
	"regexp"
	"strings"
)

// Mode identifies which template variant a builder selected.
type Mode string

const (
	// ModeCreate generates an aspect from scratch.
	ModeCreate Mode = "create"
	// ModeEnhance expands an aspect the caller already supplied.
	ModeEnhance Mode = "enhance"
)

// Vars is the flat attribute mapping interpolated into a template.
type Vars map[string]string

// MissingFieldError reports a placeholder with no matching var. Interpolation
// fails loudly instead of rendering a blank.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("prompt: missing interpolation field %q", e.Field)
}

var placeholderRe = regexp.MustCompile(`\{([a-z_]+)\}`)

// Template is a fixed instruction string plus the mode that selected it.
type Template struct {
	aspect string
	mode   Mode
	text   string
}

func newTemplate(aspect string, mode Mode, text string) Template {
	return Template{aspect: aspect, mode: mode, text: text}
}

// Aspect returns the narrative aspect this template generates.
func (t Template) Aspect() string { return t.aspect }

// Mode returns which variant (create or enhance) was selected.
func (t Template) Mode() Mode { return t.mode }

// Render interpolates vars into the template text. Every placeholder must be
// present in vars; the first missing one aborts with a *MissingFieldError.
func (t Template) Render(vars Vars) (string, error) {
	var missing *MissingFieldError
	out := placeholderRe.ReplaceAllStringFunc(t.text, func(m string) string {
		field := strings.Trim(m, "{}")
		value, ok := vars[field]
		if !ok {
			if missing == nil {
				missing = &MissingFieldError{Field: field}
			}
			return m
		}
		return value
	})
	if missing != nil {
		return "", missing
	}
	return out, nil
}
