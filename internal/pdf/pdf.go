// Package pdf renders printable sheets for generated entities.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"lorewright/internal/model"
)

const (
	pageMargin  = 15.0
	titleSize   = 18.0
	headingSize = 12.0
	bodySize    = 10.0
	lineHeight  = 5.0
)

// CharacterSheet renders a character as a single-document PDF.
func CharacterSheet(character model.Character) ([]byte, error) {
	doc := newDocument(character.Name)

	writeField(doc, "Race", character.Race)
	writeField(doc, "Gender", character.Gender)
	writeField(doc, "Alignment", character.Alignment)
	writeField(doc, "Universe", character.Universe)
	writeField(doc, "World Theme", character.WorldTheme)
	writeField(doc, "Tone", character.Tone)

	writeSection(doc, "Appearance", character.Appearance)
	writeSection(doc, "Personality", character.Personality)
	writeSection(doc, "Backstory", character.Backstory)

	return render(doc)
}

// WorldSheet renders a world as a single-document PDF.
func WorldSheet(world model.World) ([]byte, error) {
	doc := newDocument(world.Name)

	writeField(doc, "Universe", world.Universe)
	writeField(doc, "World Theme", world.WorldTheme)
	writeField(doc, "Tone", world.Tone)

	writeSection(doc, "History", world.Backstory)
	writeSection(doc, "Timeline", world.Timeline)

	return render(doc)
}

func newDocument(title string) *fpdf.Fpdf {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.SetAutoPageBreak(true, pageMargin)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", titleSize)
	doc.MultiCell(0, 10, title, "", "C", false)
	doc.Ln(4)
	return doc
}

// writeField prints a short label/value pair on one line. Empty values are
// skipped.
func writeField(doc *fpdf.Fpdf, label, value string) {
	if value == "" {
		return
	}
	doc.SetFont("Helvetica", "B", bodySize)
	doc.CellFormat(35, lineHeight+1, label+":", "", 0, "L", false, 0, "")
	doc.SetFont("Helvetica", "", bodySize)
	doc.MultiCell(0, lineHeight+1, value, "", "L", false)
}

// writeSection prints a heading followed by flowing body text. Empty sections
// are skipped.
func writeSection(doc *fpdf.Fpdf, heading, text string) {
	if text == "" {
		return
	}
	doc.Ln(3)
	doc.SetFont("Helvetica", "B", headingSize)
	doc.MultiCell(0, lineHeight+2, heading, "", "L", false)
	doc.SetFont("Helvetica", "", bodySize)
	doc.MultiCell(0, lineHeight, text, "", "L", false)
}

func render(doc *fpdf.Fpdf) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := doc.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
