package report

import (
	"fmt"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/prosody-flow/internal/align"
	"github.com/nguyentantai21042004/prosody-flow/internal/markup"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

// Write produces a docx review document for one annotation job: the styled
// sections of the source text followed by the aligned transcript with a time
// prefix per line.
func Write(title string, styles []markup.StyledText, words []align.AlignedWord, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addHeading(doc, title, 16)

	if len(styles) > 0 {
		addHeading(doc, "Secciones", 15)
		for _, s := range styles {
			p := doc.AddParagraph("")
			p.AddText(s.Style+": ").Font(fontName).Size(fontSize).Color("000000").Bold(true)
			p.AddText(s.Text).Font(fontName).Size(fontSize).Color("000000")
		}
	}

	addHeading(doc, "Transcripción alineada", 15)
	for _, line := range splitLines(words) {
		p := doc.AddParagraph("")
		if prefix := timePrefix(line); prefix != "" {
			p.AddText(prefix+" ").Font(fontName).Size(fontSize).Color("808080")
		}
		p.AddText(lineText(line)).Font(fontName).Size(fontSize).Color("000000")
	}

	return doc.SaveTo(outputPath)
}

func addHeading(doc *docx.RootDoc, text string, size uint64) {
	doc.AddParagraph("").AddText(text).Font(fontName).Size(size).Color("000000").Bold(true)
}

// splitLines groups aligned words into display lines on newline tokens.
func splitLines(words []align.AlignedWord) [][]align.AlignedWord {
	var lines [][]align.AlignedWord
	var current []align.AlignedWord

	for _, w := range words {
		if w.Word == "\n" {
			if len(current) > 0 {
				lines = append(lines, current)
				current = nil
			}
			continue
		}
		current = append(current, w)
	}
	if len(current) > 0 {
		lines = append(lines, current)
	}
	return lines
}

// timePrefix formats the start of the first timed word in the line.
func timePrefix(line []align.AlignedWord) string {
	for _, w := range line {
		if w.Timed() {
			return fmt.Sprintf("[%6.2fs]", *w.Start)
		}
	}
	return ""
}

func lineText(line []align.AlignedWord) string {
	parts := make([]string, 0, len(line))
	for _, w := range line {
		parts = append(parts, w.Word)
	}
	return strings.Join(parts, " ")
}
