package menu

import (
	"fmt"
	"io"
	"strings"

	"writing_assistant/generator"
	"writing_assistant/render"
)

// Display writes operation results the way the interactive menu shows them.
type Display struct {
	Out io.Writer
	// Plain flattens generated markdown before printing it.
	Plain bool
}

func (d Display) Generated(text string) {
	if d.Plain {
		text = render.PlainText(text)
	}
	d.section("Texto Generado")
	fmt.Fprintln(d.Out, text)
}

func (d Display) Correction(res generator.CorrectionResult) {
	d.section("Texto Corregido")
	fmt.Fprintln(d.Out, res.Corrected)
	d.section("Cambios Realizados")
	fmt.Fprintln(d.Out, res.Changes)
}

func (d Display) Suggestions(list generator.SuggestionList) {
	d.section("Sugerencias para continuar")
	d.numbered(list)
}

func (d Display) Titles(list generator.TitleList) {
	d.section("Títulos Sugeridos")
	d.numbered(list)
}

func (d Display) Analysis(res generator.StyleAnalysis) {
	for _, key := range res.OrderedKeys() {
		d.section(strings.ToUpper(key))
		fmt.Fprintln(d.Out, res.Sections[key])
	}
}

// History prints one line per record, oldest first.
func (d Display) History(records []generator.Record) {
	if len(records) == 0 {
		fmt.Fprintln(d.Out, "\nEl historial está vacío.")
		return
	}
	d.section("Historial de Operaciones")
	for i, rec := range records {
		fmt.Fprintf(d.Out, "%d. %s - %s: %s\n", i+1, rec.TimestampISO(), rec.Kind, rec.InputSummary)
		if preview := resultPreview(rec.Result); preview != "" {
			fmt.Fprintf(d.Out, "   → %s\n", preview)
		}
	}
}

func (d Display) section(title string) {
	fmt.Fprintf(d.Out, "\n--- %s ---\n", title)
}

func (d Display) numbered(items []string) {
	for i, item := range items {
		fmt.Fprintf(d.Out, "%d. %s\n", i+1, item)
	}
}

const previewRunes = 60

// resultPreview condenses a logged result into a single line.
func resultPreview(r generator.Result) string {
	var s string
	switch v := r.(type) {
	case generator.GeneratedText:
		s = string(v)
	case generator.CorrectionResult:
		s = v.Corrected
	case generator.SuggestionList:
		s = strings.Join(v, " | ")
	case generator.TitleList:
		s = strings.Join(v, " | ")
	case generator.StyleAnalysis:
		keys := v.OrderedKeys()
		if len(keys) > 0 {
			s = v.Sections[keys[0]]
		}
	}
	s = strings.Join(strings.Fields(s), " ")
	if runes := []rune(s); len(runes) > previewRunes {
		s = string(runes[:previewRunes]) + "…"
	}
	return s
}
