package generator

import (
	"context"
	"fmt"
	"strings"
)

// MockLLM 一个简单的占位实现，便于本地调试，不调用外部模型。
// It answers every operation in the layout the prompts ask for.
type MockLLM struct{}

func (m MockLLM) Complete(_ context.Context, prompt Prompt) (string, error) {
	var sb strings.Builder
	switch prompt.Kind {
	case KindCorrection:
		sb.WriteString(markerCorrected + " " + quotedBlock(prompt.User, "Texto original:", "Formato de respuesta:") + "\n")
		sb.WriteString(markerChanges + " Sin cambios (modo de prueba).")
	case KindSuggestions, KindTitles:
		for i := 1; i <= 3; i++ {
			sb.WriteString(fmt.Sprintf("%d. Opción de ejemplo %d\n", i, i))
		}
	case KindAnalysis:
		sb.WriteString(labelAnalysis + " Texto de prueba analizado sin modelo.\n")
		sb.WriteString(labelStrengths + " Claridad.\n")
		sb.WriteString(labelSuggestions + " Conecta un modelo real para obtener sugerencias.")
	default:
		sb.WriteString("# Texto de ejemplo\n\n")
		sb.WriteString("Contenido generado sin modelo a partir de la petición:\n\n")
		sb.WriteString("```\n")
		sb.WriteString(strings.TrimSpace(prompt.User))
		sb.WriteString("\n```\n")
	}
	return sb.String(), nil
}

// quotedBlock returns the text between two prompt headings.
func quotedBlock(s, from, to string) string {
	_, rest, ok := strings.Cut(s, from)
	if !ok {
		return strings.TrimSpace(s)
	}
	body, _, _ := strings.Cut(rest, to)
	return strings.TrimSpace(body)
}
