package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildGenerationPromptLengths(t *testing.T) {
	tests := []struct {
		length LengthClass
		want   string
	}{
		{LengthShort, "200-300 palabras"},
		{LengthMedium, "500-700 palabras"},
		{LengthLong, "1000-1500 palabras"},
		{"", "500-700 palabras"},
		{"enorme", "500-700 palabras"},
	}
	for _, tt := range tests {
		p := BuildGenerationPrompt(GenerationRequest{Topic: "t", Length: tt.length})
		assert.Contains(t, p.User, tt.want, "length %q", tt.length)
	}
}

func TestBuildGenerationPromptDefaults(t *testing.T) {
	p := BuildGenerationPrompt(GenerationRequest{Topic: "la lluvia"})
	assert.Contains(t, p.User, `Escribe un artículo sobre el tema: "la lluvia"`)
	assert.Contains(t, p.User, "Tono: profesional")
	assert.NotEmpty(t, p.System)
}

func TestPromptsCarryMarkers(t *testing.T) {
	assert.Contains(t, BuildCorrectionPrompt("x").User, "TEXTO_CORREGIDO:")
	assert.Contains(t, BuildCorrectionPrompt("x").User, "CAMBIOS_REALIZADOS:")

	style := BuildStylePrompt("x").User
	for _, label := range styleLabels {
		assert.Contains(t, style, label)
	}
}

func TestParseEnums(t *testing.T) {
	assert.Equal(t, TextEmail, ParseTextKind(" Email "))
	assert.Equal(t, TextArticle, ParseTextKind(""))
	assert.Equal(t, TextKind("poema"), ParseTextKind("poema"))
	assert.Equal(t, LengthLong, ParseLengthClass("long"))
	assert.Equal(t, LengthMedium, ParseLengthClass(""))
	assert.Equal(t, ToneCreative, ParseTone("creative"))
	assert.Equal(t, ToneProfessional, ParseTone(""))
}
