package generator

import (
	"strings"
)

// Kind identifies which assistant operation produced a result.
type Kind string

const (
	KindGeneration  Kind = "generación"
	KindCorrection  Kind = "corrección"
	KindSuggestions Kind = "sugerencias"
	KindAnalysis    Kind = "análisis"
	KindTitles      Kind = "títulos"
)

// TextKind is the genre of text to generate. Unknown values are sent to the model verbatim.
type TextKind string

const (
	TextArticle TextKind = "artículo"
	TextEmail   TextKind = "correo"
	TextNovel   TextKind = "novela"
	TextEssay   TextKind = "ensayo"
)

// LengthClass selects the target word range of generated text.
type LengthClass string

const (
	LengthShort  LengthClass = "corto"
	LengthMedium LengthClass = "medio"
	LengthLong   LengthClass = "largo"
)

// Tone of generated text. Unknown values are sent to the model verbatim.
type Tone string

const (
	ToneProfessional Tone = "profesional"
	ToneCasual       Tone = "casual"
	ToneFormal       Tone = "formal"
	ToneCreative     Tone = "creativo"
)

var textKindAliases = map[string]TextKind{
	"article":  TextArticle,
	"articulo": TextArticle,
	"artículo": TextArticle,
	"email":    TextEmail,
	"correo":   TextEmail,
	"novel":    TextNovel,
	"novela":   TextNovel,
	"essay":    TextEssay,
	"ensayo":   TextEssay,
}

var lengthAliases = map[string]LengthClass{
	"short":  LengthShort,
	"corto":  LengthShort,
	"medium": LengthMedium,
	"medio":  LengthMedium,
	"long":   LengthLong,
	"largo":  LengthLong,
}

var toneAliases = map[string]Tone{
	"professional": ToneProfessional,
	"profesional":  ToneProfessional,
	"casual":       ToneCasual,
	"formal":       ToneFormal,
	"creative":     ToneCreative,
	"creativo":     ToneCreative,
}

// ParseTextKind maps Spanish or English spellings onto a TextKind; empty input yields the default.
func ParseTextKind(s string) TextKind {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return TextArticle
	}
	if k, ok := textKindAliases[s]; ok {
		return k
	}
	return TextKind(s)
}

// ParseLengthClass keeps unknown values; the prompt builder falls back to the medium range for them.
func ParseLengthClass(s string) LengthClass {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return LengthMedium
	}
	if l, ok := lengthAliases[s]; ok {
		return l
	}
	return LengthClass(s)
}

func ParseTone(s string) Tone {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ToneProfessional
	}
	if t, ok := toneAliases[s]; ok {
		return t
	}
	return Tone(s)
}

// GenerationRequest describes one free-text generation call.
type GenerationRequest struct {
	Topic  string
	Kind   TextKind
	Length LengthClass
	Tone   Tone
}

// withDefaults fills unset fields the same way the menu does for empty answers.
func (r GenerationRequest) withDefaults() GenerationRequest {
	if r.Kind == "" {
		r.Kind = TextArticle
	}
	if r.Length == "" {
		r.Length = LengthMedium
	}
	if r.Tone == "" {
		r.Tone = ToneProfessional
	}
	return r
}

// Result is the closed set of values an operation can record in the log.
type Result interface {
	kind() Kind
}

// GeneratedText is the trimmed reply of a free generation call.
type GeneratedText string

func (GeneratedText) kind() Kind { return KindGeneration }

// CorrectionResult holds a grammar correction. Original is always the caller's input, untouched.
type CorrectionResult struct {
	Original  string `json:"original"`
	Corrected string `json:"corrected"`
	Changes   string `json:"changes"`
	// Fallback is set when the reply lacked the correction markers.
	Fallback bool `json:"fallback,omitempty"`
}

func (CorrectionResult) kind() Kind { return KindCorrection }

// SuggestionList never holds more items than were requested.
type SuggestionList []string

func (SuggestionList) kind() Kind { return KindSuggestions }

// TitleList never holds more items than were requested.
type TitleList []string

func (TitleList) kind() Kind { return KindTitles }

// Section keys of a StyleAnalysis.
const (
	SectionAnalysis    = "análisis"
	SectionStrengths   = "fortalezas"
	SectionSuggestions = "sugerencias"
)

// StyleAnalysis maps section keys to their content. Sections always holds at least one key.
type StyleAnalysis struct {
	Original string            `json:"original"`
	Sections map[string]string `json:"sections"`
	Fallback bool              `json:"fallback,omitempty"`
}

func (StyleAnalysis) kind() Kind { return KindAnalysis }

// OrderedKeys returns the present section keys in label order.
func (s StyleAnalysis) OrderedKeys() []string {
	var keys []string
	for _, label := range styleLabels {
		if _, ok := s.Sections[sectionKey(label)]; ok {
			keys = append(keys, sectionKey(label))
		}
	}
	return keys
}
