package generator

import (
	"regexp"
	"strings"
)

// Markers the correction prompt asks the model to emit.
const (
	markerCorrected = "TEXTO_CORREGIDO:"
	markerChanges   = "CAMBIOS_REALIZADOS:"
)

// Labels the style prompt asks for, in the order they are expected.
const (
	labelAnalysis    = "ANÁLISIS:"
	labelStrengths   = "FORTALEZAS:"
	labelSuggestions = "SUGERENCIAS:"
)

var styleLabels = []string{labelAnalysis, labelStrengths, labelSuggestions}

// FallbackChanges is the explanation used when a correction reply carries no markers.
const FallbackChanges = "Correcciones aplicadas automáticamente."

var (
	numberedItemRe    = regexp.MustCompile(`^\d+\.`)
	numberedItemStrip = regexp.MustCompile(`^\d+\.\s*`)
	titleQuoteCutset  = "\"“”«»"
)

// PostProcessText is the passthrough used for free generation.
func PostProcessText(raw string) GeneratedText {
	return GeneratedText(strings.TrimSpace(raw))
}

// ParseCorrection splits a correction reply into corrected text and an explanation.
func ParseCorrection(original, raw string) CorrectionResult {
	reply := strings.TrimSpace(raw)
	res := CorrectionResult{Original: original}

	if !strings.Contains(reply, markerCorrected) {
		res.Corrected = reply
		res.Changes = FallbackChanges
		res.Fallback = true
		return res
	}

	before, after, found := strings.Cut(reply, markerChanges)
	res.Corrected = strings.TrimSpace(strings.ReplaceAll(before, markerCorrected, ""))
	if found {
		res.Changes = strings.TrimSpace(after)
	}
	return res
}

// ParseNumberedList extracts at most n items from a numbered reply.
// Unnumbered non-empty lines are accepted while fewer than n items were collected.
func ParseNumberedList(raw string, n int, stripQuotes bool) []string {
	clean := func(s string) string {
		if stripQuotes {
			return strings.Trim(s, titleQuoteCutset)
		}
		return s
	}

	lines := strings.Split(strings.TrimSpace(raw), "\n")
	var items []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		switch {
		case numberedItemRe.MatchString(line):
			items = append(items, clean(numberedItemStrip.ReplaceAllString(line, "")))
		case line != "" && len(items) < n:
			items = append(items, clean(line))
		}
	}

	if len(items) == 0 {
		for _, line := range lines {
			if line = strings.TrimSpace(line); line != "" {
				items = append(items, clean(line))
			}
		}
	}

	if n < 0 {
		n = 0
	}
	if len(items) > n {
		items = items[:n]
	}
	return items
}

// ParseSections cuts raw at each label present in it. A section ends where the nearest
// later label begins, or at the end of the reply. Absent labels produce no key.
func ParseSections(raw string, labels []string) map[string]string {
	out := make(map[string]string)
	for i, label := range labels {
		idx := strings.Index(raw, label)
		if idx < 0 {
			continue
		}
		start := idx + len(label)
		end := len(raw)
		for _, next := range labels[i+1:] {
			if j := strings.Index(raw[start:], next); j >= 0 && start+j < end {
				end = start + j
			}
		}
		out[sectionKey(label)] = strings.TrimSpace(raw[start:end])
	}
	return out
}

// ParseStyleAnalysis falls back to a single analysis section holding the whole reply.
func ParseStyleAnalysis(original, raw string) StyleAnalysis {
	reply := strings.TrimSpace(raw)
	sections := ParseSections(reply, styleLabels)
	if len(sections) == 0 {
		return StyleAnalysis{
			Original: original,
			Sections: map[string]string{SectionAnalysis: reply},
			Fallback: true,
		}
	}
	return StyleAnalysis{Original: original, Sections: sections}
}

func sectionKey(label string) string {
	return strings.ToLower(strings.TrimSuffix(label, ":"))
}
