package generator

import (
	"fmt"
	"strings"
)

// Prompt is one system+user exchange plus its sampling parameters.
type Prompt struct {
	Kind        Kind
	System      string
	User        string
	MaxTokens   int
	Temperature float64
}

var lengthWords = map[LengthClass]string{
	LengthShort:  "200-300 palabras",
	LengthMedium: "500-700 palabras",
	LengthLong:   "1000-1500 palabras",
}

// BuildGenerationPrompt 生成完整文本的提示词。
func BuildGenerationPrompt(req GenerationRequest) Prompt {
	req = req.withDefaults()
	words, ok := lengthWords[req.Length]
	if !ok {
		words = lengthWords[LengthMedium]
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Escribe un %s sobre el tema: \"%s\"\n\n", req.Kind, req.Topic))
	sb.WriteString("Requisitos:\n")
	sb.WriteString(fmt.Sprintf("- Longitud: %s\n", words))
	sb.WriteString(fmt.Sprintf("- Tono: %s\n", req.Tone))
	sb.WriteString("- Estructura clara y coherente\n")
	sb.WriteString("- Contenido original y bien desarrollado\n\n")
	sb.WriteString("Si es un correo electrónico, incluye saludo y despedida apropiados.\n")
	sb.WriteString("Si es una novela, crea una narrativa envolvente con personajes.\n")
	sb.WriteString("Si es un artículo, incluye introducción, desarrollo y conclusión.\n")

	return Prompt{
		Kind:        KindGeneration,
		System:      "Eres un asistente experto en escritura creativa y profesional. Generas contenido de alta calidad adaptado a las necesidades del usuario.",
		User:        sb.String(),
		MaxTokens:   2000,
		Temperature: 0.7,
	}
}

// BuildCorrectionPrompt asks for the TEXTO_CORREGIDO / CAMBIOS_REALIZADOS layout.
func BuildCorrectionPrompt(text string) Prompt {
	var sb strings.Builder
	sb.WriteString("Corrige la gramática, ortografía y estilo del siguiente texto.\n")
	sb.WriteString("Proporciona el texto corregido y explica los cambios principales realizados.\n\n")
	sb.WriteString("Texto original:\n")
	sb.WriteString(text)
	sb.WriteString("\n\nFormato de respuesta:\n")
	sb.WriteString(markerCorrected + " [texto corregido aquí]\n")
	sb.WriteString(markerChanges + " [explicación de los cambios principales]\n")

	return Prompt{
		Kind:        KindCorrection,
		System:      "Eres un corrector experto en gramática española. Corriges errores ortográficos, gramaticales y de estilo manteniendo el sentido original del texto.",
		User:        sb.String(),
		MaxTokens:   1500,
		Temperature: 0.3,
	}
}

func BuildContinuationPrompt(passage string, n int) Prompt {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Basándote en el siguiente contexto, sugiere %d oraciones diferentes ", n))
	sb.WriteString("para continuar el texto de manera natural y coherente.\n\n")
	sb.WriteString("Contexto:\n")
	sb.WriteString(passage)
	sb.WriteString(fmt.Sprintf("\n\nProporciona %d sugerencias numeradas, cada una en una línea diferente.\n", n))

	return Prompt{
		Kind:        KindSuggestions,
		System:      "Eres un asistente de escritura que ayuda a continuar textos de manera coherente y natural.",
		User:        sb.String(),
		MaxTokens:   500,
		Temperature: 0.8,
	}
}

// BuildStylePrompt asks for the ANÁLISIS / FORTALEZAS / SUGERENCIAS layout.
func BuildStylePrompt(text string) Prompt {
	var sb strings.Builder
	sb.WriteString("Analiza el estilo del siguiente texto y proporciona sugerencias de mejora.\n\n")
	sb.WriteString("Evalúa:\n")
	sb.WriteString("- Claridad y fluidez\n")
	sb.WriteString("- Tono y registro\n")
	sb.WriteString("- Estructura y coherencia\n")
	sb.WriteString("- Vocabulario y variedad\n\n")
	sb.WriteString("Texto:\n")
	sb.WriteString(text)
	sb.WriteString("\n\nFormato de respuesta:\n")
	sb.WriteString(labelAnalysis + " [análisis detallado del estilo]\n")
	sb.WriteString(labelStrengths + " [aspectos positivos]\n")
	sb.WriteString(labelSuggestions + " [recomendaciones específicas para mejorar]\n")

	return Prompt{
		Kind:        KindAnalysis,
		System:      "Eres un experto en análisis de estilo literario y escritura. Proporcionas análisis constructivos y sugerencias específicas para mejorar la escritura.",
		User:        sb.String(),
		MaxTokens:   1000,
		Temperature: 0.4,
	}
}

func BuildTitlePrompt(content string, n int) Prompt {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Basándote en el siguiente contenido, genera %d títulos creativos y atractivos.\n", n))
	sb.WriteString("Los títulos deben ser relevantes, llamativos y capturar la esencia del contenido.\n\n")
	sb.WriteString("Contenido:\n")
	sb.WriteString(content)
	sb.WriteString(fmt.Sprintf("\n\nProporciona %d títulos numerados, cada uno en una línea diferente.\n", n))

	return Prompt{
		Kind:        KindTitles,
		System:      "Eres un experto en marketing de contenidos y copywriting. Creas títulos atractivos y efectivos.",
		User:        sb.String(),
		MaxTokens:   300,
		Temperature: 0.8,
	}
}
