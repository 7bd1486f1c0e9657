package generator

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// Default item counts when the caller asks for zero or fewer.
const (
	DefaultSuggestionCount = 3
	DefaultTitleCount      = 5
)

// Error prefixes carried by degraded results after a gateway failure.
const (
	ErrPrefixGeneration  = "Error al generar texto: "
	ErrPrefixCorrection  = "Error al corregir: "
	ErrPrefixSuggestions = "Error al generar sugerencias: "
	ErrPrefixAnalysis    = "Error al analizar estilo: "
	ErrPrefixTitles      = "Error al generar títulos: "
)

// Agent 负责调用补全服务、解析回复并记录历史。
//
// Every operation returns a populated result. When the completion call fails the
// result carries the caller's input plus a prefixed error message, and the error
// is a *GatewayError. Parse fallbacks are not errors.
type Agent struct {
	llm     LLMClient
	history History
	counter TokenCounter
	logger  *slog.Logger
}

// Option configures an Agent.
type Option func(*Agent)

// WithHistory replaces the in-memory operation log.
func WithHistory(h History) Option {
	return func(a *Agent) {
		a.history = h
	}
}

// WithTokenCounter enables prompt token estimates in debug logs.
func WithTokenCounter(c TokenCounter) Option {
	return func(a *Agent) {
		a.counter = c
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(a *Agent) {
		a.logger = l
	}
}

func NewAgent(llm LLMClient, opts ...Option) (*Agent, error) {
	if llm == nil {
		return nil, errors.New("llm client is required")
	}
	a := &Agent{llm: llm}
	for _, opt := range opts {
		opt(a)
	}
	if a.history == nil {
		a.history = NewMemoryHistory()
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}
	return a, nil
}

// GenerateText writes a full text about req.Topic.
func (a *Agent) GenerateText(ctx context.Context, req GenerationRequest) (string, error) {
	raw, err := a.complete(ctx, BuildGenerationPrompt(req))
	if err != nil {
		return ErrPrefixGeneration + err.Detail(), err
	}
	text := PostProcessText(raw)
	a.history.Append(KindGeneration, Summarize(req.Topic), text)
	return string(text), nil
}

// CorrectGrammar never alters the Original field of its result.
func (a *Agent) CorrectGrammar(ctx context.Context, text string) (CorrectionResult, error) {
	raw, err := a.complete(ctx, BuildCorrectionPrompt(text))
	if err != nil {
		return CorrectionResult{
			Original:  text,
			Corrected: text,
			Changes:   ErrPrefixCorrection + err.Detail(),
		}, err
	}
	res := ParseCorrection(text, raw)
	a.history.Append(KindCorrection, Summarize(text), res)
	return res, nil
}

// SuggestContinuations returns at most n sentences continuing passage.
func (a *Agent) SuggestContinuations(ctx context.Context, passage string, n int) (SuggestionList, error) {
	if n <= 0 {
		n = DefaultSuggestionCount
	}
	raw, err := a.complete(ctx, BuildContinuationPrompt(passage, n))
	if err != nil {
		return SuggestionList{ErrPrefixSuggestions + err.Detail()}, err
	}
	list := SuggestionList(ParseNumberedList(raw, n, false))
	a.history.Append(KindSuggestions, Summarize(passage), list)
	return list, nil
}

func (a *Agent) AnalyzeStyle(ctx context.Context, text string) (StyleAnalysis, error) {
	raw, err := a.complete(ctx, BuildStylePrompt(text))
	if err != nil {
		return StyleAnalysis{
			Original: text,
			Sections: map[string]string{SectionAnalysis: ErrPrefixAnalysis + err.Detail()},
		}, err
	}
	res := ParseStyleAnalysis(text, raw)
	a.history.Append(KindAnalysis, Summarize(text), res)
	return res, nil
}

// GenerateTitles returns at most n titles with surrounding quotes removed.
func (a *Agent) GenerateTitles(ctx context.Context, content string, n int) (TitleList, error) {
	if n <= 0 {
		n = DefaultTitleCount
	}
	raw, err := a.complete(ctx, BuildTitlePrompt(content, n))
	if err != nil {
		return TitleList{ErrPrefixTitles + err.Detail()}, err
	}
	list := TitleList(ParseNumberedList(raw, n, true))
	a.history.Append(KindTitles, Summarize(content), list)
	return list, nil
}

// Log returns the operation log, oldest first.
func (a *Agent) Log() []Record {
	return a.history.All()
}

func (a *Agent) ClearLog() {
	a.history.Clear()
	a.logger.Debug("operation log cleared")
}

func (a *Agent) complete(ctx context.Context, p Prompt) (string, *GatewayError) {
	start := time.Now()
	a.logger.Debug("completion request",
		"kind", p.Kind,
		"prompt_tokens", promptTokens(a.counter, p),
		"max_tokens", p.MaxTokens,
		"temperature", p.Temperature,
	)

	raw, err := a.llm.Complete(ctx, p)
	if err != nil {
		gwErr := asGatewayError(p.Kind, err)
		a.logger.Warn("completion failed",
			"kind", p.Kind,
			"status", gwErr.StatusCode,
			"error", gwErr.Detail(),
		)
		return "", gwErr
	}

	a.logger.Debug("completion done", "kind", p.Kind, "duration", time.Since(start), "reply_bytes", len(raw))
	return raw, nil
}
