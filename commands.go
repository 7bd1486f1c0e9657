package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"writing_assistant/config"
	"writing_assistant/generator"
	"writing_assistant/menu"
	"writing_assistant/render"
)

const (
	defaultKind   = generator.TextArticle
	defaultLength = generator.LengthMedium
	defaultTone   = generator.ToneProfessional
)

// newAgent loads configuration, sets up logging and wires the completion client.
func newAgent(cmd *cli.Command) (*generator.Agent, error) {
	cfg, err := config.Load(cmd.String("config"), cmd.String("env"))
	if err != nil {
		return nil, err
	}

	level := cfg.SlogLevel()
	if cmd.Bool("verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if cmd.Bool("mock") {
		logger.Info("using mock model; no requests leave this machine")
		return generator.NewAgent(generator.MockLLM{}, generator.WithLogger(logger))
	}

	llm, err := buildLLM(cfg)
	if err != nil {
		return nil, err
	}
	opts := []generator.Option{generator.WithLogger(logger)}
	if counter, err := generator.NewTiktokenCounter(cfg.LLM.Model); err != nil {
		logger.Debug("token counting disabled", "error", err)
	} else {
		opts = append(opts, generator.WithTokenCounter(counter))
	}
	return generator.NewAgent(llm, opts...)
}

func buildLLM(cfg config.Config) (generator.LLMClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	// deepseek 走 OpenAI 兼容接口，同一个客户端即可。
	return generator.NewOpenAILLMFromConfig(&generator.LLMSettings{
		Provider: cfg.LLM.Provider,
		Model:    cfg.LLM.Model,
		APIKey:   cfg.LLM.APIKey,
		BaseURL:  cfg.LLM.BaseURL,
		Timeout:  cfg.LLM.Timeout(),
	})
}

func menuAction(ctx context.Context, cmd *cli.Command) error {
	agent, err := newAgent(cmd)
	if err != nil {
		return err
	}
	return menu.New(agent, os.Stdin, os.Stdout, cmd.Bool("plain"), slog.Default()).Run(ctx)
}

func generateAction(ctx context.Context, cmd *cli.Command) error {
	agent, err := newAgent(cmd)
	if err != nil {
		return err
	}
	text, opErr := agent.GenerateText(ctx, generator.GenerationRequest{
		Topic:  cmd.String("topic"),
		Kind:   generator.ParseTextKind(cmd.String("kind")),
		Length: generator.ParseLengthClass(cmd.String("length")),
		Tone:   generator.ParseTone(cmd.String("tone")),
	})
	if opErr != nil {
		fmt.Fprintln(os.Stdout, text)
		return opErr
	}

	if cmd.Bool("html") {
		html, err := render.HTML(text)
		if err != nil {
			return fmt.Errorf("render html: %w", err)
		}
		fmt.Fprint(os.Stdout, html)
		return nil
	}
	display(cmd).Generated(text)
	return nil
}

func correctAction(ctx context.Context, cmd *cli.Command) error {
	agent, text, err := agentAndText(cmd)
	if err != nil {
		return err
	}
	res, opErr := agent.CorrectGrammar(ctx, text)
	display(cmd).Correction(res)
	return opErr
}

func suggestAction(ctx context.Context, cmd *cli.Command) error {
	agent, text, err := agentAndText(cmd)
	if err != nil {
		return err
	}
	list, opErr := agent.SuggestContinuations(ctx, text, int(cmd.Int("count")))
	display(cmd).Suggestions(list)
	return opErr
}

func analyzeAction(ctx context.Context, cmd *cli.Command) error {
	agent, text, err := agentAndText(cmd)
	if err != nil {
		return err
	}
	res, opErr := agent.AnalyzeStyle(ctx, text)
	display(cmd).Analysis(res)
	return opErr
}

func titlesAction(ctx context.Context, cmd *cli.Command) error {
	agent, text, err := agentAndText(cmd)
	if err != nil {
		return err
	}
	list, opErr := agent.GenerateTitles(ctx, text, int(cmd.Int("count")))
	display(cmd).Titles(list)
	return opErr
}

func agentAndText(cmd *cli.Command) (*generator.Agent, string, error) {
	agent, err := newAgent(cmd)
	if err != nil {
		return nil, "", err
	}
	text := cmd.String("text")
	if text == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		text = strings.TrimRight(string(data), "\n")
	}
	if strings.TrimSpace(text) == "" {
		return nil, "", errors.New("no input text; pass --text or pipe it on stdin")
	}
	return agent, text, nil
}

func display(cmd *cli.Command) menu.Display {
	return menu.Display{Out: os.Stdout, Plain: cmd.Bool("plain")}
}
