package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &cli.Command{
		Name:  "writing-assistant",
		Usage: "asistente de escritura: generación, corrección, sugerencias, análisis de estilo y títulos",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to config.json",
				Value: "config/config.json",
			},
			&cli.StringFlag{
				Name:  "env",
				Usage: "path to .env file",
				Value: ".env",
			},
			&cli.BoolFlag{
				Name:  "mock",
				Usage: "use the offline mock model instead of a real provider",
			},
			&cli.BoolFlag{
				Name:  "plain",
				Usage: "print generated markdown as plain text",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logs",
			},
		},
		Action: menuAction,
		Commands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "genera un texto completo sobre un tema",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "topic", Usage: "tema o idea principal", Required: true},
					&cli.StringFlag{Name: "kind", Usage: "artículo/correo/novela/ensayo", Value: string(defaultKind)},
					&cli.StringFlag{Name: "length", Usage: "corto/medio/largo", Value: string(defaultLength)},
					&cli.StringFlag{Name: "tone", Usage: "profesional/casual/formal/creativo", Value: string(defaultTone)},
					&cli.BoolFlag{Name: "html", Usage: "print the generated markdown as HTML"},
				},
				Action: generateAction,
			},
			{
				Name:   "correct",
				Usage:  "corrige gramática y estilo (texto por --text o stdin)",
				Flags:  []cli.Flag{textFlag()},
				Action: correctAction,
			},
			{
				Name:  "suggest",
				Usage: "sugiere oraciones para continuar un texto",
				Flags: []cli.Flag{
					textFlag(),
					&cli.IntFlag{Name: "count", Usage: "número de sugerencias", Value: 3},
				},
				Action: suggestAction,
			},
			{
				Name:   "analyze",
				Usage:  "analiza el estilo de un texto",
				Flags:  []cli.Flag{textFlag()},
				Action: analyzeAction,
			},
			{
				Name:  "titles",
				Usage: "genera títulos para un contenido",
				Flags: []cli.Flag{
					textFlag(),
					&cli.IntFlag{Name: "count", Usage: "número de títulos", Value: 5},
				},
				Action: titlesAction,
			},
		},
	}

	if err := app.Run(ctx, os.Args); err != nil {
		slog.Error("command failed", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func textFlag() cli.Flag {
	return &cli.StringFlag{Name: "text", Usage: "input text; read from stdin when empty"}
}
