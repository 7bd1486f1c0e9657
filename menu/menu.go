// Package menu runs the line-oriented interactive loop of the writing assistant.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"writing_assistant/generator"
)

// EndMarker terminates multi-line input.
const EndMarker = "FIN"

// Assistant is what the menu needs from generator.Agent.
type Assistant interface {
	GenerateText(ctx context.Context, req generator.GenerationRequest) (string, error)
	CorrectGrammar(ctx context.Context, text string) (generator.CorrectionResult, error)
	SuggestContinuations(ctx context.Context, passage string, n int) (generator.SuggestionList, error)
	AnalyzeStyle(ctx context.Context, text string) (generator.StyleAnalysis, error)
	GenerateTitles(ctx context.Context, content string, n int) (generator.TitleList, error)
	Log() []generator.Record
	ClearLog()
}

// errInputClosed ends the loop when stdin runs out.
var errInputClosed = errors.New("input closed")

type Menu struct {
	assistant Assistant
	in        *bufio.Scanner
	out       io.Writer
	display   Display
	logger    *slog.Logger
}

func New(assistant Assistant, in io.Reader, out io.Writer, plain bool, logger *slog.Logger) *Menu {
	if logger == nil {
		logger = slog.Default()
	}
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Menu{
		assistant: assistant,
		in:        sc,
		out:       out,
		display:   Display{Out: out, Plain: plain},
		logger:    logger,
	}
}

// Run loops until the user picks 0, input ends, or ctx is cancelled.
func (m *Menu) Run(ctx context.Context) error {
	fmt.Fprintln(m.out, "=== Asistente de Escritura Automática ===")
	fmt.Fprintln(m.out, "¡Bienvenido! Este asistente te ayudará con tus tareas de escritura.")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		m.printOptions()
		choice, err := m.prompt("\nElige una opción (0-7): ")
		if err != nil {
			return m.closed(err)
		}

		switch strings.TrimSpace(choice) {
		case "0":
			fmt.Fprintln(m.out, "¡Gracias por usar el Asistente de Escritura!")
			return nil
		case "1":
			err = m.generate(ctx)
		case "2":
			err = m.correct(ctx)
		case "3":
			err = m.suggest(ctx)
		case "4":
			err = m.analyze(ctx)
		case "5":
			err = m.titles(ctx)
		case "6":
			m.display.History(m.assistant.Log())
		case "7":
			m.assistant.ClearLog()
			fmt.Fprintln(m.out, "Historial limpiado.")
		default:
			fmt.Fprintln(m.out, "Opción no válida. Por favor, elige una opción del 0 al 7.")
		}
		if err != nil {
			return m.closed(err)
		}
	}
}

func (m *Menu) printOptions() {
	fmt.Fprintln(m.out, "\n--- Opciones disponibles ---")
	fmt.Fprintln(m.out, "1. Generar texto completo")
	fmt.Fprintln(m.out, "2. Corregir gramática y estilo")
	fmt.Fprintln(m.out, "3. Sugerir oraciones para continuar")
	fmt.Fprintln(m.out, "4. Analizar estilo del texto")
	fmt.Fprintln(m.out, "5. Generar títulos")
	fmt.Fprintln(m.out, "6. Ver historial")
	fmt.Fprintln(m.out, "7. Limpiar historial")
	fmt.Fprintln(m.out, "0. Salir")
}

func (m *Menu) generate(ctx context.Context) error {
	topic, err := m.prompt("Tema o idea principal: ")
	if err != nil {
		return err
	}
	kind, err := m.prompt("Tipo de texto (artículo/correo/novela/ensayo) [artículo]: ")
	if err != nil {
		return err
	}
	length, err := m.prompt("Longitud (corto/medio/largo) [medio]: ")
	if err != nil {
		return err
	}
	tone, err := m.prompt("Tono (profesional/casual/formal/creativo) [profesional]: ")
	if err != nil {
		return err
	}

	fmt.Fprintln(m.out, "\nGenerando texto...")
	text, opErr := m.assistant.GenerateText(ctx, generator.GenerationRequest{
		Topic:  topic,
		Kind:   generator.ParseTextKind(kind),
		Length: generator.ParseLengthClass(length),
		Tone:   generator.ParseTone(tone),
	})
	m.report(opErr)
	if opErr != nil {
		m.display.section("Texto Generado")
		fmt.Fprintln(m.out, text)
		return nil
	}
	m.display.Generated(text)
	return nil
}

func (m *Menu) correct(ctx context.Context) error {
	text, err := m.readBlock("Ingresa el texto a corregir")
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, "\nCorrigiendo texto...")
	res, opErr := m.assistant.CorrectGrammar(ctx, text)
	m.report(opErr)
	m.display.Correction(res)
	return nil
}

func (m *Menu) suggest(ctx context.Context) error {
	passage, err := m.readBlock("Ingresa el contexto")
	if err != nil {
		return err
	}
	n, err := m.promptCount("¿Cuántas sugerencias quieres? [3]: ", generator.DefaultSuggestionCount)
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, "\nGenerando sugerencias...")
	list, opErr := m.assistant.SuggestContinuations(ctx, passage, n)
	m.report(opErr)
	m.display.Suggestions(list)
	return nil
}

func (m *Menu) analyze(ctx context.Context) error {
	text, err := m.readBlock("Ingresa el texto a analizar")
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, "\nAnalizando estilo...")
	res, opErr := m.assistant.AnalyzeStyle(ctx, text)
	m.report(opErr)
	m.display.Analysis(res)
	return nil
}

func (m *Menu) titles(ctx context.Context) error {
	content, err := m.readBlock("Ingresa el contenido para generar títulos")
	if err != nil {
		return err
	}
	n, err := m.promptCount("¿Cuántos títulos quieres? [5]: ", generator.DefaultTitleCount)
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, "\nGenerando títulos...")
	list, opErr := m.assistant.GenerateTitles(ctx, content, n)
	m.report(opErr)
	m.display.Titles(list)
	return nil
}

// report logs a gateway failure; the degraded result is still shown.
func (m *Menu) report(err error) {
	if err != nil {
		m.logger.Debug("operation degraded", "error", err)
	}
}

func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(m.in.Text()), nil
}

// promptCount falls back to def on empty or non-numeric answers.
func (m *Menu) promptCount(label string, def int) (int, error) {
	answer, err := m.prompt(label)
	if err != nil {
		return 0, err
	}
	if answer == "" {
		return def, nil
	}
	n, convErr := strconv.Atoi(answer)
	if convErr != nil {
		return def, nil
	}
	return n, nil
}

// readBlock collects lines until EndMarker. Input ending early yields what was read.
func (m *Menu) readBlock(what string) (string, error) {
	fmt.Fprintf(m.out, "%s (escribe '%s' en una línea separada para terminar):\n", what, EndMarker)
	var lines []string
	for m.in.Scan() {
		line := m.in.Text()
		if line == EndMarker {
			return strings.Join(lines, "\n"), nil
		}
		lines = append(lines, line)
	}
	if err := m.in.Err(); err != nil {
		return "", err
	}
	if len(lines) == 0 {
		return "", errInputClosed
	}
	return strings.Join(lines, "\n"), nil
}

func (m *Menu) closed(err error) error {
	if errors.Is(err, errInputClosed) {
		fmt.Fprintln(m.out)
		return nil
	}
	return err
}
