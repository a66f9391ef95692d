// Package ui drives the interactive terminal loop: read a line, forge an
// item, render its card, repeat until the user quits.
package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"arcane-armory/art"
	"arcane-armory/card"
	"arcane-armory/forge"
	"arcane-armory/llm"
)

// State is the loop's position in its tiny state machine.
type State int

const (
	StateIdle       State = iota // Waiting for input
	StateRendering               // Generating and displaying a card
	StateTerminated              // Loop finished
)

// Transition classifies one line of input. Anything starting with q or Q
// (after trimming) terminates; every other line, including a blank one,
// forges a new item.
func Transition(input string) State {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(input)), "q") {
		return StateTerminated
	}
	return StateRendering
}

const (
	farewellQuit      = "May your loot be ever shiny. Farewell! 🪙✨"
	farewellInterrupt = "Interrupted by user. May your dice roll high! 🎲"
)

// Config wires the loop's collaborators. Enhancer and Artist may be nil,
// which selects the local-only fallback path.
type Config struct {
	In        io.Reader
	Out       io.Writer
	Generator *forge.Generator
	Renderer  *card.Renderer
	Enhancer  llm.TextEnhancer
	Artist    llm.ImageGenerator
	Store     *art.Store
	Viewer    *art.Viewer
	Logger    *log.Logger

	// LineDelay is the pause between printed card lines. Zero disables
	// the scrolling effect.
	LineDelay time.Duration
}

// Loop is the interactive card-forging loop.
type Loop struct {
	cfg Config
}

// NewLoop creates a loop from the given configuration.
func NewLoop(cfg Config) *Loop {
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	return &Loop{cfg: cfg}
}

// Run prints the banner and services input until the user quits, input
// ends, or the context is cancelled. Cancellation produces its own
// farewell instead of an error.
func (l *Loop) Run(ctx context.Context) error {
	l.printBanner()

	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(l.cfg.In)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		fmt.Fprint(l.cfg.Out, card.PromptStyle.Render("✨ [Enter] forge item  |  'q' quit > "))

		select {
		case <-ctx.Done():
			fmt.Fprintln(l.cfg.Out)
			fmt.Fprintln(l.cfg.Out, card.FarewellStyle.Render(farewellInterrupt))
			return nil
		case input, ok := <-lines:
			if !ok {
				// End of input behaves like a quit.
				fmt.Fprintln(l.cfg.Out)
				fmt.Fprintln(l.cfg.Out, card.FarewellStyle.Render(farewellQuit))
				return nil
			}
			if l.Step(ctx, input) == StateTerminated {
				return nil
			}
		}
	}
}

// Step services one line of input and returns the state the loop settles
// in: StateTerminated on a quit, StateIdle after a card was rendered.
func (l *Loop) Step(ctx context.Context, input string) State {
	if Transition(input) == StateTerminated {
		fmt.Fprintln(l.cfg.Out, card.FarewellStyle.Render(farewellQuit))
		return StateTerminated
	}

	l.forgeOnce(ctx)
	return StateIdle
}

// forgeOnce generates, optionally enhances, and displays a single item.
// Collaborator failures degrade to status notes; the base card always
// prints.
func (l *Loop) forgeOnce(ctx context.Context) {
	item := l.cfg.Generator.Generate()

	textNote := l.enhance(ctx, &item)
	imgPath, imgNote := l.generateArt(ctx, item)

	note := strings.TrimSpace(strings.Join(nonEmpty(textNote, imgNote), " "))

	l.slowPrint(l.cfg.Renderer.Card(item, note))

	if imgPath != "" && l.cfg.Viewer != nil {
		fmt.Fprintln(l.cfg.Out)
		l.cfg.Viewer.Display(imgPath)
	}

	fmt.Fprintln(l.cfg.Out)
	fmt.Fprintln(l.cfg.Out, card.TipStyle.Bold(true).Render("💡 Tip:")+
		card.TipStyle.Render(" Use this as inspiration; adjust numbers to fit your table."))
	fmt.Fprintln(l.cfg.Out)
}

// enhance asks the text enhancer for richer content and merges it in.
// Returns the status note to show under the card.
func (l *Loop) enhance(ctx context.Context, item *forge.Item) string {
	if l.cfg.Enhancer == nil {
		return "🔒 OpenAI not configured; showing base generator output."
	}

	enh, err := l.cfg.Enhancer.EnhanceItem(ctx, *item)
	if err != nil {
		l.cfg.Logger.Warn("enhancement failed", "err", err)
		return fmt.Sprintf("⚠️ OpenAI enhancement failed: %v", err)
	}

	item.ApplyEnhancement(enh)
	return "🤖 AI enhancement applied."
}

// generateArt requests an illustration and persists it. Returns the saved
// path (empty when unavailable) and a status note.
func (l *Loop) generateArt(ctx context.Context, item forge.Item) (string, string) {
	if l.cfg.Artist == nil || l.cfg.Store == nil {
		return "", "🖼️ OpenAI not configured; no image generated."
	}

	data, err := l.cfg.Artist.GenerateArt(ctx, item)
	if err != nil {
		l.cfg.Logger.Warn("image generation failed", "err", err)
		return "", fmt.Sprintf("⚠️ Image generation failed: %v", err)
	}

	path, err := l.cfg.Store.Save(item.Name, data)
	if err != nil {
		l.cfg.Logger.Warn("image save failed", "err", err)
		return "", "⚠️ Item art generated but could not be saved."
	}
	return path, fmt.Sprintf("🧙 Item art generated. Saved to %s.", path)
}

func (l *Loop) printBanner() {
	title := "⚔️ ARCANE ARMORY ⚔️"
	subtitle := "🎲 A Tiny D&D Fantasy Item Forge 🎲"
	hints := []string{"Press [Enter] to forge an item, or type 'q' to quit."}

	if l.cfg.Enhancer != nil {
		title = "⚔️ ARCANE ARMORY (AI-ENHANCED) ⚔️"
		subtitle = "🎲 D&D Item Forge + AI Lore Booster 🤖"
	} else {
		hints = append(hints, "Note: Set OPENAI_API_KEY for AI-enhanced lore.")
	}

	for _, line := range card.Banner(title, subtitle, hints...) {
		fmt.Fprintln(l.cfg.Out, line)
	}
}

// slowPrint prints lines with a subtle scrolling effect.
func (l *Loop) slowPrint(lines []string) {
	for _, line := range lines {
		fmt.Fprintln(l.cfg.Out, line)
		if l.cfg.LineDelay > 0 {
			time.Sleep(l.cfg.LineDelay)
		}
	}
}

func nonEmpty(parts ...string) []string {
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
