package ui

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"arcane-armory/art"
	"arcane-armory/card"
	"arcane-armory/forge"
)

// fakeEnhancer is a hand-rolled TextEnhancer test double.
type fakeEnhancer struct {
	enhancement *forge.Enhancement
	err         error
	calls       int
}

func (f *fakeEnhancer) EnhanceItem(ctx context.Context, item forge.Item) (*forge.Enhancement, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.enhancement, nil
}

func (f *fakeEnhancer) Close() error { return nil }

// fakeArtist is a hand-rolled ImageGenerator test double.
type fakeArtist struct {
	data []byte
	err  error
}

func (f *fakeArtist) GenerateArt(ctx context.Context, item forge.Item) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.data, nil
}

type LoopTestSuite struct {
	suite.Suite
	out *bytes.Buffer
	ctx context.Context
}

func (s *LoopTestSuite) SetupTest() {
	s.out = &bytes.Buffer{}
	s.ctx = context.Background()
}

func (s *LoopTestSuite) newLoop(cfg Config) *Loop {
	if cfg.In == nil {
		cfg.In = strings.NewReader("")
	}
	cfg.Out = s.out
	if cfg.Generator == nil {
		cfg.Generator = forge.NewGenerator(rand.New(rand.NewSource(1)))
	}
	if cfg.Renderer == nil {
		cfg.Renderer = card.NewRenderer(card.Config{Framed: true})
	}
	return NewLoop(cfg)
}

func (s *LoopTestSuite) TestTransition() {
	terminating := []string{"q", "Q", " quit", "quit", "  QUIT  ", "q anything"}
	for _, input := range terminating {
		s.Equal(StateTerminated, Transition(input), "input %q should terminate", input)
	}

	rendering := []string{"", "x", "5", " roll ", "enter"}
	for _, input := range rendering {
		s.Equal(StateRendering, Transition(input), "input %q should render", input)
	}
}

func (s *LoopTestSuite) TestStepQuitPrintsFarewell() {
	loop := s.newLoop(Config{})
	s.Equal(StateTerminated, loop.Step(s.ctx, "q"))
	s.Contains(s.out.String(), "Farewell")
}

func (s *LoopTestSuite) TestStepRendersCard() {
	loop := s.newLoop(Config{})
	s.Equal(StateIdle, loop.Step(s.ctx, ""))

	out := s.out.String()
	s.Contains(out, "Rarity: ")
	s.Contains(out, "Mechanic: ")
	s.Contains(out, "📝 Lore:")
	s.Contains(out, "OpenAI not configured")
}

func (s *LoopTestSuite) TestEnhanceWithoutEnhancerFallsBack() {
	loop := s.newLoop(Config{})
	item := forge.NewGenerator(rand.New(rand.NewSource(2))).Generate()
	base := item

	note := loop.enhance(s.ctx, &item)
	s.Contains(note, "not configured")
	s.Equal(base, item)
}

func (s *LoopTestSuite) TestEnhanceFailureKeepsBaseFields() {
	enhancer := &fakeEnhancer{err: errors.New("boom")}
	loop := s.newLoop(Config{Enhancer: enhancer})

	item := forge.NewGenerator(rand.New(rand.NewSource(3))).Generate()
	base := item

	note := loop.enhance(s.ctx, &item)
	s.NotEmpty(note)
	s.Contains(note, "enhancement failed")
	s.Equal(base, item, "a failed call must leave the item intact")

	// The loop keeps going after a failure.
	s.Equal(StateIdle, loop.Step(s.ctx, ""))
	s.Equal(2, enhancer.calls)
}

func (s *LoopTestSuite) TestEnhanceMergesPartialResponseConservatively() {
	enhancer := &fakeEnhancer{enhancement: &forge.Enhancement{
		EnhancedLore: "New lore only.",
	}}
	loop := s.newLoop(Config{Enhancer: enhancer})

	item := forge.NewGenerator(rand.New(rand.NewSource(4))).Generate()
	baseName := item.Name

	note := loop.enhance(s.ctx, &item)
	s.Contains(note, "enhancement applied")
	s.Equal(baseName, item.Name, "empty enhanced name keeps the base name")
	s.Equal("New lore only.", item.EnhancedLore)
	s.Empty(item.EnhancedQuirk)
}

func (s *LoopTestSuite) TestGenerateArtSavesImage() {
	dir := s.T().TempDir()
	loop := s.newLoop(Config{
		Artist: &fakeArtist{data: []byte{1, 2, 3}},
		Store:  art.NewStore(dir),
	})

	item := forge.NewGenerator(rand.New(rand.NewSource(5))).Generate()
	path, note := loop.generateArt(s.ctx, item)
	s.NotEmpty(path)
	s.Contains(note, "Saved to")
	s.FileExists(path)
}

func (s *LoopTestSuite) TestGenerateArtFailureDegrades() {
	loop := s.newLoop(Config{
		Artist: &fakeArtist{err: errors.New("no pixels today")},
		Store:  art.NewStore(s.T().TempDir()),
	})

	item := forge.NewGenerator(rand.New(rand.NewSource(6))).Generate()
	path, note := loop.generateArt(s.ctx, item)
	s.Empty(path)
	s.Contains(note, "Image generation failed")

	// Card rendering still happens despite the failed image path.
	s.Equal(StateIdle, loop.Step(s.ctx, ""))
	s.Contains(s.out.String(), "Mechanic: ")
}

func (s *LoopTestSuite) TestRunQuitsOnQ() {
	loop := s.newLoop(Config{In: strings.NewReader("q\n")})
	s.NoError(loop.Run(s.ctx))
	s.Contains(s.out.String(), "Farewell")
}

func (s *LoopTestSuite) TestRunRendersThenQuits() {
	loop := s.newLoop(Config{In: strings.NewReader("\nQ\n")})
	s.NoError(loop.Run(s.ctx))

	out := s.out.String()
	s.Contains(out, "Rarity: ")
	s.Contains(out, "Farewell")
}

func (s *LoopTestSuite) TestRunTreatsEOFAsQuit() {
	loop := s.newLoop(Config{In: strings.NewReader("")})
	s.NoError(loop.Run(s.ctx))
	s.Contains(s.out.String(), "Farewell")
}

func (s *LoopTestSuite) TestRunCancellationPrintsInterruptFarewell() {
	in, _ := io.Pipe()
	defer in.Close()

	ctx, cancel := context.WithCancel(context.Background())
	loop := s.newLoop(Config{In: in})

	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		s.NoError(err)
	case <-time.After(2 * time.Second):
		s.Fail("loop did not stop on cancellation")
	}
	s.Contains(s.out.String(), "Interrupted by user")
}

func TestLoopTestSuite(t *testing.T) {
	suite.Run(t, new(LoopTestSuite))
}
