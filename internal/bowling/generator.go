package bowling

import (
	"errors"
	"fmt"
	"strings"

	"github.com/louisbranch/bowling/internal/dice"
)

// FrameGenerator produces regular frames.
type FrameGenerator interface {
	GenerateFrame() Frame
}

// Generator produces the frames of a game: GenerateFrame for frames one
// through nine and GenerateLastFrame for the tenth.
type Generator interface {
	FrameGenerator
	GenerateLastFrame() LastFrame
}

// ComposeLastFrame builds a tenth frame from up to three regular frame
// draws, reading each draw as the next physical roll on the lane.
//
// An open or spare draw that follows a cleared rack contributes only its
// first roll.
func ComposeLastFrame(g FrameGenerator) LastFrame {
	first := g.GenerateFrame()
	switch first.Kind() {
	case KindOpen:
		return mustLast(NewLastOpen(first.First(), first.Second()))
	case KindSpare:
		fill := g.GenerateFrame()
		if fill.Kind() == KindStrike {
			return mustLast(NewSpareStrike(first.First()))
		}
		return mustLast(NewSpareOpen(first.First(), fill.First()))
	}

	second := g.GenerateFrame()
	switch second.Kind() {
	case KindOpen:
		return mustLast(NewStrikeOpen(second.First(), second.Second()))
	case KindSpare:
		return mustLast(NewStrikeSpare(second.First()))
	}

	third := g.GenerateFrame()
	if third.Kind() == KindStrike {
		return TripleStrike()
	}
	return mustLast(NewDoubleStrikeOpen(third.First()))
}

// Composed gives a frame-only strategy the default tenth frame composition.
func Composed(g FrameGenerator) Generator {
	return composed{FrameGenerator: g}
}

type composed struct {
	FrameGenerator
}

func (c composed) GenerateLastFrame() LastFrame {
	return ComposeLastFrame(c.FrameGenerator)
}

// Strategy names a random frame generation strategy.
type Strategy string

const (
	StrategyDice    Strategy = "dice"
	StrategyUniform Strategy = "uniform"
)

// Strategies lists the supported strategies in display order.
var Strategies = []Strategy{StrategyDice, StrategyUniform}

// ErrUnknownStrategy indicates a strategy name that has no generator.
var ErrUnknownStrategy = errors.New("unknown generator strategy")

// ParseStrategy resolves a strategy name, ignoring case and surrounding space.
func ParseStrategy(name string) (Strategy, error) {
	s := Strategy(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Strategies {
		if s == known {
			return s, nil
		}
	}
	return "", fmt.Errorf("%q: %w", name, ErrUnknownStrategy)
}

// NewGenerator creates the generator for a strategy drawing from src.
func NewGenerator(strategy Strategy, src dice.Source) (Generator, error) {
	switch strategy {
	case StrategyDice:
		return NewDiceGenerator(src), nil
	case StrategyUniform:
		return NewUniformGenerator(src), nil
	default:
		return nil, fmt.Errorf("%q: %w", strategy, ErrUnknownStrategy)
	}
}

// mustFrame unwraps a frame built by a generator. Generators only request
// valid pin counts, so an error here is a programming error.
func mustFrame(f Frame, err error) Frame {
	if err != nil {
		panic(err)
	}
	return f
}

func mustLast(f LastFrame, err error) LastFrame {
	if err != nil {
		panic(err)
	}
	return f
}
