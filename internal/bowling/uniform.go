package bowling

import "github.com/louisbranch/bowling/internal/dice"

// UniformGenerator draws each roll uniformly from the pins left standing.
type UniformGenerator struct {
	src dice.Source
}

// NewUniformGenerator creates a uniform generator drawing from src.
func NewUniformGenerator(src dice.Source) *UniformGenerator {
	return &UniformGenerator{src: src}
}

// GenerateFrame draws the first roll from [0, 10] and the second from the
// pins that remain.
func (g *UniformGenerator) GenerateFrame() Frame {
	first := g.src.Intn(Pins + 1)
	if first == Pins {
		return Strike()
	}

	second := g.src.Intn(Pins - first + 1)
	if first+second == Pins {
		return mustFrame(NewSpare(first))
	}
	return mustFrame(NewOpen(first, second))
}

// GenerateLastFrame composes the tenth frame from regular frame draws.
func (g *UniformGenerator) GenerateLastFrame() LastFrame {
	return ComposeLastFrame(g)
}
