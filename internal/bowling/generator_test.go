package bowling

import (
	"errors"
	"math/rand"
	"testing"
)

// scriptedGenerator returns queued frames in order.
type scriptedGenerator struct {
	frames []Frame
	calls  int
}

func (g *scriptedGenerator) GenerateFrame() Frame {
	f := g.frames[g.calls%len(g.frames)]
	g.calls++
	return f
}

// fixedSource returns queued Intn values in order and never shuffles.
type fixedSource struct {
	values []int
}

func (s *fixedSource) Intn(n int) int {
	v := s.values[0]
	s.values = s.values[1:]
	return v % n
}

func (s *fixedSource) Shuffle(int, func(i, j int)) {}

func TestComposeLastFrame(t *testing.T) {
	strike := Strike()
	tcs := []struct {
		name      string
		draws     []Frame
		want      LastFrame
		wantCalls int
	}{
		{
			name:      "open",
			draws:     []Frame{mustFrame(NewOpen(3, 4))},
			want:      mustLast(NewLastOpen(3, 4)),
			wantCalls: 1,
		},
		{
			name:      "spare then open",
			draws:     []Frame{mustFrame(NewSpare(6)), mustFrame(NewOpen(2, 5))},
			want:      mustLast(NewSpareOpen(6, 2)),
			wantCalls: 2,
		},
		{
			name:      "spare then spare",
			draws:     []Frame{mustFrame(NewSpare(6)), mustFrame(NewSpare(8))},
			want:      mustLast(NewSpareOpen(6, 8)),
			wantCalls: 2,
		},
		{
			name:      "spare then strike",
			draws:     []Frame{mustFrame(NewSpare(1)), strike},
			want:      mustLast(NewSpareStrike(1)),
			wantCalls: 2,
		},
		{
			name:      "strike then open",
			draws:     []Frame{strike, mustFrame(NewOpen(5, 2))},
			want:      mustLast(NewStrikeOpen(5, 2)),
			wantCalls: 2,
		},
		{
			name:      "strike then spare",
			draws:     []Frame{strike, mustFrame(NewSpare(9))},
			want:      mustLast(NewStrikeSpare(9)),
			wantCalls: 2,
		},
		{
			name:      "two strikes then open",
			draws:     []Frame{strike, strike, mustFrame(NewOpen(4, 1))},
			want:      mustLast(NewDoubleStrikeOpen(4)),
			wantCalls: 3,
		},
		{
			name:      "two strikes then spare",
			draws:     []Frame{strike, strike, mustFrame(NewSpare(0))},
			want:      mustLast(NewDoubleStrikeOpen(0)),
			wantCalls: 3,
		},
		{
			name:      "three strikes",
			draws:     []Frame{strike},
			want:      TripleStrike(),
			wantCalls: 3,
		},
	}

	for _, tc := range tcs {
		g := &scriptedGenerator{frames: tc.draws}
		got := ComposeLastFrame(g)
		if got != tc.want {
			t.Fatalf("%s: ComposeLastFrame = %v, want %v", tc.name, got, tc.want)
		}
		if g.calls != tc.wantCalls {
			t.Fatalf("%s: GenerateFrame called %d times, want %d", tc.name, g.calls, tc.wantCalls)
		}
	}
}

func TestComposedUsesDefaultLastFrame(t *testing.T) {
	g := Composed(&scriptedGenerator{frames: []Frame{Strike()}})
	if got := g.GenerateLastFrame(); got != TripleStrike() {
		t.Fatalf("GenerateLastFrame = %v, want TripleStrike", got)
	}
	if got := g.GenerateFrame(); got != Strike() {
		t.Fatalf("GenerateFrame = %v, want Strike", got)
	}
}

func TestParseStrategy(t *testing.T) {
	tcs := map[string]Strategy{
		"dice":       StrategyDice,
		" Uniform  ": StrategyUniform,
		"DICE":       StrategyDice,
	}
	for name, want := range tcs {
		got, err := ParseStrategy(name)
		if err != nil {
			t.Fatalf("ParseStrategy(%q) returned error: %v", name, err)
		}
		if got != want {
			t.Fatalf("ParseStrategy(%q) = %q, want %q", name, got, want)
		}
	}

	if _, err := ParseStrategy("loaded"); !errors.Is(err, ErrUnknownStrategy) {
		t.Fatalf("ParseStrategy(loaded) error = %v, want %v", err, ErrUnknownStrategy)
	}
}

func TestNewGenerator(t *testing.T) {
	src := rand.New(rand.NewSource(1))

	g, err := NewGenerator(StrategyDice, src)
	if err != nil {
		t.Fatalf("NewGenerator(dice) returned error: %v", err)
	}
	if _, ok := g.(*DiceGenerator); !ok {
		t.Fatalf("NewGenerator(dice) = %T", g)
	}

	g, err = NewGenerator(StrategyUniform, src)
	if err != nil {
		t.Fatalf("NewGenerator(uniform) returned error: %v", err)
	}
	if _, ok := g.(*UniformGenerator); !ok {
		t.Fatalf("NewGenerator(uniform) = %T", g)
	}

	if _, err := NewGenerator(Strategy("loaded"), src); !errors.Is(err, ErrUnknownStrategy) {
		t.Fatalf("NewGenerator(loaded) error = %v, want %v", err, ErrUnknownStrategy)
	}
}

// checkFrame fails the test when a generated frame breaks the pin constraints.
func checkFrame(t *testing.T, f Frame) {
	t.Helper()
	rolls := f.SubScores()
	for _, pins := range rolls {
		if pins < 0 || pins > Pins {
			t.Fatalf("%v has out of range roll %d", f, pins)
		}
	}
	switch f.Kind() {
	case KindStrike:
		if len(rolls) != 1 || rolls[0] != Pins {
			t.Fatalf("strike rolls = %v", rolls)
		}
	case KindSpare:
		if rolls[0] >= Pins || rolls[0]+rolls[1] != Pins {
			t.Fatalf("spare rolls = %v", rolls)
		}
	case KindOpen:
		if rolls[0]+rolls[1] >= Pins {
			t.Fatalf("open rolls = %v", rolls)
		}
	default:
		t.Fatalf("unexpected kind %v", f.Kind())
	}
}

func checkLastFrame(t *testing.T, f LastFrame) {
	t.Helper()
	rolls := f.SubScores()
	if len(rolls) < 2 || len(rolls) > 3 {
		t.Fatalf("%v has %d rolls", f, len(rolls))
	}
	for _, pins := range rolls {
		if pins < 0 || pins > Pins {
			t.Fatalf("%v has out of range roll %d", f, pins)
		}
	}
	if f.Score() > 3*Pins {
		t.Fatalf("%v scores %d", f, f.Score())
	}
}
