package scoreboard

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestNewScorecard(t *testing.T) {
	card := NewScorecard(mixedGame(t))

	if len(card.Frames) != 10 {
		t.Fatalf("expected 10 frames, got %d", len(card.Frames))
	}
	if card.Total != 62 {
		t.Fatalf("expected total 62, got %d", card.Total)
	}

	first := card.Frames[0]
	if first.Number != 1 || first.Kind != "Spare" || first.Score != 14 || first.Cumulative != 14 {
		t.Fatalf("unexpected first frame: %+v", first)
	}
	last := card.Frames[9]
	if last.Number != 10 || last.Kind != "StrikeOpen" || last.Score != 17 {
		t.Fatalf("unexpected last frame: %+v", last)
	}
	if !slices.Equal(last.Rolls, []int{10, 5, 2}) {
		t.Fatalf("unexpected last rolls: %v", last.Rolls)
	}
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, perfectGame(), FormatYAML, Box); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "total: 300") {
		t.Fatalf("expected total in output:\n%s", out)
	}
	if !strings.Contains(out, "rolls: [10, 10, 10]") {
		t.Fatalf("expected flow rolls in output:\n%s", out)
	}

	var decoded Scorecard
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode scorecard: %v", err)
	}
	if decoded.Frames[4].Cumulative != 150 {
		t.Fatalf("expected frame 5 cumulative 150, got %d", decoded.Frames[4].Cumulative)
	}
}
