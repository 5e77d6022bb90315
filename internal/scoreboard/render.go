// Package scoreboard renders a bowling game as a text scoreboard or a YAML
// scorecard.
package scoreboard

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/louisbranch/bowling/internal/bowling"
)

// Charset selects the characters used to draw the scoreboard grid.
type Charset int

const (
	Box Charset = iota
	ASCII
)

// grid holds the fixed rows of a scoreboard for one charset.
type grid struct {
	top       string
	middle    string
	bottom    string
	separator string
}

var grids = map[Charset]grid{
	Box: {
		top:       "┌" + strings.Repeat("─┬─┬", bowling.Frames-1) + "─┬─┬─┐",
		middle:    "│" + strings.Repeat(" └─┤", bowling.Frames-1) + " └─┴─┤",
		bottom:    "└" + strings.Repeat("───┴", bowling.Frames-1) + "─────┘",
		separator: "│",
	},
	ASCII: {
		top:       "_" + strings.Repeat("____", bowling.Frames-1) + "______",
		middle:    "|" + strings.Repeat(" '-|", bowling.Frames-1) + " '---|",
		bottom:    "|" + strings.Repeat("___|", bowling.Frames-1) + "_____|",
		separator: "|",
	},
}

// Render draws the marks and running totals of a game.
func Render(game bowling.Game, charset Charset) string {
	g, ok := grids[charset]
	if !ok {
		g = grids[Box]
		charset = Box
	}

	var marks strings.Builder
	marks.WriteString(g.separator)
	for _, f := range game.Frames() {
		marks.WriteString(frameString(f, charset))
	}
	marks.WriteString(lastFrameString(game.Last(), charset))

	var totals strings.Builder
	totals.WriteString(g.separator)
	for i, score := range game.CumulativeScores() {
		width := 3
		if i == bowling.Frames-1 {
			width = 5
		}
		fmt.Fprintf(&totals, "%*d%s", width, score, g.separator)
	}

	return strings.Join([]string{g.top, marks.String(), g.middle, totals.String(), g.bottom}, "\n")
}

func frameString(f bowling.Frame, charset Charset) string {
	if charset == ASCII {
		return f.ASCIIString()
	}
	return f.ANSIString()
}

func lastFrameString(f bowling.LastFrame, charset Charset) string {
	if charset == ASCII {
		return f.ASCIIString()
	}
	return f.ANSIString()
}

// Format selects the output encoding of a game.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat indicates an output format that has no encoder.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat resolves an output format name, ignoring case and surrounding space.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatText, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%q: %w", name, ErrUnknownFormat)
	}
}

// Write encodes a game to w in the requested format.
func Write(w io.Writer, game bowling.Game, format Format, charset Charset) error {
	switch format {
	case FormatText:
		if _, err := io.WriteString(w, Render(game, charset)+"\n"); err != nil {
			return fmt.Errorf("write scoreboard: %w", err)
		}
		return nil
	case FormatYAML:
		return EncodeYAML(w, game)
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}
