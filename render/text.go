package render

import (
	"bufio"
	"io"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/bounded-life/model"
)

const (
	GlyphAlive = "◈"
	GlyphDead  = "▩"

	// clearScreen resets the terminal (ESC c)
	clearScreen = "\033c"
)

// Text writes each generation as lines of glyphs
type Text struct {
	w     io.Writer
	clear bool
}

// NewText returns a Text renderer writing to w. When clear is set the
// terminal is reset before every frame.
func NewText(w io.Writer, clear bool) *Text {
	return &Text{w: w, clear: clear}
}

// Display writes the rows followed by the status line
func (r *Text) Display(rows [][]model.Symbol, status string) error {
	bw := bufio.NewWriter(r.w)
	if r.clear {
		bw.WriteString(clearScreen)
	}
	bw.WriteString(Format(rows))
	if status != "" {
		bw.WriteString(status)
		bw.WriteByte('\n')
	}
	return errors.Wrap(bw.Flush(), "[Text.Display] failed to write frame")
}

// Format returns the rows as text, one line per row, each glyph padded by a
// space on both sides and the frame preceded by a blank line.
func Format(rows [][]model.Symbol) string {
	var b []byte
	b = append(b, '\n')
	for _, row := range rows {
		for _, s := range row {
			b = append(b, ' ')
			b = append(b, glyph(s)...)
			b = append(b, ' ')
		}
		b = append(b, '\n')
	}
	return string(b)
}

func glyph(s model.Symbol) string {
	if s == model.Alive {
		return GlyphAlive
	}
	return GlyphDead
}
