package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sheikhrachel/bounded-life/model"
)

func TestFormat(t *testing.T) {
	rows := [][]model.Symbol{
		{model.Dead, model.Alive},
		{model.Alive, model.Dead},
	}
	want := "\n ▩  ◈ \n ◈  ▩ \n"
	if got := Format(rows); got != want {
		t.Fatalf("Format = %q, expected %q", got, want)
	}
}

func TestTextDisplay(t *testing.T) {
	var buf bytes.Buffer
	r := NewText(&buf, true)

	rows := [][]model.Symbol{{model.Alive}}
	if err := r.Display(rows, "Gen: 0"); err != nil {
		t.Fatalf("Display: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, clearScreen) {
		t.Fatalf("frame does not start with the clear sequence: %q", out)
	}
	if !strings.HasSuffix(out, " ◈ \nGen: 0\n") {
		t.Fatalf("unexpected frame %q", out)
	}
}

func TestTextDisplayWithoutClear(t *testing.T) {
	var buf bytes.Buffer
	r := NewText(&buf, false)
	if err := r.Display([][]model.Symbol{{model.Dead}}, ""); err != nil {
		t.Fatalf("Display: %v", err)
	}
	if got := buf.String(); got != "\n ▩ \n" {
		t.Fatalf("frame = %q", got)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, bytes.ErrTooLarge }

func TestTextDisplayWriteError(t *testing.T) {
	r := NewText(failingWriter{}, false)
	if err := r.Display([][]model.Symbol{{model.Dead}}, ""); err == nil {
		t.Fatalf("write error not reported")
	}
}
