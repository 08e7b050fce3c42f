package render

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/sheikhrachel/bounded-life/model"
)

func TestFillSymbolsRGBA(t *testing.T) {
	rows := [][]model.Symbol{{model.Alive, model.Dead}}
	buf := make([]byte, 8)
	fillSymbolsRGBA(buf, rows, color.White, color.Black)

	want := []byte{255, 255, 255, 255, 0, 0, 0, 255}
	if !bytes.Equal(buf, want) {
		t.Fatalf("pixels = %v, expected %v", buf, want)
	}
}
