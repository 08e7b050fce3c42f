package render

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/bounded-life/model"
)

func newSimulationScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	s.SetSize(20, 10)
	t.Cleanup(s.Fini)
	return s
}

func TestScreenDisplay(t *testing.T) {
	sim := newSimulationScreen(t)
	r := NewScreenFrom(sim)

	rows := [][]model.Symbol{
		{model.Alive, model.Dead},
		{model.Dead, model.Alive},
	}
	if err := r.Display(rows, "ok"); err != nil {
		t.Fatalf("Display: %v", err)
	}

	tests := []struct {
		x, y int
		want rune
	}{
		{0, 0, runeAlive},
		{1, 0, runeAlive},
		{2, 0, runeDead},
		{3, 0, runeDead},
		{0, 1, runeDead},
		{2, 1, runeAlive},
		{3, 1, runeAlive},
		{0, 3, 'o'},
		{1, 3, 'k'},
	}
	for _, tt := range tests {
		got, _, _, _ := sim.GetContent(tt.x, tt.y)
		if got != tt.want {
			t.Fatalf("content at (%d,%d) = %q, expected %q", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestScreenWaitQuitOnKey(t *testing.T) {
	sim := newSimulationScreen(t)
	r := NewScreenFrom(sim)

	done := make(chan error, 1)
	go func() { done <- r.WaitQuit(context.Background()) }()
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		if !errors.Is(err, ErrQuit) {
			t.Fatalf("WaitQuit = %v, expected ErrQuit", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("WaitQuit did not return after q")
	}
}

func TestScreenWaitQuitOnCancel(t *testing.T) {
	sim := newSimulationScreen(t)
	r := NewScreenFrom(sim)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.WaitQuit(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("WaitQuit = %v, expected nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("WaitQuit did not return after cancel")
	}
}
