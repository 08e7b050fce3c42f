package render

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/bounded-life/model"
)

// ErrQuit is returned by WaitQuit when the user asks to exit
var ErrQuit = errors.New("quit requested")

var (
	aliveStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	deadStyle   = tcell.StyleDefault.Foreground(tcell.ColorDarkGray).Background(tcell.ColorBlack)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
)

const (
	runeAlive = '█'
	runeDead  = '·'
)

// Screen draws generations on a full-screen terminal, two columns per cell
type Screen struct {
	screen tcell.Screen
}

// NewScreen initializes the controlling terminal
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[NewScreen] creating screen")
	}
	if err = s.Init(); err != nil {
		return nil, errors.Wrap(err, "[NewScreen] initializing screen")
	}
	return NewScreenFrom(s), nil
}

// NewScreenFrom wraps an already initialized tcell screen
func NewScreenFrom(s tcell.Screen) *Screen {
	s.Clear()
	return &Screen{screen: s}
}

// Display draws the rows and the status line below them
func (r *Screen) Display(rows [][]model.Symbol, status string) error {
	r.screen.Clear()
	for y, row := range rows {
		for x, s := range row {
			ch, style := runeDead, deadStyle
			if s == model.Alive {
				ch, style = runeAlive, aliveStyle
			}
			r.screen.SetContent(x*2, y, ch, nil, style)
			r.screen.SetContent(x*2+1, y, ch, nil, style)
		}
	}

	col := 0
	for _, ch := range status {
		r.screen.SetContent(col, len(rows)+1, ch, nil, statusStyle)
		col++
	}
	r.screen.Show()
	return nil
}

// WaitQuit blocks until q, Esc or Ctrl-C is pressed or ctx is done. It
// returns ErrQuit for a key press and nil otherwise.
func (r *Screen) WaitQuit(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		_ = r.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()

	for {
		switch ev := r.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				return nil
			}
		case *tcell.EventResize:
			r.screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return ErrQuit
			}
		}
	}
}

// Close restores the terminal
func (r *Screen) Close() {
	r.screen.Fini()
}
