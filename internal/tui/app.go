// internal/tui/app.go
//
// Terminal front end for one game. Maps tcell key events to engine signals,
// applies them, and redraws every panel from a fresh snapshot after each
// event. The engine is the single source of truth; this layer never keeps
// game state of its own.

package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/spotle/internal/game"
)

type App struct {
	app      *tview.Application
	game     *game.Game
	theme    Theme
	header   *HeaderPanel
	board    *BoardPanel
	keyboard *KeyboardPanel
	layout   *tview.Flex
}

func NewApp(g *game.Game, theme Theme) *App {
	a := &App{
		app:   tview.NewApplication(),
		game:  g,
		theme: theme,
	}
	a.header = NewHeaderPanel(theme)
	a.board = NewBoardPanel(theme)
	a.keyboard = NewKeyboardPanel(theme)

	a.setupLayout()
	a.setupKeyBindings()
	a.refresh()
	return a
}

func (a *App) setupLayout() {
	a.layout = tview.NewFlex().SetDirection(tview.FlexRow)
	a.layout.AddItem(a.header.View(), 3, 0, false)
	a.layout.AddItem(a.board.View(), 0, 1, true)
	a.layout.AddItem(a.keyboard.View(), 5, 0, false)
}

func (a *App) setupKeyBindings() {
	a.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		sig, ok := a.signalFor(event)
		if !ok {
			return event
		}
		if a.game.Apply(sig) {
			a.app.Stop()
			return nil
		}
		a.refresh()
		return nil
	})
}

// signalFor translates one key event into an engine signal. The q rune only
// becomes Quit once the outcome is terminal; mid-game it is an ordinary
// letter.
func (a *App) signalFor(event *tcell.EventKey) (game.Signal, bool) {
	switch event.Key() {
	case tcell.KeyEscape:
		return game.Cancel, true
	case tcell.KeyEnter:
		return game.Submit, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return game.Backspace, true
	case tcell.KeyRune:
		r := event.Rune()
		if (r == 'q' || r == 'Q') && a.game.Snapshot().Outcome.Status != game.InProgress {
			return game.Quit, true
		}
		return game.CharacterInput(r), true
	}
	return game.Signal{}, false
}

func (a *App) refresh() {
	snap := a.game.Snapshot()
	log.Debug().
		Int("attempt", snap.Current).
		Str("buffer", snap.Buffer).
		Msg("redraw")
	a.header.Refresh(snap)
	a.board.Refresh(snap)
	a.keyboard.Refresh(snap)
}

// Run takes over the terminal until the player quits or cancels.
func (a *App) Run() error {
	return a.app.SetRoot(a.layout, true).Run()
}
