// internal/tui/header.go
//
// Header panel: blank while the game runs, win/loss banner once it ends.
// The loss banner reads the revealed answer straight out of the outcome.

package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/robalobadob/spotle/internal/game"
)

type HeaderPanel struct {
	view  *tview.TextView
	theme Theme
}

func NewHeaderPanel(theme Theme) *HeaderPanel {
	panel := &HeaderPanel{theme: theme}
	panel.view = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)
	panel.view.SetBorder(true).SetTitle("Spotle Tui")
	panel.view.SetBorderColor(tcell.GetColor(theme.Border))
	return panel
}

func (hp *HeaderPanel) View() tview.Primitive { return hp.view }

func (hp *HeaderPanel) Refresh(snap game.Snapshot) {
	switch snap.Outcome.Status {
	case game.Won:
		hp.view.SetText(fmt.Sprintf("[%s]Game is over! You win! Press q or esc to exit.[-]",
			hp.theme.HeaderWin))
	case game.Lost:
		hp.view.SetText(fmt.Sprintf("[%s]Game over! The answer was '%s'. Press q or esc to exit.[-]",
			hp.theme.HeaderLoss, snap.Outcome.Answer))
	default:
		hp.view.SetText("")
	}
}
