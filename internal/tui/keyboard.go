// internal/tui/keyboard.go
//
// Keyboard panel: the qwerty heat map. Each letter is colored from the
// snapshot's aggregated keyboard state, so the map only ever upgrades as the
// engine does.

package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/robalobadob/spotle/internal/game"
)

var keyboardRows = []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"}

type KeyboardPanel struct {
	view  *tview.TextView
	theme Theme
}

func NewKeyboardPanel(theme Theme) *KeyboardPanel {
	panel := &KeyboardPanel{theme: theme}
	panel.view = tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetTextAlign(tview.AlignCenter)
	panel.view.SetBorder(true).SetTitle("Available Letters")
	panel.view.SetBorderColor(tcell.GetColor(theme.Border))
	return panel
}

func (kp *KeyboardPanel) View() tview.Primitive { return kp.view }

func (kp *KeyboardPanel) Refresh(snap game.Snapshot) {
	var sb strings.Builder
	for i, rowLetters := range keyboardRows {
		if i > 0 {
			sb.WriteString("\n")
		}
		for j, letter := range rowLetters {
			if j > 0 {
				sb.WriteString(" ")
			}
			kp.writeLetter(&sb, letter, snap.Keyboard[letter])
		}
	}
	kp.view.SetText(sb.String())
}

func (kp *KeyboardPanel) writeLetter(sb *strings.Builder, letter rune, state game.CharacterState) {
	var color string
	flags := ""
	switch state {
	case game.Correct:
		color = kp.theme.KeyCorrect
	case game.WrongPlace:
		color = kp.theme.KeyWrongPlace
	case game.NotInWord:
		color = kp.theme.KeyNotInWord
		flags = "d"
	default:
		color = kp.theme.KeyUnknown
	}
	fmt.Fprintf(sb, "[%s::%s]%c[-:-:-]", color, flags, letter)
}
