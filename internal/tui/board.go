// internal/tui/board.go
//
// Board panel: the rows × cols letter grid. Past rows are drawn from their
// evaluated states, the active row echoes the input buffer, and future rows
// are blank placeholders. Masked cells render reversed so the pre-revealed
// hint slot stands out in every row state.

package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/robalobadob/spotle/internal/game"
)

type BoardPanel struct {
	view  *tview.TextView
	theme Theme
}

func NewBoardPanel(theme Theme) *BoardPanel {
	panel := &BoardPanel{theme: theme}
	panel.view = tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetTextAlign(tview.AlignCenter)
	panel.view.SetBorder(true)
	panel.view.SetBorderColor(tcell.GetColor(theme.Border))
	return panel
}

func (bp *BoardPanel) View() tview.Primitive { return bp.view }

func (bp *BoardPanel) Refresh(snap game.Snapshot) {
	bp.view.SetText(bp.render(snap))
}

func (bp *BoardPanel) render(snap game.Snapshot) string {
	var sb strings.Builder
	sb.WriteString("\n")
	for rowIdx, row := range snap.Attempts {
		switch {
		case rowIdx < snap.Current:
			bp.renderGuessedRow(&sb, row)
		case rowIdx == snap.Current && snap.Outcome.Status == game.InProgress:
			bp.renderActiveRow(&sb, row, snap.Buffer)
		default:
			bp.renderEmptyRow(&sb, row)
		}
		sb.WriteString("\n\n")
	}
	return sb.String()
}

func (bp *BoardPanel) renderGuessedRow(sb *strings.Builder, row game.Row) {
	letters := []rune(row.Guess)
	for i, state := range row.States {
		ch := ' '
		if i < len(letters) {
			ch = letters[i]
		}
		var color string
		flags := "b"
		switch state {
		case game.Correct:
			color = bp.theme.Correct
		case game.WrongPlace:
			color = bp.theme.WrongPlace
			flags = "bd"
		case game.NotInWord:
			color = bp.theme.NotInWord
		case game.Masked:
			color = bp.theme.ActiveInput
			flags = "br"
		default:
			color = bp.theme.KeyUnknown
		}
		writeCell(sb, ch, color, flags)
	}
}

func (bp *BoardPanel) renderActiveRow(sb *strings.Builder, row game.Row, buffer string) {
	letters := []rune(buffer)
	for i, state := range row.States {
		ch := ' '
		if i < len(letters) {
			ch = letters[i]
		}
		flags := "b"
		if state == game.Masked {
			flags = "br"
		}
		writeCell(sb, ch, bp.theme.ActiveInput, flags)
	}
}

func (bp *BoardPanel) renderEmptyRow(sb *strings.Builder, row game.Row) {
	for _, state := range row.States {
		flags := "b"
		if state == game.Masked {
			flags = "br"
		}
		writeCell(sb, '·', bp.theme.EmptyCell, flags)
	}
}

// writeCell emits one fixed-width cell with tview color tags and resets the
// style afterwards so cells never bleed into each other.
func writeCell(sb *strings.Builder, ch rune, color, flags string) {
	fmt.Fprintf(sb, "[%s::%s][ %c ][-:-:-] ", color, flags, ch)
}
