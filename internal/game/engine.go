// internal/game/engine.go
//
// Core game engine for a single Spotle session.
// Responsibilities:
//   - Construct games from configuration (answer, dimensions, mask table).
//   - Consume abstract input signals: characters, backspace, submit, quit, cancel.
//   - Score submitted guesses with the two-pass walk, skipping masked cells.
//   - Aggregate per-letter keyboard state monotonically across the game.
//   - Track state transitions: in progress → won/lost.
//
// Notes:
//   - Invalid input is rejected silently; nothing here returns an error.
//   - The engine is single-threaded by contract: one driver mutates it
//     between snapshot reads, so there is no locking.

package game

import (
	"strings"
	"unicode"

	"github.com/robalobadob/spotle/internal/mask"
)

const (
	defaultRows = 6
	defaultCols = 5
)

// Config carries construction parameters. Zero values fall back to a 6x5
// board with the default mask schedule.
type Config struct {
	Answer string     // the secret word; lowercased on construction
	Rows   int        // maximum attempts
	Cols   int        // word length
	Mask   *mask.Mask // pre-revealed cells; nil means mask.Default(Rows, Cols)
}

// Game holds the state of a single session: the secret, the attempt history,
// the free-text input buffer, the keyboard heat map, and the outcome.
type Game struct {
	answer   string
	rows     int
	cols     int
	mask     *mask.Mask
	attempts []Row
	current  int
	buffer   []rune
	keys     [26]CharacterState
	outcome  Outcome
}

// New constructs a game. Every attempt row starts as a placeholder whose
// cells are Masked where the mask marks them and Unknown everywhere else.
func New(cfg Config) *Game {
	rows := cfg.Rows
	if rows <= 0 {
		rows = defaultRows
	}
	cols := cfg.Cols
	if cols <= 0 {
		cols = defaultCols
	}
	m := cfg.Mask
	if m == nil {
		m = mask.Default(rows, cols)
	}
	g := &Game{
		answer:   strings.ToLower(cfg.Answer),
		rows:     rows,
		cols:     cols,
		mask:     m,
		attempts: make([]Row, rows),
		outcome:  Outcome{Status: InProgress},
	}
	for i := range g.attempts {
		g.attempts[i] = placeholderRow(m, i, cols)
	}
	return g
}

// placeholderRow builds the pre-submission state slice for one attempt row.
func placeholderRow(m *mask.Mask, row, cols int) Row {
	states := make([]CharacterState, cols)
	for col := range states {
		if m.Masked(row, col) {
			states[col] = Masked
		}
	}
	return Row{States: states}
}

// Rows reports the maximum number of attempts.
func (g *Game) Rows() int { return g.rows }

// Cols reports the word length.
func (g *Game) Cols() int { return g.cols }

// Apply feeds one input signal into the engine. The returned bool tells the
// driver to exit its loop; all other rejection is a silent no-op.
func (g *Game) Apply(sig Signal) (exit bool) {
	switch sig.kind {
	case sigCancel:
		return true
	case sigQuit:
		return g.outcome.Status != InProgress
	case sigChar:
		g.typeRune(sig.char)
	case sigBackspace:
		g.backspace()
	case sigSubmit:
		g.submit()
	}
	return false
}

// typeRune appends a lowercased character to the buffer. Spaces are rejected,
// as is anything once the buffer is full or the game is over.
func (g *Game) typeRune(r rune) {
	if g.outcome.Status != InProgress {
		return
	}
	if r == ' ' || len(g.buffer) >= g.cols {
		return
	}
	g.buffer = append(g.buffer, unicode.ToLower(r))
}

func (g *Game) backspace() {
	if g.outcome.Status != InProgress || len(g.buffer) == 0 {
		return
	}
	g.buffer = g.buffer[:len(g.buffer)-1]
}

// submit evaluates the buffer as a guess. A buffer that is not exactly
// word-length is ignored without any state change. On a valid submission the
// evaluated row replaces its placeholder, the keyboard is updated, the buffer
// is cleared, and the attempt counter advances by one.
func (g *Game) submit() {
	if g.outcome.Status != InProgress {
		return
	}
	if len(g.buffer) != g.cols {
		return
	}
	guess := string(g.buffer)

	states := g.evaluate(guess)
	g.updateKeyboard(guess)
	g.attempts[g.current] = Row{Guess: guess, States: states}
	g.buffer = g.buffer[:0]

	if guess == g.answer {
		g.outcome = Outcome{Status: Won}
	}
	g.current++
	if g.current == g.rows && g.outcome.Status != Won {
		g.outcome = Outcome{Status: Lost, Answer: g.answer}
	}
}

// evaluate scores guess against the answer in two passes over the unmasked
// positions. Pass one marks exact positional matches Correct. Pass two marks
// the rest WrongPlace when the answer contains the letter anywhere, NotInWord
// otherwise.
//
// The presence check is whole-word containment, not a remaining-count check:
// a letter duplicated in the guess can earn WrongPlace at every occurrence
// even when the answer holds it once. That is observable game behavior and
// the tests pin it.
func (g *Game) evaluate(guess string) []CharacterState {
	states := make([]CharacterState, g.cols)
	answerRunes := []rune(g.answer)
	guessRunes := []rune(guess)

	for i := 0; i < g.cols; i++ {
		if g.mask.Masked(g.current, i) {
			states[i] = Masked
			continue
		}
		if i < len(answerRunes) && guessRunes[i] == answerRunes[i] {
			states[i] = Correct
		}
	}
	for i := 0; i < g.cols; i++ {
		if states[i] != Unknown { // Correct or Masked, already decided
			continue
		}
		if strings.ContainsRune(g.answer, guessRunes[i]) {
			states[i] = WrongPlace
		} else {
			states[i] = NotInWord
		}
	}
	return states
}

// updateKeyboard applies the same two passes per distinct letter. Correct is
// written unconditionally and never downgraded afterwards; WrongPlace and
// NotInWord only upgrade a letter still Unknown. Masked positions never touch
// the keyboard, and non-alphabetic characters are no-ops.
func (g *Game) updateKeyboard(guess string) {
	answerRunes := []rune(g.answer)
	guessRunes := []rune(guess)

	for i, r := range guessRunes {
		if g.mask.Masked(g.current, i) {
			continue
		}
		if i < len(answerRunes) && r == answerRunes[i] {
			g.setLetter(r, Correct)
		}
	}
	for i, r := range guessRunes {
		if g.mask.Masked(g.current, i) {
			continue
		}
		if g.letter(r) != Unknown {
			continue
		}
		if strings.ContainsRune(g.answer, r) {
			g.setLetter(r, WrongPlace)
		} else {
			g.setLetter(r, NotInWord)
		}
	}
}

// letterIndex maps a lowercase ASCII letter rune to 0..25, or -1 for
// anything outside the alphabet.
func letterIndex(r rune) int {
	if r < 'a' || r > 'z' {
		return -1
	}
	return int(r - 'a')
}

// letter reads a keyboard entry; non-alphabetic runes read Unknown.
func (g *Game) letter(r rune) CharacterState {
	if i := letterIndex(r); i >= 0 {
		return g.keys[i]
	}
	return Unknown
}

// setLetter writes a keyboard entry; non-alphabetic runes are dropped.
func (g *Game) setLetter(r rune, s CharacterState) {
	if i := letterIndex(r); i >= 0 {
		g.keys[i] = s
	}
}

// Snapshot copies out everything a renderer needs. It has no side effects:
// querying it any number of times between signals yields equal values, so any
// rendering cadence produces identical output for identical state.
func (g *Game) Snapshot() Snapshot {
	attempts := make([]Row, len(g.attempts))
	for i, row := range g.attempts {
		states := make([]CharacterState, len(row.States))
		copy(states, row.States)
		attempts[i] = Row{Guess: row.Guess, States: states}
	}
	keyboard := make(map[rune]CharacterState, len(g.keys))
	for i, s := range g.keys {
		keyboard['a'+rune(i)] = s
	}
	return Snapshot{
		Attempts: attempts,
		Current:  g.current,
		Buffer:   string(g.buffer),
		Keyboard: keyboard,
		Outcome:  g.outcome,
	}
}
