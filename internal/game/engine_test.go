package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/spotle/internal/mask"
)

func newOpenGame(answer string) *Game {
	return New(Config{Answer: answer, Mask: mask.None(defaultRows, defaultCols)})
}

func play(g *Game, word string) {
	for _, r := range word {
		g.Apply(CharacterInput(r))
	}
	g.Apply(Submit)
}

func TestDefaults(t *testing.T) {
	g := New(Config{Answer: "world"})
	require.Equal(t, 6, g.Rows())
	require.Equal(t, 5, g.Cols())

	snap := g.Snapshot()
	require.Len(t, snap.Attempts, 6)
	assert.Equal(t, 0, snap.Current)
	assert.Equal(t, "", snap.Buffer)
	assert.Equal(t, InProgress, snap.Outcome.Status)
	// default mask schedule shows through the placeholder rows
	assert.Equal(t, Masked, snap.Attempts[0].States[2])
	assert.Equal(t, Masked, snap.Attempts[1].States[1])
	assert.Equal(t, Unknown, snap.Attempts[5].States[2])
	for r := 'a'; r <= 'z'; r++ {
		assert.Equal(t, Unknown, snap.Keyboard[r])
	}
}

func TestWinningGuessAllCorrect(t *testing.T) {
	g := newOpenGame("world")
	play(g, "world")

	snap := g.Snapshot()
	require.Equal(t, Won, snap.Outcome.Status)
	assert.Equal(t, "world", snap.Attempts[0].Guess)
	assert.Equal(t,
		[]CharacterState{Correct, Correct, Correct, Correct, Correct},
		snap.Attempts[0].States)
	assert.Equal(t, 1, snap.Current)
}

func TestShiftedLettersScoreWrongPlace(t *testing.T) {
	g := newOpenGame("world")
	play(g, "wordl")

	snap := g.Snapshot()
	assert.Equal(t,
		[]CharacterState{Correct, Correct, Correct, WrongPlace, WrongPlace},
		snap.Attempts[0].States)
	assert.Equal(t, InProgress, snap.Outcome.Status)
	assert.Equal(t, 1, snap.Current)
	assert.Equal(t, "", snap.Buffer)
}

func TestDuplicateLettersEachRegisterWrongPlace(t *testing.T) {
	// The presence pass is containment-based, so both l's in "llama" score
	// WrongPlace even though "world" has a single l.
	g := newOpenGame("world")
	play(g, "llama")

	snap := g.Snapshot()
	assert.Equal(t,
		[]CharacterState{WrongPlace, WrongPlace, NotInWord, NotInWord, NotInWord},
		snap.Attempts[0].States)
}

func TestMaskedCellNeverScored(t *testing.T) {
	g := New(Config{Answer: "world"}) // default mask: row 0 reveals position 2
	play(g, "aazaa")

	snap := g.Snapshot()
	assert.Equal(t, Masked, snap.Attempts[0].States[2])
	assert.Equal(t, Unknown, snap.Keyboard['z'], "masked position must not feed the keyboard")
	assert.Equal(t, NotInWord, snap.Attempts[0].States[0])
	assert.Equal(t, NotInWord, snap.Keyboard['a'])
}

func TestWinStillRequiresFullWordUnderMask(t *testing.T) {
	g := New(Config{Answer: "world"})

	// Wrong letter in the masked slot: the cell shows Masked but the guess
	// does not equal the answer, so no win.
	play(g, "woxld")
	snap := g.Snapshot()
	assert.Equal(t, Masked, snap.Attempts[0].States[2])
	assert.Equal(t, InProgress, snap.Outcome.Status)

	// The exact word wins regardless of which cells are masked.
	play(g, "world")
	assert.Equal(t, Won, g.Snapshot().Outcome.Status)
}

func TestShortSubmissionIgnored(t *testing.T) {
	g := newOpenGame("world")
	for _, r := range "wor" {
		g.Apply(CharacterInput(r))
	}
	g.Apply(Submit)

	snap := g.Snapshot()
	assert.Equal(t, 0, snap.Current)
	assert.Equal(t, "wor", snap.Buffer, "an ignored submission must not clear the buffer")
	for r := 'a'; r <= 'z'; r++ {
		assert.Equal(t, Unknown, snap.Keyboard[r])
	}
}

func TestLossAfterMaxAttempts(t *testing.T) {
	g := newOpenGame("world")
	for i := 0; i < 6; i++ {
		play(g, "crate")
	}

	snap := g.Snapshot()
	require.Equal(t, Lost, snap.Outcome.Status)
	assert.Equal(t, "world", snap.Outcome.Answer)
	assert.Equal(t, 6, snap.Current)

	// Once lost, only quit and cancel do anything.
	g.Apply(CharacterInput('a'))
	g.Apply(Backspace)
	g.Apply(Submit)
	after := g.Snapshot()
	assert.Equal(t, snap, after)
	assert.True(t, g.Apply(Quit))
	assert.True(t, g.Apply(Cancel))
}

func TestWinOnFinalAttempt(t *testing.T) {
	g := newOpenGame("world")
	for i := 0; i < 5; i++ {
		play(g, "crate")
	}
	play(g, "world")

	snap := g.Snapshot()
	assert.Equal(t, Won, snap.Outcome.Status)
	assert.Equal(t, "", snap.Outcome.Answer)
}

func TestKeyboardIsMonotonic(t *testing.T) {
	g := newOpenGame("world")

	play(g, "wxxqx")
	assert.Equal(t, Correct, g.Snapshot().Keyboard['w'])
	assert.Equal(t, NotInWord, g.Snapshot().Keyboard['x'])

	// w out of place later on: stays Correct.
	play(g, "xwxqx")
	assert.Equal(t, Correct, g.Snapshot().Keyboard['w'])

	// o misplaced first, then placed: upgrades to Correct.
	play(g, "oxxqx")
	assert.Equal(t, WrongPlace, g.Snapshot().Keyboard['o'])
	play(g, "xoxqx")
	assert.Equal(t, Correct, g.Snapshot().Keyboard['o'])
}

func TestBufferEditing(t *testing.T) {
	g := newOpenGame("world")

	g.Apply(CharacterInput('A'))
	g.Apply(CharacterInput('b'))
	assert.Equal(t, "ab", g.Snapshot().Buffer, "input is lowercased")

	g.Apply(Backspace)
	assert.Equal(t, "a", g.Snapshot().Buffer)
	g.Apply(Backspace)
	g.Apply(Backspace) // no-op on empty
	assert.Equal(t, "", g.Snapshot().Buffer)

	g.Apply(CharacterInput(' '))
	assert.Equal(t, "", g.Snapshot().Buffer, "space is rejected")

	for _, r := range "abcdef" {
		g.Apply(CharacterInput(r))
	}
	assert.Equal(t, "abcde", g.Snapshot().Buffer, "input past word length is dropped")
}

func TestQuitOnlyWhenTerminal(t *testing.T) {
	g := newOpenGame("world")
	assert.False(t, g.Apply(Quit))
	assert.True(t, g.Apply(Cancel))

	play(g, "world")
	assert.True(t, g.Apply(Quit))
}

func TestSnapshotIsIsolated(t *testing.T) {
	g := newOpenGame("world")
	play(g, "crate")

	snap := g.Snapshot()
	snap.Attempts[0].States[0] = Correct
	snap.Attempts[1].Guess = "bogus"
	snap.Keyboard['z'] = Correct

	fresh := g.Snapshot()
	assert.Equal(t, NotInWord, fresh.Attempts[0].States[0])
	assert.Equal(t, "", fresh.Attempts[1].Guess)
	assert.Equal(t, Unknown, fresh.Keyboard['z'])
}

func TestNonAlphabeticInputNeverTouchesKeyboard(t *testing.T) {
	g := newOpenGame("world")
	play(g, "w-rl!")

	snap := g.Snapshot()
	assert.Equal(t, Correct, snap.Attempts[0].States[0])
	assert.Equal(t, NotInWord, snap.Attempts[0].States[1])
	for r := 'a'; r <= 'z'; r++ {
		if r == 'w' || r == 'r' || r == 'l' {
			continue
		}
		assert.Equal(t, Unknown, snap.Keyboard[r])
	}
}
