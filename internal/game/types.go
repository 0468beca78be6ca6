// internal/game/types.go
//
// Core type definitions for the Spotle game engine.
// Defines:
//   - CharacterState: per-cell evaluation result, including the Masked overlay.
//   - Status/Outcome: game outcome as a variant carrying the revealed answer.
//   - Row: one guess slot with its per-position states.
//   - Signal: abstract input events a driver feeds into the engine.
//   - Snapshot: the read-only view a renderer consumes after each signal.

package game

// CharacterState classifies one letter cell's feedback.
// Masked is set from the mask table, never from evaluation: a masked cell is
// a pre-filled hint slot and is excluded from scoring.
type CharacterState int

const (
	Unknown CharacterState = iota
	Correct
	WrongPlace
	NotInWord
	Masked
)

func (s CharacterState) String() string {
	switch s {
	case Correct:
		return "correct"
	case WrongPlace:
		return "wrong-place"
	case NotInWord:
		return "not-in-word"
	case Masked:
		return "masked"
	default:
		return "unknown"
	}
}

// Status is the coarse game state.
type Status int

const (
	InProgress Status = iota
	Won
	Lost
)

// Outcome pairs the status with its payload: Answer is the revealed secret,
// set only when Status is Lost. Keeping the two in one value makes "terminal"
// and "show the answer" inseparable.
type Outcome struct {
	Status Status
	Answer string
}

// Row is one guess slot at a fixed position in the attempt history.
// States is created with Masked/Unknown placeholders and written exactly once,
// at submission time, together with the guessed text.
type Row struct {
	Guess  string
	States []CharacterState
}

type signalKind int

const (
	sigChar signalKind = iota
	sigBackspace
	sigSubmit
	sigQuit
	sigCancel
)

// Signal is one abstract input event. Drivers build signals with
// CharacterInput or use the package-level values below; the engine decides
// what, if anything, each one does in the current state.
type Signal struct {
	kind signalKind
	char rune
}

// CharacterInput is a single typed character.
func CharacterInput(r rune) Signal { return Signal{kind: sigChar, char: r} }

var (
	// Backspace removes the last buffered character.
	Backspace = Signal{kind: sigBackspace}
	// Submit evaluates the buffer as a guess.
	Submit = Signal{kind: sigSubmit}
	// Quit exits, but only once the outcome is terminal.
	Quit = Signal{kind: sigQuit}
	// Cancel exits immediately from any state.
	Cancel = Signal{kind: sigCancel}
)

// Snapshot is everything a rendering layer needs, copied out of the engine.
// Attempts always has one Row per allowed attempt; rows past Current hold
// their placeholder states. Keyboard maps each letter 'a'..'z' to its
// aggregated state.
type Snapshot struct {
	Attempts []Row
	Current  int
	Buffer   string
	Keyboard map[rune]CharacterState
	Outcome  Outcome
}
