// internal/tui/theme.go
//
// Color palettes for the terminal UI. Colors are tview tag names so panels
// can interpolate them straight into dynamic-color text.

package tui

// Theme names the colors used by the board, keyboard and header panels.
type Theme struct {
	Border      string
	ActiveInput string
	HeaderWin   string
	HeaderLoss  string
	EmptyCell   string

	Correct    string
	WrongPlace string
	NotInWord  string

	KeyUnknown    string
	KeyCorrect    string
	KeyWrongPlace string
	KeyNotInWord  string
}

func LightTheme() Theme {
	return Theme{
		Border:        "black",
		ActiveInput:   "black",
		HeaderWin:     "green",
		HeaderLoss:    "red",
		EmptyCell:     "gray",
		Correct:       "green",
		WrongPlace:    "yellow",
		NotInWord:     "darkgray",
		KeyUnknown:    "black",
		KeyCorrect:    "green",
		KeyWrongPlace: "yellow",
		KeyNotInWord:  "gray",
	}
}

func DarkTheme() Theme {
	t := LightTheme()
	t.Border = "white"
	t.ActiveInput = "white"
	t.KeyUnknown = "white"
	t.KeyNotInWord = "gray"
	return t
}

// ThemeByName resolves a configured theme name; anything unrecognized falls
// back to the dark palette.
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}
