package tui

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// Smallest terminal the playfield is drawn on.
const (
	MinCols = 40
	MinRows = 12
)

// footerHeight is the number of rows under the playfield used by the help line.
const footerHeight = 1

// DisplayInitError reports that the terminal cannot host the game.
type DisplayInitError struct {
	Err error
}

func (e *DisplayInitError) Error() string {
	return fmt.Sprintf("display: cannot initialize terminal: %v", e.Err)
}

func (e *DisplayInitError) Unwrap() error {
	return e.Err
}

// OpenDisplay checks that f is a terminal large enough for the game and
// returns the cell grid left for the playfield.
func OpenDisplay(f *os.File) (cols, rows int, err error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, &DisplayInitError{Err: errors.New("output is not a terminal")}
	}

	w, h, err := term.GetSize(fd)
	if err != nil {
		return 0, 0, &DisplayInitError{Err: err}
	}
	return PlayfieldSize(w, h)
}

// PlayfieldSize returns the cells available to the playfield in a w×h terminal.
func PlayfieldSize(w, h int) (cols, rows int, err error) {
	if w < MinCols || h-footerHeight < MinRows {
		return 0, 0, &DisplayInitError{
			Err: fmt.Errorf("terminal is %dx%d, need at least %dx%d", w, h, MinCols, MinRows+footerHeight),
		}
	}
	return w, h - footerHeight, nil
}
