//go:build !windows

package terminal

import (
	"os"

	"golang.org/x/term"
)

// rawState wraps the platform raw-mode snapshot returned by x/term,
// generalizing the reference implementation's tui.State wrapper.
type rawState struct {
	state *term.State
}

func enableRawMode(f *os.File) (*rawState, error) {
	old, err := term.MakeRaw(int(f.Fd()))
	if err != nil {
		return nil, err
	}
	return &rawState{state: old}, nil
}

func disableRawMode(f *os.File, s *rawState) error {
	if s == nil || s.state == nil {
		return nil
	}
	return term.Restore(int(f.Fd()), s.state)
}

func getSize(f *os.File) (int, int, error) {
	return term.GetSize(int(f.Fd()))
}
