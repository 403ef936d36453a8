//go:build !linux

package input

import "fmt"

type stubTyper struct{}

func newTyper(opts Options) (Typer, error) {
	return stubTyper{}, nil
}

func (stubTyper) Type(text string) error {
	return fmt.Errorf("text injection not supported on this platform")
}
