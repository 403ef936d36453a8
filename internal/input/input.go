// Package input delivers transcribed text to the active application,
// either by typing it at the focused input or by placing it on the
// clipboard.
package input

// Typer types text at the currently focused input field.
type Typer interface {
	Type(text string) error
}

// Options control how text is injected.
type Options struct {
	// TypingDelay is the per-keystroke delay in milliseconds.
	TypingDelay int
	// ClearModifiers releases stuck modifier keys before typing, so the
	// hotkey that triggered the dictation does not corrupt the output.
	ClearModifiers bool
}

// NewTyper returns the platform text injector.
func NewTyper(opts Options) (Typer, error) {
	return newTyper(opts)
}
