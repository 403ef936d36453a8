package input

import "github.com/atotto/clipboard"

// Clipboard places text on the system clipboard.
type Clipboard interface {
	Copy(text string) error
}

// SystemClipboard is the real clipboard backed by the platform service
// (xclip/xsel on X11, wl-copy on Wayland).
type SystemClipboard struct{}

func (SystemClipboard) Copy(text string) error {
	return clipboard.WriteAll(text)
}
