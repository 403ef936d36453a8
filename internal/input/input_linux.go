//go:build linux

package input

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"time"
)

const typeTimeout = 30 * time.Second

type linuxTyper struct {
	opts       Options
	useWayland bool
}

func newTyper(opts Options) (Typer, error) {
	return &linuxTyper{
		opts:       opts,
		useWayland: os.Getenv("WAYLAND_DISPLAY") != "",
	}, nil
}

func (t *linuxTyper) Type(text string) error {
	if text == "" {
		return nil
	}
	if t.useWayland {
		return t.typeWayland(text)
	}
	return t.typeX11(text)
}

func (t *linuxTyper) typeX11(text string) error {
	if _, err := exec.LookPath("xdotool"); err != nil {
		return fmt.Errorf("xdotool not installed: %w", err)
	}

	if t.opts.ClearModifiers {
		_ = exec.Command("xdotool", "keyup", "Control_L", "Alt_L", "Shift_L").Run()
		time.Sleep(50 * time.Millisecond)
	}

	cmd := exec.Command("xdotool", "type", "--clearmodifiers",
		"--delay", strconv.Itoa(t.opts.TypingDelay), "--", text)
	return runWithTimeout(cmd, typeTimeout)
}

func (t *linuxTyper) typeWayland(text string) error {
	if _, err := exec.LookPath("wtype"); err != nil {
		return fmt.Errorf("wtype not installed: %w", err)
	}
	return runWithTimeout(exec.Command("wtype", text), typeTimeout)
}

func runWithTimeout(cmd *exec.Cmd, timeout time.Duration) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()
	select {
	case err := <-done:
		return err
	case <-time.After(timeout):
		_ = cmd.Process.Kill()
		<-done
		return fmt.Errorf("text injection timed out after %s", timeout)
	}
}
