package output

import (
	"fmt"
	"io"
	"time"
)

type Formatter struct {
	w io.Writer
}

func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{w: w}
}

func (f *Formatter) RecordingStarted(pid int, device, audioPath string) {
	fmt.Fprintf(f.w, "🎙️  Recording started (PID: %d)\n", pid)
	fmt.Fprintf(f.w, "Device: %s\n", device)
	fmt.Fprintf(f.w, "Audio file: %s\n", audioPath)
	fmt.Fprintf(f.w, "\nPress Ctrl+C or run 'dictate stop' to end recording\n")
}

func (f *Formatter) RecordingStopped(duration time.Duration) {
	fmt.Fprintf(f.w, "⏹️  Recording stopped (%s)\n", formatDuration(duration))
}

func (f *Formatter) RecordingSaved(path string, samples int) {
	seconds := float64(samples) / 16000.0
	fmt.Fprintf(f.w, "✅ Saved %.1fs of audio to %s\n", seconds, path)
}

func (f *Formatter) Stopping(pid int) {
	fmt.Fprintf(f.w, "Stopping recording process (PID: %d)...\n", pid)
}

func (f *Formatter) Transcribing() {
	fmt.Fprintf(f.w, "📝 Transcribing audio...\n")
}

func (f *Formatter) Transcript(text string) {
	fmt.Fprintln(f.w, text)
}

func (f *Formatter) Delivered(method string, words int) {
	fmt.Fprintf(f.w, "✅ Delivered %d words via %s\n", words, method)
}

func (f *Formatter) Error(msg string) {
	fmt.Fprintf(f.w, "❌ %s\n", msg)
}

func (f *Formatter) Info(msg string) {
	fmt.Fprintf(f.w, "ℹ️  %s\n", msg)
}

func (f *Formatter) Success(msg string) {
	fmt.Fprintf(f.w, "✅ %s\n", msg)
}

func (f *Formatter) Warning(msg string) {
	fmt.Fprintf(f.w, "⚠️  %s\n", msg)
}

func (f *Formatter) DoctorCheck(name string, ok bool, detail string) {
	if ok {
		fmt.Fprintf(f.w, "  ✅ %s: %s\n", name, detail)
	} else {
		fmt.Fprintf(f.w, "  ❌ %s: %s\n", name, detail)
	}
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%dm%02ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
