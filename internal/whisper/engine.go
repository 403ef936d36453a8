// Package whisper adapts the whisper.cpp command line tool as the
// transcription engine: WAV file in, plain text out.
package whisper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrEngineUnavailable means the whisper binary could not be found.
var ErrEngineUnavailable = errors.New("transcription engine unavailable")

// RunError is a transcription engine runtime failure.
type RunError struct {
	Stderr string
	Err    error
}

func (e *RunError) Error() string {
	msg := "transcription engine failed"
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *RunError) Unwrap() error { return e.Err }

// Params are the decoding parameters passed to the engine.
type Params struct {
	Model         string
	Language      string
	BeamSize      int
	Temperature   float64
	VADFilter     bool
	InitialPrompt string
}

// Engine runs whisper-cli as a subprocess.
type Engine struct {
	Binary   string
	ModelDir string
	Params   Params
}

func New(binary, modelDir string, params Params) *Engine {
	return &Engine{Binary: binary, ModelDir: modelDir, Params: params}
}

// Transcribe decodes the audio file and returns the raw transcript.
// Errors distinguish a missing input file (fs.ErrNotExist), a missing
// engine binary (ErrEngineUnavailable) and runtime failures (RunError).
func (e *Engine) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if _, err := os.Stat(audioPath); err != nil {
		return "", fmt.Errorf("audio file: %w", err)
	}

	bin, err := exec.LookPath(e.Binary)
	if err != nil {
		return "", fmt.Errorf("%w: %q not found in PATH", ErrEngineUnavailable, e.Binary)
	}

	args := []string{
		"-m", ModelPath(e.ModelDir, e.Params.Model),
		"-f", audioPath,
		"-l", e.Params.Language,
		"--beam-size", strconv.Itoa(e.Params.BeamSize),
		"--temperature", strconv.FormatFloat(e.Params.Temperature, 'f', -1, 64),
		"--no-prints",
		"--no-timestamps",
	}
	if e.Params.VADFilter {
		args = append(args, "--vad")
	}
	if e.Params.InitialPrompt != "" {
		args = append(args, "--prompt", e.Params.InitialPrompt)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &RunError{Stderr: lastLine(stderr.String()), Err: err}
	}

	return stdout.String(), nil
}

// ModelPath resolves a model identifier to a ggml model file. Names like
// "base.en" map into the model directory; explicit paths pass through.
func ModelPath(modelDir, model string) string {
	if strings.ContainsRune(model, os.PathSeparator) || strings.HasSuffix(model, ".bin") {
		return model
	}
	return filepath.Join(modelDir, "ggml-"+model+".bin")
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) == 0 {
		return ""
	}
	return strings.TrimSpace(lines[len(lines)-1])
}
