package audio

import (
	"fmt"
	"os"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WriteWAV serializes chunks as a 16-bit PCM WAV file at path, in arrival
// order. The file is written in one pass at session shutdown; on any error
// the partial file is removed so no half-written WAV is left behind.
func WriteWAV(path string, chunks [][]int16, sampleRate, channels int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating audio file: %w", err)
	}

	enc := wav.NewEncoder(f, sampleRate, 16, channels, 1)
	format := &gaudio.Format{NumChannels: channels, SampleRate: sampleRate}

	fail := func(err error) error {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}

	for _, chunk := range chunks {
		data := make([]int, len(chunk))
		for i, v := range chunk {
			data[i] = int(v)
		}
		buf := &gaudio.IntBuffer{Format: format, Data: data, SourceBitDepth: 16}
		if err := enc.Write(buf); err != nil {
			return fail(fmt.Errorf("writing audio data: %w", err))
		}
	}

	if err := enc.Close(); err != nil {
		return fail(fmt.Errorf("finalizing audio file: %w", err))
	}
	if err := f.Close(); err != nil {
		return fail(fmt.Errorf("closing audio file: %w", err))
	}
	return nil
}
