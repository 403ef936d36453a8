// Package textproc post-processes raw transcription output before delivery.
package textproc

import (
	"strings"
	"unicode"
)

// Options select which transformations Process applies.
type Options struct {
	StripSpaces    bool
	AutoCapitalize bool
	// Replacements is a comma-separated list of from=to pairs applied
	// literally, e.g. "new line=\n,period=.".
	Replacements string
}

// Process normalizes whitespace and applies the configured transformations.
func Process(text string, opts Options) string {
	if text == "" {
		return text
	}

	if opts.StripSpaces {
		text = strings.TrimSpace(text)
	}

	// Collapse runs of whitespace left by segment joining.
	text = strings.Join(strings.Fields(text), " ")

	for _, pair := range parseReplacements(opts.Replacements) {
		text = strings.ReplaceAll(text, pair[0], pair[1])
	}

	if opts.AutoCapitalize {
		text = capitalize(text)
	}

	return text
}

func capitalize(text string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return text
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func parseReplacements(spec string) [][2]string {
	if spec == "" {
		return nil
	}
	var pairs [][2]string
	for _, entry := range strings.Split(spec, ",") {
		from, to, ok := strings.Cut(entry, "=")
		if !ok || from == "" {
			continue
		}
		pairs = append(pairs, [2]string{from, to})
	}
	return pairs
}
