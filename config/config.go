package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// validModels are the whisper model names the engine knows how to resolve.
var validModels = []string{
	"tiny", "tiny.en",
	"base", "base.en",
	"small", "small.en",
	"medium", "medium.en",
	"large", "large-v1", "large-v2", "large-v3",
	"large-v3-turbo",
}

var validPasteMethods = []string{"xdotool", "clipboard", "both"}

var validUrgencies = []string{"low", "normal", "critical"}

type Config struct {
	Whisper       WhisperConfig       `toml:"whisper"`
	Audio         AudioConfig         `toml:"audio"`
	Text          TextConfig          `toml:"text"`
	Notifications NotificationsConfig `toml:"notifications"`
	Files         FilesConfig         `toml:"files"`
}

type WhisperConfig struct {
	Model         string  `toml:"model"`
	Language      string  `toml:"language"`
	BeamSize      int     `toml:"beam_size"`
	Temperature   float64 `toml:"temperature"`
	VADFilter     bool    `toml:"vad_filter"`
	InitialPrompt string  `toml:"initial_prompt"`
	Binary        string  `toml:"binary"`
	ModelDir      string  `toml:"model_dir"`
}

type AudioConfig struct {
	Device string `toml:"device"` // descriptor override; capture uses the system default input
}

type TextConfig struct {
	PasteMethod    string `toml:"paste_method"`
	TypingDelay    int    `toml:"typing_delay"` // ms between keystrokes
	StripSpaces    bool   `toml:"strip_spaces"`
	AutoCapitalize bool   `toml:"auto_capitalize"`
	Replacements   string `toml:"replacements"` // comma-separated from=to pairs
}

type NotificationsConfig struct {
	Enable  bool   `toml:"enable"`
	Urgency string `toml:"urgency"`
}

type FilesConfig struct {
	TempDir       string `toml:"temp_dir"`
	LockFile      string `toml:"lock_file"`
	KeepTempFiles bool   `toml:"keep_temp_files"`
}

// Load builds the configuration with precedence env > file > defaults
// and validates the result. The returned value is never mutated afterwards.
func Load() (*Config, error) {
	return LoadFrom(configFilePath())
}

// LoadFrom is Load with an explicit config file path ("" skips the file).
func LoadFrom(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Whisper: WhisperConfig{
			Model:       "base.en",
			Language:    "en",
			BeamSize:    5,
			Temperature: 0.0,
			VADFilter:   true,
			Binary:      "whisper-cli",
			ModelDir:    defaultModelDir(),
		},
		Text: TextConfig{
			PasteMethod: "xdotool",
			TypingDelay: 12,
			StripSpaces: true,
		},
		Notifications: NotificationsConfig{
			Enable:  true,
			Urgency: "normal",
		},
		Files: FilesConfig{
			TempDir:  "/tmp/dictation",
			LockFile: "/tmp/dictation.lock",
		},
	}
}

func applyEnvOverrides(cfg *Config) {
	setString := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	setBool := func(key string, dst *bool) {
		if v := os.Getenv(key); v != "" {
			*dst = v == "1" || strings.EqualFold(v, "true") || strings.EqualFold(v, "yes")
		}
	}

	setString("DICTATION_WHISPER_MODEL", &cfg.Whisper.Model)
	setString("DICTATION_WHISPER_LANGUAGE", &cfg.Whisper.Language)
	setString("DICTATION_WHISPER_INITIAL_PROMPT", &cfg.Whisper.InitialPrompt)
	setString("DICTATION_WHISPER_BINARY", &cfg.Whisper.Binary)
	setString("DICTATION_WHISPER_MODEL_DIR", &cfg.Whisper.ModelDir)
	if v := os.Getenv("DICTATION_WHISPER_BEAM_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Whisper.BeamSize = n
		}
	}
	setBool("DICTATION_WHISPER_VAD_FILTER", &cfg.Whisper.VADFilter)

	setString("DICTATION_AUDIO_DEVICE", &cfg.Audio.Device)

	setString("DICTATION_TEXT_PASTE_METHOD", &cfg.Text.PasteMethod)
	setBool("DICTATION_TEXT_AUTO_CAPITALIZE", &cfg.Text.AutoCapitalize)
	setString("DICTATION_TEXT_REPLACEMENTS", &cfg.Text.Replacements)

	setBool("DICTATION_NOTIFICATIONS_ENABLE", &cfg.Notifications.Enable)
	setString("DICTATION_NOTIFICATIONS_URGENCY", &cfg.Notifications.Urgency)

	setString("DICTATION_FILES_TEMP_DIR", &cfg.Files.TempDir)
	setString("DICTATION_FILES_LOCK_FILE", &cfg.Files.LockFile)
	setBool("DICTATION_FILES_KEEP_TEMP", &cfg.Files.KeepTempFiles)
}

func (c *Config) validate() error {
	if !contains(validModels, c.Whisper.Model) && !looksLikePath(c.Whisper.Model) {
		return fmt.Errorf("invalid whisper model %q (valid: %s)", c.Whisper.Model, strings.Join(validModels, ", "))
	}
	if c.Whisper.BeamSize < 1 || c.Whisper.BeamSize > 10 {
		return fmt.Errorf("whisper beam_size must be between 1 and 10, got %d", c.Whisper.BeamSize)
	}
	if !contains(validPasteMethods, c.Text.PasteMethod) {
		return fmt.Errorf("invalid paste_method %q (valid: %s)", c.Text.PasteMethod, strings.Join(validPasteMethods, ", "))
	}
	if c.Text.TypingDelay < 0 {
		return fmt.Errorf("typing_delay must not be negative, got %d", c.Text.TypingDelay)
	}
	if !contains(validUrgencies, c.Notifications.Urgency) {
		return fmt.Errorf("invalid notification urgency %q (valid: %s)", c.Notifications.Urgency, strings.Join(validUrgencies, ", "))
	}
	if c.Files.LockFile == "" {
		return fmt.Errorf("lock_file must not be empty")
	}
	if c.Files.TempDir == "" {
		return fmt.Errorf("temp_dir must not be empty")
	}
	return nil
}

func configFilePath() string {
	var configDir string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		configDir = filepath.Join(xdg, "dictate")
	} else if home, err := os.UserHomeDir(); err == nil {
		configDir = filepath.Join(home, ".config", "dictate")
	} else {
		return ""
	}

	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

func defaultModelDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "dictate", "models")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".cache", "dictate", "models")
	}
	return filepath.Join(".", "models")
}

func contains(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func looksLikePath(model string) bool {
	return strings.ContainsRune(model, os.PathSeparator) || strings.HasSuffix(model, ".bin")
}
