package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Dictionary DictionaryConfig
	Game       GameConfig
	UI         UIConfig
	Log        LogConfig
}

// DictionaryConfig holds word-list cache settings. An empty CachePath
// disables the cache.
type DictionaryConfig struct {
	CachePath string `mapstructure:"cache_path"`
}

// GameConfig holds the choices offered on the settings screen.
type GameConfig struct {
	LetterCounts       []int `mapstructure:"letter_counts"`
	DefaultLetterCount int   `mapstructure:"default_letter_count"`
	MinLengths         []int `mapstructure:"min_lengths"`
	DefaultMinLength   int   `mapstructure:"default_min_length"`
	MaxManualLetters   int   `mapstructure:"max_manual_letters"`
	MaxGuessLength     int   `mapstructure:"max_guess_length"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	MinWidth  int `mapstructure:"min_width"`
	MinHeight int `mapstructure:"min_height"`
}

// LogConfig holds logging settings. Logs go to a file because the terminal
// belongs to the game.
type LogConfig struct {
	Path  string
	Level string
}

func dataDir() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "wordgame")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("dictionary.cache_path", filepath.Join(dataDir(), "dictionary.db"))
	v.SetDefault("game.letter_counts", []int{5, 6, 7, 8, 9})
	v.SetDefault("game.default_letter_count", 7)
	v.SetDefault("game.min_lengths", []int{3, 4, 5, 6})
	v.SetDefault("game.default_min_length", 4)
	v.SetDefault("game.max_manual_letters", 12)
	v.SetDefault("game.max_guess_length", 24)
	v.SetDefault("ui.min_width", 50)
	v.SetDefault("ui.min_height", 20)
	v.SetDefault("log.path", filepath.Join(dataDir(), "wordgame.log"))
	v.SetDefault("log.level", "info")
}

// Load reads configuration from file and env. Env var overrides use prefix WORDGAME_.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("WORDGAME_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "wordgame"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("WORDGAME")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks values the game cannot run without.
func (c Config) Validate() error {
	if len(c.Game.LetterCounts) == 0 {
		return fmt.Errorf("config: game.letter_counts is empty")
	}
	for _, n := range c.Game.LetterCounts {
		if n < 1 || n > 26 {
			return fmt.Errorf("config: letter count %d out of range 1-26", n)
		}
	}
	if len(c.Game.MinLengths) == 0 {
		return fmt.Errorf("config: game.min_lengths is empty")
	}
	for _, n := range c.Game.MinLengths {
		if n < 0 {
			return fmt.Errorf("config: negative minimum length %d", n)
		}
	}
	if c.Game.MaxManualLetters < 1 {
		return fmt.Errorf("config: game.max_manual_letters must be positive")
	}
	return nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) (string, error) {
	path := os.Getenv("WORDGAME_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "wordgame", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("dictionary.cache_path", cfg.Dictionary.CachePath)
	v.Set("game.letter_counts", cfg.Game.LetterCounts)
	v.Set("game.default_letter_count", cfg.Game.DefaultLetterCount)
	v.Set("game.min_lengths", cfg.Game.MinLengths)
	v.Set("game.default_min_length", cfg.Game.DefaultMinLength)
	v.Set("game.max_manual_letters", cfg.Game.MaxManualLetters)
	v.Set("game.max_guess_length", cfg.Game.MaxGuessLength)
	v.Set("ui.min_width", cfg.UI.MinWidth)
	v.Set("ui.min_height", cfg.UI.MinHeight)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	return path, nil
}
