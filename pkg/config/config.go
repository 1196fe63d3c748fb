/*
Package config manages the TOML config for fidelmatch.

Missing files are created with defaults. A file that fails to decode as a whole is
salvaged section by section; anything unreadable falls back to the builtin value.
*/
package config

import (
	"path/filepath"

	"github.com/bastiangx/fidelmatch/internal/utils"
	"github.com/bastiangx/fidelmatch/pkg/match"
	"github.com/bastiangx/fidelmatch/pkg/translit"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Match    MatchConfig    `toml:"match"`
	Translit TranslitConfig `toml:"translit"`
	Validate ValidateConfig `toml:"validate"`
	Dict     DictConfig     `toml:"dict"`
	Server   ServerConfig   `toml:"server"`
}

// MatchConfig holds the default options of match requests.
type MatchConfig struct {
	CaseSensitive bool    `toml:"case_sensitive"`
	WholeWord     bool    `toml:"whole_word"`
	Fuzzy         bool    `toml:"fuzzy"`
	MaxDistance   float64 `toml:"max_distance"`
	Phonetic      bool    `toml:"phonetic"`
}

// TranslitConfig holds transliteration and cache options.
type TranslitConfig struct {
	CacheSize      int  `toml:"cache_size"`
	IncludePartial bool `toml:"include_partial"`
	EnableCache    bool `toml:"enable_cache"`
}

// ValidateConfig holds input length limits, in characters.
type ValidateConfig struct {
	MaxNameLength  int `toml:"max_name_length"`
	MaxQueryLength int `toml:"max_query_length"`
	MaxTextLength  int `toml:"max_text_length"`
}

// DictConfig lists dictionary files merged over the builtin table.
type DictConfig struct {
	ExtraFiles []string `toml:"extra_files"`
}

// ServerConfig has server related options.
type ServerConfig struct {
	MaxBatch int `toml:"max_batch"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Match: MatchConfig{
			MaxDistance: 2,
		},
		Translit: TranslitConfig{
			CacheSize:      translit.DefaultCacheSize,
			IncludePartial: true,
			EnableCache:    true,
		},
		Validate: ValidateConfig{
			MaxNameLength:  100,
			MaxQueryLength: 100,
			MaxTextLength:  100,
		},
		Dict: DictConfig{
			ExtraFiles: []string{},
		},
		Server: ServerConfig{
			MaxBatch: 64,
		},
	}
}

// MatchOptions converts the [match] section.
func (c *Config) MatchOptions() match.Options {
	return match.Options{
		CaseSensitive: c.Match.CaseSensitive,
		WholeWord:     c.Match.WholeWord,
		Fuzzy:         c.Match.Fuzzy,
		MaxDistance:   c.Match.MaxDistance,
		Phonetic:      c.Match.Phonetic,
	}
}

// TranslitOptions converts the [translit] section.
func (c *Config) TranslitOptions() translit.Options {
	return translit.Options{
		IncludePartialMatches: c.Translit.IncludePartial,
		EnableCache:           c.Translit.EnableCache,
	}
}

// EngineSettings converts the limits used to build a match.Engine.
func (c *Config) EngineSettings() match.Settings {
	return match.Settings{
		CacheSize:      c.Translit.CacheSize,
		MaxNameLength:  c.Validate.MaxNameLength,
		MaxQueryLength: c.Validate.MaxQueryLength,
		MaxTextLength:  c.Validate.MaxTextLength,
		Expand:         translit.DefaultOptions(),
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config.sanitized(), nil
}

// tryPartialParse salvages the readable sections of a broken config file.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "match"); ok {
		extractMatchConfig(section, &config.Match)
	}
	if section, ok := utils.ExtractSection(tempConfig, "translit"); ok {
		extractTranslitConfig(section, &config.Translit)
	}
	if section, ok := utils.ExtractSection(tempConfig, "validate"); ok {
		extractValidateConfig(section, &config.Validate)
	}
	if section, ok := utils.ExtractSection(tempConfig, "dict"); ok {
		if files, ok := utils.ExtractStrings(section, "extra_files"); ok {
			config.Dict.ExtraFiles = files
		}
	}
	if section, ok := utils.ExtractSection(tempConfig, "server"); ok {
		if val, ok := utils.ExtractInt64(section, "max_batch"); ok {
			config.Server.MaxBatch = val
		}
	}
	return config.sanitized(), nil
}

func extractMatchConfig(data map[string]any, m *MatchConfig) {
	if val, ok := utils.ExtractBool(data, "case_sensitive"); ok {
		m.CaseSensitive = val
	}
	if val, ok := utils.ExtractBool(data, "whole_word"); ok {
		m.WholeWord = val
	}
	if val, ok := utils.ExtractBool(data, "fuzzy"); ok {
		m.Fuzzy = val
	}
	if val, ok := utils.ExtractFloat64(data, "max_distance"); ok {
		m.MaxDistance = val
	}
	if val, ok := utils.ExtractBool(data, "phonetic"); ok {
		m.Phonetic = val
	}
}

func extractTranslitConfig(data map[string]any, t *TranslitConfig) {
	if val, ok := utils.ExtractInt64(data, "cache_size"); ok {
		t.CacheSize = val
	}
	if val, ok := utils.ExtractBool(data, "include_partial"); ok {
		t.IncludePartial = val
	}
	if val, ok := utils.ExtractBool(data, "enable_cache"); ok {
		t.EnableCache = val
	}
}

func extractValidateConfig(data map[string]any, v *ValidateConfig) {
	if val, ok := utils.ExtractInt64(data, "max_name_length"); ok {
		v.MaxNameLength = val
	}
	if val, ok := utils.ExtractInt64(data, "max_query_length"); ok {
		v.MaxQueryLength = val
	}
	if val, ok := utils.ExtractInt64(data, "max_text_length"); ok {
		v.MaxTextLength = val
	}
}

// sanitized replaces out-of-range values with defaults.
func (c *Config) sanitized() *Config {
	defaults := DefaultConfig()
	if c.Match.MaxDistance < 0 {
		log.Warnf("max_distance %v is negative, using %v", c.Match.MaxDistance, defaults.Match.MaxDistance)
		c.Match.MaxDistance = defaults.Match.MaxDistance
	}
	if c.Translit.CacheSize <= 0 {
		log.Warnf("cache_size %d is not positive, using %d", c.Translit.CacheSize, defaults.Translit.CacheSize)
		c.Translit.CacheSize = defaults.Translit.CacheSize
	}
	if c.Server.MaxBatch <= 0 {
		c.Server.MaxBatch = defaults.Server.MaxBatch
	}
	if c.Dict.ExtraFiles == nil {
		c.Dict.ExtraFiles = []string{}
	}
	return c
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	return utils.GetAbsolutePath(configPath)
}
