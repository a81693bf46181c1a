package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	DataDir      string       `mapstructure:"data_dir"`
	Dictionaries []DictConfig `mapstructure:"dictionaries"`
	Engine       EngineConfig `mapstructure:"engine"`
	Log          LogConfig    `mapstructure:"log"`
}

type DictConfig struct {
	ID   string `mapstructure:"id"`
	Name string `mapstructure:"name"`
	Type string `mapstructure:"type"`
	Path string `mapstructure:"path"`
}

type EngineConfig struct {
	// Backend selects the suggestion engine: "aspell" shells out to the
	// external checker, "wordlist" ranks corpus headwords by edit distance.
	Backend        string        `mapstructure:"backend"`
	Command        string        `mapstructure:"command"`
	Timeout        time.Duration `mapstructure:"timeout"`
	MaxSuggestions int           `mapstructure:"max_suggestions"`
	MaxDistance    int           `mapstructure:"max_distance"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

const (
	defaultStoreFile  = "websters_dict_plain.sqlite3"
	defaultCorpusFile = "websters_dict_plain.txt"
)

// Load reads the optional config file (explicit path, or wordtool.yaml in
// ~/.config/wordtool and the working directory), applies WORDTOOL_*
// environment overrides, and fills in defaults. A missing file is fine.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetDefault("data_dir", defaultDataDir())
	v.SetDefault("engine.backend", "aspell")
	v.SetDefault("engine.command", "aspell")
	v.SetDefault("engine.timeout", 10*time.Second)
	v.SetDefault("engine.max_suggestions", 20)
	v.SetDefault("engine.max_distance", 2)
	v.SetDefault("log.level", "warn")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("wordtool")
		v.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "wordtool"))
		}
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix("WORDTOOL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// An explicit file must exist and parse; the implicit lookup may
		// simply find nothing.
		if path != "" {
			return Config{}, err
		}
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	if len(cfg.Dictionaries) == 0 {
		cfg.Dictionaries = defaultDictionaries(cfg.DataDir)
	}
	return cfg, nil
}

// defaultDictionaries is the two-tier layout the tools ship with: the
// pre-built SQLite store first, the plain text corpus as fallback.
func defaultDictionaries(dataDir string) []DictConfig {
	return []DictConfig{
		{ID: "websters-db", Name: "Webster's (store)", Type: "sqlite", Path: filepath.Join(dataDir, defaultStoreFile)},
		{ID: "websters-text", Name: "Webster's (text)", Type: "text", Path: filepath.Join(dataDir, defaultCorpusFile)},
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share", "wordtool")
}
