package store

import (
	"log"
	"os"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config exposes the storage settings quill runs with.
type Config interface {
	BasePath() string
	Debounce() time.Duration
}

// DefaultDebounce is the quiet period between the last note mutation and the
// write that persists it.
const DefaultDebounce = 800 * time.Millisecond

// LoadConfig resolves configuration from a .quill file in the working
// directory and QUILL_* environment overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.quill.db")
	viper.SetDefault("debounce", DefaultDebounce.String())
	viper.SetConfigName(".quill") // .yaml is implicit
	viper.SetEnvPrefix("QUILL")
	viper.AutomaticEnv()

	if override := os.Getenv("QUILL_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	debounce := DefaultDebounce
	if d, err := time.ParseDuration(viper.GetString("debounce")); err == nil && d > 0 {
		debounce = d
	}

	return &fileConfig{Path: path, Quiet: debounce}, nil
}

type fileConfig struct {
	Path  string        `json:"path"`
	Quiet time.Duration `json:"debounce"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Debounce() time.Duration {
	return f.Quiet
}
