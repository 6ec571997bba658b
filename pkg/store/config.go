package store

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the on-disk planner database.
type Config interface {
	BasePath() string
}

// LoadConfig resolves the database path from a .studyplan config file or
// STUDYPLAN_* environment variables, defaulting to ~/.studyplan.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.studyplan.db")
	viper.SetConfigName(".studyplan") // .yaml is implicit
	viper.SetEnvPrefix("STUDYPLAN")
	viper.AutomaticEnv()

	if override := os.Getenv("STUDYPLAN_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
