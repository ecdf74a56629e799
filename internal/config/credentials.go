package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

const (
	YouTubeAPIKeyEnv  = "YOUTUBE_API_KEY"
	SearchAPIKeyEnv   = "GOOGLE_SEARCH_API_KEY"
	SearchEngineIDEnv = "SEARCH_ENGINE_ID"

	DefaultEnvFile = ".env"
)

// Credentials are the search backend secrets. They are loaded once at startup and
// handed to the resource finder, never read from the environment ad hoc.
type Credentials struct {
	YouTubeAPIKey  string
	SearchAPIKey   string
	SearchEngineID string
}

// Complete reports whether every key needed for resource lookup is set.
func (c Credentials) Complete() bool {
	return len(c.Missing()) == 0
}

// Missing returns the environment names of the unset keys.
func (c Credentials) Missing() []string {
	var missing []string
	if c.YouTubeAPIKey == "" {
		missing = append(missing, YouTubeAPIKeyEnv)
	}
	if c.SearchAPIKey == "" {
		missing = append(missing, SearchAPIKeyEnv)
	}
	if c.SearchEngineID == "" {
		missing = append(missing, SearchEngineIDEnv)
	}
	return missing
}

// LoadCredentials reads the keys from the process environment, falling back to an
// optional dotenv file. Environment values win over the file. A missing file is not
// an error.
func LoadCredentials(envFile string) (Credentials, error) {
	v := viper.New()
	v.AutomaticEnv()

	if envFile != "" {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
				return Credentials{}, err
			}
		}
	}

	return Credentials{
		YouTubeAPIKey:  v.GetString(YouTubeAPIKeyEnv),
		SearchAPIKey:   v.GetString(SearchAPIKeyEnv),
		SearchEngineID: v.GetString(SearchEngineIDEnv),
	}, nil
}
