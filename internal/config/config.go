package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds the runtime settings for the server.
type Config struct {
	Addr       string // listen address
	DBPath     string // sqlite database path; takes precedence over DataDir
	DataDir    string // directory for the JSON data file
	StorageKey string // slot key the game collection is stored under
}

// Load reads configuration from UNOSCORE_* environment variables and an
// optional unoscore.{yaml,json,toml} file in the working directory.
// Everything has a default, so a bare binary just works.
func Load() Config {
	v := viper.New()
	v.SetDefault("addr", ":8080")
	v.SetDefault("db_path", "")
	v.SetDefault("data_dir", "")
	v.SetDefault("storage_key", "unoscore_games")

	v.SetEnvPrefix("unoscore")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("unoscore")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // a missing config file is fine

	return Config{
		Addr:       v.GetString("addr"),
		DBPath:     v.GetString("db_path"),
		DataDir:    v.GetString("data_dir"),
		StorageKey: v.GetString("storage_key"),
	}
}
