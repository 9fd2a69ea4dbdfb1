package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/investprofile/internal/flagx"
)

// JSONConfig is the on-disk shape of the config file. Pointer fields let a
// file override only the settings it mentions.
type JSONConfig struct {
	DBPath          *string `json:"db_path"`
	KeyPrefix       *string `json:"key_prefix"`
	PasswordHashing *bool   `json:"password_hashing"`
	IDScheme        *string `json:"id_scheme"`
	AverageMode     *string `json:"average_mode"`
	LogLevel        *string `json:"log_level"`
	LogFormat       *string `json:"log_format"`
}

// parseJSON overlays cfg with the file named by -c / -config.
// Panics on read or unmarshal errors, like parseFlags does on bad flags.
func parseJSON(cfg *Config, args []string) {
	path := flagx.JSONConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.DBPath, jc.DBPath)
	setString(&cfg.KeyPrefix, jc.KeyPrefix)
	setString(&cfg.IDScheme, jc.IDScheme)
	setString(&cfg.AverageMode, jc.AverageMode)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogFormat, jc.LogFormat)
	if jc.PasswordHashing != nil {
		cfg.PasswordHashing = *jc.PasswordHashing
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
