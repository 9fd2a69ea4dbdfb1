package config

import (
	"os"

	"github.com/dmitrijs2005/investprofile/internal/common"
)

// ID schemes for registered accounts.
const (
	IDSchemeSequence = "sequence"
	IDSchemeUUID     = "uuid"
)

// Averaging modes for the risk classifier.
const (
	AverageStrict  = "strict"
	AverageLenient = "lenient"
)

// Config holds runtime settings for the investprofile client.
//
// Fields:
//   - DBPath: SQLite file backing the local key-value store.
//   - KeyPrefix: namespace prepended to every stored key.
//   - PasswordHashing: store argon2id verifiers instead of raw passwords.
//   - IDScheme: "sequence" (patient-N) or "uuid" (patient-<uuid>).
//   - AverageMode: "strict" divides by all questions, "lenient" by answered ones.
//   - LogLevel / LogFormat: slog level name and "text" or "json".
type Config struct {
	DBPath          string
	KeyPrefix       string
	PasswordHashing bool
	IDScheme        string
	AverageMode     string
	LogLevel        string
	LogFormat       string
}

// LoadDefaults populates c with the built-in defaults.
func (c *Config) LoadDefaults() {
	c.DBPath = "investprofile.db"
	c.KeyPrefix = common.DefaultKeyPrefix
	c.PasswordHashing = false
	c.IDScheme = IDSchemeSequence
	c.AverageMode = AverageStrict
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig builds a Config from defaults, then the JSON file (if any),
// then command-line flags. Later sources win.
func LoadConfig() *Config {
	return load(os.Args[1:])
}

func load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
