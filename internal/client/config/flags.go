package config

import (
	"flag"
	"fmt"

	"github.com/dmitrijs2005/investprofile/internal/flagx"
)

var flagSpec = flagx.Spec{
	"-db":      true,
	"-prefix":  true,
	"-hash":    false,
	"-ids":     true,
	"-average": true,
	"-log":     true,
	"-logfmt":  true,
}

// parseFlags populates cfg from command-line flags:
//
//	-db string       path of the SQLite store
//	-prefix string   key namespace
//	-hash            store hashed passwords
//	-ids string      account id scheme (sequence|uuid)
//	-average string  classifier averaging (strict|lenient)
//	-log string      log level
//	-logfmt string   log format (text|json)
//
// Unknown arguments are filtered out first; invalid values panic.
func parseFlags(cfg *Config, args []string) {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "path of the local SQLite store")
	fs.StringVar(&cfg.KeyPrefix, "prefix", cfg.KeyPrefix, "namespace for stored keys")
	fs.BoolVar(&cfg.PasswordHashing, "hash", cfg.PasswordHashing, "store argon2id password verifiers")
	fs.StringVar(&cfg.IDScheme, "ids", cfg.IDScheme, "account id scheme: sequence or uuid")
	fs.StringVar(&cfg.AverageMode, "average", cfg.AverageMode, "classifier averaging: strict or lenient")
	fs.StringVar(&cfg.LogLevel, "log", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&cfg.LogFormat, "logfmt", cfg.LogFormat, "log format: text or json")

	if err := fs.Parse(flagx.FilterArgs(args, flagSpec)); err != nil {
		panic(err)
	}

	if cfg.IDScheme != IDSchemeSequence && cfg.IDScheme != IDSchemeUUID {
		panic(fmt.Sprintf("unknown id scheme %q", cfg.IDScheme))
	}
	if cfg.AverageMode != AverageStrict && cfg.AverageMode != AverageLenient {
		panic(fmt.Sprintf("unknown average mode %q", cfg.AverageMode))
	}
}
