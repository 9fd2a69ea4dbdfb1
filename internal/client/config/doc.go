// Package config loads runtime configuration for the investprofile client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//
// # JSON schema
//
//	{
//	  "db_path": "investprofile.db",
//	  "key_prefix": "@InvestApp:",
//	  "password_hashing": false,
//	  "id_scheme": "sequence",
//	  "average_mode": "strict",
//	  "log_level": "info",
//	  "log_format": "text"
//	}
package config
