// Package config manages user-level settings stored at ~/.pakaje/config.yaml.
// Settings are read through Viper, so PAKAJE_-prefixed environment variables
// override the file. Keys: "file" (default manifest path) and "log_level".
package config
