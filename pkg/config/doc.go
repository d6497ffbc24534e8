// Package config loads configuration structs from the process
// environment using `env` struct tags, reading a .env file first when
// one exists. It is the loading side of the per-package Config structs
// used across the module (e.g. registry.Config).
//
//	var cfg registry.Config
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
package config
