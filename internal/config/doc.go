// Package config loads the optional Breeze config file from
// ~/.config/breeze/config.toml. Missing files fall back to defaults that
// point at the public OpenWeatherMap endpoints.
package config
