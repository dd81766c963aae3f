package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// FileName is the config file looked up in the config directory.
const FileName = "overclock.cfg.json"

// WindowConfig holds the game window settings
type WindowConfig struct {
	Width  int    `json:"width" mapstructure:"width"`
	Height int    `json:"height" mapstructure:"height"`
	Title  string `json:"title" mapstructure:"title"`
}

// SamplingConfig holds hardware polling settings
type SamplingConfig struct {
	Interval  time.Duration `json:"interval" mapstructure:"interval"`
	Timeout   time.Duration `json:"timeout" mapstructure:"timeout"`
	NvidiaSMI string        `json:"nvidiaSmi" mapstructure:"nvidiaSmi"`
	Fake      bool          `json:"fake" mapstructure:"fake"`
}

// CourseConfig holds the track settings
type CourseConfig struct {
	Length       float64 `json:"length" mapstructure:"length"`
	PaceSpeedKmh float64 `json:"paceSpeedKmh" mapstructure:"paceSpeedKmh"`
	TickRate     int     `json:"tickRate" mapstructure:"tickRate"`
}

// CarConfig holds car selection settings
type CarConfig struct {
	Catalog string `json:"catalog" mapstructure:"catalog"`
	Default string `json:"default" mapstructure:"default"`
}

// MetricsConfig holds the Prometheus endpoint settings
type MetricsConfig struct {
	Enabled bool   `json:"enabled" mapstructure:"enabled"`
	Address string `json:"address" mapstructure:"address"`
	Path    string `json:"path" mapstructure:"path"`
}

// Load sets default values and reads the JSON config file from configDir.
// A missing file is not an error; the defaults apply.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logFormat", "console")

	viper.SetDefault("window.width", 1024)
	viper.SetDefault("window.height", 600)
	viper.SetDefault("window.title", "Overclock")

	viper.SetDefault("sampling.interval", "1s")
	viper.SetDefault("sampling.timeout", "500ms")
	viper.SetDefault("sampling.nvidiaSmi", "nvidia-smi")
	viper.SetDefault("sampling.fake", false)

	viper.SetDefault("course.length", 5000.0)
	viper.SetDefault("course.paceSpeedKmh", 180.0)
	viper.SetDefault("course.tickRate", 60)

	viper.SetDefault("car.catalog", "")
	viper.SetDefault("car.default", "balanced")

	viper.SetDefault("metrics.enabled", false)
	viper.SetDefault("metrics.address", ":9102")
	viper.SetDefault("metrics.path", "/metrics")

	viper.SetConfigName(FileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetWindowConfig returns the window settings.
func GetWindowConfig() WindowConfig {
	return WindowConfig{
		Width:  viper.GetInt("window.width"),
		Height: viper.GetInt("window.height"),
		Title:  viper.GetString("window.title"),
	}
}

// GetSamplingConfig returns the hardware polling settings.
func GetSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Interval:  viper.GetDuration("sampling.interval"),
		Timeout:   viper.GetDuration("sampling.timeout"),
		NvidiaSMI: viper.GetString("sampling.nvidiaSmi"),
		Fake:      viper.GetBool("sampling.fake"),
	}
}

// GetCourseConfig returns the track settings.
func GetCourseConfig() CourseConfig {
	return CourseConfig{
		Length:       viper.GetFloat64("course.length"),
		PaceSpeedKmh: viper.GetFloat64("course.paceSpeedKmh"),
		TickRate:     viper.GetInt("course.tickRate"),
	}
}

// GetCarConfig returns the car selection settings.
func GetCarConfig() CarConfig {
	return CarConfig{
		Catalog: viper.GetString("car.catalog"),
		Default: viper.GetString("car.default"),
	}
}

// GetMetricsConfig returns the Prometheus endpoint settings.
func GetMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Enabled: viper.GetBool("metrics.enabled"),
		Address: viper.GetString("metrics.address"),
		Path:    viper.GetString("metrics.path"),
	}
}
