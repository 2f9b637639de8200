package store

import (
	"github.com/spf13/viper"

	"almanac/pkg/calendar"
)

// Config carries the startup knobs for the widget.
type Config interface {
	SeedPath() string
	InitialView() calendar.View
}

// LoadConfig reads an optional .almanac config file plus ALMANAC_*
// environment overrides. A missing config file is not an error; the
// zero config means "start empty, month view".
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("seed", "")
	v.SetDefault("view", "month")
	v.SetConfigName(".almanac") // .yaml is implicit
	v.SetEnvPrefix("ALMANAC")
	v.AutomaticEnv()

	v.AddConfigPath("./")
	v.AddConfigPath("$HOME")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return &fileConfig{
		Seed: v.GetString("seed"),
		View: v.GetString("view"),
	}, nil
}

type fileConfig struct {
	Seed string `json:"seed"`
	View string `json:"view"`
}

func (f *fileConfig) SeedPath() string {
	return f.Seed
}

func (f *fileConfig) InitialView() calendar.View {
	return calendar.ParseView(f.View)
}
