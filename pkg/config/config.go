package config

import (
	"os"

	"github.com/abfahrtbot/abfahrtbot/pkg/util"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const defaultPath = "config.yml"

// Config is the immutable process configuration. It is loaded once at startup
// and passed explicitly into the services, nothing reads it ambiently.
type Config struct {
	RMV       RMVConfig       `yaml:"rmv" validate:"required"`
	Assistant AssistantConfig `yaml:"assistant" validate:"required"`
}

type RMVConfig struct {
	AccessID string `yaml:"accessId" validate:"required"`
	BaseURL  string `yaml:"baseUrl" validate:"omitempty,url"`
}

type AssistantConfig struct {
	HomeStation string `yaml:"homeStation" validate:"required"`
	HomeCity    string `yaml:"homeCity" validate:"required"`

	// HomeCityOnly qualifies destination searches with the home city as well,
	// not just the origin. Defaults to on.
	HomeCityOnly *bool `yaml:"homeCityOnly"`

	// DepartureOffsetMinutes shifts "now" queries into the future to cover the
	// way to the station. Unset means the trip service plans from now.
	DepartureOffsetMinutes *int `yaml:"departureOffsetMinutes"`

	ShortAnswers bool `yaml:"shortAnswers"`
}

// Load reads and validates the YAML configuration. The file path comes from
// ABFAHRTBOT_CONFIG when set, secrets can be supplied via environment instead
// of the file (ABFAHRTBOT_RMV_ACCESS_ID).
func Load() (*Config, error) {
	env := util.GetEnvironmentVariables()

	path := defaultPath
	if env["ABFAHRTBOT_CONFIG"] != "" {
		path = env["ABFAHRTBOT_CONFIG"]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if env["ABFAHRTBOT_RMV_ACCESS_ID"] != "" {
		cfg.RMV.AccessID = env["ABFAHRTBOT_RMV_ACCESS_ID"]
	}

	if cfg.Assistant.HomeCityOnly == nil {
		homeCityOnly := true
		cfg.Assistant.HomeCityOnly = &homeCityOnly
	}

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
