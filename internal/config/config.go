package config

import (
	"errors"
	"fmt"
	"time"

	"ctchen222/minimax-tic-tac-toe/internal/validator"

	"github.com/ilyakaznacheev/cleanenv"
)

// Game modes.
const (
	ModeComputer = "computer"
	ModeHuman    = "human"
)

// Telemetry exporters.
const (
	ExporterNone   = "none"
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"warn" validate:"oneof=debug info warn error"`
	LogFormat string    `yaml:"log-format" env:"LOG_FORMAT" env-default:"text" validate:"oneof=text json"`
	Mode      string    `yaml:"mode" env:"TICTACTOE_MODE" env-default:"computer" validate:"oneof=computer human"`
	NoColor   bool      `yaml:"no-color" env:"TICTACTOE_NO_COLOR"`
	Match     Match     `yaml:"match"`
	Server    Server    `yaml:"server"`
	Telemetry Telemetry `yaml:"telemetry"`
}

type Match struct {
	WinsNeeded int `yaml:"wins-needed" env:"TICTACTOE_WINS_NEEDED" env-default:"2" validate:"min=1,max=9"`
}

type Server struct {
	Addr            string        `yaml:"addr" env:"TICTACTOE_ADDR" env-default:":8080" validate:"required"`
	ShutdownTimeout time.Duration `yaml:"shutdown-timeout" env:"TICTACTOE_SHUTDOWN_TIMEOUT" env-default:"5s" validate:"gt=0"`
}

type Telemetry struct {
	Exporter    string `yaml:"exporter" env:"OTEL_EXPORTER" env-default:"none" validate:"oneof=none stdout otlp"`
	Endpoint    string `yaml:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT" env-default:"otel-collector:4317" validate:"required_if=Exporter otlp"`
	ServiceName string `yaml:"service-name" env:"OTEL_SERVICE_NAME" env-default:"tic-tac-toe" validate:"required"`
}

// Load reads the YAML file at path, or only the environment when path is
// empty. Environment variables override the file.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, config)
	} else {
		err = cleanenv.ReadEnv(config)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// MustLoad is Load that panics on error.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}
	return config
}

func (c *Config) Validate() error {
	if err := validator.GetValidator().Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
