package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"

	"todonotes/shared/validator"
)

const (
	StoreBackendMongo     = "mongo"
	StoreBackendSurrealDB = "surrealdb"

	SequenceBackendCounter = "counter"
	SequenceBackendCount   = "count"
	SequenceBackendRedis   = "redis"
)

type Config struct {
	App struct {
		Name     string `envconfig:"NAME" default:"notes" validate:"required"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"warn"`
		Timezone string `envconfig:"TIMEZONE" default:"Local"`
	} `envconfig:"APP"`

	Store struct {
		Backend string `envconfig:"BACKEND" default:"mongo" validate:"oneof=mongo surrealdb"`
		Mongo   struct {
			URI               string `envconfig:"URI" default:"mongodb://localhost:27017" validate:"required"`
			Database          string `envconfig:"DATABASE" default:"todo-rs" validate:"required"`
			Collection        string `envconfig:"COLLECTION" default:"notes" validate:"required"`
			CounterCollection string `envconfig:"COUNTER_COLLECTION" default:"counters" validate:"required"`
			TimeoutSeconds    int    `envconfig:"TIMEOUT_SECONDS" default:"0" validate:"gte=0"`
		} `envconfig:"MONGO"`
		SurrealDB struct {
			URL          string `envconfig:"URL" default:"ws://localhost:8000" validate:"required"`
			Namespace    string `envconfig:"NAMESPACE" default:"todo" validate:"required"`
			Database     string `envconfig:"DATABASE" default:"todo-rs" validate:"required"`
			Table        string `envconfig:"TABLE" default:"notes" validate:"required"`
			CounterTable string `envconfig:"COUNTER_TABLE" default:"counters" validate:"required"`
			Username     string `envconfig:"USERNAME"`
			Password     string `envconfig:"PASSWORD"`
		} `envconfig:"SURREALDB"`
	} `envconfig:"STORE"`

	Sequence struct {
		Backend string `envconfig:"BACKEND" default:"counter" validate:"oneof=counter count redis"`
		Name    string `envconfig:"NAME" default:"notes" validate:"required"`
		Redis   struct {
			Host     string `envconfig:"HOST" default:"localhost"`
			Port     string `envconfig:"PORT" default:"6379"`
			Password string `envconfig:"PASSWORD"`
			DB       int    `envconfig:"DB" default:"0"`
		} `envconfig:"REDIS"`
	} `envconfig:"SEQUENCE"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	} `envconfig:"EXTERNAL"`
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		if loadErr := godotenv.Load(".env"); loadErr != nil {
			log.Debug().Err(loadErr).Msg("No .env file loaded, continuing with existing environment variables")
		} else {
			log.Debug().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			return
		}

		err = validator.ValidateStruct(&conf)
		if err != nil {
			return
		}

		initialized = true

		log.Debug().Str("store", conf.Store.Backend).Str("sequence", conf.Sequence.Backend).Msg("Configuration initialized")
	})

	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}

// Load reads the environment into a fresh Config without touching the
// process-wide singleton.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("processing environment variables: %w", err)
	}

	if err := validator.ValidateStruct(&cfg); err != nil {
		return nil, fmt.Errorf("validating configuration: %w", err)
	}

	return &cfg, nil
}
