package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Shipment source kinds accepted by SHIPMENT_SOURCE.
const (
	SourceFile = "file"
	SourceHTTP = "http"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// Redis holds the acknowledgement store connection.
	Redis RedisConfig `mapstructure:",squash"`

	// Shipments selects where shipment records and events come from.
	Shipments ShipmentSourceConfig `mapstructure:",squash"`

	// Risk tunes the assessment engine.
	Risk RiskConfig `mapstructure:",squash"`
}

// RedisConfig holds the Redis connection details.
type RedisConfig struct {
	// URL is a redis:// connection string.
	URL string `mapstructure:"REDIS_URL" required:"true"`
	// AckKeyPrefix namespaces acknowledgement keys.
	AckKeyPrefix string `mapstructure:"ACK_KEY_PREFIX" default:"ack:"`
}

// ShipmentSourceConfig configures the upstream shipment feed.
type ShipmentSourceConfig struct {
	// Source is either "file" or "http".
	Source string `mapstructure:"SHIPMENT_SOURCE" default:"file"`
	// APIURL is the base URL of the upstream API, required for the http source.
	APIURL string `mapstructure:"SHIPMENT_API_URL"`
	// SeedFile is the JSON seed read by the file source.
	SeedFile string `mapstructure:"SHIPMENT_SEED_FILE" default:"data/shipments.json"`
	// APITimeoutSeconds bounds each upstream request.
	APITimeoutSeconds int `mapstructure:"SHIPMENT_API_TIMEOUT_SECONDS" default:"10"`
}

// APITimeout returns the upstream request timeout.
func (c ShipmentSourceConfig) APITimeout() time.Duration {
	return time.Duration(c.APITimeoutSeconds) * time.Second
}

// RiskConfig holds engine and service tuning.
type RiskConfig struct {
	// RulesFile overlays the embedded rules table when set.
	RulesFile string `mapstructure:"RISK_RULES_FILE"`
	// AssessConcurrency bounds parallel assessments in list requests.
	AssessConcurrency int `mapstructure:"ASSESS_CONCURRENCY" default:"8"`
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the rules that depend on more than one field.
func (c *AppConfig) Validate() error {
	c.Shipments.Source = strings.ToLower(strings.TrimSpace(c.Shipments.Source))

	switch c.Shipments.Source {
	case SourceFile:
		if c.Shipments.SeedFile == "" {
			return errors.New("missing required configuration: SHIPMENT_SEED_FILE")
		}
	case SourceHTTP:
		if c.Shipments.APIURL == "" {
			return errors.New("missing required configuration: SHIPMENT_API_URL")
		}
		if c.Shipments.APITimeoutSeconds <= 0 {
			return fmt.Errorf("invalid configuration: SHIPMENT_API_TIMEOUT_SECONDS must be positive, got %d", c.Shipments.APITimeoutSeconds)
		}
	default:
		return fmt.Errorf("invalid configuration: SHIPMENT_SOURCE %q (want %q or %q)", c.Shipments.Source, SourceFile, SourceHTTP)
	}

	if c.Risk.AssessConcurrency <= 0 {
		return fmt.Errorf("invalid configuration: ASSESS_CONCURRENCY must be positive, got %d", c.Risk.AssessConcurrency)
	}

	return nil
}

// processTags iterates over the struct fields, binds every key to the
// environment and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		if key == "" {
			continue
		}

		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("binding %s: %w", key, err)
		}

		if defaultValue := field.Tag.Get("default"); defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && isZero(val.Field(i)) {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
