// Package config provides centralized configuration management for the application.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Defaults for the fixed query the tool runs when nothing is overridden.
const (
	DefaultURL          = "bugzilla.redhat.com"
	DefaultProduct      = "OpenShift Container Platform"
	DefaultComponent    = "Networking"
	DefaultSubComponent = "ovn-kubernetes"
	DefaultStatus       = "NEW"
)

// Config holds all configuration parameters for the application.
type Config struct {
	Bugzilla BugzillaConfig
	Query    QueryConfig
	Timing   bool
}

// BugzillaConfig holds Bugzilla connection configuration.
type BugzillaConfig struct {
	URL    string
	APIKey string
}

// QueryConfig holds the search filter values.
type QueryConfig struct {
	Product      string
	Component    string
	SubComponent string
	Status       string
}

// NewViper returns a viper instance with defaults and environment bindings set.
// Callers may bind command-line flags on top before calling Load.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("bugzilla.url", DefaultURL)
	v.SetDefault("query.product", DefaultProduct)
	v.SetDefault("query.component", DefaultComponent)
	v.SetDefault("query.sub_component", DefaultSubComponent)
	v.SetDefault("query.status", DefaultStatus)
	v.SetDefault("timing", true)

	_ = v.BindEnv("bugzilla.url", "BUGZILLA_URL")
	_ = v.BindEnv("bugzilla.api_key", "BUGZILLA_API_KEY")
	_ = v.BindEnv("query.product", "BUGZILLA_PRODUCT")
	_ = v.BindEnv("query.component", "BUGZILLA_COMPONENT")
	_ = v.BindEnv("query.sub_component", "BUGZILLA_SUB_COMPONENT")
	_ = v.BindEnv("query.status", "BUGZILLA_STATUS")

	return v
}

// LoadConfig loads configuration from defaults and environment variables.
func LoadConfig() (*Config, error) {
	return Load(NewViper())
}

// Load builds a Config from the given viper instance and validates it.
func Load(v *viper.Viper) (*Config, error) {
	config := &Config{
		Bugzilla: BugzillaConfig{
			URL:    strings.TrimSpace(v.GetString("bugzilla.url")),
			APIKey: v.GetString("bugzilla.api_key"),
		},
		Query: QueryConfig{
			Product:      v.GetString("query.product"),
			Component:    v.GetString("query.component"),
			SubComponent: v.GetString("query.sub_component"),
			Status:       v.GetString("query.status"),
		},
		Timing: v.GetBool("timing"),
	}

	if err := ValidateBugzillaConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// ValidateBugzillaConfig ensures that all required configuration values are provided.
func ValidateBugzillaConfig(config *Config) error {
	var missing []string

	if config.Bugzilla.URL == "" {
		missing = append(missing, "BUGZILLA_URL")
	}
	if config.Query.Product == "" {
		missing = append(missing, "BUGZILLA_PRODUCT")
	}
	if config.Query.Status == "" {
		missing = append(missing, "BUGZILLA_STATUS")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration values: %v", missing)
	}

	return nil
}
