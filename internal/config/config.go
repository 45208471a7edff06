// Package config loads the service configuration from the environment once
// at startup. Missing credentials are a fatal condition: the process refuses
// to serve rather than run without them.
package config

import (
	"errors"

	"github.com/spf13/viper"

	"github.com/goatkit/contactform/internal/helpdesk"
	"github.com/goatkit/contactform/internal/thread"
)

// Environment keys. The label ids are public identifiers, safe to expose to
// the browser form.
const (
	EnvAPIKey     = "PLAIN_API_KEY"
	EnvAPIURL     = "PLAIN_API_URL"
	EnvListenAddr = "LISTEN_ADDR"

	labelKeyPrefix = "PLAIN_LABEL_TYPE_ID_"
)

// ErrMissingAPIKey is returned when the required helpdesk credential is not
// set.
var ErrMissingAPIKey = errors.New(EnvAPIKey + " environment variable is not set")

// Config is the process configuration, constructed once at startup and
// passed by reference into the handlers.
type Config struct {
	// APIKey authenticates against the helpdesk API. Required.
	APIKey string
	// APIURL is the helpdesk API base URL.
	APIURL string
	// ListenAddr is the HTTP listen address.
	ListenAddr string
	// LabelTypeIDs holds the configured helpdesk label id per category.
	// Categories without configuration are absent.
	LabelTypeIDs thread.LabelConfig
}

// Load reads the configuration from the environment. The API key is
// required; per-category label ids are optional.
func Load() (*Config, error) {
	v := newViper()

	apiKey := v.GetString(EnvAPIKey)
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	return &Config{
		APIKey:       apiKey,
		APIURL:       v.GetString(EnvAPIURL),
		ListenAddr:   v.GetString(EnvListenAddr),
		LabelTypeIDs: loadLabels(v),
	}, nil
}

// LoadLabels reads only the per-category label configuration. Used by the
// client-side CLI, which builds payloads but never needs the API key.
func LoadLabels() thread.LabelConfig {
	return loadLabels(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault(EnvAPIURL, helpdesk.DefaultAPIURL)
	v.SetDefault(EnvListenAddr, ":8080")
	return v
}

func loadLabels(v *viper.Viper) thread.LabelConfig {
	labels := make(thread.LabelConfig)
	for _, category := range thread.Categories {
		key := labelKeyPrefix + categorySuffix(category)
		if id := v.GetString(key); id != "" {
			labels[category] = id
		}
	}
	return labels
}

func categorySuffix(c thread.Category) string {
	switch c {
	case thread.CategoryBug:
		return "BUG"
	case thread.CategoryDemo:
		return "DEMO"
	case thread.CategoryFeature:
		return "FEATURE"
	case thread.CategoryQuestion:
		return "QUESTION"
	case thread.CategorySecurity:
		return "SECURITY"
	default:
		return ""
	}
}
