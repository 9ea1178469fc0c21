// Package config loads the typed service configuration from a YAML file
// with environment-variable overrides.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const defaultPath = "."

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Database struct {
		// Path to the sqlite file backing the collection store.
		Path string `json:"path" yaml:"path"`
	} `json:"database" yaml:"database"`

	// Store names the persisted collections. The defaults match the keys
	// the original intake tool used, so existing exports stay compatible.
	Store StoreConfig `json:"store" yaml:"store"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Expiry configures the automatic dossier expiry rule.
	Expiry *ExpiryConfig `json:"expiry" yaml:"expiry"`

	// Advisory configures the optional planning-advice backend.
	Advisory *AdvisoryConfig `json:"advisory" yaml:"advisory"`
}

// StoreConfig names the persisted collection keys.
type StoreConfig struct {
	UsersKey      string `json:"usersKey" yaml:"usersKey"`
	ApplicantsKey string `json:"applicantsKey" yaml:"applicantsKey"`
}

// ExpiryConfig defines the automatic expiry rule parameters.
type ExpiryConfig struct {
	// Days a dossier may stay in Pending or Under Technical Review before
	// the read-time sweep forces it to Expired.
	Days int `json:"days" yaml:"days"`
}

// AdvisoryConfig defines the planning-advice backend parameters.
type AdvisoryConfig struct {
	Enabled  bool          `json:"enabled" yaml:"enabled"`
	Endpoint string        `json:"endpoint" yaml:"endpoint"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
	// Fallback is returned whenever the backend is disabled, slow, or broken.
	Fallback string `json:"fallback" yaml:"fallback"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

const (
	defaultUsersKey      = "panabo_zoning_users"
	defaultApplicantsKey = "panabo_zoning_applicants"
	defaultExpiryDays    = 12
	defaultFallback      = "Planning advice currently unavailable. Please consult the City Planning guidelines manually."
)

// LoadWithEnv loads .yaml files through koanf, layering environment
// variables (dot-separated from underscores) on top.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// SECRETKEY_ACCESS -> secretkey.access; matching against the
			// struct is case-insensitive below.
			return strings.ReplaceAll(strings.ToLower(k), "_", "."), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.Store.UsersKey) == "" {
		cfg.Store.UsersKey = defaultUsersKey
	}
	if strings.TrimSpace(cfg.Store.ApplicantsKey) == "" {
		cfg.Store.ApplicantsKey = defaultApplicantsKey
	}
	if cfg.Expiry == nil {
		cfg.Expiry = &ExpiryConfig{}
	}
	if cfg.Expiry.Days <= 0 {
		cfg.Expiry.Days = defaultExpiryDays
	}
	if cfg.Advisory == nil {
		cfg.Advisory = &AdvisoryConfig{}
	}
	if strings.TrimSpace(cfg.Advisory.Fallback) == "" {
		cfg.Advisory.Fallback = defaultFallback
	}
	if cfg.Advisory.Timeout <= 0 {
		cfg.Advisory.Timeout = 5 * time.Second
	}
}
