// Package config defines the data structures related to configuration and
// includes functions for loading and validating it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/iwvelando/planning-trap/pkg/constants"
	"github.com/iwvelando/planning-trap/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for planning-trap.
type Configuration struct {
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
	Storage StorageConfig `yaml:"storage,omitempty"`
	Share   ShareConfig   `yaml:"share,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// StorageConfig selects where the hourly rate and hours per week are kept
// between runs.
type StorageConfig struct {
	Backend       string `yaml:"backend,omitempty"` // memory, sqlite, redis
	Path          string `yaml:"path,omitempty"`    // sqlite database file
	RedisAddress  string `yaml:"redisAddress,omitempty"`
	RedisPassword string `yaml:"redisPassword,omitempty"`
	RedisDB       int    `yaml:"redisDB,omitempty"`
	Key           string `yaml:"key,omitempty"`
}

// ShareConfig holds the addresses used in share text.
type ShareConfig struct {
	SiteURL string `yaml:"siteURL,omitempty"`
	CTAURL  string `yaml:"ctaURL,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Configuration {
	return &Configuration{
		Output: OutputConfig{Format: constants.OutputFormatPretty},
		Storage: StorageConfig{
			Backend:      constants.StorageBackendSQLite,
			Path:         constants.DefaultSQLitePath,
			RedisAddress: constants.DefaultRedisAddress,
			Key:          constants.PreferencesKey,
		},
		Share: ShareConfig{
			SiteURL: constants.DefaultShareURL,
			CTAURL:  constants.DefaultCTAURL,
		},
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	def := Default()

	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)
	v.SetDefault("logging.outputFile", def.Logging.OutputFile)
	v.SetDefault("output.format", def.Output.Format)
	v.SetDefault("storage.backend", def.Storage.Backend)
	v.SetDefault("storage.path", def.Storage.Path)
	v.SetDefault("storage.redisAddress", def.Storage.RedisAddress)
	v.SetDefault("storage.redisPassword", def.Storage.RedisPassword)
	v.SetDefault("storage.redisDB", def.Storage.RedisDB)
	v.SetDefault("storage.key", def.Storage.Key)
	v.SetDefault("share.siteURL", def.Share.SiteURL)
	v.SetDefault("share.ctaURL", def.Share.CTAURL)

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigType("yml")
	return v
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. Environment variables prefixed with PLANNING_TRAP_
// override file values.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return decode(v)
}

// LoadOptionalConfiguration behaves like LoadConfiguration but returns the
// defaults, with environment overrides, when the file does not exist.
func LoadOptionalConfiguration(configPath string) (*Configuration, error) {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return LoadConfiguration(configPath)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file, %s", err)
		}
	}

	return decode(newViper())
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &configuration, nil
}

// Validate checks the enumerated settings.
func (c *Configuration) Validate() error {
	if err := validation.ValidateOutputFormat(c.Output.Format); err != nil {
		return err
	}
	return validation.ValidateStorageBackend(c.Storage.Backend)
}
