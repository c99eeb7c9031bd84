// Package config loads the service configuration from .env files, an
// optional config file and the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/mpdx/staff-report/internal/report"
	"github.com/spf13/viper"
)

// FileEnv is the environment variable pointing to an optional config file.
const FileEnv = "MPDX_REPORT_CONFIG"

type Config struct {
	APIURL           string
	Port             int
	DatabasePath     string
	LogFormat        string
	GinMode          string
	CORSAllowOrigins []string
	EnablePprof      bool

	ReportLocale    string
	ReportCurrency  string
	ReportCacheSize int
}

// Load reads the configuration.
//
// Values from the environment override values from the config file, which
// override the defaults. The given .env files, or ".env" if none are given,
// are loaded into the environment first if they exist. Variables that are
// already set are not overwritten by them.
func Load(envFiles ...string) (Config, error) {
	_ = godotenv.Load(envFiles...)

	v := viper.New()

	v.SetDefault("api_url", "")
	v.SetDefault("port", 8080)
	v.SetDefault("database_path", "data/gorm.db")
	v.SetDefault("log_format", "")
	v.SetDefault("gin_mode", gin.ReleaseMode)
	v.SetDefault("cors_allow_origins", "")
	v.SetDefault("enable_pprof", false)
	v.SetDefault("report_locale", "en-US")
	v.SetDefault("report_currency", "USD")
	v.SetDefault("report_cache_size", 128)

	if path := os.Getenv(FileEnv); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	v.AutomaticEnv()

	return Config{
		APIURL:           v.GetString("api_url"),
		Port:             v.GetInt("port"),
		DatabasePath:     v.GetString("database_path"),
		LogFormat:        v.GetString("log_format"),
		GinMode:          v.GetString("gin_mode"),
		CORSAllowOrigins: strings.Fields(v.GetString("cors_allow_origins")),
		EnablePprof:      v.GetBool("enable_pprof"),
		ReportLocale:     v.GetString("report_locale"),
		ReportCurrency:   v.GetString("report_currency"),
		ReportCacheSize:  v.GetInt("report_cache_size"),
	}, nil
}

// Validate validates the configuration and returns an error if invalid
func (c Config) Validate() error {
	var problems []string

	if c.APIURL == "" {
		problems = append(problems, "API_URL must be set")
	} else if _, err := c.BaseURL(); err != nil {
		problems = append(problems, err.Error())
	}

	if c.Port < 1 || c.Port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", c.Port))
	}

	if c.DatabasePath == "" {
		problems = append(problems, "DATABASE_PATH cannot be empty")
	}

	switch c.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		problems = append(problems, fmt.Sprintf("invalid GIN_MODE '%s': must be one of debug, release, test", c.GinMode))
	}

	if _, err := c.Localizer(); err != nil {
		problems = append(problems, err.Error())
	}

	if c.ReportCacheSize < 0 {
		problems = append(problems, fmt.Sprintf("invalid report cache size %d: must not be negative", c.ReportCacheSize))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}

	return nil
}

// BaseURL parses the external URL of the API.
func (c Config) BaseURL() (*url.URL, error) {
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API_URL '%s': %w", c.APIURL, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errors.New("API_URL must use the http or https scheme")
	}

	return u, nil
}

// Localizer returns the Localizer for the configured locale and currency.
func (c Config) Localizer() (*report.Localizer, error) {
	return report.ParseLocalizer(c.ReportLocale, c.ReportCurrency)
}

// HumanLogs reports if logs should be human readable instead of JSON.
// Without an explicit LOG_FORMAT, logs are human readable in debug mode.
func (c Config) HumanLogs() bool {
	if c.LogFormat == "" {
		return c.GinMode == gin.DebugMode
	}
	return c.LogFormat == "human"
}
