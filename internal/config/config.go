package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey          = "PORT"
	dbConnEnvKey           = "DB_CONNECTION_URL"
	jwtSecretEnvKey        = "JWT_SECRET"
	tokenTTLEnvKey         = "TOKEN_TTL"
	bcryptCostEnvKey       = "BCRYPT_COST"
	shareHashLenEnvKey     = "SHARE_HASH_LENGTH"
	previewTimeoutEnvKey   = "PREVIEW_TIMEOUT"
	previewUserAgentEnvKey = "PREVIEW_USER_AGENT"
	faviconTemplateEnvKey  = "FAVICON_URL_TEMPLATE"
	appVersionEnvKey       = "APP_VERSION"
	logLevelEnvKey         = "LOG_LEVEL"
	corsOriginEnvKey       = "CORS_ALLOWED_ORIGIN"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/125.0.0.0 Safari/537.36"

type App struct {
	Port             string
	DBConnectionURL  string
	JWTSecret        string
	TokenTTL         time.Duration
	BcryptCost       int
	ShareHashLength  int
	PreviewTimeout   time.Duration
	PreviewUserAgent string
	FaviconTemplate  string
	Version          string
	LogLevel         string
	CORSOrigin       string
}

// NewApp reads the configuration from the environment and an optional config.yaml
// in the working directory.
func NewApp() (App, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(apiPortEnvKey, "5000")
	v.SetDefault(tokenTTLEnvKey, "0s")
	v.SetDefault(bcryptCostEnvKey, 7)
	v.SetDefault(shareHashLenEnvKey, 10)
	v.SetDefault(previewTimeoutEnvKey, "10s")
	v.SetDefault(previewUserAgentEnvKey, defaultUserAgent)
	v.SetDefault(faviconTemplateEnvKey, "https://www.google.com/s2/favicons?domain=%s&sz=64")
	v.SetDefault(appVersionEnvKey, "preview-v1")
	v.SetDefault(logLevelEnvKey, "info")
	v.SetDefault(corsOriginEnvKey, "*")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return App{}, fmt.Errorf("read config file: %w", err)
		}
	}

	// viper only resolves env vars for keys it knows about
	for _, key := range []string{dbConnEnvKey, jwtSecretEnvKey} {
		if err := v.BindEnv(key); err != nil {
			return App{}, fmt.Errorf("bind env %s: %w", key, err)
		}
		if v.GetString(key) == "" {
			return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, key)
		}
	}

	app := App{
		Port:             v.GetString(apiPortEnvKey),
		DBConnectionURL:  v.GetString(dbConnEnvKey),
		JWTSecret:        v.GetString(jwtSecretEnvKey),
		TokenTTL:         v.GetDuration(tokenTTLEnvKey),
		BcryptCost:       v.GetInt(bcryptCostEnvKey),
		ShareHashLength:  v.GetInt(shareHashLenEnvKey),
		PreviewTimeout:   v.GetDuration(previewTimeoutEnvKey),
		PreviewUserAgent: v.GetString(previewUserAgentEnvKey),
		FaviconTemplate:  v.GetString(faviconTemplateEnvKey),
		Version:          v.GetString(appVersionEnvKey),
		LogLevel:         v.GetString(logLevelEnvKey),
		CORSOrigin:       v.GetString(corsOriginEnvKey),
	}

	if app.ShareHashLength <= 0 {
		return App{}, fmt.Errorf("%s must be positive, got %d", shareHashLenEnvKey, app.ShareHashLength)
	}
	if app.PreviewTimeout <= 0 {
		return App{}, fmt.Errorf("%s must be positive, got %s", previewTimeoutEnvKey, app.PreviewTimeout)
	}
	if !strings.Contains(app.FaviconTemplate, "%s") {
		return App{}, fmt.Errorf("%s must contain a %%s placeholder for the hostname", faviconTemplateEnvKey)
	}

	return app, nil
}
