package utils

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	UrlPrefix       string
	DbConnectionUrl string
	RedisUrl        string
	SentryDsn       string
	MetaPath        string
	LogLevel        string
	DepthLimit      int
	CacheTTL        time.Duration
}

const (
	defaultDepthLimit = 2
	defaultCacheTTL   = 5 * time.Minute
)

//GetConfig reads the .env file of the working directory if there is one and
//then overrides the defaults with the process environment.
func GetConfig() *AppConfig {
	godotenv.Load()

	var appConfig = AppConfig{
		UrlPrefix:  "/relview",
		MetaPath:   "meta.json",
		LogLevel:   "info",
		DepthLimit: defaultDepthLimit,
		CacheTTL:   defaultCacheTTL,
	}

	if urlPrefix := os.Getenv("URL_PREFIX"); len(urlPrefix) > 0 {
		appConfig.UrlPrefix = urlPrefix
	}

	appConfig.DbConnectionUrl = os.Getenv("DB_CONNECTION_URL")
	appConfig.RedisUrl = os.Getenv("REDIS_URL")
	appConfig.SentryDsn = os.Getenv("SENTRY_DSN")

	if metaPath := os.Getenv("META_PATH"); len(metaPath) > 0 {
		appConfig.MetaPath = metaPath
	}

	if logLevel := os.Getenv("LOG_LEVEL"); len(logLevel) > 0 {
		appConfig.LogLevel = logLevel
	}

	if depthLimit, err := strconv.Atoi(os.Getenv("DEPTH_LIMIT")); err == nil && depthLimit > 0 {
		appConfig.DepthLimit = depthLimit
	}

	if ttl, err := time.ParseDuration(os.Getenv("CACHE_TTL")); err == nil {
		appConfig.CacheTTL = ttl
	}

	return &appConfig
}
