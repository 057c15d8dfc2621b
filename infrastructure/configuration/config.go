package configuration

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"bunny-video/infrastructure/logger"

	"github.com/spf13/viper"
)

type Config struct {
	App         App         `json:"app"`
	Bunny       Bunny       `json:"bunny"`
	Cache       Cache       `json:"cache"`
	RedisClient RedisClient `json:"redisClient"`
	Settings    Settings    `json:"settings"`
	Database    Database    `json:"database"`
	Cors        Cors        `json:"cors"`
	Logger      Logger      `json:"logger"`
}

type App struct {
	Port        int    `json:"port"`
	SecretKey   string `json:"secretKey"`
	SiteURL     string `json:"siteURL"`
	Version     string `json:"version"`
	RoutePrefix string `json:"routePrefix"`
	TLSEnabled  bool   `json:"tlsEnabled"`
	TLSCertFile string `json:"tlsCertFile"`
	TLSKeyFile  string `json:"tlsKeyFile"`
}

type Bunny struct {
	APIBase   string `json:"apiBase"`
	EmbedBase string `json:"embedBase"`
	LibraryID string `json:"libraryId"`
	AccessKey string `json:"accessKey"`
}

type Cache struct {
	// Backend is "memory" or "redis"
	Backend string `json:"backend"`
}

type RedisClient struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	DB       int    `json:"db"`
}

type Settings struct {
	// Backend is "memory", "postgres" or "mssql"
	Backend string `json:"backend"`
}

type Database struct {
	Psql  Db `json:"psql"`
	Mssql Db `json:"mssql"`
}

type Db struct {
	Name     string `json:"name"`
	Host     string `json:"host"`
	Port     string `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
}

type Cors struct {
	AllowOrigins []string `json:"allowOrigins"`
}

type Logger struct {
	Format string `json:"format"`
	Level  string `json:"level"`
}

const (
	DefaultAPIBase   = "https://video.bunnycdn.com"
	DefaultEmbedBase = "https://iframe.mediadelivery.net/embed"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.port", 10001)
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.siteURL", "http://localhost")
	v.SetDefault("bunny.apiBase", DefaultAPIBase)
	v.SetDefault("bunny.embedBase", DefaultEmbedBase)
	v.SetDefault("cache.backend", "memory")
	v.SetDefault("redisClient.host", "localhost")
	v.SetDefault("redisClient.port", "6379")
	v.SetDefault("settings.backend", "memory")
	v.SetDefault("database.psql.port", "5432")
	v.SetDefault("database.mssql.port", "1433")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.level", "info")
}

// LoadConfig reads config[-ENV].json and applies env overrides.
func LoadConfig() (*Config, error) {
	name := getConfig()
	v := viper.New()
	v.SetConfigName(name)
	v.SetConfigType("json")
	v.AddConfigPath(".")
	v.AddConfigPath("../")
	v.AddConfigPath("../../")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.GetLogger().WithField("config", name).Warn("Config file not found, using defaults and environment")
		} else {
			return nil, fmt.Errorf("read config %s: %w", name, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	initApp(&cfg)
	initBunny(&cfg)
	initDatabase(&cfg)

	logger.GetLogger().WithFields(map[string]interface{}{
		"config":          name,
		"cacheBackend":    cfg.Cache.Backend,
		"settingsBackend": cfg.Settings.Backend,
		"libraryIdSet":    cfg.Bunny.LibraryID != "",
		"accessKeySet":    cfg.Bunny.AccessKey != "",
	}).Info("Config set up successfully")

	return &cfg, nil
}

func getConfig() string {
	name := "config"
	env := os.Getenv("ENV")
	if env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func initApp(c *Config) {
	if v := os.Getenv("SECRET_KEY"); v != "" {
		c.App.SecretKey = v
	}
	// APP_PORT -> PORT -> config -> default
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.App.Port = p
		}
	} else if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.App.Port = p
		}
	}
	if c.App.Port == 0 {
		c.App.Port = 10001
	}
	if v := os.Getenv("TLS_ENABLED"); v != "" {
		switch v {
		case "1", "true", "TRUE", "True":
			c.App.TLSEnabled = true
		case "0", "false", "FALSE", "False":
			c.App.TLSEnabled = false
		}
	}
	if c.App.TLSCertFile == "" {
		c.App.TLSCertFile = os.Getenv("TLS_CERT_FILE")
	}
	if c.App.TLSKeyFile == "" {
		c.App.TLSKeyFile = os.Getenv("TLS_KEY_FILE")
	}
	c.App.RoutePrefix = strings.TrimSuffix(c.App.RoutePrefix, "/")
	if c.App.SecretKey == "" {
		logger.GetLogger().Warn("App.SecretKey not set; every caller is treated as anonymous. Provide SECRET_KEY via environment.")
	}
}

func initBunny(c *Config) {
	c.Bunny.LibraryID = getConfigValue(c.Bunny.LibraryID, "BUNNY_LIBRARY_ID", "")
	c.Bunny.AccessKey = getConfigValue(c.Bunny.AccessKey, "BUNNY_ACCESS_KEY", "")
	c.Bunny.APIBase = strings.TrimSuffix(getConfigValue(c.Bunny.APIBase, "BUNNY_API_BASE", DefaultAPIBase), "/")
	c.Bunny.EmbedBase = strings.TrimSuffix(getConfigValue(c.Bunny.EmbedBase, "BUNNY_EMBED_BASE", DefaultEmbedBase), "/")
}

func initDatabase(c *Config) {
	c.Database.Psql.Name = getConfigValue(c.Database.Psql.Name, "DB_NAME", "")
	c.Database.Psql.Host = getConfigValue(c.Database.Psql.Host, "DB_HOST", "localhost")
	c.Database.Psql.Port = getConfigValue(c.Database.Psql.Port, "DB_PORT", "5432")
	c.Database.Psql.User = getConfigValue(c.Database.Psql.User, "DB_USER", "")
	c.Database.Psql.Password = getConfigValue(c.Database.Psql.Password, "DB_PASSWORD", "")

	c.Database.Mssql.Name = getConfigValue(c.Database.Mssql.Name, "MSSQL_DB_NAME", "")
	c.Database.Mssql.Host = getConfigValue(c.Database.Mssql.Host, "MSSQL_HOST", "localhost")
	c.Database.Mssql.Port = getConfigValue(c.Database.Mssql.Port, "MSSQL_PORT", "1433")
	c.Database.Mssql.User = getConfigValue(c.Database.Mssql.User, "MSSQL_USER", "")
	c.Database.Mssql.Password = getConfigValue(c.Database.Mssql.Password, "MSSQL_PASSWORD", "")
}

// getConfigValue prefers the environment, then a non-placeholder config value, then the default
func getConfigValue(configValue, envKey, defaultValue string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	if configValue != "" && !strings.HasPrefix(configValue, "YOUR_") {
		return configValue
	}
	return defaultValue
}
