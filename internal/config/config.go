package config

import (
	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/nimasrn/money-management/pkg/logger"
	"github.com/nimasrn/money-management/pkg/pg"
	"github.com/pkg/errors"
)

var config *Config

// Config holds the settings of the api and cli binaries.
type Config struct {
	AppEnv              string `env:"APP_ENV,default=dev"`
	AppName             string `env:"APP_NAME,default=money_management"`
	AppDebug            bool   `env:"APP_DEBUG,default=0"`
	AppDebugMetricsAddr string `env:"APP_DEBUG_METRIC_ADDR"`
	AppDebugMetricsURI  string `env:"APP_DEBUG_METRIC_URI,default=/metrics"`

	HttpListenAddr      string `env:"HTTP_LISTEN_ADDR,default=:8080"`
	HttpBaseRequestUrl  string `env:"HTTP_BASE_REQUEST_URI,default=/api/v1"`
	HttpCorsAllowOrigin string `env:"HTTP_CORS_ALLOW_ORIGIN,default=*"`

	DbDriver   string `env:"DB_DRIVER,default=postgres"`
	SqlitePath string `env:"SQLITE_PATH,default=money.db"`

	PostgresReadHost     string `env:"POSTGRES_READ_HOST"`
	PostgresReadPort     string `env:"POSTGRES_READ_PORT"`
	PostgresReadUser     string `env:"POSTGRES_READ_USER"`
	PostgresReadPassword string `env:"POSTGRES_READ_PASSWORD"`
	PostgresReadDatabase string `env:"POSTGRES_READ_DBNAME"`

	PostgresWriteHost     string `env:"POSTGRES_WRITE_HOST"`
	PostgresWritePort     string `env:"POSTGRES_WRITE_PORT"`
	PostgresWriteUser     string `env:"POSTGRES_WRITE_USER"`
	PostgresWritePassword string `env:"POSTGRES_WRITE_PASSWORD"`
	PostgresWriteDatabase string `env:"POSTGRES_WRITE_DBNAME"`

	RedisAddr               string `env:"REDIS_ADDR"`
	RedisUsername           string `env:"REDIS_USER"`
	RedisPassword           string `env:"REDIS_PASS"`
	RedisDatabase           int    `env:"REDIS_DATABASE"`
	RedisUniversalKeyPrefix string `env:"REDIS_UNIVERSAL_KEY_PREFIX,default=money:"`

	AuthJwtSecret string `env:"AUTH_JWT_SECRET"`
	AuthJwtIssuer string `env:"AUTH_JWT_ISSUER,default=money-identity"`

	PromNamespace string `env:"PROM_NAMESPACE,default=money"`

	LogLevel string `env:"LOG_LEVEL"`

	ReportLogoPath string `env:"REPORT_LOGO_PATH"`
}

func Load(path string) error {
	logger.Info("loading configs..", "path", path)
	c := &Config{}
	var err error
	if path != "" {
		logger.Info("trying to publish env from file", "path", path)
		err = godotenv.Load(path)
		if err != nil {
			return errors.Wrap(err, "failed to load configuration file "+path)
		}
	}

	_, err = env.UnmarshalFromEnviron(c)
	if err != nil {
		return errors.Wrap(err, "failed to map env variables to Configuration object")
	}

	if c.AuthJwtSecret == "" {
		return errors.New("AUTH_JWT_SECRET must be set")
	}

	config = c
	return nil
}

func Get() *Config {
	if config == nil {
		logger.Panic("Config is not initialized")
	}
	return config
}

// ReadDB and WriteDB build the connection settings for the configured
// driver. With sqlite both point at the same file.
func (c *Config) ReadDB() pg.Config {
	return pg.Config{
		Driver:   c.DbDriver,
		Path:     c.SqlitePath,
		Host:     c.PostgresReadHost,
		Port:     c.PostgresReadPort,
		User:     c.PostgresReadUser,
		Password: c.PostgresReadPassword,
		Database: c.PostgresReadDatabase,
	}
}

func (c *Config) WriteDB() pg.Config {
	return pg.Config{
		Driver:   c.DbDriver,
		Path:     c.SqlitePath,
		Host:     c.PostgresWriteHost,
		Port:     c.PostgresWritePort,
		User:     c.PostgresWriteUser,
		Password: c.PostgresWritePassword,
		Database: c.PostgresWriteDatabase,
	}
}
