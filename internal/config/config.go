package config

import (
	"os"
	"strings"

	"github.com/go-yaml/yaml"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/totegamma/concrnt-favorite/internal/domain"
	"github.com/totegamma/concrnt-favorite/jwt"
)

const (
	DefaultPath   = "config.yaml"
	DefaultListen = ":8000"
)

type Config struct {
	NodeInfo NodeInfo `yaml:"nodeInfo"`
	Server   Server   `yaml:"server"`
}

type NodeInfo struct {
	FQDN       string `yaml:"fqdn"`
	PrivateKey string `yaml:"privatekey"`

	// ---
	Issuer string
}

type Server struct {
	Listen        string `yaml:"listen"`
	DBDriver      string `yaml:"dbDriver"` // postgres, sqlite
	PostgresDsn   string `yaml:"postgresDsn"`
	SqlitePath    string `yaml:"sqlitePath"`
	RedisAddr     string `yaml:"redisAddr"`
	RedisPassword string `yaml:"redisPassword"`
	RedisDB       int    `yaml:"redisDB"`
	EnableTrace   bool   `yaml:"enableTrace"`
	TraceEndpoint string `yaml:"traceEndpoint"`
	LogLevel      string `yaml:"logLevel"`  // debug, info, warn, error
	DevTokens     bool   `yaml:"devTokens"` // expose POST /api/v1/token
}

// Path returns the config file location, honoring FAVORITED_CONFIG after an
// optional .env has been loaded.
func Path() string {
	_ = godotenv.Load()
	if p := os.Getenv("FAVORITED_CONFIG"); p != "" {
		return p
	}
	return DefaultPath
}

func Load(path string) (Config, error) {

	file, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "config.Load")
	}
	defer file.Close()

	var config Config
	err = yaml.NewDecoder(file).Decode(&config)
	if err != nil {
		return Config{}, errors.Wrap(err, "config.Load: decode")
	}

	if dsn := os.Getenv("FAVORITED_POSTGRES_DSN"); dsn != "" {
		config.Server.PostgresDsn = dsn
	}

	config.applyDefaults()

	if config.NodeInfo.PrivateKey != "" {
		issuer, err := jwt.PrivKeyToAddr(config.NodeInfo.PrivateKey)
		if err != nil {
			return Config{}, errors.Wrap(err, "config.Load: invalid privatekey")
		}
		config.NodeInfo.Issuer = issuer
	}

	return config, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = DefaultListen
	}
	c.Server.DBDriver = strings.ToLower(c.Server.DBDriver)
	if c.Server.DBDriver == "" {
		c.Server.DBDriver = "postgres"
	}
	if c.Server.SqlitePath == "" {
		c.Server.SqlitePath = "favorites.db"
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = "info"
	}
}

// Domain converts the node info into the config handed to services.
func (n NodeInfo) Domain() domain.Config {
	return domain.Config{
		FQDN:       n.FQDN,
		PrivateKey: n.PrivateKey,
		Issuer:     n.Issuer,
	}
}
