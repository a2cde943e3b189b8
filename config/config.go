package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const minSecretLength = 32

// Config is loaded once at start-up and injected everywhere.
type Config struct {
	App       *App            `json:"app" yaml:"app"`
	Server    *Server         `json:"server" yaml:"server"`
	Database  *Database       `json:"database" yaml:"database"`
	Redis     *Redis          `json:"redis" yaml:"redis"`
	Jwt       *Jwt            `json:"jwt" yaml:"jwt"`
	Storage   *Storage        `json:"storage" yaml:"storage"`
	RocketMQ  *RocketMQConfig `json:"rocketmq" yaml:"rocketmq"`
	Inventory *Inventory      `json:"inventory" yaml:"inventory"`
	Pix       *Pix            `json:"pix" yaml:"pix"`
	Seed      *Seed           `json:"seed" yaml:"seed"`
}

// New reads the yaml file, applies .env and environment overrides and validates the result.
func New(filename string) (*Config, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", filename, err)
	}
	return Parse(content)
}

func Parse(content []byte) (*Config, error) {
	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// .env is optional
	_ = godotenv.Load()

	conf.setDefaults()
	conf.applyEnv()
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

func (c *Config) setDefaults() {
	if c.App == nil {
		c.App = &App{}
	}
	if c.App.Name == "" {
		c.App.Name = "scoops"
	}
	if c.Server == nil {
		c.Server = &Server{}
	}
	if c.Server.Http == 0 {
		c.Server.Http = 8080
	}
	if c.Server.BasePath == "" {
		c.Server.BasePath = "/api"
	}
	if c.Database == nil {
		c.Database = &Database{}
	}
	if c.Database.Driver == "" {
		c.Database.Driver = DriverMySQL
	}
	if c.Redis == nil {
		c.Redis = &Redis{Address: "127.0.0.1", Port: 6379}
	}
	if c.Jwt == nil {
		c.Jwt = &Jwt{}
	}
	if c.Jwt.AccessTTL == 0 {
		c.Jwt.AccessTTL = 2 * time.Hour
	}
	if c.Jwt.RefreshTTL == 0 {
		c.Jwt.RefreshTTL = 7 * 24 * time.Hour
	}
	if c.Jwt.Issuer == "" {
		c.Jwt.Issuer = c.App.Name
	}
	if c.Storage == nil {
		c.Storage = &Storage{}
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = StorageLocal
	}
	if c.Storage.LocalDir == "" {
		c.Storage.LocalDir = "wwwroot/images"
	}
	if c.Storage.PublicPrefix == "" {
		c.Storage.PublicPrefix = "/images"
	}
	if c.Storage.MaxSize == 0 {
		c.Storage.MaxSize = 5 << 20
	}
	if c.RocketMQ == nil {
		c.RocketMQ = &RocketMQConfig{}
	}
	if c.Inventory == nil {
		c.Inventory = &Inventory{}
	}
	if c.Inventory.LowStockThreshold == 0 {
		c.Inventory.LowStockThreshold = 5
	}
	if c.Inventory.TopProducts == 0 {
		c.Inventory.TopProducts = 5
	}
	if c.Pix == nil {
		c.Pix = &Pix{}
	}
	if c.Pix.Key == "" {
		c.Pix.Key = "123e4567-e89b-12d3-a456-426614174000"
	}
	if c.Pix.MerchantName == "" {
		c.Pix.MerchantName = "Scoops Amanda"
	}
	if c.Pix.City == "" {
		c.Pix.City = "Sao Paulo"
	}
	if c.Seed == nil {
		c.Seed = &Seed{}
	}
	if c.Seed.AdminEmail == "" {
		c.Seed.AdminEmail = "admin@scoops.com"
	}
	if c.Seed.AdminName == "" {
		c.Seed.AdminName = "Amanda Admin"
	}
}

func (c *Config) applyEnv() {
	setString(&c.Jwt.Secret, "JWT_SECRET")
	setString(&c.Database.Driver, "DATABASE_DRIVER")
	setString(&c.Database.Dsn, "DATABASE_DSN")
	setString(&c.Redis.Address, "REDIS_ADDR")
	setString(&c.Redis.Password, "REDIS_PASSWORD")
	setString(&c.Seed.AdminEmail, "ADMIN_EMAIL")
	setString(&c.Seed.AdminPassword, "ADMIN_PASSWORD")
	setString(&c.Storage.Driver, "STORAGE_DRIVER")
	if v := os.Getenv("HTTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Http = port
		}
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// Validate fails fast on settings the process cannot run without.
func (c *Config) Validate() error {
	var errs []error
	if c.Jwt.Secret == "" {
		errs = append(errs, errors.New("jwt.secret (JWT_SECRET) is required"))
	} else if len(c.Jwt.Secret) < minSecretLength {
		errs = append(errs, fmt.Errorf("jwt.secret must have at least %d bytes", minSecretLength))
	}
	switch c.Database.Driver {
	case DriverMySQL, DriverPostgres:
	default:
		errs = append(errs, fmt.Errorf("database.driver %q is not supported", c.Database.Driver))
	}
	if c.Database.Dsn == "" {
		errs = append(errs, errors.New("database.dsn (DATABASE_DSN) is required"))
	}
	switch c.Storage.Driver {
	case StorageLocal:
	case StorageOss:
		if c.Storage.Oss == nil || c.Storage.Oss.Bucket == "" {
			errs = append(errs, errors.New("storage.oss.bucket is required for the oss driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("storage.driver %q is not supported", c.Storage.Driver))
	}
	if c.RocketMQ.Enabled && len(c.RocketMQ.NameServer) == 0 {
		errs = append(errs, errors.New("rocketmq.nameserver is required when rocketmq is enabled"))
	}
	return errors.Join(errs...)
}

// Debug reports whether debug mode is on.
func (c *Config) Debug() bool {
	return c.App.Debug
}
