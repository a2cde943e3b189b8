package config

import "time"

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

type Database struct {
	Driver          string        `json:"driver" yaml:"driver"`
	Dsn             string        `json:"dsn" yaml:"dsn"`
	MaxIdleConns    int           `json:"max_idle_conns" yaml:"max_idle_conns"`
	MaxOpenConns    int           `json:"max_open_conns" yaml:"max_open_conns"`
	ConnMaxLifetime time.Duration `json:"conn_max_lifetime" yaml:"conn_max_lifetime"`
	AutoMigrate     bool          `json:"auto_migrate" yaml:"auto_migrate"`
}
