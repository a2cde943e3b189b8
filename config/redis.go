package config

import (
	"fmt"
	"strings"
)

// Redis holds the refresh-token store connection.
type Redis struct {
	Address  string `json:"address" yaml:"address"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Database int    `json:"database" yaml:"database"`
}

// Addr accepts either a bare host plus port or a full host:port in Address.
func (r *Redis) Addr() string {
	if r.Port == 0 || strings.Contains(r.Address, ":") {
		return r.Address
	}
	return fmt.Sprintf("%s:%d", r.Address, r.Port)
}
