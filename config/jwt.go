package config

import "time"

type Jwt struct {
	Secret     string        `json:"-" yaml:"secret"`
	Issuer     string        `json:"issuer" yaml:"issuer"`
	AccessTTL  time.Duration `json:"access_ttl" yaml:"access_ttl"`
	RefreshTTL time.Duration `json:"refresh_ttl" yaml:"refresh_ttl"`
}
