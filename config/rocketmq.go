package config

type RocketMQConfig struct {
	Enabled bool `yaml:"enabled"`

	NameServer []string `yaml:"nameserver"`

	Producer Producer `yaml:"producer"`

	Topic string `yaml:"topic"`
}

type Producer struct {
	Group string `yaml:"group"`
	Retry int    `yaml:"retry"`
}

func ProvideRocketMQConfig(cfg *Config) *RocketMQConfig {
	return cfg.RocketMQ
}
