package config

const (
	StorageLocal = "local"
	StorageOss   = "oss"
)

type Storage struct {
	Driver       string     `json:"driver" yaml:"driver"`
	LocalDir     string     `json:"local_dir" yaml:"local_dir"`
	PublicPrefix string     `json:"public_prefix" yaml:"public_prefix"`
	MaxSize      int64      `json:"max_size" yaml:"max_size"`
	Oss          *OssConfig `json:"oss" yaml:"oss"`
}

type OssConfig struct {
	Endpoint        string `json:"endpoint" yaml:"endpoint"`
	Region          string `json:"region" yaml:"region"`
	Bucket          string `json:"bucket" yaml:"bucket"`
	AccessKeyID     string `json:"ak" yaml:"ak"`
	AccessKeySecret string `json:"-" yaml:"sk"`
	CdnURL          string `json:"cdn_url" yaml:"cdn_url"`
}

func ProvideStorageConfig(cfg *Config) *Storage {
	return cfg.Storage
}
