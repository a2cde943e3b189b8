package oss

import (
	"Scoops/config"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
)

// NewClient uses the configured key pair, falling back to the OSS_ACCESS_KEY_* environment variables.
func NewClient(conf *config.OssConfig) *oss.Client {
	var provider credentials.CredentialsProvider
	if conf.AccessKeyID != "" {
		provider = credentials.NewStaticCredentialsProvider(conf.AccessKeyID, conf.AccessKeySecret)
	} else {
		provider = credentials.NewEnvironmentVariableCredentialsProvider()
	}
	cfg := oss.LoadDefaultConfig().
		WithCredentialsProvider(provider).
		WithEndpoint(conf.Endpoint).
		WithRegion(conf.Region)
	return oss.NewClient(cfg)
}
