package rocketmq

import (
	"Scoops/config"
	"Scoops/pkg/log"
	"context"
	"fmt"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/apache/rocketmq-client-go/v2/producer"
	"github.com/apache/rocketmq-client-go/v2/rlog"
	"go.uber.org/zap"
)

func init() {
	rlog.SetLogLevel("error")
}

// Producer sends every message to the single configured topic.
type Producer struct {
	producer rocketmq.Producer
	topic    string
}

func NewProducer(cfg *config.RocketMQConfig) (*Producer, error) {
	opts := []producer.Option{
		producer.WithNameServer(cfg.NameServer),
		producer.WithGroupName(cfg.Producer.Group),
	}
	if cfg.Producer.Retry > 0 {
		opts = append(opts, producer.WithRetry(cfg.Producer.Retry))
	}
	p, err := rocketmq.NewProducer(opts...)
	if err != nil {
		return nil, fmt.Errorf("new producer: %w", err)
	}
	if err = p.Start(); err != nil {
		return nil, fmt.Errorf("start producer: %w", err)
	}
	log.L.Info("init producer success", zap.Strings("nameserver", cfg.NameServer), zap.String("topic", cfg.Topic))

	return &Producer{producer: p, topic: cfg.Topic}, nil
}

func (p *Producer) SendMsg(ctx context.Context, tag string, key string, body []byte) error {
	msg := primitive.NewMessage(p.topic, body).WithTag(tag).WithKeys([]string{key})

	res, err := p.producer.SendSync(ctx, msg)
	if err != nil {
		return err
	}
	log.L.Debug("send message success", zap.String("msgId", res.MsgID), zap.String("tag", tag))
	return nil
}

func (p *Producer) Shutdown() error {
	return p.producer.Shutdown()
}
