package broker

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type Publisher struct {
	client  *Client
	timeout time.Duration
}

func NewPublisher(client *Client, cfg PublisherConfig) *Publisher {
	return &Publisher{
		client:  client,
		timeout: time.Duration(cfg.Timeout) * time.Millisecond,
	}
}

func (p *Publisher) Publish(ctx context.Context, message string) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	return p.client.redis.XAdd(ctx, &redis.XAddArgs{
		Stream: p.client.stream,
		Values: map[string]interface{}{"body": message},
	}).Err()
}
