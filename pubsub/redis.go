package pubsub

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Client envuelve la conexión Redis usada para los canales de dashboards.
// Cada publicación se refleja además en un hash "last-message:<canal>" para
// que los suscriptores tardíos puedan recuperar el último estado.
type Client struct {
	rdb *redis.Client
}

func NewClient(addr string) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &Client{rdb: rdb}, nil
}

func (c *Client) Publish(ctx context.Context, channel string, payload []byte) error {
	if err := c.rdb.HSet(ctx, lastMessageKey(channel), "message", payload).Err(); err != nil {
		return err
	}
	return c.rdb.Publish(ctx, channel, payload).Err()
}

// LastMessage devuelve el último payload publicado en el canal, o "" si
// nunca se publicó nada.
func (c *Client) LastMessage(ctx context.Context, channel string) (string, error) {
	msg, err := c.rdb.HGet(ctx, lastMessageKey(channel), "message").Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return msg, nil
}

func (c *Client) Subscribe(ctx context.Context, channel string) *redis.PubSub {
	return c.rdb.Subscribe(ctx, channel)
}

func (c *Client) Close() error {
	return c.rdb.Close()
}

func lastMessageKey(channel string) string {
	return "last-message:" + channel
}
