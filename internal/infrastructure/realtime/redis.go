package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/TanmayElinje/inventory-pro/internal/application/dto"
	"github.com/TanmayElinje/inventory-pro/internal/application/ledger"
	"github.com/TanmayElinje/inventory-pro/pkg/config"
)

var _ ledger.Publisher = (*Broker)(nil)

// Broker publishes product events to redis and relays the subscription into
// a local hub. With several API instances behind a load balancer, every
// instance sees every event regardless of which one committed it.
type Broker struct {
	client *redis.Client
	hub    *Hub
	cancel context.CancelFunc
	done   chan struct{}
}

// NewBroker connects to redis and verifies connectivity.
func NewBroker(ctx context.Context, cfg config.RedisConfig, hub *Hub) (*Broker, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Broker{client: client, hub: hub, done: make(chan struct{})}, nil
}

// PublishProductUpdate serializes the snapshot and publishes it on the
// product channel.
func (b *Broker) PublishProductUpdate(ctx context.Context, product dto.ProductResponse) error {
	payload, err := json.Marshal(ProductUpdateEvent{
		Type:    EventTypeProductUpdate,
		Product: product,
	})
	if err != nil {
		return fmt.Errorf("marshal product event: %w", err)
	}
	if err := b.client.Publish(ctx, ChannelProducts, payload).Err(); err != nil {
		return fmt.Errorf("publish product event: %w", err)
	}
	return nil
}

// Subscribe starts the relay goroutine: every message on the product channel
// is broadcast to the hub. Returns after the subscription is confirmed.
func (b *Broker) Subscribe(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	b.cancel = cancel

	sub := b.client.Subscribe(ctx, ChannelProducts)
	// Receive forces the SUBSCRIBE round trip so a broken redis surfaces
	// here instead of silently in the goroutine.
	if _, err := sub.Receive(ctx); err != nil {
		cancel()
		return fmt.Errorf("subscribe %s: %w", ChannelProducts, err)
	}

	go func() {
		defer close(b.done)
		defer func() { _ = sub.Close() }()
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				b.hub.Broadcast([]byte(msg.Payload))
			}
		}
	}()
	return nil
}

// Close stops the relay and closes the redis client.
func (b *Broker) Close() error {
	if b.cancel != nil {
		b.cancel()
		<-b.done
	}
	err := b.client.Close()
	if err != nil && !errors.Is(err, redis.ErrClosed) {
		log.Warn().Err(err).Msg("closing redis client")
		return err
	}
	return nil
}
