package telemetry

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/redis/go-redis/v9"

	"planet-sim/internal/simulation"
)

// DefaultChannel is the pub/sub channel frames are published on.
const DefaultChannel = "simulation.step"

// Publisher is the subset of the Redis client used for publishing.
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// Dial connects to Redis and verifies the connection.
func Dial(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connecting to redis at %s: %w", addr, err)
	}
	return client, nil
}

// RedisObserver publishes a JSON Frame every few steps.
type RedisObserver struct {
	client  Publisher
	channel string
	every   int
	timeout time.Duration
	logger  hclog.Logger

	published int
}

// NewRedisObserver publishes on channel every n steps (n < 1 means every step).
func NewRedisObserver(client Publisher, channel string, n int, logger hclog.Logger) *RedisObserver {
	if channel == "" {
		channel = DefaultChannel
	}
	if n < 1 {
		n = 1
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &RedisObserver{
		client:  client,
		channel: channel,
		every:   n,
		timeout: 500 * time.Millisecond,
		logger:  logger,
	}
}

// OnStep implements simulation.Observer.
func (o *RedisObserver) OnStep(sim *simulation.Simulation) error {
	if sim.Steps()%o.every != 0 {
		return nil
	}

	payload, err := json.Marshal(Snapshot(sim))
	if err != nil {
		return fmt.Errorf("encoding frame: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), o.timeout)
	defer cancel()

	receivers, err := o.client.Publish(ctx, o.channel, payload).Result()
	if err != nil {
		return fmt.Errorf("publishing step %d: %w", sim.Steps(), err)
	}
	o.published++
	o.logger.Trace("frame published", "step", sim.Steps(), "receivers", receivers)
	return nil
}

// Published returns the number of frames published so far.
func (o *RedisObserver) Published() int {
	return o.published
}
