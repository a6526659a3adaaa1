package cache

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	dialTimeout = 3 * time.Second
	ioTimeout   = 500 * time.Millisecond
	poolSize    = 10
)

// Config holds the Redis options used for the shared prediction throttle.
// Only Addr is required.
type Config struct {
	Addr     string
	Username string
	Password string
	DB       int
	UseTLS   bool
}

// New returns a configured redis.Client and verifies connectivity with PING.
// The returned closer releases the connection pool.
func New(ctx context.Context, cfg Config) (*redis.Client, func(), error) {
	opts := &redis.Options{
		Addr:         cfg.Addr,
		Username:     cfg.Username,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  dialTimeout,
		ReadTimeout:  ioTimeout,
		WriteTimeout: ioTimeout,
		PoolSize:     poolSize,
		// no retries: limiter errors fall through to local enforcement
		MaxRetries: -1,
	}
	if cfg.UseTLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, err
	}

	closer := func() {
		_ = client.Close()
	}
	return client, closer, nil
}
