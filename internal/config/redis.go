package config

// This file defines a Redis client constructor for the ticket event
// stream.  Redis is only contacted when EVENTS_BACKEND is "redis".

import (
    "context"
    "crypto/tls"
    "fmt"
    "time"

    "github.com/redis/go-redis/v9"
)

// NewRedisClient instantiates a Redis client from the events settings and
// pings the server with a short timeout.  Unlike the store connection a
// failure here is returned to the caller, which may fall back to not
// publishing events at all.
func NewRedisClient(e EventsConfig) (*redis.Client, error) {
    var tlsConf *tls.Config
    if e.RedisTLS {
        tlsConf = &tls.Config{MinVersion: tls.VersionTLS12}
    }
    client := redis.NewClient(&redis.Options{
        Addr:      e.RedisAddr,
        Password:  e.RedisPassword,
        DB:        e.RedisDB,
        TLSConfig: tlsConf,
    })
    // Ping the server with a short timeout.
    ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
    defer cancel()
    if err := client.Ping(ctx).Err(); err != nil {
        _ = client.Close()
        return nil, fmt.Errorf("redis ping %s: %w", e.RedisAddr, err)
    }
    return client, nil
}
