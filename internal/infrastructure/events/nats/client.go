// Package nats publishes catalog domain events to a JetStream stream so
// downstream consumers, the search indexer in particular, can react to
// catalog changes.
package nats

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/dotflix/catalog/pkg/config"
	"github.com/dotflix/catalog/pkg/logger"
)

// Client wraps the NATS connection and its JetStream context.
type Client struct {
	nc     *nats.Conn
	js     jetstream.JetStream
	logger logger.Logger
}

// NewClient connects to NATS, creates the JetStream context and ensures the
// catalog events stream exists. The returned cleanup func drains and closes
// the connection.
func NewClient(cfg config.NATSConfig, log logger.Logger) (*Client, func(), error) {
	log = log.Named("nats")

	opts := []nats.Option{
		nats.Name("catalog"),
		nats.MaxReconnects(cfg.MaxReconnect),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				log.Error("nats disconnected", logger.Error(err))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info("nats reconnected", logger.String("url", nc.ConnectedUrl()))
		}),
	}

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to nats: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("creating jetstream context: %w", err)
	}

	client := &Client{nc: nc, js: js, logger: log}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.ensureStream(ctx, cfg); err != nil {
		nc.Close()
		return nil, nil, err
	}

	cleanup := func() {
		if err := nc.Drain(); err != nil {
			log.Error("draining nats connection", logger.Error(err))
		}
		nc.Close()
	}

	log.Info("nats client initialized", logger.String("url", cfg.URL))
	return client, cleanup, nil
}

func (c *Client) ensureStream(ctx context.Context, cfg config.NATSConfig) error {
	stream := jetstream.StreamConfig{
		Name:        cfg.Stream,
		Description: "Catalog domain events",
		Subjects:    []string{cfg.SubjectPrefix + ".>"},
		Retention:   jetstream.LimitsPolicy,
		MaxAge:      30 * 24 * time.Hour,
		Storage:     jetstream.FileStorage,
		Discard:     jetstream.DiscardOld,
		Replicas:    1,
	}

	if _, err := c.js.CreateOrUpdateStream(ctx, stream); err != nil {
		return fmt.Errorf("creating stream %s: %w", cfg.Stream, err)
	}

	c.logger.Info("jetstream stream ready",
		logger.String("stream", cfg.Stream),
		logger.String("subjects", cfg.SubjectPrefix+".>"))
	return nil
}

// JetStream returns the JetStream context.
func (c *Client) JetStream() jetstream.JetStream {
	return c.js
}

// Health verifies the connection is alive and JetStream is reachable.
func (c *Client) Health() error {
	if !c.nc.IsConnected() {
		return fmt.Errorf("nats client is not connected")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := c.js.AccountInfo(ctx); err != nil {
		return fmt.Errorf("getting jetstream account info: %w", err)
	}
	return nil
}
