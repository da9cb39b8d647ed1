package broker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	appblotter "main/internal/application/service/blotter"
	"main/internal/config"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// Consumer subscribes to the trades fanout exchange and forwards messages
// into the database via a buffered batch writer.
type Consumer struct {
	cfg     config.RabbitMQConfig
	service *appblotter.Service
	logger  *logrus.Logger

	conn    *amqp.Connection
	channel *amqp.Channel
	wg      sync.WaitGroup
	batcher *BatchWriter
}

// NewConsumer prepares a consumer for the given configuration.
func NewConsumer(cfg config.RabbitMQConfig, service *appblotter.Service, logger *logrus.Logger) (*Consumer, error) {
	if cfg.URL == "" {
		return nil, errors.New("rabbitmq url is required")
	}
	batchCfg := BatchConfig{
		Size:    cfg.BatchSize,
		Timeout: cfg.BatchTimeout,
	}
	consumer := &Consumer{
		cfg:     cfg,
		service: service,
		logger:  logger,
		batcher: NewBatchWriter(batchCfg, service, logger),
	}
	return consumer, nil
}

// Start establishes the AMQP connection and begins consuming the exchange.
func (c *Consumer) Start(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	conn, err := amqp.Dial(c.cfg.URL)
	if err != nil {
		return fmt.Errorf("connect to rabbitmq: %w", err)
	}
	c.conn = conn
	c.batcher.Run(ctx)

	ch, err := conn.Channel()
	if err != nil {
		c.Close(ctx)
		return fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(c.cfg.TradesExchange, "fanout", true, false, false, false, nil); err != nil {
		ch.Close()
		c.Close(ctx)
		return fmt.Errorf("declare exchange %s: %w", c.cfg.TradesExchange, err)
	}
	queue, err := ch.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		ch.Close()
		c.Close(ctx)
		return fmt.Errorf("declare queue: %w", err)
	}
	if err := ch.QueueBind(queue.Name, "", c.cfg.TradesExchange, false, nil); err != nil {
		ch.Close()
		c.Close(ctx)
		return fmt.Errorf("bind queue %s to %s: %w", queue.Name, c.cfg.TradesExchange, err)
	}
	prefetch := c.cfg.Prefetch
	if prefetch <= 0 {
		prefetch = 1
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		ch.Close()
		c.Close(ctx)
		return fmt.Errorf("set qos: %w", err)
	}
	deliveries, err := ch.Consume(queue.Name, "", false, true, false, false, nil)
	if err != nil {
		ch.Close()
		c.Close(ctx)
		return fmt.Errorf("start consume: %w", err)
	}
	c.channel = ch
	c.wg.Add(1)
	go c.consumeLoop(ctx, deliveries)

	c.logger.Infof("rabbitmq consumer started: exchange=%s", c.cfg.TradesExchange)
	return nil
}

// Close stops consumption, flushes the pending batch, and releases resources.
func (c *Consumer) Close(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if c.channel != nil {
		_ = c.channel.Close()
		c.channel = nil
	}
	if c.conn != nil {
		_ = c.conn.Close()
		c.conn = nil
	}
	c.wg.Wait()
	if c.batcher == nil {
		return nil
	}
	return c.batcher.Stop(ctx)
}

func (c *Consumer) consumeLoop(ctx context.Context, deliveries <-chan amqp.Delivery) {
	defer c.wg.Done()
	log := c.logger.WithField("stream", "trades")
	for {
		select {
		case <-ctx.Done():
			return
		case delivery, ok := <-deliveries:
			if !ok {
				return
			}
			drop, err := c.handleDelivery(&delivery)
			if err != nil {
				if drop {
					// Poison message: requeueing would loop forever.
					log.WithError(err).Warn("dropping invalid trade message")
					_ = delivery.Ack(false)
					continue
				}
				log.WithError(err).Warn("failed to process message")
				_ = delivery.Nack(false, true)
				continue
			}
			if err := delivery.Ack(false); err != nil {
				log.WithError(err).Warn("failed to ack delivery")
			}
		}
	}
}

func (c *Consumer) handleDelivery(delivery *amqp.Delivery) (drop bool, err error) {
	var payload TradeMessage
	if err := json.Unmarshal(delivery.Body, &payload); err != nil {
		return true, fmt.Errorf("decode payload: %w", err)
	}
	if err := payload.Validate(); err != nil {
		return true, fmt.Errorf("invalid trade payload: %w", err)
	}
	trade := payload.toDomain()
	return false, c.batcher.AddTrade(&trade)
}
