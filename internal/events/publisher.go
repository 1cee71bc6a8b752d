// Package events publishes order events onto a Redis list consumed by
// downstream tooling (analytics, seller notifications). Publishing is
// best-effort: a dead Redis never blocks a checkout.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"drinks-marketplace-service/internal/models"
)

const orderQueue = "marketplace:order-events"

// OrderEvent is the payload pushed onto the order-events queue
type OrderEvent struct {
	Type       string    `json:"type"`
	OrderID    string    `json:"orderId"`
	SellerID   string    `json:"sellerId"`
	CustomerID *string   `json:"customerId,omitempty"`
	Total      float64   `json:"total"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Publisher pushes events onto Redis lists (LPUSH, consumed with BRPOP)
type Publisher struct {
	client *redis.Client
	logger *logrus.Entry
}

// NewPublisher connects to Redis for event publishing
func NewPublisher(redisURL string, logger *logrus.Logger) (*Publisher, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Publisher{
		client: client,
		logger: logger.WithField("component", "events.publisher"),
	}, nil
}

// PublishOrderCreated records an order-created event. Errors are
// logged and swallowed; checkout already succeeded.
func (p *Publisher) PublishOrderCreated(ctx context.Context, order *models.Order) {
	if p == nil {
		return
	}

	event := OrderEvent{
		Type:       "order.created",
		OrderID:    order.ID.String(),
		SellerID:   order.SellerID.String(),
		Total:      order.Total,
		OccurredAt: time.Now(),
	}
	if order.CustomerID != nil {
		id := order.CustomerID.String()
		event.CustomerID = &id
	}

	data, err := json.Marshal(event)
	if err != nil {
		p.logger.WithError(err).Warn("Failed to marshal order event")
		return
	}

	if err := p.client.LPush(ctx, orderQueue, data).Err(); err != nil {
		p.logger.WithError(err).WithField("order_id", event.OrderID).Warn("Failed to publish order event")
	}
}

// Close releases the Redis connection
func (p *Publisher) Close() error {
	if p == nil || p.client == nil {
		return nil
	}
	return p.client.Close()
}
