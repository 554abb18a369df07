package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/YelzhanWeb/restaurant/internal/interfaces"
)

const ordersExchange = "orders_topic"

type publisher struct {
	conn Connection
}

func NewPublisher(conn Connection) interfaces.MessagePublisher {
	return &publisher{conn: conn}
}

func (p *publisher) PublishOrderCreated(ctx context.Context, msg interfaces.OrderCreatedMessage) error {
	routingKey := fmt.Sprintf("order.created.%s", msg.OrderType)
	return p.publish(routingKey, msg)
}

func (p *publisher) PublishStatusChanged(ctx context.Context, msg interfaces.StatusChangedMessage) error {
	routingKey := fmt.Sprintf("order.status.%s", msg.NewStatus)
	return p.publish(routingKey, msg)
}

func (p *publisher) PublishPaymentChanged(ctx context.Context, msg interfaces.PaymentChangedMessage) error {
	routingKey := fmt.Sprintf("order.payment.%s", msg.PaymentStatus)
	return p.publish(routingKey, msg)
}

func (p *publisher) publish(routingKey string, msg any) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(ordersExchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	err = ch.Publish(ordersExchange, routingKey, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}
