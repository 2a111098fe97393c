package queue

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// EnrichmentPayload identifies a freshly imported lead whose gender should be
// guessed in the background.
type EnrichmentPayload struct {
	LeadID    int64  `json:"lead_id"`
	FirstName string `json:"first_name"`
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishEnrichment(ctx context.Context, payload EnrichmentPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return p.Ch.PublishWithContext(
		ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    uuid.NewString(),
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
}
