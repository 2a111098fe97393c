package queue

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/leadstore/internal/entity"
)

// GenderEnricher is what the worker drives for each imported lead. Matched by
// the gender-guess use case.
type GenderEnricher interface {
	Execute(ctx context.Context, id int64, name string) (*entity.Lead, error)
}

type Worker struct {
	Channel  *amqp.Channel
	Enricher GenderEnricher
}

func NewWorker(ch *amqp.Channel, enricher GenderEnricher) *Worker {
	return &Worker{
		Channel:  ch,
		Enricher: enricher,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual is safer)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("❌ [WORKER] failed to register consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload EnrichmentPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] malformed message: %s", err)
				// Poison message, reject without requeue.
				d.Nack(false, false)
				continue
			}

			log.Printf("⚙️ [WORKER] enriching lead %d (%s)", payload.LeadID, payload.FirstName)

			_, err := w.Enricher.Execute(context.Background(), payload.LeadID, payload.FirstName)
			switch {
			case errors.Is(err, entity.ErrLeadNotFound):
				// Lead deleted before the worker got to it. Nothing to enrich.
				log.Printf("⚠️ [WORKER] lead %d is gone, dropping message", payload.LeadID)
				d.Ack(false)
			case err != nil:
				log.Printf("❌ [WORKER] enrichment failed for lead %d: %s", payload.LeadID, err)
				d.Nack(false, false)
			default:
				log.Printf("✅ [WORKER] lead %d enriched", payload.LeadID)
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker waiting on queue '%s'", queueName)
	<-forever
}
