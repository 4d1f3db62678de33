package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"comanda/internal/infra"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Redis lists used as job queues. LPUSH to enqueue, BRPOP to consume.
const (
	QueueRecibo = "comanda:jobs:recibo"
	QueueEmail  = "comanda:jobs:email"
	QueueDLQ    = "comanda:jobs:dlq"
)

// ReciboJob asks a worker to render the receipt PDF for a settled pedido
// and, when Email is set, to mail it to the customer.
type ReciboJob struct {
	Recibo infra.ReciboData `json:"recibo"`
	Email  *string          `json:"email,omitempty"`
}

// EmailJob asks a worker to deliver one email, optionally with a PDF
// attachment already on disk.
type EmailJob struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	PDFPath string `json:"pdf_path,omitempty"`
}

// Dispatcher enqueues background jobs. Handlers and services hold a
// *Dispatcher; a nil dispatcher is tolerated by callers so unit tests
// can run without Redis.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

func (d *Dispatcher) EnqueueRecibo(ctx context.Context, job ReciboJob) error {
	return d.enqueue(ctx, QueueRecibo, job)
}

func (d *Dispatcher) EnqueueEmail(ctx context.Context, job EmailJob) error {
	return d.enqueue(ctx, QueueEmail, job)
}

func (d *Dispatcher) enqueue(ctx context.Context, queue string, job any) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("dispatcher: serializar job: %w", err)
	}
	if err := d.rdb.LPush(ctx, queue, payload).Err(); err != nil {
		return fmt.Errorf("dispatcher: enfileirar em %s: %w", queue, err)
	}
	return nil
}

// Processor consumes one raw job payload.
type Processor interface {
	Process(ctx context.Context, payload []byte) error
}

// Handlers maps each queue to its processor.
type Handlers struct {
	Recibo Processor
	Email  Processor
}

// StartWorkerPool launches n workers that block on both job queues.
// Each worker runs until ctx is cancelled. Failed jobs go to the DLQ.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, handlers Handlers, n int) {
	if n <= 0 {
		n = 3
	}
	for i := 0; i < n; i++ {
		go runWorker(ctx, i, rdb, handlers)
	}
	log.Info().Int("workers", n).Msg("worker pool iniciado")
}

func runWorker(ctx context.Context, id int, rdb *redis.Client, handlers Handlers) {
	logger := log.With().Int("worker", id).Logger()
	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("worker encerrado")
			return
		default:
		}

		res, err := rdb.BRPop(ctx, blockTimeout, QueueRecibo, QueueEmail).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) || errors.Is(err, context.Canceled) {
				continue
			}
			logger.Error().Err(err).Msg("falha ao consumir fila")
			continue
		}
		// BRPOP returns [queue, payload]
		if len(res) != 2 {
			continue
		}
		queue, payload := res[0], []byte(res[1])

		var proc Processor
		switch queue {
		case QueueRecibo:
			proc = handlers.Recibo
		case QueueEmail:
			proc = handlers.Email
		default:
			continue
		}
		if proc == nil {
			continue
		}

		if err := proc.Process(ctx, payload); err != nil {
			logger.Error().Err(err).Str("queue", queue).Msg("job falhou, enviando para DLQ")
			if dlqErr := sendToDLQ(ctx, rdb, queue, payload, err); dlqErr != nil {
				logger.Error().Err(dlqErr).Msg("falha ao gravar na DLQ")
			}
		}
	}
}
