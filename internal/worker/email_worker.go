package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"comanda/internal/infra"

	"github.com/rs/zerolog/log"
)

// EmailWorker delivers queued emails through the SMTP relay, guarded by
// a circuit breaker so a dead relay fails fast instead of blocking the
// pool on timeouts.
type EmailWorker struct {
	mailer *infra.Mailer
	cb     *infra.CircuitBreaker
}

func NewEmailWorker(mailer *infra.Mailer, cb *infra.CircuitBreaker) *EmailWorker {
	return &EmailWorker{mailer: mailer, cb: cb}
}

func (w *EmailWorker) Process(ctx context.Context, payload []byte) error {
	var job EmailJob
	if err := json.Unmarshal(payload, &job); err != nil {
		return fmt.Errorf("email: payload inválido: %w", err)
	}

	err := w.cb.Execute(func() error {
		return w.mailer.Enviar(job.To, job.Subject, job.Body, job.PDFPath)
	})
	if err != nil {
		return fmt.Errorf("email para %s: %w", job.To, err)
	}
	log.Info().Str("to", job.To).Str("subject", job.Subject).Msg("email enviado")
	return nil
}
