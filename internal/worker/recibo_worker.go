package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"comanda/internal/infra"

	"github.com/rs/zerolog/log"
)

// ReciboWorker renders receipt PDFs and chains an email job when the
// customer left an address.
type ReciboWorker struct {
	dispatcher *Dispatcher
	storageDir string
}

func NewReciboWorker(dispatcher *Dispatcher, storageDir string) *ReciboWorker {
	return &ReciboWorker{dispatcher: dispatcher, storageDir: storageDir}
}

func (w *ReciboWorker) Process(ctx context.Context, payload []byte) error {
	var job ReciboJob
	if err := json.Unmarshal(payload, &job); err != nil {
		return fmt.Errorf("recibo: payload inválido: %w", err)
	}

	path, err := infra.GerarReciboPDF(job.Recibo, w.storageDir)
	if err != nil {
		return err
	}
	log.Info().Str("pedido_id", job.Recibo.PedidoID).Str("path", path).
		Msg("recibo gerado")

	if job.Email == nil {
		return nil
	}
	return w.dispatcher.EnqueueEmail(ctx, EmailJob{
		To:      *job.Email,
		Subject: fmt.Sprintf("Recibo do pedido #%d", job.Recibo.Numero),
		Body: fmt.Sprintf(
			"Olá!\n\nSegue em anexo o recibo do pedido #%d, no valor de R$ %s.\n\nObrigado pela preferência!",
			job.Recibo.Numero, job.Recibo.Total.StringFixed(2)),
		PDFPath: path,
	})
}
