package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Varredor finalizes reservations whose time window already passed.
type Varredor interface {
	VarrerPassadas(ctx context.Context, agora time.Time) (int, error)
}

// StartReservaCron sweeps the reservation book on a fixed interval,
// moving past confirmadas to "concluida" and past pendentes to
// "nao_compareceu". Runs until ctx is cancelled.
func StartReservaCron(ctx context.Context, varredor Varredor, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		log.Info().Dur("interval", interval).Msg("varredura de reservas iniciada")
		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("varredura de reservas encerrada")
				return
			case <-ticker.C:
				n, err := varredor.VarrerPassadas(ctx, time.Now())
				if err != nil {
					log.Error().Err(err).Msg("varredura de reservas falhou")
					continue
				}
				if n > 0 {
					log.Info().Int("finalizadas", n).Msg("reservas passadas finalizadas")
				}
			}
		}
	}()
}
