package scheduler

import (
	"context"
	"time"

	"github.com/jhoicas/stockflow-api/internal/application/usecase"
	"github.com/jhoicas/stockflow-api/pkg/logger"
)

// Scheduler corre el barrido de créditos por vencer en un intervalo fijo
// (24 horas por defecto). El barrido no deduplica: si el proceso se reinicia
// varias veces el mismo día, los créditos de hoy se notifican de nuevo.
type Scheduler struct {
	notificationUC *usecase.NotificationUseCase
	interval       time.Duration
	log            *logger.Logger
}

// New construye el scheduler del barrido.
func New(notificationUC *usecase.NotificationUseCase, interval time.Duration, log *logger.Logger) *Scheduler {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	return &Scheduler{notificationUC: notificationUC, interval: interval, log: log}
}

// Run ejecuta el barrido de inmediato y luego en cada tick hasta que ctx se
// cancele. Pensado para correr en su propia goroutine.
func (s *Scheduler) Run(ctx context.Context) {
	s.log.Info().Dur("interval", s.interval).Msg("scheduler de créditos iniciado")

	s.sweep()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("scheduler de créditos detenido")
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *Scheduler) sweep() {
	created, err := s.notificationUC.CheckCreditDue()
	if err != nil {
		s.log.Error().Err(err).Msg("barrido de créditos por vencer")
		return
	}
	s.log.Info().Int("notifications", created).Msg("barrido de créditos completado")
}
