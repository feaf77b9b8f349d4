// Package scheduler периодически обновляет живую ленту фокусов.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Refresher перезагружает живую ленту
type Refresher interface {
	RefreshLive(ctx context.Context)
}

// LiveRefresher запускает RefreshLive по расписанию cron
type LiveRefresher struct {
	cron      *cron.Cron
	refresher Refresher
	logger    *logrus.Logger
	timeout   time.Duration
}

// NewLiveRefresher создает планировщик; timeout ограничивает один запуск
func NewLiveRefresher(refresher Refresher, logger *logrus.Logger, timeout time.Duration) *LiveRefresher {
	return &LiveRefresher{
		cron:      cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		refresher: refresher,
		logger:    logger,
		timeout:   timeout,
	}
}

// Start регистрирует задачу и запускает планировщик
func (r *LiveRefresher) Start(ctx context.Context, schedule string) error {
	_, err := r.cron.AddFunc(schedule, func() { r.tick(ctx) })
	if err != nil {
		return fmt.Errorf("scheduler: invalid live refresh schedule %q: %w", schedule, err)
	}

	r.cron.Start()
	r.logger.WithField("schedule", schedule).Info("Live feed refresher started")
	return nil
}

// Stop останавливает планировщик и ждет завершения текущего запуска
func (r *LiveRefresher) Stop() {
	<-r.cron.Stop().Done()
	r.logger.Info("Live feed refresher stopped")
}

func (r *LiveRefresher) tick(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	runCtx := ctx
	if r.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	r.logger.Debug("CronJob: live feed refresh running")
	r.refresher.RefreshLive(runCtx)
}
