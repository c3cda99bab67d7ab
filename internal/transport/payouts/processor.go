// Package payouts периодически запускает автоматические выплаты.
package payouts

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	defaultInterval   = time.Hour
	defaultRunTimeout = 5 * time.Minute
)

// Processor вызывает Servicer.RunAutoPayouts по таймеру. Первый запуск выполняется сразу при старте.
type Processor struct {
	svs        Servicer
	l          *logrus.Entry
	interval   time.Duration
	runTimeout time.Duration
}

func New(svs Servicer, l *logrus.Logger) *Processor {
	return &Processor{
		svs:        svs,
		interval:   defaultInterval,
		runTimeout: defaultRunTimeout,
		l: l.WithFields(logrus.Fields{
			"component": "payouts",
			"module":    "processor",
		}),
	}
}

// SetInterval устанавливает период между запусками.
func (p *Processor) SetInterval(interval time.Duration) *Processor {
	if interval > 0 {
		p.interval = interval
	}
	return p
}

// SetRunTimeout ограничивает длительность одного запуска.
func (p *Processor) SetRunTimeout(timeout time.Duration) *Processor {
	if timeout > 0 {
		p.runTimeout = timeout
	}
	return p
}

// Run блокируется до отмены контекста.
func (p *Processor) Run(ctx context.Context) {
	p.l.WithField("interval", p.interval.String()).Info("Starting")

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.process(ctx)
	for {
		select {
		case <-ctx.Done():
			p.l.Info("Got stop signal, exiting...")
			return
		case <-ticker.C:
			p.process(ctx)
		}
	}
}

func (p *Processor) process(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, p.runTimeout)
	defer cancel()

	started := time.Now()
	count, err := p.svs.RunAutoPayouts(runCtx)
	l := p.l.WithFields(logrus.Fields{
		"payouts":  count,
		"duration": time.Since(started).String(),
	})
	if err != nil {
		l.WithError(err).Error("auto payouts finished with errors")
		return
	}
	if count > 0 {
		l.Info("auto payouts issued")
		return
	}
	l.Debug("no payouts due")
}
