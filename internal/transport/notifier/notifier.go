// Package notifier доставляет push уведомления в фоне, не задерживая запись в леджер.
package notifier

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/fsdevblog/paylink/internal/domain"
	"github.com/fsdevblog/paylink/internal/transport/push/client"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

const (
	defaultServiceTimeout = 3 * time.Second
	defaultPushTimeout    = 10 * time.Second
	defaultWorkers        = 4
	defaultQueueSize      = 256
)

var ErrNoServicer = errors.New("notifier: servicer is not set")

// Stats счетчики доставки с момента запуска.
type Stats struct {
	Sent      int64
	Failed    int64
	Dropped   int64
	Forgotten int64
}

// Notifier очередь уведомлений с пулом воркеров. Enqueue никогда не блокирует: при заполненной очереди
// уведомление отбрасывается.
type Notifier struct {
	client  PushClient
	svs     Servicer
	l       *logrus.Entry
	queue   chan domain.Notification
	workers uint

	sent      *atomic.Int64
	failed    *atomic.Int64
	dropped   *atomic.Int64
	forgotten *atomic.Int64
}

func New(pushClient PushClient, l *logrus.Logger) *Notifier {
	return &Notifier{
		client:  pushClient,
		queue:   make(chan domain.Notification, defaultQueueSize),
		workers: defaultWorkers,
		l: l.WithFields(logrus.Fields{
			"component": "notifier",
			"module":    "queue",
		}),
		sent:      atomic.NewInt64(0),
		failed:    atomic.NewInt64(0),
		dropped:   atomic.NewInt64(0),
		forgotten: atomic.NewInt64(0),
	}
}

// SetServicer устанавливает сервисный слой, из которого берутся push токены. Должен быть вызван до Run.
func (n *Notifier) SetServicer(svs Servicer) *Notifier {
	n.svs = svs
	return n
}

// SetWorkers устанавливает кол-во воркеров доставки.
func (n *Notifier) SetWorkers(workers uint) *Notifier {
	if workers > 0 {
		n.workers = workers
	}
	return n
}

// SetQueueSize пересоздает очередь. Вызывать только до первого Enqueue.
func (n *Notifier) SetQueueSize(size uint) *Notifier {
	if size > 0 {
		n.queue = make(chan domain.Notification, size)
	}
	return n
}

func (n *Notifier) Enqueue(notification domain.Notification) {
	select {
	case n.queue <- notification:
	default:
		n.dropped.Inc()
		n.l.WithField("userID", notification.UserID).Warn("notification queue is full, dropping")
	}
}

func (n *Notifier) Stats() Stats {
	return Stats{
		Sent:      n.sent.Load(),
		Failed:    n.failed.Load(),
		Dropped:   n.dropped.Load(),
		Forgotten: n.forgotten.Load(),
	}
}

// Run запускает воркеров и блокируется до отмены контекста. Недоставленные к этому моменту уведомления
// теряются.
func (n *Notifier) Run(ctx context.Context) error {
	if n.svs == nil {
		return ErrNoServicer
	}

	n.l.WithFields(logrus.Fields{
		"workers":   n.workers,
		"queueSize": cap(n.queue),
	}).Info("Starting")

	wg := new(sync.WaitGroup)
	wg.Add(int(n.workers)) // nolint:gosec
	for i := range n.workers {
		go n.worker(ctx, wg, i+1)
	}
	wg.Wait()

	stats := n.Stats()
	n.l.WithFields(logrus.Fields{
		"sent":      stats.Sent,
		"failed":    stats.Failed,
		"dropped":   stats.Dropped,
		"forgotten": stats.Forgotten,
	}).Info("Got stop signal, exiting...")
	return nil
}

func (n *Notifier) worker(ctx context.Context, wg *sync.WaitGroup, workerID uint) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case notification := <-n.queue:
			n.deliver(ctx, workerID, notification)
		}
	}
}

// deliver отправляет уведомление на все устройства пользователя. Токены, которые шлюз признал
// недействительными, удаляются.
func (n *Notifier) deliver(ctx context.Context, workerID uint, notification domain.Notification) {
	l := n.l.WithFields(logrus.Fields{
		"worker": workerID,
		"userID": notification.UserID,
	})

	tokensCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	tokens, err := n.svs.PushTokens(tokensCtx, notification.UserID)
	cancel()
	if err != nil {
		n.failed.Inc()
		l.WithError(err).Error("loading push tokens")
		return
	}
	if len(tokens) == 0 {
		l.Debug("user has no push tokens")
		return
	}

	messages := make([]client.Message, 0, len(tokens))
	for _, token := range tokens {
		messages = append(messages, client.Message{
			To:    token.Token,
			Title: notification.Title,
			Body:  notification.Body,
			Data:  notification.Data,
		})
	}

	pushCtx, pushCancel := context.WithTimeout(ctx, defaultPushTimeout)
	results, err := n.client.Send(pushCtx, messages)
	pushCancel()
	if err != nil {
		n.failed.Add(int64(len(messages)))
		l.WithError(err).Error("sending push notification")
		return
	}

	for i, result := range results {
		if result == nil {
			n.sent.Inc()
			continue
		}
		n.failed.Inc()
		if !errors.Is(result, client.ErrDeviceNotRegistered) {
			l.WithError(result).Warn("push ticket rejected")
			continue
		}
		n.forget(ctx, l, messages[i].To)
	}
}

func (n *Notifier) forget(ctx context.Context, l *logrus.Entry, token string) {
	forgetCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	if err := n.svs.ForgetPushToken(forgetCtx, token); err != nil {
		l.WithError(err).Error("forgetting push token")
		return
	}
	n.forgotten.Inc()
	l.Info("push token is not registered anymore, forgotten")
}
