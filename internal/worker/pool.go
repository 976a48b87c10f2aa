package worker

import (
	"context"
	"sync"
	"time"

	"github.com/avc/hosting-storefront/internal/domain"
	"go.uber.org/zap"
)

// Sweeper переводит просроченные заказы в expired
type Sweeper interface {
	SweepExpired(ctx context.Context) (int64, error)
}

// SweeperFunc позволяет использовать функцию как Sweeper
type SweeperFunc func(ctx context.Context) (int64, error)

func (f SweeperFunc) SweepExpired(ctx context.Context) (int64, error) {
	return f(ctx)
}

// Config параметры пула
type Config struct {
	Workers       int
	QueueSize     int
	NotifyTimeout time.Duration
	SweepInterval time.Duration
}

// Pool представляет пул воркеров для доставки уведомлений о заказах.
// Реализует domain.EventPublisher.
type Pool struct {
	cfg      Config
	queue    chan domain.OrderEvent
	notifier domain.Notifier
	sweeper  Sweeper
	logger   *zap.Logger
	wg       sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// NewPool создает новый worker pool. sweeper может быть nil.
func NewPool(cfg Config, notifier domain.Notifier, sweeper Sweeper, logger *zap.Logger) *Pool {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1
	}
	if cfg.NotifyTimeout <= 0 {
		cfg.NotifyTimeout = 10 * time.Second
	}
	return &Pool{
		cfg:      cfg,
		queue:    make(chan domain.OrderEvent, cfg.QueueSize),
		notifier: notifier,
		sweeper:  sweeper,
		logger:   logger,
	}
}

// Start запускает воркеры и периодическую очистку просроченных заказов
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.cfg.Workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}

	if p.sweeper != nil && p.cfg.SweepInterval > 0 {
		p.wg.Add(1)
		go p.sweeperLoop(ctx)
	}
}

// Stop закрывает очередь и ждет, пока воркеры доставят оставшиеся события
func (p *Pool) Stop() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.queue)
	}
	p.mu.Unlock()

	p.wg.Wait()
}

// Publish ставит событие в очередь без блокировки.
// При заполненной очереди событие отбрасывается.
func (p *Pool) Publish(_ context.Context, event domain.OrderEvent) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		p.logger.Warn("publisher stopped, dropping event",
			zap.String("kind", string(event.Kind)),
			zap.Int64("order_id", event.Order.ID),
		)
		return
	}

	select {
	case p.queue <- event:
	default:
		p.logger.Warn("notification queue is full, dropping event",
			zap.String("kind", string(event.Kind)),
			zap.Int64("order_id", event.Order.ID),
		)
	}
}

// worker доставляет события из очереди
func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	p.logger.Info("worker started", zap.Int("worker_id", id))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("worker stopping", zap.Int("worker_id", id))
			return
		case event, ok := <-p.queue:
			if !ok {
				return
			}
			p.deliver(ctx, event)
		}
	}
}

// deliver отправляет одно событие. Ошибки только логируются.
func (p *Pool) deliver(ctx context.Context, event domain.OrderEvent) {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.NotifyTimeout)
	defer cancel()

	if err := p.notifier.Notify(ctx, event); err != nil {
		p.logger.Error("failed to deliver notification",
			zap.String("kind", string(event.Kind)),
			zap.Int64("order_id", event.Order.ID),
			zap.Error(err),
		)
		return
	}

	p.logger.Debug("notification delivered",
		zap.String("kind", string(event.Kind)),
		zap.Int64("order_id", event.Order.ID),
	)
}

// sweeperLoop периодически переводит просроченные заказы в expired
func (p *Pool) sweeperLoop(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("sweeper stopping")
			return
		case <-ticker.C:
			p.sweep(ctx)
		}
	}
}

func (p *Pool) sweep(ctx context.Context) {
	count, err := p.sweeper.SweepExpired(ctx)
	if err != nil {
		p.logger.Error("failed to sweep expired orders", zap.Error(err))
		return
	}
	if count > 0 {
		p.logger.Info("expired orders swept", zap.Int64("count", count))
	}
}
