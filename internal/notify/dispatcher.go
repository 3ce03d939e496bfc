package notify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/alexanderramin/agenda/internal/occurrence"
	"github.com/alexanderramin/agenda/internal/repository"
	"github.com/robfig/cron/v3"
)

// DefaultTick matches the watch view's refresh cadence.
const DefaultTick = 60 * time.Second

// Sink delivers a due notification to the user.
type Sink interface {
	Deliver(ctx context.Context, n *repository.ScheduledNotification) error
}

// LogSink writes deliveries as structured log lines. It is the fallback
// sink on platforms without a native notification path.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(w io.Writer) *LogSink {
	return &LogSink{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (s *LogSink) Deliver(ctx context.Context, n *repository.ScheduledNotification) error {
	s.logger.InfoContext(ctx, "notification",
		"id", n.ID,
		"title", n.Title,
		"body", n.Body,
		"fire_at", n.FireAt.Format(time.RFC3339),
	)
	return nil
}

// Dispatcher keeps the scheduled_notifications table in sync with item
// state and delivers rows as they come due.
type Dispatcher struct {
	items         repository.ItemRepo
	notifications repository.NotificationRepo
	sink          Sink
	tick          time.Duration
	logger        *slog.Logger

	mu   sync.Mutex
	cron *cron.Cron
}

func NewDispatcher(items repository.ItemRepo, notifications repository.NotificationRepo, sink Sink, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		items:         items,
		notifications: notifications,
		sink:          sink,
		tick:          DefaultTick,
		logger:        slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

type DispatcherOption func(*Dispatcher)

// WithTick overrides the polling interval.
func WithTick(tick time.Duration) DispatcherOption {
	return func(d *Dispatcher) { d.tick = tick }
}

// WithLogger attaches a logger for tick-level diagnostics.
func WithLogger(logger *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// SyncItem replaces every pending notification for one item with a fresh
// plan. Cancel-then-upsert keeps rows for removed reminders from lingering.
func (d *Dispatcher) SyncItem(ctx context.Context, itemID string, now time.Time) error {
	if err := d.notifications.DeleteByItem(ctx, itemID); err != nil {
		return fmt.Errorf("cancel pending notifications: %w", err)
	}
	item, err := d.items.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}
	for _, n := range PlanItem(item, now) {
		if err := d.notifications.Upsert(ctx, n); err != nil {
			return fmt.Errorf("schedule notification %s: %w", n.ID, err)
		}
	}
	return nil
}

// SyncAll replans notifications for every stored item and prunes rows
// whose fire time passed beyond the delivery grace window.
func (d *Dispatcher) SyncAll(ctx context.Context, now time.Time) error {
	items, err := d.items.List(ctx)
	if err != nil {
		return err
	}
	for _, item := range items {
		if err := d.SyncItem(ctx, item.ID, now); err != nil {
			return err
		}
	}
	pruned, err := d.notifications.Prune(ctx, now.Add(-occurrence.GracePeriod))
	if err != nil {
		return err
	}
	if pruned > 0 {
		d.logger.InfoContext(ctx, "pruned stale notifications", "count", pruned)
	}
	return nil
}

// Pending returns every scheduled notification, soonest first. The
// listing horizon extends ten years past now.
func (d *Dispatcher) Pending(ctx context.Context, now time.Time) ([]*repository.ScheduledNotification, error) {
	return d.notifications.ListDue(ctx, now.AddDate(10, 0, 0))
}

// Tick delivers every row due at or before now and removes delivered rows.
// A failed delivery leaves its row in place for the next tick.
func (d *Dispatcher) Tick(ctx context.Context, now time.Time) error {
	due, err := d.notifications.ListDue(ctx, now)
	if err != nil {
		return err
	}
	for _, n := range due {
		if err := d.sink.Deliver(ctx, n); err != nil {
			d.logger.WarnContext(ctx, "notification delivery failed", "id", n.ID, "error", err)
			continue
		}
		if err := d.notifications.Delete(ctx, n.ID); err != nil {
			return fmt.Errorf("clear delivered notification %s: %w", n.ID, err)
		}
	}
	return nil
}

// Start launches the periodic tick loop. Stop must be called to drain it.
func (d *Dispatcher) Start(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cron != nil {
		return fmt.Errorf("dispatcher already started")
	}
	c := cron.New(cron.WithSeconds())
	spec := fmt.Sprintf("@every %ds", int(d.tick.Seconds()))
	if _, err := c.AddFunc(spec, func() {
		if err := d.Tick(ctx, time.Now()); err != nil {
			d.logger.WarnContext(ctx, "notification tick failed", "error", err)
		}
	}); err != nil {
		return err
	}
	c.Start()
	d.cron = c
	return nil
}

// Stop halts the tick loop and waits for any in-flight tick to finish.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	c := d.cron
	d.cron = nil
	d.mu.Unlock()
	if c == nil {
		return
	}
	<-c.Stop().Done()
}
