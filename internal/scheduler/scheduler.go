package scheduler

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// DefaultInterval is the countdown tick period
const DefaultInterval = time.Second

// Ticker is the single shared periodic source driving the session countdown.
// It runs for the life of the process; pausing happens where ticks are consumed.
type Ticker struct {
	scheduler *gocron.Scheduler
	interval  time.Duration
	onTick    func()
	logger    *zap.Logger
}

// New creates a ticker that calls onTick every interval
func New(interval time.Duration, onTick func(), logger *zap.Logger) *Ticker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Ticker{
		scheduler: gocron.NewScheduler(time.UTC),
		interval:  interval,
		onTick:    onTick,
		logger:    logger,
	}
}

// Start schedules the tick job and begins running it in the background.
// The first tick fires one interval after Start.
func (t *Ticker) Start() error {
	_, err := t.scheduler.Every(t.interval).
		WaitForSchedule().
		SingletonMode().
		Do(t.onTick)
	if err != nil {
		return fmt.Errorf("failed to schedule tick job: %w", err)
	}

	t.scheduler.StartAsync()
	t.logger.Info("Tick source started", zap.Duration("interval", t.interval))
	return nil
}

// Stop terminates the tick job
func (t *Ticker) Stop() {
	t.scheduler.Stop()
	t.logger.Info("Tick source stopped")
}

// Running reports whether the scheduler is active
func (t *Ticker) Running() bool {
	return t.scheduler.IsRunning()
}
