package lifecycle

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"go.uber.org/zap"
)

// Signal is an application lifecycle notification
type Signal string

const (
	// ResignActive is sent when the app moves to the background
	ResignActive Signal = "resign_active"
	// EnterForeground is sent when the app returns to the foreground
	EnterForeground Signal = "enter_foreground"
)

// Listener receives lifecycle signals
type Listener func(Signal)

// Bus fans lifecycle signals out to registered listeners
type Bus struct {
	logger *zap.Logger

	mu        sync.RWMutex
	listeners map[int]Listener
	nextID    int
}

// NewBus creates a new lifecycle bus
func NewBus(logger *zap.Logger) *Bus {
	return &Bus{
		logger:    logger,
		listeners: make(map[int]Listener),
	}
}

// Subscribe registers l and returns a function that deregisters it
func (b *Bus) Subscribe(l Listener) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.listeners[id] = l
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.listeners, id)
			b.mu.Unlock()
		})
	}
}

// Publish delivers sig to every listener synchronously
func (b *Bus) Publish(sig Signal) {
	b.mu.RLock()
	listeners := make([]Listener, 0, len(b.listeners))
	for _, l := range b.listeners {
		listeners = append(listeners, l)
	}
	b.mu.RUnlock()

	b.logger.Debug("Lifecycle signal", zap.String("signal", string(sig)), zap.Int("listeners", len(listeners)))

	for _, l := range listeners {
		l(sig)
	}
}

// WatchOS maps SIGUSR1 to ResignActive and SIGUSR2 to EnterForeground until ctx is done
func WatchOS(ctx context.Context, bus *Bus) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGUSR1, syscall.SIGUSR2)
	defer signal.Stop(sigChan)

	for {
		select {
		case <-ctx.Done():
			return
		case sig := <-sigChan:
			switch sig {
			case syscall.SIGUSR1:
				bus.Publish(ResignActive)
			case syscall.SIGUSR2:
				bus.Publish(EnterForeground)
			}
		}
	}
}
