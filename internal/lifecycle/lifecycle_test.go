package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestBus_PublishReachesSubscribers(t *testing.T) {
	bus := NewBus(zap.NewNop())

	var first, second []Signal
	bus.Subscribe(func(s Signal) { first = append(first, s) })
	bus.Subscribe(func(s Signal) { second = append(second, s) })

	bus.Publish(ResignActive)
	bus.Publish(EnterForeground)

	assert.Equal(t, []Signal{ResignActive, EnterForeground}, first)
	assert.Equal(t, []Signal{ResignActive, EnterForeground}, second)
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus(zap.NewNop())

	var got []Signal
	cancel := bus.Subscribe(func(s Signal) { got = append(got, s) })
	bus.Publish(EnterForeground)
	assert.Equal(t, []Signal{EnterForeground}, got)

	cancel()
	cancel() // second call is harmless
	bus.Publish(ResignActive)

	assert.Equal(t, []Signal{EnterForeground}, got)
}
