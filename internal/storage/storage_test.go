package storage

import (
	"path/filepath"
	"testing"

	"cardstack/internal/config"
	"cardstack/internal/domain"
	"cardstack/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOpen_SQLite(t *testing.T) {
	cfg := &config.Config{
		StoreDriver: "sqlite",
		SQLitePath:  filepath.Join(t.TempDir(), "nested", "cardstack.db"),
	}
	logger := zap.NewNop()

	store, err := Open(cfg, logger)
	require.NoError(t, err)

	value, err := store.KV.Get(domain.CardsKey)
	require.NoError(t, err)
	assert.Nil(t, value)

	editor := service.NewEditService(store.KV, logger)
	_, err = editor.AddCard("hello", "привет")
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Data and schema survive a reopen
	store, err = Open(cfg, logger)
	require.NoError(t, err)
	defer store.Close()

	cards := service.NewCardStore(store.KV, logger).Load()
	require.Len(t, cards, 1)
	assert.Equal(t, "hello", cards[0].Prompt)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	store, err := Open(&config.Config{StoreDriver: "mysql"}, zap.NewNop())

	assert.Error(t, err)
	assert.Nil(t, store)
}
