package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()
	assert.Equal(t, "invoices.db", cfg.Store.Path)
	assert.Equal(t, 5, cfg.Extract.ContextWindow)
	assert.Equal(t, 3, cfg.Extract.TopN)
	assert.Equal(t, 7, cfg.Extract.MaxInvoiceLen)
	assert.Empty(t, cfg.Extract.WeightsPath)
	assert.Equal(t, ":8080", cfg.Daemon.HealthAddr)
	assert.Equal(t, 500*time.Millisecond, cfg.Daemon.WatchDebounce)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("STORE_PATH", "/var/lib/invoices.db")
	t.Setenv("EXTRACT_CONTEXT_WINDOW", "8")
	t.Setenv("EXTRACT_MAX_INVOICE_LEN", "not-a-number")
	t.Setenv("WATCH_DEBOUNCE", "2s")

	cfg := LoadConfig()
	assert.Equal(t, "/var/lib/invoices.db", cfg.Store.Path)
	assert.Equal(t, 8, cfg.Extract.ContextWindow)
	assert.Equal(t, 7, cfg.Extract.MaxInvoiceLen, "unparsable values fall back to the default")
	assert.Equal(t, 2*time.Second, cfg.Daemon.WatchDebounce)
}
