package logger

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	loc := time.FixedZone("BRT", -3*60*60)

	log := NewWithWriter(&buf, "info", loc).Named("database")
	log.Info("db_migration_start", zap.String("status", "in_progress"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "db_migration_start", entry["msg"])
	assert.Equal(t, "database", entry["component"])
	assert.Equal(t, "in_progress", entry["status"])

	ts, err := time.Parse(time.RFC3339Nano, entry["ts"].(string))
	require.NoError(t, err)
	_, offset := ts.Zone()
	assert.Equal(t, -3*60*60, offset)
}

func TestNewWithWriter_Level(t *testing.T) {
	var buf bytes.Buffer

	log := NewWithWriter(&buf, "warn", nil)
	log.Info("dropped")
	assert.Zero(t, buf.Len())

	log.Warn("kept")
	assert.Contains(t, buf.String(), `"msg":"kept"`)

	buf.Reset()
	NewWithWriter(&buf, "bogus", nil).Info("defaults to info")
	assert.Contains(t, buf.String(), "defaults to info")
}
