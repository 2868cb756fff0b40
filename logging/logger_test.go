package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "json")

	l.Warn("skipping symbol", "symbol", "TCS.NS", "error", errors.New("boom"), 42, "ignored")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "skipping symbol", entry["message"])
	assert.Equal(t, "TCS.NS", entry["symbol"])
	assert.Equal(t, "boom", entry["error"])
	assert.Contains(t, entry, "time")
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "json").With("component", "market")

	l.Info("ready")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "market", entry["component"])
}

func TestNop_Discards(t *testing.T) {
	assert.NotPanics(t, func() { Nop().Error("nothing", "k", "v") })
}

func TestGlobal(t *testing.T) {
	t.Cleanup(func() { SetGlobal(nil) })

	SetGlobal(nil)
	require.NotNil(t, global())

	var buf bytes.Buffer
	l := New(&buf, "json")
	SetGlobal(l)
	assert.Same(t, l, global())

	global().Error("failed to initialize", "error", errors.New("bad config"))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "bad config", entry["error"])
}
