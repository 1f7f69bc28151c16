package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/snakearena/config"
	"github.com/lixenwraith/snakearena/engine"
	"github.com/lixenwraith/snakearena/event"
	"github.com/lixenwraith/snakearena/status"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunSim_WritesSummary(t *testing.T) {
	m := config.Default()
	m.HumanSeats = 0
	m.Seed = 3
	m.MaxTicks = 50

	var buf bytes.Buffer
	require.NoError(t, runSim(context.Background(), m, &simOptions{}, discardLogger(), &buf))

	var s engine.Summary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &s))
	assert.NotEmpty(t, s.MatchID)
	assert.Positive(t, s.Ticks)
	assert.LessOrEqual(t, s.Ticks, int64(50))
	assert.Len(t, s.Agents, 6)
	for _, a := range s.Agents {
		assert.Equal(t, "ai", a.Kind)
	}
}

func TestRunSim_Cancelled(t *testing.T) {
	m := config.Default()
	m.HumanSeats = 0
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	require.NoError(t, runSim(ctx, m, &simOptions{}, discardLogger(), &buf))

	var s engine.Summary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &s))
	assert.Zero(t, s.Ticks)
}

func TestSimCommand_Flags(t *testing.T) {
	out := filepath.Join(t.TempDir(), "summary.json")
	cmd := newRootCmd()
	cmd.SetArgs([]string{"sim", "--seed", "9", "--players", "3", "--grid-size", "12", "--max-ticks", "20", "-o", out})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var s engine.Summary
	require.NoError(t, json.Unmarshal(data, &s))
	assert.Len(t, s.Agents, 3)
	assert.LessOrEqual(t, s.Ticks, int64(20))
}

func TestSimCommand_InvalidOverride(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"sim", "--players", "40"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestTickLimit(t *testing.T) {
	m := config.Default()
	m.HumanSeats = 0
	m.Seed = 1
	g, err := engine.New(m)
	require.NoError(t, err)

	limit := &tickLimit{game: g, max: 3}
	n := 1
	for limit.Tick() {
		n++
	}
	assert.Equal(t, 3, n)
	assert.Equal(t, g.TickInterval(), limit.TickInterval())
}

func TestServeMetrics(t *testing.T) {
	reg := status.NewRegistry()
	reg.Ints.Get(status.KeyTicks).Store(7)

	addr, shutdown, err := serveMetrics("127.0.0.1:0", reg, discardLogger())
	require.NoError(t, err)
	defer shutdown()

	resp, err := http.Get("http://" + addr + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "snakearena_engine_ticks 7")
}

func TestDescribeEvent(t *testing.T) {
	assert.Equal(t, "P3 died", describeEvent(event.GameEvent{Type: event.EventDied, AgentID: 3}))
	assert.Equal(t, "arena shrunk to 25x25, speed 7",
		describeEvent(event.GameEvent{Type: event.EventGridShrunk, Payload: event.ShrinkPayload{From: 30, To: 25, SpeedLevel: 7}}))
	assert.Empty(t, describeEvent(event.GameEvent{Type: event.EventEat}))
}
