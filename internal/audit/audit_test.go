package audit

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codex-k8s/purchase-chain/internal/purchase"
	"github.com/codex-k8s/purchase-chain/internal/runtime/chain"
	"github.com/codex-k8s/purchase-chain/internal/templates"
)

func records(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	scanner := bufio.NewScanner(buf)
	for scanner.Scan() {
		var record map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &record))
		out = append(out, record)
	}
	return out
}

func TestStdLoggerRecord(t *testing.T) {
	var buf bytes.Buffer
	l := New(slog.New(slog.NewJSONHandler(&buf, nil)))

	l.Record(context.Background(), Event{Type: EventStopped, CorrelationID: "c1", Number: 10001, Amount: 55000, Decision: "stopped", Approver: "vv", Depth: 2})

	got := records(t, &buf)
	require.Len(t, got, 1)
	assert.Equal(t, "audit", got[0]["msg"])
	assert.Equal(t, EventStopped, got[0]["type"])
	assert.Equal(t, "vv", got[0]["approver"])
	assert.Equal(t, float64(2), got[0]["depth"])
}

func TestStdLoggerNil(t *testing.T) {
	var l *StdLogger
	assert.NotPanics(t, func() { l.Record(context.Background(), Event{}) })
	assert.NotPanics(t, func() { New(nil).Record(context.Background(), Event{}) })
}

func TestCorrelationID(t *testing.T) {
	ctx := WithCorrelationID(context.Background(), "abc")
	assert.Equal(t, "abc", CorrelationID(ctx))
	assert.Empty(t, CorrelationID(context.Background()))
}

func TestReporterVisited(t *testing.T) {
	bundle, err := templates.Load("en")
	require.NoError(t, err)
	var buf bytes.Buffer
	r := NewReporter(slog.New(slog.NewJSONHandler(&buf, nil)), bundle)

	ctx := WithCorrelationID(context.Background(), "corr-1")
	req := purchase.NewRequest(55000, 10001, "project")
	r.Visited(ctx, chain.Visit{Position: 0, Name: "dd", Role: "director", Request: req, Continue: true})
	r.Visited(ctx, chain.Visit{Position: 1, Name: "vv", Role: "vice_president", Request: req, Continue: false})

	got := records(t, &buf)
	require.Len(t, got, 2)
	assert.Equal(t, "Director dd reviewed purchase #10001, amount 55000, purpose: project", got[0]["msg"])
	assert.Equal(t, "continued", got[0]["decision"])
	assert.Equal(t, "corr-1", got[0]["correlation_id"])
	assert.Equal(t, "Vice president vv reviewed purchase #10001, amount 55000, purpose: project", got[1]["msg"])
	assert.Equal(t, "stopped", got[1]["decision"])
	assert.Equal(t, float64(1), got[1]["position"])
}

func TestReporterLineFallbacks(t *testing.T) {
	visit := chain.Visit{Name: "aa", Role: "auditor", Request: purchase.NewRequest(12.5, 3, "pens")}

	assert.Equal(t, "auditor aa reviewed purchase #3, amount 12.5, purpose: pens", NewReporter(nil, nil).Line(visit))

	zh, err := templates.Load("zh")
	require.NoError(t, err)
	assert.Equal(t, "auditor:aa,审批采购数量:3，金额:12.5元，采购目的:pens", NewReporter(nil, zh).Line(visit))
}
