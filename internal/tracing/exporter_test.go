package tracing

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileExporter_WritesSpans(t *testing.T) {
	tmpDir := t.TempDir()
	tracePath := filepath.Join(tmpDir, "traces", "traces.jsonl")

	provider, err := NewProvider(Config{
		Enabled:    true,
		Exporter:   "file",
		FilePath:   tracePath,
		SampleRate: 1.0,
	})
	require.NoError(t, err)

	_, span := provider.Tracer().Start(context.Background(), "cat.save")
	span.End()

	// Shutdown flushes the batcher
	require.NoError(t, provider.Shutdown(context.Background()))

	f, err := os.Open(tracePath) //nolint:gosec // test-owned path
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	var records []SpanRecord
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var rec SpanRecord
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &rec))
		records = append(records, rec)
	}
	require.NoError(t, scanner.Err())

	require.Len(t, records, 1)
	require.Equal(t, "cat.save", records[0].Name)
	require.NotEmpty(t, records[0].TraceID)
	require.NotEmpty(t, records[0].SpanID)
}

func TestFileExporter_AppendsAcrossOpens(t *testing.T) {
	tmpDir := t.TempDir()
	tracePath := filepath.Join(tmpDir, "traces.jsonl")

	for i := 0; i < 2; i++ {
		exp, err := NewFileExporter(tracePath)
		require.NoError(t, err)
		require.NoError(t, exp.Shutdown(context.Background()))
	}

	info, err := os.Stat(tracePath)
	require.NoError(t, err)
	require.False(t, info.IsDir())
}

func TestFileExporter_ShutdownIdempotent(t *testing.T) {
	tmpDir := t.TempDir()
	exp, err := NewFileExporter(filepath.Join(tmpDir, "traces.jsonl"))
	require.NoError(t, err)

	require.NoError(t, exp.Shutdown(context.Background()))
	require.NoError(t, exp.Shutdown(context.Background()), "second Shutdown should be a no-op")
}
