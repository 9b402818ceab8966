package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const runGPX = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="test">
	<trk><trkseg>
		<trkpt lat="0" lon="0"><time>2025-06-01T07:00:00Z</time></trkpt>
		<trkpt lat="0" lon="0.0045"><time>2025-06-01T07:03:20Z</time></trkpt>
		<trkpt lat="0" lon="0.0108"><time>2025-06-01T07:08:20Z</time></trkpt>
	</trkseg></trk>
</gpx>`

func writeTrack(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.gpx")
	require.NoError(t, os.WriteFile(path, []byte(runGPX), 0o644))
	return path
}

func TestRunDistance(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-file", writeTrack(t), "-start", "0", "-end", "5"}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "Distance: 1.20 km")
	assert.Contains(t, stdout.String(), "Duration: 8m 20s")
	assert.Contains(t, stdout.String(), "min/km")
}

func TestRunTimeJSON(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-file", writeTrack(t), "-method", "time", "-start", "3:20", "-end", "8:20", "-json"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	var result struct {
		Summary struct {
			Duration string `json:"duration"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &result))
	assert.Equal(t, "5m 0s", result.Summary.Duration)
}

func TestRunFailure(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-file", writeTrack(t), "-method", "time", "-start", "ab:cd", "-end", "1:00"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "invalid_input")
}

func TestRunUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run(nil, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "usage:")
}
