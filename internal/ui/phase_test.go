package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/rileyhilliard/bikeshare/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestNewPhaseDisplay(t *testing.T) {
	var buf bytes.Buffer
	pd := NewPhaseDisplay(&buf)
	assert.NotNil(t, pd)
}

func TestPhaseDisplayRenderProgress(t *testing.T) {
	var buf bytes.Buffer
	pd := NewPhaseDisplay(&buf)

	pd.RenderProgress("Loading chicago")

	output := buf.String()
	assert.Contains(t, output, SymbolProgress)
	assert.Contains(t, output, "Loading chicago...")
}

func TestPhaseDisplayRenderSuccess(t *testing.T) {
	var buf bytes.Buffer
	pd := NewPhaseDisplay(&buf)

	pd.RenderSuccess("Loaded 6 trips", 300*time.Millisecond)

	output := buf.String()
	assert.Contains(t, output, SymbolComplete)
	assert.Contains(t, output, "Loaded 6 trips")
	assert.Contains(t, output, "(0.3s)")
}

func TestPhaseDisplayRenderFailed(t *testing.T) {
	var buf bytes.Buffer
	pd := NewPhaseDisplay(&buf)

	err := errors.New(errors.ErrDataSource, "Can't read trip data for chicago", "Check the file")
	pd.RenderFailed("Loading chicago", 2300*time.Millisecond, err)

	output := buf.String()
	assert.Contains(t, output, SymbolFail)
	assert.Contains(t, output, "Loading chicago")
	assert.Contains(t, output, "2.3s")
	assert.Contains(t, output, "  ✗ Can't read trip data for chicago")
	assert.Contains(t, output, "  Check the file")
}

func TestPhaseDisplayRenderFailed_NilError(t *testing.T) {
	var buf bytes.Buffer
	pd := NewPhaseDisplay(&buf)

	pd.RenderFailed("Loading", time.Second, nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 1)
}

func TestPhaseDisplayDivider(t *testing.T) {
	var buf bytes.Buffer
	pd := NewPhaseDisplay(&buf)

	pd.Divider()

	assert.Equal(t, strings.Repeat("-", DividerWidth)+"\n", buf.String())
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{50 * time.Millisecond, "0.05s"},
		{300 * time.Millisecond, "0.3s"},
		{2300 * time.Millisecond, "2.3s"},
		{12 * time.Second, "12.0s"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatDuration(tt.d))
		})
	}
}
