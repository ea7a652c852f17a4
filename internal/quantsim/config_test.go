package quantsim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quantizers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
quantizers:
  - name: conv1.weight
    bit_width: 8
    symmetric: true
    per_channel: true
    axis_handling: per_channel
    param: true
    min: -0.5
    max: 0.5
  - name: relu1.out
    bit_width: 8
    min: 0
    max: 6
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Len(t, cfg.Quantizers, 2)

	w := cfg.Quantizers[0]
	assert.Equal(t, "conv1.weight", w.Name)
	assert.True(t, w.Symmetric)
	assert.True(t, w.Param)
	assert.Equal(t, AxisPerChannel, w.Axis())

	a := cfg.Quantizers[1]
	assert.False(t, a.Param)
	assert.Equal(t, AxisPerTensor, a.Axis())
	assert.Equal(t, Encoding{Min: 0, Max: 6, BitWidth: 8}, a.Encoding())
}

func TestLoadConfigRejectsBadBitWidth(t *testing.T) {
	path := writeConfig(t, `
quantizers:
  - name: bad
    bit_width: 0
`)
	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "bit_width")
}

func TestLoadConfigRejectsUnknownAxisHandling(t *testing.T) {
	path := writeConfig(t, `
quantizers:
  - name: bad
    bit_width: 8
    axis_handling: diagonal
`)
	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "axis_handling")
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestAxisMapping(t *testing.T) {
	assert.Equal(t, AxisPerTensor, (&QuantizerConfig{}).Axis())
	assert.Equal(t, AxisPerTensor, (&QuantizerConfig{AxisHandling: "per_tensor"}).Axis())
	assert.Equal(t, AxisPerChannel, (&QuantizerConfig{AxisHandling: "per_channel"}).Axis())
	assert.Equal(t, AxisLastTwoCombined, (&QuantizerConfig{AxisHandling: "last_two_axes"}).Axis())
}
