package hardware

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNvidiaSMI(t *testing.T) {
	r, err := ParseNvidiaSMI("NVIDIA GeForce RTX 3070, 61, 1905, 37\n")
	require.NoError(t, err)
	assert.Equal(t, "NVIDIA GeForce RTX 3070", r.Name)
	assert.Equal(t, 61.0, r.TempC)
	assert.Equal(t, 1905.0, r.ClockMHz)
	assert.Equal(t, 37.0, r.UsagePct)
}

func TestParseNvidiaSMI_FirstGPUOnly(t *testing.T) {
	r, err := ParseNvidiaSMI("GPU A, 40, 1500, 10\nGPU B, 80, 2000, 90\n")
	require.NoError(t, err)
	assert.Equal(t, "GPU A", r.Name)
	assert.Equal(t, 40.0, r.TempC)
}

func TestParseNvidiaSMI_NotAvailableColumns(t *testing.T) {
	r, err := ParseNvidiaSMI("Tesla T4, 45, 585, [N/A]")
	require.NoError(t, err)
	assert.Equal(t, -1.0, r.UsagePct)

	_, err = ParseNvidiaSMI("Tesla T4, [N/A], [N/A], [N/A]")
	require.Error(t, err)
}

func TestParseNvidiaSMI_Malformed(t *testing.T) {
	_, err := ParseNvidiaSMI("")
	require.Error(t, err)

	_, err = ParseNvidiaSMI("No devices were found")
	require.Error(t, err)
}

func TestNvidiaSMI_QueryUsesRunner(t *testing.T) {
	var gotArgs []string
	n := NewNvidiaSMI("")
	n.Run = func(ctx context.Context, name string, args ...string) ([]byte, error) {
		gotArgs = append([]string{name}, args...)
		return []byte("GPU, 50, 1700, 20"), nil
	}

	r, err := n.Query(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1700.0, r.ClockMHz)
	assert.Equal(t, "nvidia-smi", gotArgs[0])
	assert.Contains(t, gotArgs, "--format=csv,noheader,nounits")
}

func TestNvidiaSMI_QueryRunnerError(t *testing.T) {
	n := NewNvidiaSMI("/opt/nvidia-smi")
	n.Run = func(ctx context.Context, name string, args ...string) ([]byte, error) {
		return nil, errors.New("not found")
	}

	_, err := n.Query(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/opt/nvidia-smi")
}
