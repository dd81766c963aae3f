package hardware

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// GPUReading is the subset of nvidia-smi output the game uses.
// A negative field means the value was not reported.
type GPUReading struct {
	Name     string
	TempC    float64
	ClockMHz float64
	UsagePct float64
}

// nvidiaQuery lists the columns requested from nvidia-smi, in order.
var nvidiaQuery = []string{
	"name",
	"temperature.gpu",
	"clocks.current.graphics",
	"utilization.gpu",
}

// CommandRunner runs an external command and returns its stdout.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// NvidiaSMI queries an NVIDIA GPU through the nvidia-smi tool.
type NvidiaSMI struct {
	Path string
	Run  CommandRunner
}

// NewNvidiaSMI creates a query helper for the nvidia-smi binary at path.
func NewNvidiaSMI(path string) *NvidiaSMI {
	if path == "" {
		path = "nvidia-smi"
	}
	return &NvidiaSMI{Path: path, Run: execRunner}
}

// Query reads the first GPU reported by nvidia-smi.
func (n *NvidiaSMI) Query(ctx context.Context) (GPUReading, error) {
	out, err := n.Run(ctx, n.Path,
		"--query-gpu="+strings.Join(nvidiaQuery, ","),
		"--format=csv,noheader,nounits",
	)
	if err != nil {
		return GPUReading{}, fmt.Errorf("running %s: %w", n.Path, err)
	}
	return ParseNvidiaSMI(string(out))
}

// ParseNvidiaSMI parses the first line of a csv,noheader,nounits answer to
// the name,temperature,clock,utilization query. Columns that are missing or
// read "[N/A]" are reported as -1.
func ParseNvidiaSMI(out string) (GPUReading, error) {
	line := strings.TrimSpace(out)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = strings.TrimSpace(line[:i])
	}
	if line == "" {
		return GPUReading{}, fmt.Errorf("empty nvidia-smi output")
	}

	parts := strings.Split(line, ",")
	if len(parts) < 3 {
		return GPUReading{}, fmt.Errorf("unexpected nvidia-smi output %q", line)
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	reading := GPUReading{
		Name:     parts[0],
		TempC:    parseColumn(parts, 1),
		ClockMHz: parseColumn(parts, 2),
		UsagePct: parseColumn(parts, 3),
	}
	if reading.TempC < 0 && reading.ClockMHz < 0 {
		return GPUReading{}, fmt.Errorf("no usable values in nvidia-smi output %q", line)
	}
	return reading, nil
}

func parseColumn(parts []string, i int) float64 {
	if i >= len(parts) {
		return -1
	}
	v, err := strconv.ParseFloat(parts[i], 64)
	if err != nil {
		return -1
	}
	return v
}
