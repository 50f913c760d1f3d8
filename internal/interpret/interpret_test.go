package interpret

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"network-ping/internal/models"
)

const linuxTranscript = `PING 8.8.8.8 (8.8.8.8) 56(84) bytes of data.
64 bytes from 8.8.8.8: icmp_seq=1 ttl=64 time=23.4 ms

--- 8.8.8.8 ping statistics ---
1 packets transmitted, 1 received, 0% packet loss, time 0ms
rtt min/avg/max/mdev = 23.400/23.400/23.400/0.000 ms
`

func TestVerbatimIdentityOnSuccess(t *testing.T) {
	for _, text := range []string{"", linuxTranscript, "  odd\twhitespace \n", "ünïcode"} {
		outcome := Verbatim{}.Interpret(models.RawCapture{Stdout: text, Succeeded: true})
		assert.True(t, outcome.OK())
		assert.Equal(t, text, outcome.Text)
	}
}

func TestVerbatimFailureCarriesStdout(t *testing.T) {
	stdout := "ping: unknown host example.invalid\n"

	outcome := Verbatim{}.Interpret(models.RawCapture{Stdout: stdout, Succeeded: false, ExitCode: 2})
	require.False(t, outcome.OK())
	assert.Equal(t, stdout, outcome.Description())

	var failure *ProcessFailure
	require.True(t, errors.As(outcome.Err, &failure))
	assert.Equal(t, 2, failure.ExitCode)
}

func TestLatency(t *testing.T) {
	tests := []struct {
		name     string
		capture  models.RawCapture
		expected models.Outcome
	}{
		{
			name:     "single reply line",
			capture:  models.RawCapture{Stdout: "64 bytes from 8.8.8.8: icmp_seq=1 ttl=64 time=23.4 ms", Succeeded: true},
			expected: models.Success("23.4"),
		},
		{
			name:     "full transcript uses first timing line",
			capture:  models.RawCapture{Stdout: linuxTranscript + "64 bytes from 8.8.8.8: icmp_seq=2 ttl=64 time=99.9 ms\n", Succeeded: true},
			expected: models.Success("23.4"),
		},
		{
			name:     "windows reply keeps unit suffix",
			capture:  models.RawCapture{Stdout: "Reply from 8.8.8.8: bytes=32 time=15ms TTL=118", Succeeded: true},
			expected: models.Success("15ms"),
		},
		{
			name:     "timing line in failed run is still read",
			capture:  models.RawCapture{Stdout: "64 bytes from 10.0.0.1: icmp_seq=1 ttl=64 time=5.2 ms\n", Succeeded: false},
			expected: models.Success("5.2"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Latency{}.Interpret(tt.capture))
		})
	}
}

func TestLatencyWithoutTimingLine(t *testing.T) {
	for _, stdout := range []string{
		"",
		"ping: unknown host example.invalid",
		"Reply from 8.8.8.8: bytes=32 time<1ms TTL=118",
		"garbage time=",
	} {
		outcome := Latency{}.Interpret(models.RawCapture{Stdout: stdout})
		require.False(t, outcome.OK(), stdout)

		var parseErr *ParseError
		require.True(t, errors.As(outcome.Err, &parseErr), stdout)
		assert.Equal(t, "no timing line found", outcome.Description())
	}
}

func TestLatencyLongLines(t *testing.T) {
	long := strings.Repeat("x", 70*1024)

	tests := []struct {
		name   string
		stdout string
	}{
		{"long line before timing line", long + "\n64 bytes from 8.8.8.8: icmp_seq=1 ttl=64 time=12.5 ms\n"},
		{"timing on a long line", long + " time=12.5 ms"},
		{"crlf endings", "PING 8.8.8.8\r\n64 bytes from 8.8.8.8: time=12.5 ms\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := Latency{}.Interpret(models.RawCapture{Stdout: tt.stdout, Succeeded: true})
			require.True(t, outcome.OK())
			assert.Equal(t, "12.5", outcome.Text)
		})
	}
}

func TestByName(t *testing.T) {
	s, err := ByName(StrategyVerbatim)
	require.NoError(t, err)
	assert.Equal(t, StrategyVerbatim, s.Name())

	s, err = ByName(StrategyLatency)
	require.NoError(t, err)
	assert.Equal(t, StrategyLatency, s.Name())

	_, err = ByName("json")
	assert.Error(t, err)
}

func TestRTT(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		expected float64
		ok       bool
	}{
		{
			name:     "macOS individual response",
			output:   "64 bytes from 8.8.8.8: icmp_seq=0 ttl=118 time=44.347 ms",
			expected: 44.347,
			ok:       true,
		},
		{
			name:     "macOS summary line",
			output:   "round-trip min/avg/max/stddev = 44.347/44.347/44.347/0.000 ms",
			expected: 44.347,
			ok:       true,
		},
		{
			name:     "Linux summary line",
			output:   "rtt min/avg/max/mdev = 0.040/0.052/0.064/0.012 ms",
			expected: 0.052,
			ok:       true,
		},
		{
			name:     "Windows response",
			output:   "Reply from 8.8.8.8: bytes=32 time=15ms TTL=118",
			expected: 15,
			ok:       true,
		},
		{
			name:   "Windows sub-millisecond",
			output: "Reply from 8.8.8.8: bytes=32 time<1ms TTL=118",
		},
		{
			name:     "extracted token",
			output:   "23.4",
			expected: 23.4,
			ok:       true,
		},
		{
			name:     "extracted token with unit",
			output:   "15ms",
			expected: 15,
			ok:       true,
		},
		{
			name:   "No match",
			output: "ping: unknown host example.invalid",
		},
		{
			name:   "Empty output",
			output: "",
		},
		{
			name:     "Multiple lines",
			output:   linuxTranscript,
			expected: 23.4,
			ok:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rtt, ok := RTT(tt.output)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, rtt)
		})
	}
}
