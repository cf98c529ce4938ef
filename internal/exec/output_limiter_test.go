package exec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLimitOutputUnderCap(t *testing.T) {
	data := bytes.Repeat([]byte("a"), 100)
	result, truncated := LimitOutput(data)
	assert.False(t, truncated)
	assert.Equal(t, data, result)
}

func TestLimitOutputOverCap(t *testing.T) {
	data := bytes.Repeat([]byte("a"), OutputMaxBytes+128*1024)
	result, truncated := LimitOutput(data)
	assert.True(t, truncated)
	assert.Equal(t, OutputMaxBytes, len(result))
}

func TestAggregateOutputKeepsOrderUnderCap(t *testing.T) {
	aggregated := AggregateOutput([]byte("aaaa"), []byte("bbb"))
	assert.Equal(t, []byte("aaaabbb"), aggregated)
}

func TestAggregateOutputPrefersStderrOnContention(t *testing.T) {
	stdout := bytes.Repeat([]byte("a"), OutputMaxBytes)
	stderr := bytes.Repeat([]byte("b"), OutputMaxBytes)

	aggregated := AggregateOutput(stdout, stderr)
	stdoutCap := OutputMaxBytes / 3
	stderrCap := OutputMaxBytes - stdoutCap

	assert.Equal(t, OutputMaxBytes, len(aggregated))
	assert.Equal(t, bytes.Repeat([]byte("a"), stdoutCap), aggregated[:stdoutCap])
	assert.Equal(t, bytes.Repeat([]byte("b"), stderrCap), aggregated[stdoutCap:])
}

func TestAggregateOutputRebalancesWhenStderrIsSmall(t *testing.T) {
	stdout := bytes.Repeat([]byte("a"), OutputMaxBytes)
	stderr := []byte("b")

	aggregated := AggregateOutput(stdout, stderr)

	assert.Equal(t, OutputMaxBytes, len(aggregated))
	assert.Equal(t, bytes.Repeat([]byte("a"), OutputMaxBytes-1), aggregated[:OutputMaxBytes-1])
	assert.Equal(t, []byte("b"), aggregated[OutputMaxBytes-1:])
}

func TestAggregateOutputEmptyStreams(t *testing.T) {
	assert.Empty(t, AggregateOutput(nil, nil))
	assert.Equal(t, []byte("err"), AggregateOutput(nil, []byte("err")))
	assert.Equal(t, []byte("out"), AggregateOutput([]byte("out"), nil))
}
