package cli_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/charmingruby/negfilt/internal/cli"
)

type brokenPipe struct{}

func (brokenPipe) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestRootPrintsNegatives(t *testing.T) {
	var out bytes.Buffer
	cmd := cli.NewRootCommand(&out, zap.NewNop())
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "-1\n-2\n-3\n-4\n", out.String())
}

func TestRootLogsSizes(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	var out bytes.Buffer
	cmd := cli.NewRootCommand(&out, zap.New(core))
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	entries := logs.FilterMessage("filtered sample").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.EqualValues(t, 8, fields["input"])
	assert.EqualValues(t, 4, fields["negatives"])
}

func TestRootRejectsArgs(t *testing.T) {
	var out bytes.Buffer
	cmd := cli.NewRootCommand(&out, zap.NewNop())
	cmd.SetArgs([]string{"extra"})

	require.Error(t, cmd.Execute())
	assert.Empty(t, out.String())
}

func TestRootPropagatesWriteError(t *testing.T) {
	cmd := cli.NewRootCommand(brokenPipe{}, zap.NewNop())
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
}
