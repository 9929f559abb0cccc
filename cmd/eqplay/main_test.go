package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_Usage(t *testing.T) {
	err := run(context.Background(), nil, &bytes.Buffer{})
	require.ErrorIs(t, err, errUsage)
}

func TestRun_MissingInput(t *testing.T) {
	err := run(context.Background(), []string{"/nonexistent/in.wav"}, &bytes.Buffer{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to open input file")
}
