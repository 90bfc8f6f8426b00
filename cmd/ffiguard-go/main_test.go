package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckCommand(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"check"})

	require.NoError(t, root.Execute())
	require.True(t, strings.Contains(out.String(), "guard layer ok"), "output: %s", out.String())
}
