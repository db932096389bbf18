package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCommand(t *testing.T) {
	dir := writeKBDir(t)

	buf := &bytes.Buffer{}
	cmd := NewValidateCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--specs", dir})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "OK:")
	assert.Contains(t, buf.String(), "1 patterns")
}

func TestValidateCommandVerbose(t *testing.T) {
	dir := writeKBDir(t)

	buf := &bytes.Buffer{}
	cmd := NewValidateCommand(&RootOptions{Format: "text", Verbose: true})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--specs", dir})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "pattern legged:")
	assert.Contains(t, buf.String(), "2 vars")
}

func TestValidateCommandMissingDir(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewValidateCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--specs", "/nonexistent/kb"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "E005")
}
