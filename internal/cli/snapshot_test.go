package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotAndRestore(t *testing.T) {
	dir := writeKBDir(t)
	dbPath := filepath.Join(t.TempDir(), "atoms.db")

	snapBuf := &bytes.Buffer{}
	snap := NewSnapshotCommand(&RootOptions{Format: "text"})
	snap.SetOut(snapBuf)
	snap.SetArgs([]string{"--specs", dir, "--db", dbPath})
	require.NoError(t, snap.Execute())
	assert.Contains(t, snapBuf.String(), "snapshot written:")

	restoreBuf := &bytes.Buffer{}
	restore := NewRestoreCommand(&RootOptions{Format: "text", Verbose: true})
	restore.SetOut(restoreBuf)
	restore.SetArgs([]string{"--db", dbPath})
	require.NoError(t, restore.Execute())

	out := restoreBuf.String()
	assert.Contains(t, out, "restored")
	assert.Contains(t, out, `(Concept "dog")`)
	assert.Contains(t, out, `(Evaluation (Predicate "legs") (List (Concept "spider") (Number "8")))`)
}

func TestSnapshotMissingKB(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "atoms.db")

	cmd := NewSnapshotCommand(&RootOptions{Format: "text"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--specs", "/nonexistent/kb", "--db", dbPath})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "E005")
}

func TestRestoreEmptySnapshot(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "atoms.db")

	buf := &bytes.Buffer{}
	cmd := NewRestoreCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--db", dbPath})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "restored 0 atoms")
}
