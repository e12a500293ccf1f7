package mirror

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpoolPushEject(t *testing.T) {
	s, err := OpenSpool(filepath.Join(t.TempDir(), "rows.spool"))
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Push([]byte("one")))
	require.NoError(t, s.Push([]byte("two")))
	require.NoError(t, s.Push([]byte("three")))
	assert.Equal(t, 3, s.Len())

	frames, err := s.Eject(2)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("one"), []byte("two")}, frames)
	assert.Equal(t, 1, s.Len())

	// Pushes keep appending after a partial eject.
	require.NoError(t, s.Push([]byte("four")))

	frames, err = s.Eject(-1)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("three"), []byte("four")}, frames)
	assert.Equal(t, 0, s.Len())
}

func TestSpoolSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.spool")

	s, err := OpenSpool(path)
	require.NoError(t, err)
	require.NoError(t, s.Push([]byte("one")))
	require.NoError(t, s.Push([]byte("two")))
	require.NoError(t, s.Push([]byte("three")))

	_, err = s.Eject(2)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = OpenSpool(path)
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, 1, s.Len())
	frames, err := s.Eject(-1)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("three")}, frames)
}

func TestSpoolResetsOnCorruption(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.spool")

	s, err := OpenSpool(path)
	require.NoError(t, err)
	require.NoError(t, s.Push([]byte("precious")))
	require.NoError(t, s.Close())

	// Flip the first byte of the frame data so the checksum no longer holds.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	idx := int(headSize + frameMetaSize)
	require.Greater(t, len(raw), idx)
	raw[idx] ^= 0xff
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	s, err = OpenSpool(path)
	require.NoError(t, err)
	defer s.Close()

	// The spool restarts empty and stays usable.
	assert.Equal(t, 0, s.Len())
	require.NoError(t, s.Push([]byte("fresh")))
	frames, err := s.Eject(-1)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("fresh")}, frames)
}

func TestSpoolRejectsOversizedFrame(t *testing.T) {
	s, err := OpenSpool(filepath.Join(t.TempDir(), "rows.spool"))
	require.NoError(t, err)
	defer s.Close()

	err = s.Push(make([]byte, math.MaxUint16+1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "frame too large")
	assert.Equal(t, 0, s.Len())
}
