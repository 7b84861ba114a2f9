package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSnapshotCapturesEnvironment(t *testing.T) {
	t.Setenv("RRCM_TEST_MARKER", "present")

	snap, err := NewSnapshot()
	require.NoError(t, err)
	assert.NotEmpty(t, snap.Home())

	v, ok := snap.Var("RRCM_TEST_MARKER")
	assert.True(t, ok)
	assert.Equal(t, "present", v)
}

func TestSnapshotEmptyVarIsUnset(t *testing.T) {
	snap := NewSnapshotFrom("/home/u", map[string]string{"EMPTY": ""}, nil)

	_, ok := snap.Var("EMPTY")
	assert.False(t, ok)
}

func TestSnapshotFolderLookup(t *testing.T) {
	snap := NewSnapshotFrom("/home/u", nil, map[Token]string{
		TokenXDGConfigHome: "/home/u/.config",
	})

	v, ok := snap.Folder(TokenXDGConfigHome)
	assert.True(t, ok)
	assert.Equal(t, "/home/u/.config", v)

	_, ok = snap.Folder(TokenDesktop)
	assert.False(t, ok)
}
