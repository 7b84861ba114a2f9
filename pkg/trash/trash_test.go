package trash

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mizuki0629/rrcm/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutFile(t *testing.T) {
	dir := t.TempDir()
	victim := filepath.Join(dir, "victim.txt")
	require.NoError(t, os.WriteFile(victim, []byte("precious"), 0644))

	tr := NewAt(filepath.Join(dir, "trash"))
	dest, err := tr.Put(victim)
	require.NoError(t, err)

	// Original is gone, content survives in the trash
	assert.NoFileExists(t, victim)
	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "precious", string(data))
}

func TestPutDirectory(t *testing.T) {
	dir := t.TempDir()
	victim := filepath.Join(dir, "nvim")
	require.NoError(t, os.MkdirAll(filepath.Join(victim, "lua"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(victim, "init.lua"), []byte("-- cfg"), 0644))

	tr := NewAt(filepath.Join(dir, "trash"))
	dest, err := tr.Put(victim)
	require.NoError(t, err)

	assert.NoDirExists(t, victim)
	assert.FileExists(t, filepath.Join(dest, "init.lua"))
	assert.DirExists(t, filepath.Join(dest, "lua"))
}

func TestPutWritesTrashInfo(t *testing.T) {
	dir := t.TempDir()
	victim := filepath.Join(dir, "victim.txt")
	require.NoError(t, os.WriteFile(victim, []byte("x"), 0644))

	root := filepath.Join(dir, "trash")
	tr := NewAt(root)
	_, err := tr.Put(victim)
	require.NoError(t, err)

	info, err := os.ReadFile(filepath.Join(root, "info", "victim.txt.trashinfo"))
	require.NoError(t, err)
	assert.Contains(t, string(info), "[Trash Info]")
	assert.Contains(t, string(info), "Path=")
	assert.Contains(t, string(info), "DeletionDate=")
}

func TestPutCollidingNames(t *testing.T) {
	dir := t.TempDir()
	tr := NewAt(filepath.Join(dir, "trash"))

	first := filepath.Join(dir, "same")
	require.NoError(t, os.WriteFile(first, []byte("one"), 0644))
	destOne, err := tr.Put(first)
	require.NoError(t, err)

	second := filepath.Join(dir, "same")
	require.NoError(t, os.WriteFile(second, []byte("two"), 0644))
	destTwo, err := tr.Put(second)
	require.NoError(t, err)

	assert.NotEqual(t, destOne, destTwo)

	one, _ := os.ReadFile(destOne)
	two, _ := os.ReadFile(destTwo)
	assert.Equal(t, "one", string(one))
	assert.Equal(t, "two", string(two))
}

func TestPutMissingEntry(t *testing.T) {
	dir := t.TempDir()
	tr := NewAt(filepath.Join(dir, "trash"))

	_, err := tr.Put(filepath.Join(dir, "nothing-here"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTrashFailure))
}

func TestPutSymlinkMovesLinkNotTarget(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target.txt")
	require.NoError(t, os.WriteFile(target, []byte("keep me"), 0644))
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(target, link))

	tr := NewAt(filepath.Join(dir, "trash"))
	_, err := tr.Put(link)
	require.NoError(t, err)

	// The link is trashed, the target stays put
	assert.FileExists(t, target)
	_, err = os.Lstat(link)
	assert.True(t, os.IsNotExist(err))
}

func TestNewUsesPlatformLocation(t *testing.T) {
	tr, err := New()
	require.NoError(t, err)
	assert.NotEmpty(t, tr.filesDir)
}
