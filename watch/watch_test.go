package watch_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/reach"
	"github.com/syssam/reach/watch"
)

// recordingInvalidator counts Invalidate calls per source identity.
type recordingInvalidator struct {
	mu    sync.Mutex
	drops map[string]int
}

func newRecorder() *recordingInvalidator {
	return &recordingInvalidator{drops: make(map[string]int)}
}

func (r *recordingInvalidator) Invalidate(src reach.Source) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drops[src.Identity()]++
}

func (r *recordingInvalidator) count(identity string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.drops[identity]
}

func TestWatcherInvalidatesOnWrite(t *testing.T) {
	rec := newRecorder()
	w, err := watch.New(rec)
	require.NoError(t, err)
	defer w.Close()

	path := filepath.Join(t.TempDir(), "model.db")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o600))

	src := reach.NewMapSource("watched")
	require.NoError(t, w.Add(path, src))

	require.NoError(t, os.WriteFile(path, []byte("v2"), 0o600))

	require.Eventually(t, func() bool {
		return rec.count("watched") > 0
	}, 5*time.Second, 10*time.Millisecond, "write event should drop the source")
}

func TestWatcherRemove(t *testing.T) {
	rec := newRecorder()
	w, err := watch.New(rec)
	require.NoError(t, err)
	defer w.Close()

	path := filepath.Join(t.TempDir(), "model.db")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o600))

	src := reach.NewMapSource("watched")
	require.NoError(t, w.Add(path, src))
	require.NoError(t, w.Remove(path))

	require.NoError(t, os.WriteFile(path, []byte("v2"), 0o600))
	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, rec.count("watched"))
}

func TestWatcherAddMissingPath(t *testing.T) {
	rec := newRecorder()
	w, err := watch.New(rec)
	require.NoError(t, err)
	defer w.Close()

	err = w.Add(filepath.Join(t.TempDir(), "absent.db"), reach.NewMapSource(""))
	assert.Error(t, err)
}

func TestWatcherCloseTwice(t *testing.T) {
	w, err := watch.New(newRecorder())
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
}
