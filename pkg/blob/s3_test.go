package blob

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildKey_Shape(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	key := BuildKey("firm-1", "case-7", "deposition transcript.txt", now)

	parts := strings.Split(key, "/")
	require.Len(t, parts, 8)
	assert.Equal(t, []string{"firms", "firm-1", "cases", "case-7", "2026", "03", "14"}, parts[:7])

	name := parts[7]
	require.Len(t, strings.SplitN(name, "_", 2), 2)
	uid := strings.SplitN(name, "_", 2)[0]
	assert.Len(t, uid, 8)
	assert.True(t, strings.HasSuffix(name, "deposition_transcript.txt"))
}

func TestBuildKey_UsesUTCDate(t *testing.T) {
	loc := time.FixedZone("UTC-8", -8*3600)
	now := time.Date(2026, 3, 14, 23, 0, 0, 0, loc) // already the 15th in UTC
	key := BuildKey("firm-1", "case-7", "a.txt", now)
	assert.Contains(t, key, "/2026/03/15/")
}

func TestBuildKey_UniquePerCall(t *testing.T) {
	now := time.Now()
	assert.NotEqual(t,
		BuildKey("firm-1", "case-7", "a.txt", now),
		BuildKey("firm-1", "case-7", "a.txt", now))
}

func TestSafeName(t *testing.T) {
	assert.Equal(t, "report.pdf", safeName("report.pdf"))
	assert.Equal(t, "passwd", safeName("../../etc/passwd"))
	assert.Equal(t, "secret.txt", safeName(`C:\Users\me\secret.txt`))
	assert.Equal(t, "my_notes__final_.txt", safeName("my notes (final).txt"))
	assert.Equal(t, "d_p_t.mp3", safeName("dépôt.mp3"))
	assert.Equal(t, "file", safeName(""))
	assert.Equal(t, "file", safeName("/"))
}

func TestDisabledStoreRejectsEverything(t *testing.T) {
	store, err := NewStore(context.Background(), Config{Disabled: true})
	require.NoError(t, err)
	assert.False(t, store.Enabled())

	assert.ErrorIs(t, store.UploadBytes(context.Background(), "k", []byte("x"), "text/plain"), ErrDisabled)
	_, err = store.DownloadBytes(context.Background(), "k")
	assert.ErrorIs(t, err, ErrDisabled)
	_, err = store.PresignGet(context.Background(), "k")
	assert.ErrorIs(t, err, ErrDisabled)
}

func TestNilStoreIsDisabled(t *testing.T) {
	var store *Store
	assert.False(t, store.Enabled())
}

func TestNewStoreRequiresBucket(t *testing.T) {
	_, err := NewStore(context.Background(), Config{})
	assert.Error(t, err)
}
