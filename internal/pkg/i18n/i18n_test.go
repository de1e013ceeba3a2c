package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTranslations(t *testing.T) {
	t.Cleanup(reset)

	err := LoadTranslations(filepath.Join("..", "..", "..", "locales"))
	require.NoError(t, err)

	assert.Equal(t, "Komentar Anda disukai", Translate("id", KeyUpvoteTitle))
	assert.Equal(t, "Your comment was upvoted", Translate("en", KeyUpvoteTitle))

	// missing from id, falls back to en
	assert.Equal(t, "Your comment was downvoted", Translate("id", KeyDownvoteTitle))

	assert.Equal(t, "NON_EXISTENT_KEY", Translate("id", "NON_EXISTENT_KEY"))
}

func TestTranslate_Builtin(t *testing.T) {
	reset()

	assert.Equal(t, "New reply to your comment", Translate("fr", KeyReplyTitle))
	assert.Equal(t, `ana replied: "hi"`, Sprintf("fr", KeyReplyMessage, "ana", "hi"))
}

func TestLoadTranslations_Errors(t *testing.T) {
	t.Cleanup(reset)

	assert.Error(t, LoadTranslations(filepath.Join(t.TempDir(), "missing")))

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "en"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en", notificationsFile), []byte("NOTIFICATIONS: [oops"), 0o644))
	assert.Error(t, LoadTranslations(dir))

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "empty"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en", notificationsFile), []byte("NOTIFICATIONS:\n  KEY: val\n"), 0o644))
	require.NoError(t, LoadTranslations(dir))
	assert.Equal(t, "val", Translate("empty", "KEY"))
}
