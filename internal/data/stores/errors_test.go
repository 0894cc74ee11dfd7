package stores

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoverFromCorruption_Success(t *testing.T) {
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "reel.db")

	require.NoError(t, os.WriteFile(dbPath, []byte("corrupted data"), 0o644))

	walPath := dbPath + "-wal"
	shmPath := dbPath + "-shm"
	require.NoError(t, os.WriteFile(walPath, []byte("wal data"), 0o644))
	require.NoError(t, os.WriteFile(shmPath, []byte("shm data"), 0o644))

	require.NoError(t, RecoverFromCorruption(tempDir))

	allFiles, err := filepath.Glob(filepath.Join(tempDir, "reel.db.corrupt.*"))
	require.NoError(t, err)

	var dbBackups, walBackups, shmBackups []string
	for _, f := range allFiles {
		switch {
		case strings.HasSuffix(f, "-wal"):
			walBackups = append(walBackups, f)
		case strings.HasSuffix(f, "-shm"):
			shmBackups = append(shmBackups, f)
		default:
			dbBackups = append(dbBackups, f)
		}
	}

	assert.Len(t, dbBackups, 1, "db backups: %v", dbBackups)
	assert.Len(t, walBackups, 1, "wal backups: %v", walBackups)
	assert.Len(t, shmBackups, 1, "shm backups: %v", shmBackups)

	for _, p := range []string{dbPath, walPath, shmPath} {
		_, err = os.Stat(p)
		assert.True(t, os.IsNotExist(err), "%s should be moved", p)
	}
}

func TestRecoverFromCorruption_MissingFile(t *testing.T) {
	tempDir := t.TempDir()

	assert.NoError(t, RecoverFromCorruption(tempDir))

	files, _ := filepath.Glob(filepath.Join(tempDir, "*.corrupt.*"))
	assert.Empty(t, files)
}

func TestRecoverFromCorruption_BackupNaming(t *testing.T) {
	tempDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "reel.db"), []byte("corrupted"), 0o644))

	require.NoError(t, RecoverFromCorruption(tempDir))

	files, _ := filepath.Glob(filepath.Join(tempDir, "reel.db.corrupt.*"))
	require.Len(t, files, 1)

	filename := filepath.Base(files[0])
	assert.True(t, strings.HasPrefix(filename, "reel.db.corrupt."), filename)
	assert.Len(t, filename, len("reel.db.corrupt.20060102-150405"))
}

func TestIsCorruptionError(t *testing.T) {
	assert.False(t, IsCorruptionError(nil))
	assert.False(t, IsCorruptionError(errors.New("connection refused")))
	assert.True(t, IsCorruptionError(errors.New("database disk image is malformed")))
	assert.True(t, IsCorruptionError(fmt.Errorf("open: %w", errors.New("file is not a database"))))
}

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, IsNotFoundError(fmt.Errorf("pref get: %w", sql.ErrNoRows)))
	assert.False(t, IsNotFoundError(errors.New("other")))
	assert.False(t, IsNotFoundError(nil))
}
