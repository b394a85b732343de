package filestorage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yigit/ams/internal/pkg/logger"
)

// LocalStorage handles saving files to the local filesystem.
type LocalStorage struct {
	basePath string
}

var _ FileStorage = (*LocalStorage)(nil)

// NewLocalStorage creates a new LocalStorage rooted at basePath, creating it if needed.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{basePath: basePath}, nil
}

// Save stores r as <subPath>/<date>_<uuid><ext>
func (ls *LocalStorage) Save(r io.Reader, filename, subPath string) (string, error) {
	subPath = filepath.Clean("/" + subPath)[1:]
	fullDirPath := filepath.Join(ls.basePath, subPath)
	if err := os.MkdirAll(fullDirPath, 0o755); err != nil {
		logger.Error().Err(err).Str("path", fullDirPath).Msg("Failed to create subdirectory")
		return "", fmt.Errorf("failed to create subdirectory: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	uniqueFilename := time.Now().Format("20060102") + "_" + uuid.New().String() + ext
	dstPath := filepath.Join(fullDirPath, uniqueFilename)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, r); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	stored := filepath.ToSlash(filepath.Join(subPath, uniqueFilename))
	logger.Info().Str("filename", filename).Str("stored_as", stored).Msg("File archived")
	return stored, nil
}

// Delete removes a stored file
func (ls *LocalStorage) Delete(storedPath string) error {
	physicalPath := ls.FullPath(storedPath)
	if physicalPath == "" {
		return fmt.Errorf("invalid file path: %q", storedPath)
	}

	if err := os.Remove(physicalPath); err != nil {
		if os.IsNotExist(err) {
			logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
			return nil
		}
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// FullPath returns the filesystem path of a stored file, or "" when the path escapes the root
func (ls *LocalStorage) FullPath(storedPath string) string {
	clean := filepath.Clean("/" + filepath.FromSlash(storedPath))[1:]
	if clean == "" {
		return ""
	}
	return filepath.Join(ls.basePath, clean)
}
