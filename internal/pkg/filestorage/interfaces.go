package filestorage

import "io"

// FileStorage archives uploaded files
type FileStorage interface {
	// Save copies r into subPath under a collision-free name derived from filename
	// and returns the stored path relative to the storage root.
	Save(r io.Reader, filename, subPath string) (string, error)

	// Delete removes a stored file. Missing files are not an error.
	Delete(storedPath string) error

	// FullPath resolves a stored path to its location on disk
	FullPath(storedPath string) string
}
