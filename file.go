package opennurbs

import (
	"os"

	"github.com/scigolib/opennurbs/internal/utils"
)

// File represents a 3dm file whose metadata sections have been decoded.
type File struct {
	osFile  *os.File
	archive *Archive
}

// Open opens a 3dm file and decodes its metadata sections.
func Open(filename string) (*File, error) {
	//nolint:gosec // G304: User-provided filename is intentional for a file library
	f, err := os.Open(filename)
	if err != nil {
		return nil, utils.WrapError("file open failed", err)
	}

	archive, err := Decode(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	return &File{osFile: f, archive: archive}, nil
}

// Close closes the underlying file. It is safe to call Close multiple times.
func (f *File) Close() error {
	if f.osFile == nil {
		return nil // Already closed.
	}
	err := f.osFile.Close()
	f.osFile = nil // Prevent double close.
	return err
}

// Archive returns the decoded metadata.
func (f *File) Archive() *Archive {
	return f.archive
}
