// Package testing provides test utilities for the opennurbs library.
package testing

// FailingSource is a byte source whose every operation fails with Err.
// Tests use it to verify that I/O errors surface unchanged.
type FailingSource struct {
	Err error
}

// Read implements io.Reader for the failing source.
func (s *FailingSource) Read(p []byte) (int, error) {
	return 0, s.Err
}

// Seek implements io.Seeker for the failing source.
func (s *FailingSource) Seek(offset int64, whence int) (int64, error) {
	return 0, s.Err
}
