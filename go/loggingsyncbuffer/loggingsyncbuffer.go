// Package loggingsyncbuffer contains a SyncWriter that writes to a buffer.
package loggingsyncbuffer

import (
	"bytes"
)

// SyncWriter implements logger.SyncWriter.
type SyncWriter struct {
	b bytes.Buffer
}

// New returns a new SyncWriter.
func New() *SyncWriter {
	return &SyncWriter{}
}

// Write implements logger.SyncWriter.
func (s *SyncWriter) Write(p []byte) (n int, err error) {
	return s.b.Write(p)
}

// Sync implements logger.SyncWriter.
func (s *SyncWriter) Sync() error {
	return nil
}

// String returns the contents of the buffer as a string.
func (s *SyncWriter) String() string {
	return s.b.String()
}
