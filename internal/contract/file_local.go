package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// LocalFileReader implements the FileReader interface against the working
// tree on disk.
type LocalFileReader struct{}

var _ FileReader = &LocalFileReader{} // Compile-time check

// NewLocalFileReader creates a new instance of the local file reader.
func NewLocalFileReader() *LocalFileReader {
	return &LocalFileReader{}
}

// ReadFile returns the content of repoPath/relPath. Missing files,
// permission problems and non-UTF-8 content all surface as errors; the
// caller treats them uniformly as "no content" and moves on.
func (r *LocalFileReader) ReadFile(repoPath, relPath string) (string, error) {
	data, err := os.ReadFile(filepath.Join(repoPath, relPath))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("file %q is not valid UTF-8 text", relPath)
	}
	return string(data), nil
}
