package contract

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockGitClient is a testify mock for the GitClient type.
type MockGitClient struct {
	mock.Mock
}

var _ GitClient = &MockGitClient{} // Compile-time check

// Run implements the GitClient interface.
func (m *MockGitClient) Run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	var mockArgs []any
	mockArgs = append(mockArgs, ctx, repoPath)
	for _, arg := range args {
		mockArgs = append(mockArgs, arg)
	}
	ret := m.Called(mockArgs...)
	output, _ := ret.Get(0).([]byte)
	return output, ret.Error(1)
}

// GetRepoRoot implements the GitClient interface.
func (m *MockGitClient) GetRepoRoot(ctx context.Context, contextPath string) (string, error) {
	ret := m.Called(ctx, contextPath)
	root, _ := ret.Get(0).(string)
	return root, ret.Error(1)
}

// GetChangeLog implements the GitClient interface.
func (m *MockGitClient) GetChangeLog(ctx context.Context, repoPath string, since, until time.Time) ([]byte, error) {
	ret := m.Called(ctx, repoPath, since, until)
	output, _ := ret.Get(0).([]byte)
	return output, ret.Error(1)
}

// MockFileReader is a testify mock for the FileReader type.
type MockFileReader struct {
	mock.Mock
}

var _ FileReader = &MockFileReader{} // Compile-time check

// ReadFile implements the FileReader interface.
func (m *MockFileReader) ReadFile(repoPath, relPath string) (string, error) {
	ret := m.Called(repoPath, relPath)
	content, _ := ret.Get(0).(string)
	return content, ret.Error(1)
}

// MapFileReader is a FileReader backed by an in-memory path to content map,
// convenient for table-driven tests where programming a full mock is noise.
type MapFileReader struct {
	Contents map[string]string
}

var _ FileReader = &MapFileReader{} // Compile-time check

// ReadFile implements the FileReader interface.
func (m *MapFileReader) ReadFile(_, relPath string) (string, error) {
	if content, ok := m.Contents[relPath]; ok {
		return content, nil
	}
	return "", ErrNoContent
}
