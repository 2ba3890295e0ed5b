package filesystem

import (
	"embed"
	"testing"

	"github.com/stretchr/testify/require"
)

//go:embed testdata
var testdataFS embed.FS

func TestEmbedFileSystem_ReadFile(t *testing.T) {
	efs := NewEmbedFileSystem(testdataFS, "testdata")

	tests := []struct {
		name            string
		path            string
		expectedContent string
		expectErr       bool
	}{
		{
			name:            "read root file",
			path:            "algorithms.txt",
			expectedContent: "monte carlo => MonteCarlo\n",
		},
		{
			name:            "read subdirectory file",
			path:            "subdir/nested.txt",
			expectedContent: "nested content\n",
		},
		{
			name:      "read non-existent file",
			path:      "missing.txt",
			expectErr: true,
		},
		{
			name:      "read directory as file",
			path:      "subdir",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, err := efs.ReadFile(tt.path)
			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expectedContent, string(content))
		})
	}
}

func TestEmbedFileSystem_ReadDir(t *testing.T) {
	efs := NewEmbedFileSystem(testdataFS, "testdata")

	tests := []struct {
		name          string
		path          string
		expectedNames []string
		expectErr     bool
	}{
		{
			name:          "root via dot",
			path:          ".",
			expectedNames: []string{"algorithms.txt", "notes.md", "subdir"},
		},
		{
			name:          "root via empty path",
			path:          "",
			expectedNames: []string{"algorithms.txt", "notes.md", "subdir"},
		},
		{
			name:          "subdirectory",
			path:          "subdir",
			expectedNames: []string{"nested.txt"},
		},
		{
			name:      "non-existent directory",
			path:      "nonexistent",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := efs.ReadDir(tt.path)
			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			names := make([]string, 0, len(entries))
			for _, entry := range entries {
				names = append(names, entry.Name())
			}
			require.Equal(t, tt.expectedNames, names)
		})
	}
}

func TestEmbedFileSystem_Stat(t *testing.T) {
	efs := NewEmbedFileSystem(testdataFS, "testdata")

	info, err := efs.Stat("algorithms.txt")
	require.NoError(t, err)
	require.False(t, info.IsDir())
	require.Equal(t, "algorithms.txt", info.Name())

	info, err = efs.Stat("subdir")
	require.NoError(t, err)
	require.True(t, info.IsDir())

	_, err = efs.Stat("missing.txt")
	require.Error(t, err)
}
