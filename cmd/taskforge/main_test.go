package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tests := []struct {
		name         string
		taskfile     string
		args         []string
		expectedExit int
	}{
		{
			name: "Success with valid taskfile",
			taskfile: `version: "1"
tasks:
  test:
    cmd: echo hello
`,
			args:         []string{"taskforge", "run", "test"},
			expectedExit: 0,
		},
		{
			name: "Unknown target",
			taskfile: `version: "1"
tasks:
  test:
    cmd: echo hello
`,
			args:         []string{"taskforge", "run", "no-such-task"},
			expectedExit: 1,
		},
		{
			name: "Failing task",
			taskfile: `version: "1"
tasks:
  test:
    cmd: exit 3
`,
			args:         []string{"taskforge", "run", "test"},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()

			err := os.WriteFile(tmpDir+"/taskforge.yaml", []byte(tt.taskfile), 0o600)
			if err != nil {
				t.Fatalf("failed to write taskfile: %v", err)
			}

			// Change to tmpDir for relative path resolution
			originalWd, _ := os.Getwd()
			err = os.Chdir(tmpDir)
			if err != nil {
				t.Fatalf("failed to chdir: %v", err)
			}
			defer func() {
				_ = os.Chdir(originalWd)
			}()

			os.Args = tt.args

			exitCode := run()
			assert.Equal(t, tt.expectedExit, exitCode)
		})
	}
}
