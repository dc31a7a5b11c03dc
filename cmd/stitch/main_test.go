package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stitch/internal/adapters/cas"
	"go.trai.ch/stitch/internal/adapters/config"
	"go.trai.ch/stitch/internal/adapters/fs"
	"go.trai.ch/stitch/internal/adapters/gruntfile"
	"go.trai.ch/stitch/internal/adapters/logger"
	"go.trai.ch/stitch/internal/app"
)

const declaration = `version: "1"
default: site
configurations:
  - name: site
    paths:
      - js: resources/js
      - build: public/build
    groups:
      - name: lib
        directory: "{js}/lib"
        output: "{build}/lib.js"
        files: [jquery.js]
    tasks: [concat:lib]
`

func testProvider(t *testing.T, logs *bytes.Buffer) ComponentProvider {
	t.Helper()
	return func(_ context.Context) (*app.Components, error) {
		log := logger.New()
		log.SetOutput(logs)

		store := cas.NewStore(filepath.Join(t.TempDir(), "state.json"))

		a := app.New(config.NewLoader(log), gruntfile.NewEmitter(), fs.NewChecker(), fs.NewHasher(), store, log)
		return &app.Components{App: a, Logger: log}, nil
	}
}

func TestRun(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		expectedExit int
		stdout       string
		logs         string
	}{
		{
			name:         "render default configuration",
			args:         []string{"render"},
			expectedExit: 0,
			stdout:       `"dest": "public/build/lib.js"`,
		},
		{
			name:         "list configurations",
			args:         []string{"list"},
			expectedExit: 0,
			stdout:       "* site",
		},
		{
			name:         "unknown configuration",
			args:         []string{"render", "--use", "missing"},
			expectedExit: 1,
			logs:         "lookup failed",
		},
		{
			name:         "missing sources",
			args:         []string{"check"},
			expectedExit: 1,
			logs:         "missing source resources/js/lib/jquery.js",
		},
		{
			name:         "missing declaration",
			args:         []string{"-c", "nonexistent.yaml", "render"},
			expectedExit: 1,
			logs:         "failed to load configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, "stitch.yaml"), []byte(declaration), 0o600))
			t.Chdir(dir)

			var stdout, stderr, logs bytes.Buffer
			exitCode := run(context.Background(), tt.args, &stdout, &stderr, testProvider(t, &logs))

			assert.Equal(t, tt.expectedExit, exitCode)
			assert.Contains(t, stdout.String(), tt.stdout)
			assert.Contains(t, logs.String(), tt.logs)
		})
	}
}

func TestRun_ProviderError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	exitCode := run(context.Background(), []string{"list"}, &stdout, &stderr, func(context.Context) (*app.Components, error) {
		return nil, errors.New("graph failed")
	})

	assert.Equal(t, 1, exitCode)
	assert.Equal(t, "Error: graph failed\n", stderr.String())
}
