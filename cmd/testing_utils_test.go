package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/walkpwd/walkpwd/internal/configs"
)

// fakeClipboard records what would have been put on the clipboard.
type fakeClipboard struct {
	delivered []string
	err       error
}

func (f *fakeClipboard) Deliver(_ context.Context, text string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.delivered = append(f.delivered, text)
	return "fake clipboard", nil
}

func (f *fakeClipboard) last() string {
	if len(f.delivered) == 0 {
		return ""
	}
	return f.delivered[len(f.delivered)-1]
}

// testEnv isolates one test's vault directory, config file and clipboard.
type testEnv struct {
	t          *testing.T
	vaultDir   string
	configPath string
	clipboard  *fakeClipboard
}

// setupTestEnvironment points walkpwd at temporary directories and disables color.
func setupTestEnvironment(t *testing.T) *testEnv {
	t.Helper()

	root := t.TempDir()
	env := &testEnv{
		t:          t,
		vaultDir:   filepath.Join(root, "data", "walkpwd"),
		configPath: filepath.Join(root, "config", "config.toml"),
		clipboard:  &fakeClipboard{},
	}

	t.Setenv(configs.VaultDirEnv, env.vaultDir)
	t.Setenv("NO_COLOR", "1")

	originalSettings := configs.WalkpwdSettings
	t.Cleanup(func() {
		ResetGlobalState()
		configs.WalkpwdSettings = originalSettings
	})

	return env
}

// run executes walkpwd with args and returns what it printed.
func (e *testEnv) run(args ...string) (string, string, error) {
	e.t.Helper()
	ResetGlobalState()
	SetClipboard(e.clipboard)
	RootCmd.SetArgs(append(args, "--config="+e.configPath))
	return captureOutput(Execute)
}

// mustRun executes walkpwd and fails the test if it returns an error.
func (e *testEnv) mustRun(args ...string) (string, string) {
	e.t.Helper()
	stdout, stderr, err := e.run(args...)
	if err != nil {
		e.t.Fatalf("walkpwd %v failed: %v\nstdout: %s\nstderr: %s", args, err, stdout, stderr)
	}
	return stdout, stderr
}

// writeConfig writes a config file for the next runs.
func (e *testEnv) writeConfig(contents string) {
	e.t.Helper()
	if err := os.MkdirAll(filepath.Dir(e.configPath), 0700); err != nil {
		e.t.Fatalf("Failed to create config directory: %v", err)
	}
	if err := os.WriteFile(e.configPath, []byte(contents), 0600); err != nil {
		e.t.Fatalf("Failed to write config: %v", err)
	}
}

// readVault returns the raw vault file contents.
func (e *testEnv) readVault() string {
	e.t.Helper()
	data, err := os.ReadFile(filepath.Join(e.vaultDir, "vault.json"))
	if err != nil {
		e.t.Fatalf("Failed to read vault file: %v", err)
	}
	return string(data)
}

// captureOutput captures stdout and stderr separately during function execution.
func captureOutput(fn func() error) (string, string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	stdoutChan := make(chan string, 1)
	stderrChan := make(chan string, 1)

	collect := func(r io.Reader, out chan<- string) {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		out <- buf.String()
	}
	go collect(stdoutReader, stdoutChan)
	go collect(stderrReader, stderrChan)

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	return <-stdoutChan, <-stderrChan, err
}
