//go:build integration

package integration

import (
	"bytes"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/fivetwenty-io/cdg-client/pkg/cdg"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	APIKey  string
	BaseURL string
	CdgPath string
	Verbose bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIKey:  os.Getenv(cdg.CredentialEnvVar),
		BaseURL: os.Getenv("CDG_BASE_URL"),
		CdgPath: getCdgPath(),
		Verbose: os.Getenv("CDG_VERBOSE") == "true",
	}
}

// getCdgPath determines the path to the cdg binary
func getCdgPath() string {
	if path := os.Getenv("CDG_BINARY_PATH"); path != "" {
		return path
	}

	candidates := []string{
		"../../cdg",
		"./cdg",
		"../cdg",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "cdg"
}

// SkipIfMissingKey skips test if no API key is configured
func (config *TestConfig) SkipIfMissingKey(t *testing.T) {
	t.Helper()

	if config.APIKey == "" {
		t.Skipf("%s not set, skipping integration test", cdg.CredentialEnvVar)
	}
}

// SkipIfMissingBinary skips test if the cdg binary cannot be found
func (config *TestConfig) SkipIfMissingBinary(t *testing.T) {
	t.Helper()

	config.SkipIfMissingKey(t)

	if _, err := exec.LookPath(config.CdgPath); err != nil {
		t.Skipf("cdg binary not found at %s, skipping integration test", config.CdgPath)
	}
}

// CommandRunner provides utilities for running cdg commands
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
}

// NewCommandRunner creates a new command runner
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{
		config: config,
		t:      t,
	}
}

// Run executes a cdg command and returns output
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	cmd := exec.Command(runner.config.CdgPath, args...)
	cmd.Env = append(os.Environ(), cdg.CredentialEnvVar+"="+runner.config.APIKey)

	if runner.config.BaseURL != "" {
		cmd.Args = append(cmd.Args, "--base-url", runner.config.BaseURL)
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.CdgPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}
