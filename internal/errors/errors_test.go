package errors

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "simple error",
			err:      errors.New("something went wrong"),
			expected: "Error: something went wrong",
		},
		{
			name:     "wrapped error",
			err:      fmt.Errorf("failed to open store: %w", errors.New("permission denied")),
			expected: "Error: failed to open store: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.err)
			if result != tt.expected {
				t.Errorf("Format(%v) = %q, want %q", tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatf(t *testing.T) {
	got := Formatf("task %s not found", "42")
	if got != "Error: task 42 not found" {
		t.Errorf("Formatf() = %q", got)
	}
}

func TestWarning(t *testing.T) {
	if got := Warning(nil); got != "" {
		t.Errorf("Warning(nil) = %q, want empty", got)
	}
	if got := Warning(errors.New("write failed")); got != "Warning: write failed" {
		t.Errorf("Warning() = %q", got)
	}
}

func TestFatal(t *testing.T) {
	if os.Getenv("SCORE100_TEST_FATAL") == "1" {
		Fatal(errors.New("boom"))
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestFatal")
	cmd.Env = append(os.Environ(), "SCORE100_TEST_FATAL=1")
	var stderr strings.Builder
	cmd.Stderr = &stderr
	err := cmd.Run()

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) || exitErr.ExitCode() != 1 {
		t.Fatalf("process exited with %v, want exit status 1", err)
	}
	if !strings.Contains(stderr.String(), "Error: boom") {
		t.Errorf("stderr = %q, want it to contain %q", stderr.String(), "Error: boom")
	}
}
