package logger_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"go.trai.ch/qtdeploy/internal/adapters/logger"
)

// capture redirects the logger to a buffer and returns what fn logged.
func capture(lg *logger.Logger, fn func()) string {
	var buf bytes.Buffer
	lg.SetOutput(&buf)
	fn()
	return buf.String()
}

func TestLogger_Info(t *testing.T) {
	lg := logger.New()
	output := capture(lg, func() {
		lg.Info("some message")
	})

	if !strings.Contains(output, "some message") {
		t.Errorf("Expected output to contain 'some message', got: %s", output)
	}
	if !strings.Contains(output, "INFO") {
		t.Errorf("Expected output to contain 'INFO', got: %s", output)
	}
}

func TestLogger_Error(t *testing.T) {
	lg := logger.New()
	output := capture(lg, func() {
		lg.Error(os.ErrPermission)
	})

	if !strings.Contains(output, "permission denied") {
		t.Errorf("Expected output to contain 'permission denied', got: %s", output)
	}
	if !strings.Contains(output, "ERROR") {
		t.Errorf("Expected output to contain 'ERROR', got: %s", output)
	}
}

func TestLogger_Warn(t *testing.T) {
	lg := logger.New()
	output := capture(lg, func() {
		lg.Warn("some warning")
	})

	if !strings.Contains(output, "some warning") {
		t.Errorf("Expected output to contain 'some warning', got: %s", output)
	}
	if !strings.Contains(output, "WARN") {
		t.Errorf("Expected output to contain 'WARN', got: %s", output)
	}
}

func TestLogger_DebugSuppressedByDefault(t *testing.T) {
	lg := logger.New()
	output := capture(lg, func() {
		lg.Debug("hidden detail")
	})

	if strings.Contains(output, "hidden detail") {
		t.Errorf("Expected debug output to be suppressed by default, got: %s", output)
	}
}

func TestLogger_DebugVerbose(t *testing.T) {
	lg := logger.New()
	lg.SetVerbose(true)
	output := capture(lg, func() {
		lg.Debug("ldd output line")
	})

	if !strings.Contains(output, "ldd output line") {
		t.Errorf("Expected verbose mode to emit debug output, got: %s", output)
	}
	if !strings.Contains(output, "DEBUG") {
		t.Errorf("Expected output to contain 'DEBUG', got: %s", output)
	}

	lg.SetVerbose(false)
	output = capture(lg, func() {
		lg.Debug("quiet again")
	})
	if strings.Contains(output, "quiet again") {
		t.Errorf("Expected debug output to be suppressed after disabling verbose mode, got: %s", output)
	}
}

func TestNew(t *testing.T) {
	lg := logger.New()
	if lg == nil {
		t.Fatal("Expected New() to return a non-nil logger")
	}

	output := capture(lg, func() {
		lg.Info("test initialization")
	})
	if !strings.Contains(output, "test initialization") {
		t.Errorf("Expected logger to log 'test initialization', got: %s", output)
	}
}
