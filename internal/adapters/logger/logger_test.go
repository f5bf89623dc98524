package logger_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/taskforge/taskforge/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func newCaptured() (*logger.Logger, *bytes.Buffer) {
	lg := logger.New()
	var buf bytes.Buffer
	lg.SetOutput(&buf)
	return lg, &buf
}

func TestLogger_Info(t *testing.T) {
	lg, buf := newCaptured()
	lg.Info("some message")

	output := buf.String()
	if !strings.Contains(output, "some message") {
		t.Errorf("Expected output to contain 'some message', got: %s", output)
	}
	if !strings.Contains(output, "INFO") {
		t.Errorf("Expected output to contain 'INFO', got: %s", output)
	}
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newCaptured()
	lg.Warn("some warning")

	output := buf.String()
	if !strings.Contains(output, "some warning") {
		t.Errorf("Expected output to contain 'some warning', got: %s", output)
	}
	if !strings.Contains(output, "WARN") {
		t.Errorf("Expected output to contain 'WARN', got: %s", output)
	}
}

func TestLogger_Error(t *testing.T) {
	lg, buf := newCaptured()
	lg.Error(zerr.New("something broke"))

	output := buf.String()
	if !strings.Contains(output, "something broke") {
		t.Errorf("Expected output to contain the error message, got: %s", output)
	}
	if !strings.Contains(output, "ERROR") {
		t.Errorf("Expected output to contain 'ERROR', got: %s", output)
	}
}

func TestLogger_ErrorMetadata(t *testing.T) {
	lg, buf := newCaptured()

	err := zerr.With(zerr.New("invalid task kind requested"), "kind", "nonexistent")
	lg.Error(err)

	output := buf.String()
	if !strings.Contains(output, "kind=nonexistent") {
		t.Errorf("Expected metadata to surface as an attribute, got: %s", output)
	}
}

func TestLogger_DebugSuppressedByDefault(t *testing.T) {
	lg, buf := newCaptured()
	lg.Debug("hidden detail")

	if buf.Len() != 0 {
		t.Errorf("Expected no output at default level, got: %s", buf.String())
	}
}

func TestLogger_DebugAfterSetLevel(t *testing.T) {
	lg, buf := newCaptured()
	lg.SetLevel(slog.LevelDebug)
	lg.Debug("visible detail")

	output := buf.String()
	if !strings.Contains(output, "visible detail") {
		t.Errorf("Expected output to contain 'visible detail', got: %s", output)
	}
	if !strings.Contains(output, "DEBUG") {
		t.Errorf("Expected output to contain 'DEBUG', got: %s", output)
	}
}
