package logging

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw     string
		want    zapcore.Level
		wantErr bool
	}{
		{raw: "debug", want: zapcore.DebugLevel},
		{raw: "INFO", want: zapcore.InfoLevel},
		{raw: "", want: zapcore.InfoLevel},
		{raw: "warn", want: zapcore.WarnLevel},
		{raw: "error", want: zapcore.ErrorLevel},
		{raw: "trace", want: zapcore.InfoLevel, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseLevel(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger("warn", &buf)
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Info should be disabled at warn level, got %s", out)
	}
	if !strings.Contains(out, `"msg":"shown"`) {
		t.Errorf("Expected warn entry in output, got %s", out)
	}

	if _, err := NewLogger("loud", &buf); err == nil {
		t.Error("Expected error for unknown level")
	}
}

func TestNewInfoLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewInfoLogger(&buf)

	logger.Debug("too quiet")
	logger.Info("skipping")

	out := buf.String()
	if strings.Contains(out, "too quiet") {
		t.Errorf("Debug should be disabled, got %s", out)
	}
	if !strings.Contains(out, `"level":"info"`) || !strings.Contains(out, "skipping") {
		t.Errorf("Expected info entry in output, got %s", out)
	}
}
