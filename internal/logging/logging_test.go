package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		level   string
		format  string
		wantErr bool
	}{
		{"info", "console", false},
		{"debug", "json", false},
		{"", "", false},
		{"WARN", "JSON", false},
		{"loud", "console", true},
		{"info", "xml", true},
	}

	for _, tt := range tests {
		logger, err := New(tt.level, tt.format)
		if tt.wantErr {
			if err == nil {
				t.Errorf("New(%q, %q) expected an error", tt.level, tt.format)
			}
			continue
		}
		if err != nil {
			t.Errorf("New(%q, %q) failed: %v", tt.level, tt.format, err)
			continue
		}
		logger.Debug("test")
	}
}

func TestNewLevel(t *testing.T) {
	logger, err := New("warn", "json")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("Expected debug to be disabled at warn level")
	}
	if !logger.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("Expected error to be enabled at warn level")
	}
}
