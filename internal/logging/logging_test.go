package logging

import "testing"

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		expected Level
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.name); got != tt.expected {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.name, got, tt.expected)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if ParseFormat("text") != FormatText {
		t.Errorf("ParseFormat(\"text\") should return FormatText")
	}
	if ParseFormat("json") != FormatJSON {
		t.Errorf("ParseFormat(\"json\") should return FormatJSON")
	}
	if ParseFormat("") != FormatJSON {
		t.Errorf("ParseFormat(\"\") should default to FormatJSON")
	}
}

func TestInitLogger(t *testing.T) {
	InitLogger(LevelDebug, FormatText)
	if GetLogger() == nil {
		t.Fatalf("GetLogger returned nil after InitLogger")
	}

	// Restore the default configuration for other tests.
	InitLogger(LevelInfo, FormatJSON)
}
