package deck

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	tests := []struct {
		name           string
		level          LogLevel
		setupFunc      func(*Logger)
		expectedOutput []string
		notExpected    []string
	}{
		{
			name:  "debug level shows all messages",
			level: LogDebug,
			setupFunc: func(l *Logger) {
				l.Debug("debug message")
				l.Info("info message")
				l.Warn("warn message")
				l.Error("error message")
			},
			expectedOutput: []string{
				"[DEBUG] debug message",
				"[INFO] info message",
				"[WARN] warn message",
				"[ERROR] error message",
			},
		},
		{
			name:  "warn level hides debug and info",
			level: LogWarn,
			setupFunc: func(l *Logger) {
				l.Debug("debug message")
				l.Info("info message")
				l.Warn("warn message")
				l.Error("error message")
			},
			expectedOutput: []string{
				"[WARN] warn message",
				"[ERROR] error message",
			},
			notExpected: []string{
				"[DEBUG]",
				"[INFO]",
			},
		},
		{
			name:  "off level shows nothing",
			level: LogOff,
			setupFunc: func(l *Logger) {
				l.Error("error message")
			},
			notExpected: []string{
				"[ERROR]",
			},
		},
		{
			name:  "structured fields are sorted",
			level: LogDebug,
			setupFunc: func(l *Logger) {
				l.WithFields(Fields{
					"slides": 3,
					"part":   "ppt/slides/slide1.xml",
				}).WithField("index", 1).Debug("allocated")
			},
			expectedOutput: []string{
				"[DEBUG] allocated index=1 part=ppt/slides/slide1.xml slides=3",
			},
		},
		{
			name:  "formatting arguments",
			level: LogInfo,
			setupFunc: func(l *Logger) {
				l.Info("wrote %s (%d bytes)", "out.pptx", 1024)
			},
			expectedOutput: []string{
				"wrote out.pptx (1024 bytes)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, tt.level)

			tt.setupFunc(logger)

			output := buf.String()

			for _, expected := range tt.expectedOutput {
				if !strings.Contains(output, expected) {
					t.Errorf("Expected output to contain %q, but it didn't.\nOutput: %s", expected, output)
				}
			}

			for _, notExpected := range tt.notExpected {
				if strings.Contains(output, notExpected) {
					t.Errorf("Expected output NOT to contain %q, but it did.\nOutput: %s", notExpected, output)
				}
			}
		})
	}
}

func TestDerivedLoggersShareLevel(t *testing.T) {
	var buf bytes.Buffer
	root := NewLogger(&buf, LogInfo)
	child := root.WithField("component", "composer")

	child.Debug("hidden")
	root.SetLevel(LogDebug)
	child.Debug("visible")

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Errorf("debug line logged before the level changed:\n%s", output)
	}
	if !strings.Contains(output, "visible component=composer") {
		t.Errorf("derived logger did not follow the new level:\n%s", output)
	}
	if !child.IsDebugMode() {
		t.Error("IsDebugMode() = false after SetLevel(LogDebug)")
	}

	if _, ok := root.fields["component"]; ok {
		t.Error("fields of a derived logger leaked into its parent")
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]LogLevel{
		"debug":   LogDebug,
		"INFO":    LogInfo,
		"Warn":    LogWarn,
		"error":   LogError,
		"off":     LogOff,
		" warn ":  LogWarn,
		"verbose": LogInfo,
		"":        LogInfo,
	}
	for input, want := range tests {
		if got := ParseLogLevel(input); got != want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestGlobalLogger(t *testing.T) {
	original := GetLogger()
	defer SetLogger(original)

	var buf bytes.Buffer
	SetLogger(NewLogger(&buf, LogDebug))

	Debug("test debug")
	Info("test info")
	Warn("test warn")
	Error("test error")
	WithField("k", "v").Info("with field")

	output := buf.String()
	for _, expected := range []string{
		"[DEBUG] test debug",
		"[INFO] test info",
		"[WARN] test warn",
		"[ERROR] test error",
		"[INFO] with field k=v",
	} {
		if !strings.Contains(output, expected) {
			t.Errorf("Expected output to contain %q.\nOutput: %s", expected, output)
		}
	}
}
