package deck

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

type LogLevel int

const (
	LogDebug LogLevel = iota
	LogInfo
	LogWarn
	LogError
	LogOff
)

func (l LogLevel) String() string {
	switch l {
	case LogDebug:
		return "DEBUG"
	case LogInfo:
		return "INFO"
	case LogWarn:
		return "WARN"
	case LogError:
		return "ERROR"
	case LogOff:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

type Fields map[string]interface{}

// Logger writes leveled lines with key=value fields. Derived loggers share
// the level and the output lock of their root.
type Logger struct {
	writer io.Writer
	state  *loggerState
	fields Fields
}

type loggerState struct {
	mu    sync.Mutex
	level LogLevel
}

var (
	globalLogger     *Logger
	globalLoggerOnce sync.Once
)

func initGlobalLogger() {
	globalLoggerOnce.Do(func() {
		config := GetGlobalConfig()
		level := ParseLogLevel(config.LogLevel)
		globalLogger = NewLogger(os.Stderr, level)
	})
}

func init() {
	initGlobalLogger()
}

// ParseLogLevel maps a config value to a level, defaulting to info.
func ParseLogLevel(levelStr string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return LogDebug
	case "info":
		return LogInfo
	case "warn":
		return LogWarn
	case "error":
		return LogError
	case "off":
		return LogOff
	default:
		return LogInfo
	}
}

func NewLogger(w io.Writer, level LogLevel) *Logger {
	if w == nil {
		w = io.Discard
	}
	return &Logger{
		writer: w,
		state:  &loggerState{level: level},
		fields: make(Fields),
	}
}

func (l *Logger) SetLevel(level LogLevel) {
	l.state.mu.Lock()
	defer l.state.mu.Unlock()
	l.state.level = level
}

func (l *Logger) IsDebugMode() bool {
	l.state.mu.Lock()
	defer l.state.mu.Unlock()
	return l.state.level == LogDebug
}

func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.WithFields(Fields{key: value})
}

func (l *Logger) WithFields(fields Fields) *Logger {
	newLogger := &Logger{
		writer: l.writer,
		state:  l.state,
		fields: make(Fields, len(l.fields)+len(fields)),
	}
	for k, v := range l.fields {
		newLogger.fields[k] = v
	}
	for k, v := range fields {
		newLogger.fields[k] = v
	}
	return newLogger
}

func (l *Logger) log(level LogLevel, format string, args ...interface{}) {
	l.state.mu.Lock()
	defer l.state.mu.Unlock()

	if level < l.state.level {
		return
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	message := fmt.Sprintf(format, args...)

	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] %s", timestamp, level.String(), message)

	// Sorted so that lines are stable across runs
	keys := make([]string, 0, len(l.fields))
	for k := range l.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, l.fields[k])
	}

	fmt.Fprintln(l.writer, b.String())
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(LogDebug, format, args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.log(LogInfo, format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(LogWarn, format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.log(LogError, format, args...)
}

// Global logging functions
func SetLogger(logger *Logger) {
	initGlobalLogger()
	globalLogger = logger
}

func GetLogger() *Logger {
	initGlobalLogger()
	return globalLogger
}

func Debug(format string, args ...interface{}) {
	GetLogger().Debug(format, args...)
}

func Info(format string, args ...interface{}) {
	GetLogger().Info(format, args...)
}

func Warn(format string, args ...interface{}) {
	GetLogger().Warn(format, args...)
}

func Error(format string, args ...interface{}) {
	GetLogger().Error(format, args...)
}

func WithField(key string, value interface{}) *Logger {
	return GetLogger().WithField(key, value)
}

func WithFields(fields Fields) *Logger {
	return GetLogger().WithFields(fields)
}

// UpdateLoggerFromConfig updates the global logger based on the current global configuration
func UpdateLoggerFromConfig() {
	config := GetGlobalConfig()
	GetLogger().SetLevel(ParseLogLevel(config.LogLevel))
}
