package logger

import (
	"bytes"
	"io"
	"regexp"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger wraps zap with the console encoding used across the project.
// A buffered logger also keeps an HTML rendition of everything it wrote.
type ZapLogger struct {
	log *zap.Logger

	mu     sync.Mutex
	logBuf *bytes.Buffer
	Logs   []string
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    colorLevelEncoder,
		EncodeTime:     customTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

func build(w io.Writer, level zapcore.LevelEnabler) *zap.Logger {
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig()), zapcore.AddSync(w), level)
	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel))
}

// New writes to w everything at level and above.
func New(w io.Writer, level zapcore.Level) *ZapLogger {
	return &ZapLogger{log: build(w, level)}
}

// NewBuffered keeps the output in memory; Logs holds it as HTML.
func NewBuffered(level zapcore.Level) *ZapLogger {
	logBuf := &bytes.Buffer{}
	return &ZapLogger{
		log:    build(logBuf, level),
		logBuf: logBuf,
	}
}

func NewNop() *ZapLogger {
	return &ZapLogger{log: zap.NewNop()}
}

// ParseLevel accepts zap level names ("debug", "info", ...).
func ParseLevel(s string) (zapcore.Level, error) {
	if s == "" {
		return zapcore.InfoLevel, nil
	}
	return zapcore.ParseLevel(s)
}

func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("[2006-01-02 | 15:04:05]"))
}

func colorLevelEncoder(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	var colorCode string
	switch level {
	case zapcore.DebugLevel:
		colorCode = "\033[36m" // Cyan
	case zapcore.InfoLevel:
		colorCode = "\033[32m" // Green
	case zapcore.WarnLevel:
		colorCode = "\033[33m" // Yellow
	case zapcore.ErrorLevel:
		colorCode = "\033[31m" // Red
	default:
		colorCode = "\033[0m" // Default
	}
	enc.AppendString(colorCode + level.String() + "\033[0m")
}

var ansiColor = regexp.MustCompile(`\033\[(\d+)m`)

// ansiToHTML converts ANSI color codes to spans with inline styles.
func ansiToHTML(input string) string {
	var result strings.Builder
	var lastIndex int
	open := false

	result.WriteString("<pre>")
	for _, match := range ansiColor.FindAllStringSubmatchIndex(input, -1) {
		start, end := match[0], match[1]
		if start > lastIndex {
			result.WriteString(input[lastIndex:start])
		}

		colorCode := input[match[2]:match[3]]
		if color, ok := colorMap[colorCode]; ok {
			if open {
				result.WriteString("</span>")
			}
			result.WriteString(`<span style="color: ` + color + `;">`)
			open = true
		} else if colorCode == "0" && open {
			result.WriteString("</span>")
			open = false
		}
		lastIndex = end
	}
	if lastIndex < len(input) {
		result.WriteString(input[lastIndex:])
	}
	if open {
		result.WriteString("</span>")
	}
	result.WriteString("</pre>")
	return result.String()
}

var colorMap = map[string]string{
	"31": "red",
	"32": "green",
	"33": "yellow",
	"34": "blue",
	"36": "cyan",
}

func (z *ZapLogger) UpdateLogs() {
	if z.logBuf == nil {
		return
	}
	z.mu.Lock()
	defer z.mu.Unlock()
	z.Logs = []string{ansiToHTML(z.logBuf.String())}
}

func (z *ZapLogger) ClearLogs() {
	if z.logBuf == nil {
		return
	}
	z.mu.Lock()
	defer z.mu.Unlock()
	z.logBuf.Reset()
	z.Logs = nil
}

// Enabled reports whether messages at level are written at all.
func (z *ZapLogger) Enabled(level zapcore.Level) bool {
	return z.log.Core().Enabled(level)
}

func (z *ZapLogger) Info(wrappedMsg string, fields ...zap.Field) {
	z.log.Info(wrappedMsg, fields...)
	z.UpdateLogs()
}

func (z *ZapLogger) Debug(wrappedMsg string, fields ...zap.Field) {
	z.log.Debug(wrappedMsg, fields...)
	z.UpdateLogs()
}

func (z *ZapLogger) Warn(wrappedMsg string, fields ...zap.Field) {
	z.log.Warn(wrappedMsg, fields...)
	z.UpdateLogs()
}

func (z *ZapLogger) Error(wrappedMsg string, fields ...zap.Field) {
	z.log.Error(wrappedMsg, fields...)
	z.UpdateLogs()
}

func (z *ZapLogger) Fatal(wrappedMsg string, fields ...zap.Field) {
	z.UpdateLogs()
	z.log.Fatal(wrappedMsg, fields...)
}

func (z *ZapLogger) Sync() error {
	return z.log.Sync()
}
