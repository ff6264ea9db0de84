package logger

import (
	"bytes"
	"io"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger - обертка над zap. Логгер из New пишет в буфер, откуда логи
// забираются в HTML для страницы просмотра.
type ZapLogger struct {
	log    *zap.Logger
	logBuf *bytes.Buffer
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

// New создает логгер, который копит все сообщения (с Debug) в памяти.
func New() *ZapLogger {
	logBuf := &bytes.Buffer{}

	encoder := zapcore.NewConsoleEncoder(encoderConfig())

	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.AddSync(logBuf), zap.DebugLevel),
	)

	logger := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel))

	return &ZapLogger{
		log:    logger,
		logBuf: logBuf,
	}
}

// NewConsole пишет в w начиная с уровня level (для CLI).
func NewConsole(w io.Writer, level zapcore.Level) *ZapLogger {
	encoder := zapcore.NewConsoleEncoder(encoderConfig())
	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(w)), level)

	return &ZapLogger{
		log: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)),
	}
}

// NewNop ничего не пишет. Логгер по умолчанию для триангуляции и тестов.
func NewNop() *ZapLogger {
	return &ZapLogger{log: zap.NewNop()}
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

var ansiCode = regexp.MustCompile(`\033\[(\d+)m`)

// Converts ANSI color codes to HTML span with inline styles
func ansiToHTML(input string) string {
	var result strings.Builder
	var lastIndex int
	var open bool

	result.WriteString("<pre>")

	for _, match := range ansiCode.FindAllStringIndex(input, -1) {
		start := match[0]
		end := match[1]

		if start > lastIndex {
			result.WriteString(escapeHTML(input[lastIndex:start]))
		}

		colorCode := input[start+2 : end-1]
		color, ok := colorMap[colorCode]
		if ok {
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
		result.WriteString(escapeHTML(input[lastIndex:]))
	}

	if open {
		result.WriteString("</span>")
	}

	result.WriteString("</pre>")

	return result.String()
}

// точки в логах выглядят как (x, y), а треугольники как [..], но поля zap.Any
// могут содержать что угодно
var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// Color mapping for ANSI codes
var colorMap = map[string]string{
	"31": "red",    // Red
	"32": "green",  // Green
	"33": "yellow", // Yellow
	"34": "blue",   // Blue
	"36": "cyan",   // Cyan
}

// HTML возвращает накопленные логи в виде <pre> блока. Для логгеров без
// буфера возвращает пустую строку.
func (z *ZapLogger) HTML() string {
	if z.logBuf == nil {
		return ""
	}
	return ansiToHTML(z.logBuf.String())
}

func (z *ZapLogger) ClearLogs() {
	if z.logBuf != nil {
		z.logBuf.Reset()
	}
}

// With возвращает логгер с добавленными полями; буфер общий с родителем.
func (z *ZapLogger) With(fields ...zap.Field) *ZapLogger {
	return &ZapLogger{log: z.log.With(fields...), logBuf: z.logBuf}
}

func (z *ZapLogger) Sync() error {
	return z.log.Sync()
}

func (z *ZapLogger) Info(wrappedMsg string, fields ...zap.Field) {
	z.log.Info(wrappedMsg, fields...)
}

func (z *ZapLogger) Debug(wrappedMsg string, fields ...zap.Field) {
	z.log.Debug(wrappedMsg, fields...)
}

func (z *ZapLogger) Warn(wrappedMsg string, fields ...zap.Field) {
	z.log.Warn(wrappedMsg, fields...)
}

func (z *ZapLogger) Error(wrappedMsg string, fields ...zap.Field) {
	z.log.Error(wrappedMsg, fields...)
}

func (z *ZapLogger) Fatal(wrappedMsg string, fields ...zap.Field) {
	z.log.Fatal(wrappedMsg, fields...)
}
