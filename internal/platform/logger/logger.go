package logger

import (
	"io"
	"os"
	"strings"

	alog "github.com/apex/log"
	"github.com/apex/log/handlers/discard"
	"github.com/apex/log/handlers/json"
	"github.com/apex/log/handlers/text"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	default:
		return FormatText
	}
}

// ParseLevel acepta debug|info|warn|error. Cualquier otra cosa => info.
func ParseLevel(s string) alog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	lvl, err := alog.ParseLevel(s)
	if err != nil {
		return alog.InfoLevel
	}
	return lvl
}

type Logger interface {
	With(fields map[string]any) Logger

	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

type Options struct {
	Level  alog.Level
	Format Format
	App    string
	Output io.Writer // default stdout
}

// apexLogger adapta apex/log a la interfaz de campos como map.
type apexLogger struct {
	entry *alog.Entry
}

func New(opts Options) Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	var h alog.Handler
	switch opts.Format {
	case FormatJSON:
		h = json.New(out)
	default:
		h = text.New(out)
	}

	return fromHandler(h, opts.Level, opts.App)
}

// NewFromEnv crea logger desde env:
// - LOG_LEVEL=debug|info|warn|error (default info)
// - LOG_FORMAT=text|json (default text)
// - APP_NAME=pet-finder (opcional)
func NewFromEnv() Logger {
	return New(Options{
		Level:  ParseLevel(os.Getenv("LOG_LEVEL")),
		Format: ParseFormat(os.Getenv("LOG_FORMAT")),
		App:    os.Getenv("APP_NAME"),
	})
}

// NewWithHandler sirve para tests (p.ej. handlers/memory).
func NewWithHandler(h alog.Handler, lvl alog.Level) Logger {
	return fromHandler(h, lvl, "")
}

// Discard no escribe nada.
func Discard() Logger {
	return fromHandler(discard.New(), alog.FatalLevel, "")
}

func fromHandler(h alog.Handler, lvl alog.Level, app string) Logger {
	l := &alog.Logger{Handler: h, Level: lvl}
	base := alog.Fields{}
	if app = strings.TrimSpace(app); app != "" {
		base["app"] = app
	}
	return &apexLogger{entry: l.WithFields(base)}
}

func (l *apexLogger) With(fields map[string]any) Logger {
	if len(fields) == 0 {
		return l
	}
	return &apexLogger{entry: l.entry.WithFields(toFields(fields))}
}

func (l *apexLogger) Debug(msg string, fields map[string]any) { l.at(fields).Debug(msg) }
func (l *apexLogger) Info(msg string, fields map[string]any)  { l.at(fields).Info(msg) }
func (l *apexLogger) Warn(msg string, fields map[string]any)  { l.at(fields).Warn(msg) }
func (l *apexLogger) Error(msg string, fields map[string]any) { l.at(fields).Error(msg) }

func (l *apexLogger) at(fields map[string]any) *alog.Entry {
	if len(fields) == 0 {
		return l.entry
	}
	return l.entry.WithFields(toFields(fields))
}

func toFields(m map[string]any) alog.Fields {
	out := make(alog.Fields, len(m))
	for k, v := range m {
		if strings.TrimSpace(k) == "" {
			continue
		}
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		out[k] = v
	}
	return out
}
