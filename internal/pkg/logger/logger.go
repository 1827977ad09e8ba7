package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger define a interface para logging estruturado.
// A aplicação (Handler, Service, Repository) deve depender apenas desta interface.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error)
	Fatal(msg string, err error)
}

// levelFatal fica acima de ERROR para que o handler JSON o registre com nível próprio.
const levelFatal = slog.Level(12)

// SlogLogger é a implementação concreta da interface Logger sobre log/slog, com saída JSON.
type SlogLogger struct {
	log  *slog.Logger
	exit func(int)
}

// NewLogger cria e retorna uma nova instância do Logger escrevendo em stdout.
// Esta função é chamada no main.go.
func NewLogger(level string) Logger {
	return NewWithWriter(level, os.Stdout)
}

// NewWithWriter cria um Logger que escreve JSON no writer informado.
func NewWithWriter(level string, w io.Writer) Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: parseLevel(level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == levelFatal {
					a.Value = slog.StringValue("FATAL")
				}
			}
			return a
		},
	})
	return &SlogLogger{log: slog.New(handler), exit: os.Exit}
}

// NewNopLogger descarta todas as entradas. Útil em testes.
func NewNopLogger() Logger {
	return NewWithWriter("error", io.Discard)
}

// parseLevel traduz o LOG_LEVEL da configuração. Valores desconhecidos viram info.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "fatal":
		return levelFatal
	default:
		return slog.LevelInfo
	}
}

func toAttrs(fields map[string]interface{}) []any {
	if len(fields) == 0 {
		return nil
	}
	attrs := make([]any, 0, len(fields))
	for k, v := range fields {
		attrs = append(attrs, slog.Any(k, v))
	}
	return []any{slog.Group("fields", attrs...)}
}

// Implementações da Interface Logger

func (l *SlogLogger) Debug(msg string, fields map[string]interface{}) {
	l.log.Debug(msg, toAttrs(fields)...)
}

func (l *SlogLogger) Info(msg string, fields map[string]interface{}) {
	l.log.Info(msg, toAttrs(fields)...)
}

func (l *SlogLogger) Warn(msg string, fields map[string]interface{}) {
	l.log.Warn(msg, toAttrs(fields)...)
}

func (l *SlogLogger) Error(msg string, err error) {
	if err != nil {
		l.log.Error(msg, slog.String("error", err.Error()))
		return
	}
	l.log.Error(msg)
}

// Fatal registra a entrada e encerra o processo.
func (l *SlogLogger) Fatal(msg string, err error) {
	attrs := []any{}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	l.log.Log(context.Background(), levelFatal, msg, attrs...)
	l.exit(1)
}
