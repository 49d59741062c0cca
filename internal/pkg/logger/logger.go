package logger

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"strings"
	"time"
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

// LogEntry define a estrutura de um log para garantir o formato JSON.
type LogEntry struct {
	Timestamp string                 `json:"timestamp"`
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
	Error     string                 `json:"error,omitempty"`
}

var levels = map[string]int{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
	"fatal": 4,
}

// SimpleLogger é a implementação concreta da interface Logger:
// uma linha JSON por entrada, com filtro por nível.
type SimpleLogger struct {
	minLevel int
	out      *log.Logger
	exit     func(int)
}

// NewLogger cria um Logger que escreve em stdout.
// Esta função é chamada no main.go.
func NewLogger(level string) Logger {
	return NewLoggerWithWriter(level, os.Stdout)
}

// NewLoggerWithWriter cria um Logger que escreve em w (útil em testes).
func NewLoggerWithWriter(level string, w io.Writer) *SimpleLogger {
	minLevel, ok := levels[strings.ToLower(level)]
	if !ok {
		minLevel = levels["info"]
	}
	return &SimpleLogger{
		minLevel: minLevel,
		out:      log.New(w, "", 0),
		exit:     os.Exit,
	}
}

// NewNopLogger descarta todas as entradas.
func NewNopLogger() Logger {
	return NewLoggerWithWriter("fatal", io.Discard)
}

// logf formata a entrada como JSON e a escreve na saída configurada.
func (l *SimpleLogger) logf(level, msg string, fields map[string]interface{}, err error) {
	if levels[level] < l.minLevel {
		return
	}

	entry := LogEntry{
		Timestamp: time.Now().Format(time.RFC3339),
		Level:     strings.ToUpper(level),
		Message:   msg,
		Fields:    fields,
	}
	if err != nil {
		entry.Error = err.Error()
	}

	jsonBytes, marshalErr := json.Marshal(entry)
	if marshalErr != nil {
		// Campos não serializáveis: registra sem eles.
		entry.Fields = nil
		jsonBytes, _ = json.Marshal(entry)
	}
	l.out.Println(string(jsonBytes))
}

func (l *SimpleLogger) Debug(msg string, fields map[string]interface{}) {
	l.logf("debug", msg, fields, nil)
}

func (l *SimpleLogger) Info(msg string, fields map[string]interface{}) {
	l.logf("info", msg, fields, nil)
}

func (l *SimpleLogger) Warn(msg string, fields map[string]interface{}) {
	l.logf("warn", msg, fields, nil)
}

func (l *SimpleLogger) Error(msg string, err error) {
	l.logf("error", msg, nil, err)
}

// Fatal registra a entrada e encerra o processo.
func (l *SimpleLogger) Fatal(msg string, err error) {
	l.logf("fatal", msg, nil, err)
	l.exit(1)
}
