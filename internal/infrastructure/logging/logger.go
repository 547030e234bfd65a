// Package logging はロギング機能を提供します
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// LogEntry は出力されるログエントリの形式を表す構造体です
type LogEntry struct {
	// Timestamp はログが記録された時刻をRFC3339形式で表します
	Timestamp string `json:"timestamp"`
	// Level はログレベル（info, warning, error等）を表します
	Level string `json:"level"`
	// Message はログメッセージの内容を表します
	Message string `json:"message"`
	// Error はエラーが発生した場合のエラーメッセージを表します
	Error string `json:"error,omitempty"`
}

// Logger は構造化ログを出力するためのインターフェースです
type Logger interface {
	Log(level, message string, err error)
}

// JSONLogger はJSONフォーマットでログを出力するロガーです
type JSONLogger struct {
	base *logrus.Logger
}

// NewJSONLogger は新しいJSONLoggerインスタンスを作成します
func NewJSONLogger(writer io.Writer) *JSONLogger {
	if writer == nil {
		writer = os.Stdout
	}

	base := logrus.New()
	base.SetOutput(writer)
	base.SetLevel(logrus.InfoLevel)
	base.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	return &JSONLogger{base: base}
}

// SetLevel は出力するログレベルの下限を設定します
func (l *JSONLogger) SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("不正なログレベルです: %w", err)
	}
	l.base.SetLevel(lvl)
	return nil
}

// Log はメッセージをJSONフォーマットでログ出力します。
// 解釈できないレベルは info として扱います。
func (l *JSONLogger) Log(level, message string, err error) {
	lvl, perr := logrus.ParseLevel(level)
	if perr != nil {
		lvl = logrus.InfoLevel
	}
	// panic/fatal でプロセスを止めない
	if lvl < logrus.ErrorLevel {
		lvl = logrus.ErrorLevel
	}

	entry := logrus.NewEntry(l.base)
	if err != nil {
		entry = entry.WithField(logrus.ErrorKey, err.Error())
	}
	entry.Log(lvl, message)
}
