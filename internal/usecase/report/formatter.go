// Package report は取得結果の表示用フォーマット機能を提供します
package report

import (
	"fmt"
	"io"
	"time"

	"FileStamp/internal/domain/model"
)

const (
	// DefaultLayout は更新日時の既定の表示形式です
	DefaultLayout = "2006-01-02 15:04:05.000000000 -0700"
	// ErrorPrefix はエラー表示の接頭辞です
	ErrorPrefix = "エラー: "
)

// Formatter は更新日時またはエラーを表示用の文字列に変換します
type Formatter struct {
	layout   string
	location *time.Location
}

// NewFormatter は新しい Formatter インスタンスを作成します。
// layout が空の場合は DefaultLayout を使用し、utc が偽の場合はローカル時刻で表示します。
func NewFormatter(layout string, utc bool) *Formatter {
	if layout == "" {
		layout = DefaultLayout
	}
	location := time.Local
	if utc {
		location = time.UTC
	}
	return &Formatter{layout: layout, location: location}
}

// FormatTimestamp は更新日時を表示形式とエポック値の組で表します
func (f *Formatter) FormatTimestamp(ts model.Timestamp) string {
	return fmt.Sprintf("%s (secs=%d nanos=%d)",
		ts.Time().In(f.location).Format(f.layout), ts.SecsSinceEpoch, ts.NanosSinceEpoch)
}

// FormatError はエラーメッセージを表示形式に変換します
func (f *Formatter) FormatError(message string) string {
	return ErrorPrefix + message
}

// WriteResult は結果を1行で出力します。message が空でなければエラーとして扱います。
func (f *Formatter) WriteResult(writer io.Writer, ts model.Timestamp, message string) error {
	line := f.FormatTimestamp(ts)
	if message != "" {
		line = f.FormatError(message)
	}
	if _, err := fmt.Fprintln(writer, line); err != nil {
		return fmt.Errorf("結果の出力に失敗しました: %w", err)
	}
	return nil
}
