package report

import (
	"errors"
	"strings"
	"testing"

	"FileStamp/internal/domain/model"
)

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("書き込み失敗")
}

func TestFormatter_FormatTimestamp(t *testing.T) {
	ts := model.Timestamp{SecsSinceEpoch: 1700000000, NanosSinceEpoch: 5}

	tests := []struct {
		name   string
		layout string
		want   string
	}{
		{
			name:   "既定の表示形式",
			layout: "",
			want:   "2023-11-14 22:13:20.000000005 +0000 (secs=1700000000 nanos=5)",
		},
		{
			name:   "独自の表示形式",
			layout: "2006/01/02",
			want:   "2023/11/14 (secs=1700000000 nanos=5)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := NewFormatter(tt.layout, true)
			if got := formatter.FormatTimestamp(ts); got != tt.want {
				t.Errorf("FormatTimestamp() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatter_WriteResult(t *testing.T) {
	formatter := NewFormatter("", true)
	ts := model.Timestamp{SecsSinceEpoch: 0}

	var buf strings.Builder
	if err := formatter.WriteResult(&buf, ts, ""); err != nil {
		t.Fatalf("WriteResult() error = %v", err)
	}
	if got, want := buf.String(), "1970-01-01 00:00:00.000000000 +0000 (secs=0 nanos=0)\n"; got != want {
		t.Errorf("WriteResult() = %q, want %q", got, want)
	}

	buf.Reset()
	if err := formatter.WriteResult(&buf, model.Timestamp{}, "stat x: no such file or directory"); err != nil {
		t.Fatalf("WriteResult() error = %v", err)
	}
	if got, want := buf.String(), "エラー: stat x: no such file or directory\n"; got != want {
		t.Errorf("WriteResult() = %q, want %q", got, want)
	}

	if err := formatter.WriteResult(failingWriter{}, ts, ""); err == nil {
		t.Error("WriteResult() error = nil, want error")
	}
}
