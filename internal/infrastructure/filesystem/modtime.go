// Package filesystem はファイルシステム操作を提供します
package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"syscall"
	"time"

	"FileStamp/internal/domain/model"
	"FileStamp/internal/infrastructure/logging"
)

// ErrNoModTime はプラットフォームが更新日時を提供しない場合のエラーです
var ErrNoModTime = errors.New("このプラットフォームでは更新日時を取得できません")

// ErrorKind は更新日時の取得に失敗した理由の分類です
type ErrorKind int

const (
	// KindOther はその他のI/Oエラーです
	KindOther ErrorKind = iota
	// KindNotFound はエントリが存在しないことを表します
	KindNotFound
	// KindPermissionDenied はアクセス権限がないことを表します
	KindPermissionDenied
	// KindInvalidPath はパスの構文が不正であることを表します
	KindInvalidPath
	// KindUnsupported は更新日時が提供されないことを表します
	KindUnsupported
	// KindUnrepresentable は更新日時を Timestamp で表現できないことを表します
	KindUnrepresentable
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindPermissionDenied:
		return "permission_denied"
	case KindInvalidPath:
		return "invalid_path"
	case KindUnsupported:
		return "unsupported"
	case KindUnrepresentable:
		return "unrepresentable"
	default:
		return "other"
	}
}

// QueryError は更新日時の取得失敗を表します。
// Error() は元のエラーの説明をそのまま返します。
type QueryError struct {
	Op   string
	Path string
	Kind ErrorKind
	Err  error
}

func (e *QueryError) Error() string {
	return e.Err.Error()
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// TimestampQuerier は更新日時の取得機能を提供するインターフェースです
type TimestampQuerier interface {
	ModifiedTime(filePath string) (model.Timestamp, error)
}

// Query はファイルの更新日時を取得するための構造体です。
// 状態を持たないため、複数のゴルーチンから同時に呼び出せます。
type Query struct {
	logger logging.Logger
	// stat はパスのメタデータを取得します
	stat func(name string) (fs.FileInfo, error)
}

// NewQuery は新しい Query インスタンスを作成します
func NewQuery(logger logging.Logger) *Query {
	return &Query{
		logger: logger,
		stat:   os.Stat,
	}
}

// ModifiedTime は filePath の最終更新日時を Timestamp として返します。
// パスは加工せずにそのままファイルシステムへ渡します。
func (q *Query) ModifiedTime(filePath string) (model.Timestamp, error) {
	modTime, err := modifiedTime(q.stat, filePath)
	if err != nil {
		q.logger.Log("WARN", fmt.Sprintf("更新日時の取得に失敗: '%s'", filePath), err)
		return model.Timestamp{}, err
	}

	ts, err := model.NewTimestamp(modTime)
	if err != nil {
		qerr := &QueryError{Op: "convert", Path: filePath, Kind: KindUnrepresentable, Err: fmt.Errorf("%s: %w", filePath, err)}
		q.logger.Log("WARN", fmt.Sprintf("更新日時を変換できません: '%s'", filePath), qerr)
		return model.Timestamp{}, qerr
	}

	q.logger.Log("DEBUG", fmt.Sprintf("更新日時を取得しました: '%s'", filePath), nil)
	return ts, nil
}

// ModifiedTime は filePath のメタデータを取得し、最終更新日時を返します。
// 失敗した場合は *QueryError を返します。
func ModifiedTime(filePath string) (time.Time, error) {
	return modifiedTime(os.Stat, filePath)
}

func modifiedTime(stat func(string) (fs.FileInfo, error), filePath string) (time.Time, error) {
	info, err := stat(filePath)
	if err != nil {
		return time.Time{}, &QueryError{Op: "stat", Path: filePath, Kind: classify(err), Err: err}
	}

	modTime := info.ModTime()
	if modTime.IsZero() {
		return time.Time{}, &QueryError{Op: "stat", Path: filePath, Kind: KindUnsupported, Err: fmt.Errorf("%s: %w", filePath, ErrNoModTime)}
	}

	return modTime, nil
}

// KindOf は err に含まれる QueryError の分類を返します
func KindOf(err error) ErrorKind {
	var qerr *QueryError
	if errors.As(err, &qerr) {
		return qerr.Kind
	}
	return KindOther
}

func classify(err error) ErrorKind {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case errors.Is(err, fs.ErrPermission):
		return KindPermissionDenied
	case errors.Is(err, syscall.ENAMETOOLONG),
		errors.Is(err, syscall.ENOTDIR),
		errors.Is(err, syscall.EINVAL):
		return KindInvalidPath
	default:
		return KindOther
	}
}
