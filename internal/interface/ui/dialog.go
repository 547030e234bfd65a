// Package ui はネイティブダイアログによるファイル選択機能を提供します
package ui

import (
	"errors"
	"fmt"

	"github.com/sqweek/dialog"
)

// ErrCancelled はユーザーがファイル選択をキャンセルした場合のエラーです
var ErrCancelled = errors.New("ファイルの選択がキャンセルされました")

// PathValidator は選択されたパスの検証を行うインターフェースです
type PathValidator interface {
	ValidatePath(path string) error
}

// PathValidatorFunc は関数を PathValidator として扱うための型です
type PathValidatorFunc func(path string) error

// ValidatePath は f(path) を呼び出します
func (f PathValidatorFunc) ValidatePath(path string) error {
	return f(path)
}

// NonEmptyPath は空でないパスのみを受け付ける PathValidator です
var NonEmptyPath = PathValidatorFunc(func(path string) error {
	if path == "" {
		return fmt.Errorf("ファイルパスが指定されていません")
	}
	return nil
})

// FilePicker はダイアログでファイルを選択する機能を提供します
type FilePicker struct {
	// validator は選択されたパスの検証を行うインターフェースです
	validator PathValidator
	// browse はダイアログを表示して選択されたパスを返します
	browse func(title string) (string, error)
}

// NewFilePicker は新しい FilePicker インスタンスを作成します
func NewFilePicker(validator PathValidator) *FilePicker {
	return &FilePicker{
		validator: validator,
		browse: func(title string) (string, error) {
			return dialog.File().Title(title).Load()
		},
	}
}

// PickFile はダイアログを表示してファイルを選択します
func (p *FilePicker) PickFile(title string) (string, error) {
	selected, err := p.browse(title)
	if errors.Is(err, dialog.ErrCancelled) {
		return "", ErrCancelled
	}
	if err != nil {
		return "", fmt.Errorf("ファイルの選択に失敗しました: %w", err)
	}

	if err := p.validator.ValidatePath(selected); err != nil {
		return "", fmt.Errorf("無効なファイルが選択されました: %w", err)
	}

	return selected, nil
}
