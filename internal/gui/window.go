// Package gui はFyneによるデスクトップ画面を提供します
package gui

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"FileStamp/internal/config"
	"FileStamp/internal/domain/model"
	"FileStamp/internal/infrastructure/logging"
	"FileStamp/internal/interface/bridge"
	"FileStamp/internal/interface/ui"
	"FileStamp/internal/usecase/report"
)

// WindowTitle はメインウィンドウのタイトルです
const WindowTitle = "FileStamp"

// FilePicker はファイル選択を行うインターフェースです
type FilePicker interface {
	PickFile(title string) (string, error)
}

// View はパス入力欄、参照・確認ボタン、結果表示からなる画面です
type View struct {
	invoker   bridge.Invoker
	picker    FilePicker
	formatter *report.Formatter
	logger    logging.Logger

	PathEntry    *widget.Entry
	ResultLabel  *widget.Label
	BrowseButton *widget.Button
	CheckButton  *widget.Button
}

// NewView は新しい View インスタンスを作成します
func NewView(invoker bridge.Invoker, picker FilePicker, formatter *report.Formatter, logger logging.Logger) *View {
	v := &View{
		invoker:   invoker,
		picker:    picker,
		formatter: formatter,
		logger:    logger,
	}

	v.PathEntry = widget.NewEntry()
	v.PathEntry.SetPlaceHolder("ファイルパスを入力してください")
	v.PathEntry.OnSubmitted = func(string) { v.Check() }

	v.ResultLabel = widget.NewLabel("")
	v.ResultLabel.Wrapping = fyne.TextWrapWord

	v.BrowseButton = widget.NewButton("参照...", v.Browse)
	v.CheckButton = widget.NewButton("更新日時を確認", v.Check)

	return v
}

// Content は画面のレイアウトを返します
func (v *View) Content() fyne.CanvasObject {
	pathRow := container.NewBorder(nil, nil, nil, v.BrowseButton, v.PathEntry)
	return container.NewVBox(pathRow, v.CheckButton, v.ResultLabel)
}

// Check は入力されたパスの更新日時をブリッジ経由で取得し、結果を表示します。
// パスは加工せずにそのまま渡します。
func (v *View) Check() {
	path := v.PathEntry.Text
	resp := v.invoker.Invoke(bridge.ModifiedTimeCommand, bridge.NewModifiedTimeArgs(path))
	if !resp.OK {
		v.ResultLabel.SetText(v.formatter.FormatError(resp.Error))
		return
	}

	var ts model.Timestamp
	if err := resp.Decode(&ts); err != nil {
		v.logger.Log("ERROR", "応答の解析に失敗", err)
		v.ResultLabel.SetText(v.formatter.FormatError(err.Error()))
		return
	}

	v.ResultLabel.SetText(v.formatter.FormatTimestamp(ts))
}

// Browse はファイル選択ダイアログを表示し、選択されたパスを入力欄に設定します
func (v *View) Browse() {
	path, err := v.picker.PickFile("ファイルを選択")
	if errors.Is(err, ui.ErrCancelled) {
		v.logger.Log("INFO", "ファイル選択がキャンセルされました", nil)
		return
	}
	if err != nil {
		v.logger.Log("ERROR", "ファイル選択に失敗", err)
		v.ResultLabel.SetText(v.formatter.FormatError(err.Error()))
		return
	}

	v.PathEntry.SetText(path)
	v.logger.Log("INFO", fmt.Sprintf("ファイルが選択されました: %s", path), nil)
}

// NewWindow は View を表示するメインウィンドウを作成します
func NewWindow(a fyne.App, view *View, cfg *config.Config) fyne.Window {
	w := a.NewWindow(WindowTitle)
	w.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	w.SetContent(view.Content())
	return w
}

// Run はメインウィンドウを表示し、ウィンドウが閉じられるまでイベントループを実行します
func Run(a fyne.App, view *View, cfg *config.Config) {
	NewWindow(a, view, cfg).ShowAndRun()
}
