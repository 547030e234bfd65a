package bridge

import (
	"encoding/json"
	"fmt"

	"FileStamp/internal/infrastructure/filesystem"
	"FileStamp/internal/infrastructure/logging"
)

// ModifiedTimeCommand は更新日時取得コマンドの名前です
const ModifiedTimeCommand = "modified_time"

// ModifiedTimeArgs は modified_time コマンドの引数です
type ModifiedTimeArgs struct {
	FilePath *string `json:"filePath"`
}

// NewModifiedTimeArgs は filePath を引数とするJSONを作成します
func NewModifiedTimeArgs(filePath string) json.RawMessage {
	// string のみを含むため Marshal は失敗しない
	data, _ := json.Marshal(ModifiedTimeArgs{FilePath: &filePath})
	return data
}

// ModifiedTimeHandler は querier を modified_time コマンドとして公開します。
// 空文字列のパスもそのままファイルシステムへ渡します。
func ModifiedTimeHandler(querier filesystem.TimestampQuerier) Handler {
	return func(args json.RawMessage) (any, error) {
		var in ModifiedTimeArgs
		if err := json.Unmarshal(args, &in); err != nil {
			return nil, fmt.Errorf("%s の引数が不正です: %w", ModifiedTimeCommand, err)
		}
		if in.FilePath == nil {
			return nil, fmt.Errorf("%s の引数 filePath が指定されていません", ModifiedTimeCommand)
		}
		return querier.ModifiedTime(*in.FilePath)
	}
}

// NewDefault は標準のコマンドを登録した Bridge を作成します
func NewDefault(querier filesystem.TimestampQuerier, logger logging.Logger) *Bridge {
	b := New(logger)
	// 空の Bridge への初回登録は失敗しない
	_ = b.Register(ModifiedTimeCommand, ModifiedTimeHandler(querier))
	return b
}
