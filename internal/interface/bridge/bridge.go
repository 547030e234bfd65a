// Package bridge はUI層とバックエンドの間のコマンド呼び出し境界を提供します。
// エラーはこの境界で初めて文字列に変換されます。
package bridge

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"FileStamp/internal/infrastructure/logging"
)

// Handler はJSON引数を受け取り、JSONへ変換可能な結果を返すコマンドの実装です
type Handler func(args json.RawMessage) (any, error)

// Response はコマンド呼び出しの結果です。
// 成功時は Payload、失敗時は Error のみが設定されます。
type Response struct {
	OK      bool            `json:"ok"`
	Payload json.RawMessage `json:"payload,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Err は失敗レスポンスを error に変換します。成功時は nil を返します。
func (r Response) Err() error {
	if r.OK {
		return nil
	}
	return errors.New(r.Error)
}

// Decode は成功レスポンスのペイロードを v に展開します
func (r Response) Decode(v any) error {
	if !r.OK {
		return r.Err()
	}
	if err := json.Unmarshal(r.Payload, v); err != nil {
		return fmt.Errorf("ペイロードの解析に失敗しました: %w", err)
	}
	return nil
}

// Invoker はコマンド呼び出し機能を提供するインターフェースです
type Invoker interface {
	Invoke(command string, args json.RawMessage) Response
}

// Bridge は名前付きコマンドの登録と呼び出しを行います
type Bridge struct {
	mu       sync.RWMutex
	handlers map[string]Handler
	logger   logging.Logger
}

// New は空の Bridge インスタンスを作成します
func New(logger logging.Logger) *Bridge {
	return &Bridge{
		handlers: make(map[string]Handler),
		logger:   logger,
	}
}

// Register はコマンドを登録します。同名のコマンドは登録できません。
func (b *Bridge) Register(name string, handler Handler) error {
	if name == "" {
		return fmt.Errorf("コマンド名が指定されていません")
	}
	if handler == nil {
		return fmt.Errorf("コマンド '%s' のハンドラが指定されていません", name)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.handlers[name]; exists {
		return fmt.Errorf("コマンド '%s' は既に登録されています", name)
	}
	b.handlers[name] = handler
	return nil
}

// Commands は登録済みのコマンド名を昇順で返します
func (b *Bridge) Commands() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	names := make([]string, 0, len(b.handlers))
	for name := range b.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Invoke はコマンドを呼び出し、結果を Response として返します。
// 未登録のコマンドやハンドラ内の panic も失敗レスポンスになります。
func (b *Bridge) Invoke(command string, args json.RawMessage) Response {
	b.mu.RLock()
	handler, ok := b.handlers[command]
	b.mu.RUnlock()
	if !ok {
		err := fmt.Errorf("コマンド '%s' は登録されていません", command)
		b.logger.Log("ERROR", "不明なコマンドが呼び出されました", err)
		return Response{Error: err.Error()}
	}

	result, err := b.call(command, handler, args)
	if err != nil {
		b.logger.Log("WARN", fmt.Sprintf("コマンド '%s' が失敗しました", command), err)
		return Response{Error: err.Error()}
	}

	payload, err := json.Marshal(result)
	if err != nil {
		err = fmt.Errorf("コマンド '%s' の結果をエンコードできません: %w", command, err)
		b.logger.Log("ERROR", "結果のエンコードに失敗", err)
		return Response{Error: err.Error()}
	}

	b.logger.Log("DEBUG", fmt.Sprintf("コマンド '%s' が完了しました", command), nil)
	return Response{OK: true, Payload: payload}
}

func (b *Bridge) call(command string, handler Handler, args json.RawMessage) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("コマンド '%s' の実行中に panic が発生しました: %v", command, r)
			b.logger.Log("ERROR", "ハンドラで panic が発生", err)
		}
	}()
	return handler(args)
}
