// Package model はドメインモデルを定義します
package model

import (
	"errors"
	"fmt"
	"time"
)

const nanosPerSecond = int64(time.Second)

// ErrBeforeEpoch はUNIXエポックより前の時刻を Timestamp に変換しようとした場合のエラーです
var ErrBeforeEpoch = errors.New("時刻がUNIXエポックより前のため表現できません")

// Timestamp はタイムゾーンを持たない絶対時刻を表します。
// UI 層へはエポックからの秒数とナノ秒数の組として渡されます。
type Timestamp struct {
	// SecsSinceEpoch はUNIXエポックからの経過秒数を表します
	SecsSinceEpoch uint64 `json:"secs_since_epoch"`
	// NanosSinceEpoch は秒未満のナノ秒数（0 以上 1e9 未満）を表します
	NanosSinceEpoch uint32 `json:"nanos_since_epoch"`
}

// NewTimestamp は time.Time から Timestamp を作成します。
// エポックより前の時刻は境界値に丸めず ErrBeforeEpoch を返します。
func NewTimestamp(t time.Time) (Timestamp, error) {
	secs := t.Unix()
	if secs < 0 {
		return Timestamp{}, fmt.Errorf("%w: %s", ErrBeforeEpoch, t.UTC().Format(time.RFC3339Nano))
	}
	return Timestamp{
		SecsSinceEpoch:  uint64(secs),
		NanosSinceEpoch: uint32(t.Nanosecond()),
	}, nil
}

// Time は Timestamp を UTC の time.Time に変換します
func (ts Timestamp) Time() time.Time {
	return time.Unix(int64(ts.SecsSinceEpoch), int64(ts.NanosSinceEpoch)).UTC()
}

// UnixNano はエポックからの経過ナノ秒数を返します
func (ts Timestamp) UnixNano() int64 {
	return int64(ts.SecsSinceEpoch)*nanosPerSecond + int64(ts.NanosSinceEpoch)
}

// Before は ts が other より前の時刻であるかを返します
func (ts Timestamp) Before(other Timestamp) bool {
	if ts.SecsSinceEpoch != other.SecsSinceEpoch {
		return ts.SecsSinceEpoch < other.SecsSinceEpoch
	}
	return ts.NanosSinceEpoch < other.NanosSinceEpoch
}

// Equal は2つの Timestamp が同じ時刻を表すかを返します
func (ts Timestamp) Equal(other Timestamp) bool {
	return ts == other
}
