package timeclock

import (
	"context"

	"github.com/shopspring/decimal"
)

// EventRepository は打刻イベント台帳の抽象です。追記と最新取得のみを提供し、
// 更新・削除は存在しません。
type EventRepository interface {
	Append(ctx context.Context, event *ClockEvent) (*ClockEvent, error)
	// LastByEmployee は社員の時系列で最新の打刻を返します。
	// 打刻が存在しない場合は ErrNoEvents を返します。
	LastByEmployee(ctx context.Context, employeeID string) (*ClockEvent, error)
}

// ShiftRepository は勤務記録の永続化の抽象です。作成のみを提供します。
type ShiftRepository interface {
	Create(ctx context.Context, shift *Shift) (*Shift, error)
}

// DirectoryEmployee は打刻処理に必要な範囲の社員情報です。
type DirectoryEmployee struct {
	ID        string
	Name      string
	DailyRate decimal.Decimal
}

// Directory は社員台帳への参照です。打刻コードの解決のみを要求します。
type Directory interface {
	// ActiveByCode は打刻コードに一致する有効な社員を返し、トランザクション終了まで
	// その社員の行をロックします。同一社員の打刻の直列化はこのロックに依存します。
	// 一致する有効な社員がいない場合は ErrInvalidCode を返します。
	ActiveByCode(ctx context.Context, code string) (*DirectoryEmployee, error)
}
