package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status は社員の状態を表します。
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Employee はキオスク打刻の対象となる社員エンティティです。
// ClockCode は有効な社員の間でのみ一意で、無効化された社員のコードは再利用できます。
type Employee struct {
	ID        string
	Name      string
	JobRole   string
	DailyRate decimal.Decimal
	ClockCode string
	Status    Status
	CreatedAt time.Time
}
