package employee

import "context"

// Repository は社員永続化の抽象です。物理削除は存在せず、無効化は状態の更新です。
type Repository interface {
	Create(ctx context.Context, employee *Employee) (*Employee, error)
	Update(ctx context.Context, employee *Employee) (*Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	// FindActiveByCode は打刻コードに一致する有効な社員を返します。
	FindActiveByCode(ctx context.Context, clockCode string) (*Employee, error)
	List(ctx context.Context, filter ListEmployeesFilter) ([]*Employee, error)
}

// ListEmployeesFilter は一覧取得用フィルタです。
type ListEmployeesFilter struct {
	Status *Status
}
