package department

import "context"

type DepartmentRepository interface {
	Create(ctx context.Context, dep Department) (Department, error)
	GetByID(ctx context.Context, id string) (Department, error)
	List(ctx context.Context) ([]Department, error)
	Update(ctx context.Context, id string, req UpsertDepartmentRequest) error
	Delete(ctx context.Context, id string) error
}
