package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) error
	Delete(ctx context.Context, id string) error
	ExistsByCodeOrEmail(ctx context.Context, code, email string) (codeTaken, emailTaken bool, err error)

	// ListActive is the EmployeeDirectory view used by the attendance
	// reconciler: active employees only, ordered by employee code.
	ListActive(ctx context.Context) ([]DirectoryEntry, error)
}
