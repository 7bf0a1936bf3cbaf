package employee

import (
	"context"
	"log/slog"
	"time"

	"github.com/stratus-hr/hrd-backend-go/internal/domain/audit"
	"github.com/stratus-hr/hrd-backend-go/internal/domain/employee"
)

type EmployeeService interface {
	Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error)
	GetByID(ctx context.Context, id string) (employee.Employee, error)
	List(ctx context.Context) ([]employee.Employee, error)
	Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error)
	Delete(ctx context.Context, id string) error
	Directory(ctx context.Context) ([]employee.DirectoryEntry, error)
}

type employeeServiceImpl struct {
	repo   employee.EmployeeRepository
	audit  audit.Sink
	logger *slog.Logger
}

func NewEmployeeService(repo employee.EmployeeRepository, sink audit.Sink, logger *slog.Logger) EmployeeService {
	return &employeeServiceImpl{repo: repo, audit: sink, logger: logger}
}

func (s *employeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	codeTaken, emailTaken, err := s.repo.ExistsByCodeOrEmail(ctx, req.EmployeeCode, req.Email)
	if err != nil {
		return employee.Employee{}, err
	}
	if codeTaken {
		return employee.Employee{}, employee.ErrEmployeeCodeExists
	}
	if emailTaken {
		return employee.Employee{}, employee.ErrEmailExists
	}

	emp := employee.Employee{
		EmployeeCode:  req.EmployeeCode,
		FullName:      req.FullName,
		Email:         req.Email,
		DepartmentID:  req.DepartmentID,
		DesignationID: req.DesignationID,
		Status:        employee.StatusActive,
	}
	if req.JoinDate != nil {
		joined, _ := time.Parse("2006-01-02", *req.JoinDate)
		emp.JoinDate = &joined
	}

	created, err := s.repo.Create(ctx, emp)
	if err != nil {
		return employee.Employee{}, err
	}

	s.record(ctx, "employee.created", created.ID, created.EmployeeCode)
	return created, nil
}

func (s *employeeServiceImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *employeeServiceImpl) List(ctx context.Context) ([]employee.Employee, error) {
	return s.repo.List(ctx)
}

func (s *employeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	if err := s.repo.Update(ctx, id, req); err != nil {
		return employee.Employee{}, err
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, err
	}

	s.record(ctx, "employee.updated", id, updated.EmployeeCode)
	return updated, nil
}

func (s *employeeServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.record(ctx, "employee.deleted", id, "")
	return nil
}

func (s *employeeServiceImpl) Directory(ctx context.Context) ([]employee.DirectoryEntry, error) {
	return s.repo.ListActive(ctx)
}

func (s *employeeServiceImpl) record(ctx context.Context, action, entityID, detail string) {
	entry := audit.Entry{
		Actor:      "admin",
		Action:     action,
		EntityType: "employee",
		EntityID:   entityID,
		Detail:     detail,
	}
	if err := s.audit.Record(ctx, entry); err != nil {
		s.logger.Warn("audit record failed", "action", action, "entity_id", entityID, "error", err)
	}
}
