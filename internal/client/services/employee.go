package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/pvolkovs/staffdesk/internal/client/client"
	"github.com/pvolkovs/staffdesk/internal/client/models"
)

// ErrEmptyFilter is returned by Search when neither criterion is set.
// A search needs at least one of designation/department to execute.
var ErrEmptyFilter = errors.New("no search criteria provided")

// EmployeeService is the domain façade the record views work through.
type EmployeeService interface {
	All(ctx context.Context) ([]models.Employee, error)
	Search(ctx context.Context, filter models.SearchFilter) ([]models.Employee, error)
	Get(ctx context.Context, id string) (*models.Employee, error)
	Add(ctx context.Context, in models.EmployeeInput) (*models.Employee, error)
	Update(ctx context.Context, id string, in models.EmployeeInput) (*models.Employee, error)
	Delete(ctx context.Context, id string) error
}

type employeeService struct {
	client client.Client
}

// NewEmployeeService constructs an EmployeeService bound to the given API client.
func NewEmployeeService(client client.Client) EmployeeService {
	return &employeeService{client: client}
}

func (s *employeeService) All(ctx context.Context) ([]models.Employee, error) {
	records, err := s.client.AllEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching employees: %w", err)
	}
	return records, nil
}

func (s *employeeService) Search(ctx context.Context, filter models.SearchFilter) ([]models.Employee, error) {
	if filter.IsZero() {
		return nil, ErrEmptyFilter
	}
	records, err := s.client.EmployeesByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching search results: %w", err)
	}
	return records, nil
}

func (s *employeeService) Get(ctx context.Context, id string) (*models.Employee, error) {
	record, err := s.client.Employee(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error fetching employee: %w", err)
	}
	return record, nil
}

func (s *employeeService) Add(ctx context.Context, in models.EmployeeInput) (*models.Employee, error) {
	record, err := s.client.AddEmployee(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("error adding employee: %w", err)
	}
	return record, nil
}

func (s *employeeService) Update(ctx context.Context, id string, in models.EmployeeInput) (*models.Employee, error) {
	record, err := s.client.UpdateEmployee(ctx, id, in)
	if err != nil {
		return nil, fmt.Errorf("error updating employee: %w", err)
	}
	return record, nil
}

func (s *employeeService) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteEmployee(ctx, id); err != nil {
		return fmt.Errorf("error deleting employee: %w", err)
	}
	return nil
}
