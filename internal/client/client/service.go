// Package client defines the transport boundary of the staffdesk client:
// a Client interface mirroring the remote GraphQL operations, the
// concrete GraphQL implementation, and the sentinel errors the rest of
// the application matches on.
package client

import (
	"context"

	"github.com/pvolkovs/staffdesk/internal/client/models"
)

// Client is the request/response surface of the remote employee
// directory service. Every call is a single exchange; no retries.
type Client interface {
	Close() error

	Login(ctx context.Context, username, password string) (*models.AuthPayload, error)
	Signup(ctx context.Context, username, email, password string) (*models.AuthPayload, error)

	AllEmployees(ctx context.Context) ([]models.Employee, error)
	EmployeesByFilter(ctx context.Context, filter models.SearchFilter) ([]models.Employee, error)
	Employee(ctx context.Context, id string) (*models.Employee, error)
	AddEmployee(ctx context.Context, in models.EmployeeInput) (*models.Employee, error)
	UpdateEmployee(ctx context.Context, id string, in models.EmployeeInput) (*models.Employee, error)
	DeleteEmployee(ctx context.Context, id string) error
}
