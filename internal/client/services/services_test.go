package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pvolkovs/staffdesk/internal/client/client"
	"github.com/pvolkovs/staffdesk/internal/client/models"
)

// fakeClient implements client.Client for unit tests.
type fakeClient struct {
	LoginRet  *models.AuthPayload
	LoginErr  error
	SignupRet *models.AuthPayload
	SignupErr error

	AllRet    []models.Employee
	AllErr    error
	FilterRet []models.Employee
	FilterErr error
	GetRet    *models.Employee
	GetErr    error
	AddRet    *models.Employee
	AddErr    error
	UpdateRet *models.Employee
	UpdateErr error
	DeleteErr error

	FilterCalls int
	DeleteCalls int
	LastFilter  models.SearchFilter
	LastDelete  string
}

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) Login(ctx context.Context, username, password string) (*models.AuthPayload, error) {
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Signup(ctx context.Context, username, email, password string) (*models.AuthPayload, error) {
	return f.SignupRet, f.SignupErr
}

func (f *fakeClient) AllEmployees(ctx context.Context) ([]models.Employee, error) {
	return f.AllRet, f.AllErr
}

func (f *fakeClient) EmployeesByFilter(ctx context.Context, filter models.SearchFilter) ([]models.Employee, error) {
	f.FilterCalls++
	f.LastFilter = filter
	return f.FilterRet, f.FilterErr
}

func (f *fakeClient) Employee(ctx context.Context, id string) (*models.Employee, error) {
	return f.GetRet, f.GetErr
}

func (f *fakeClient) AddEmployee(ctx context.Context, in models.EmployeeInput) (*models.Employee, error) {
	return f.AddRet, f.AddErr
}

func (f *fakeClient) UpdateEmployee(ctx context.Context, id string, in models.EmployeeInput) (*models.Employee, error) {
	return f.UpdateRet, f.UpdateErr
}

func (f *fakeClient) DeleteEmployee(ctx context.Context, id string) error {
	f.DeleteCalls++
	f.LastDelete = id
	return f.DeleteErr
}

// ---- auth ----

func TestLogin_Success(t *testing.T) {
	fc := &fakeClient{LoginRet: &models.AuthPayload{
		Token: "tok",
		User:  models.User{ID: "1", Username: "alice", Email: "alice@example.com"},
	}}
	svc := NewAuthService(fc)

	payload, err := svc.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)
	require.Equal(t, "tok", payload.Token)
	require.Equal(t, "alice", payload.User.Username)
}

func TestLogin_ErrorSurfacedUnmodified(t *testing.T) {
	wantErr := errors.New("bad credentials")
	fc := &fakeClient{LoginErr: wantErr}
	svc := NewAuthService(fc)

	_, err := svc.Login(context.Background(), "alice", "wrong")
	require.ErrorIs(t, err, wantErr)
}

func TestLogin_EmptyToken(t *testing.T) {
	fc := &fakeClient{LoginRet: &models.AuthPayload{}}
	svc := NewAuthService(fc)

	_, err := svc.Login(context.Background(), "alice", "pw")
	require.Error(t, err)
}

func TestSignup_Success(t *testing.T) {
	fc := &fakeClient{SignupRet: &models.AuthPayload{
		Token: "tok",
		User:  models.User{Username: "bob"},
	}}
	svc := NewAuthService(fc)

	payload, err := svc.Signup(context.Background(), "bob", "bob@example.com", "pw")
	require.NoError(t, err)
	require.Equal(t, "tok", payload.Token)
}

func TestSignup_ErrorSurfacedUnmodified(t *testing.T) {
	wantErr := errors.New("duplicate username")
	fc := &fakeClient{SignupErr: wantErr}
	svc := NewAuthService(fc)

	_, err := svc.Signup(context.Background(), "bob", "bob@example.com", "pw")
	require.ErrorIs(t, err, wantErr)
}

// ---- employees ----

func TestSearch_EmptyFilterDoesNotReachServer(t *testing.T) {
	fc := &fakeClient{}
	svc := NewEmployeeService(fc)

	_, err := svc.Search(context.Background(), models.SearchFilter{})
	require.ErrorIs(t, err, ErrEmptyFilter)
	require.Zero(t, fc.FilterCalls)
}

func TestSearch_PassesFilter(t *testing.T) {
	fc := &fakeClient{FilterRet: []models.Employee{{ID: "1"}}}
	svc := NewEmployeeService(fc)

	got, err := svc.Search(context.Background(), models.SearchFilter{Designation: "Engineer"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Engineer", fc.LastFilter.Designation)
	require.Empty(t, fc.LastFilter.Department)
}

func TestAll_WrapsTransportError(t *testing.T) {
	fc := &fakeClient{AllErr: client.ErrUnavailable}
	svc := NewEmployeeService(fc)

	_, err := svc.All(context.Background())
	require.ErrorIs(t, err, client.ErrUnavailable)
}

func TestDelete_PassesID(t *testing.T) {
	fc := &fakeClient{}
	svc := NewEmployeeService(fc)

	require.NoError(t, svc.Delete(context.Background(), "emp-42"))
	require.Equal(t, 1, fc.DeleteCalls)
	require.Equal(t, "emp-42", fc.LastDelete)
}
