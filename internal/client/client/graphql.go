package client

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/machinebox/graphql"

	"github.com/pvolkovs/staffdesk/internal/client/models"
)

// employeeFields is the selection set shared by every employee operation.
const employeeFields = `
	_id
	first_name
	last_name
	email
	gender
	designation
	salary
	date_of_joining
	department
	employee_photo
`

const (
	queryAllEmployees = `query GetAllEmployees {
		getAllEmployees {` + employeeFields + `}
	}`

	queryEmployeesByFilter = `query GetEmployeesByDesignationOrDepartment($designation: String, $department: String) {
		getEmployeeByDesignationOrDepartment(designation: $designation, department: $department) {` + employeeFields + `}
	}`

	queryEmployee = `query GetEmployee($id: ID!) {
		getEmployee(_id: $id) {` + employeeFields + `}
	}`

	mutationAddEmployee = `mutation AddEmployee($input: EmployeeInput!) {
		addEmployee(input: $input) {` + employeeFields + `}
	}`

	mutationUpdateEmployee = `mutation UpdateEmployee($_id: ID!, $input: EmployeeInput!) {
		updateEmployee(_id: $_id, input: $input) {` + employeeFields + `}
	}`

	mutationDeleteEmployee = `mutation DeleteEmployee($_id: ID!) {
		deleteEmployee(_id: $_id) {
			_id
		}
	}`

	mutationLogin = `mutation LoginUser($username: String!, $password: String!) {
		loginUser(username: $username, password: $password) {
			token
			user {
				_id
				username
				email
			}
		}
	}`

	mutationSignup = `mutation SignUpUser($username: String!, $email: String!, $password: String!) {
		signUpUser(username: $username, email: $email, password: $password) {
			token
			user {
				_id
				username
				email
			}
		}
	}`
)

// TokenFunc supplies the current session token for outgoing requests.
// An empty return means the request goes out unauthenticated.
type TokenFunc func() string

// GraphQLClient talks to the employee directory service over GraphQL.
type GraphQLClient struct {
	endpointURL string
	gql         *graphql.Client
	httpClient  *http.Client
	tokenFn     TokenFunc
}

// NewGraphQLClient builds a client for the given endpoint. tokenFn may be
// nil for a client that never authenticates its requests.
func NewGraphQLClient(endpointURL string, tokenFn TokenFunc) *GraphQLClient {
	hc := &http.Client{}
	return &GraphQLClient{
		endpointURL: endpointURL,
		gql:         graphql.NewClient(endpointURL, graphql.WithHTTPClient(hc)),
		httpClient:  hc,
		tokenFn:     tokenFn,
	}
}

// run executes a single GraphQL exchange, attaching the session token
// (when present) and a request id, and maps transport failures to
// sentinel errors.
func (c *GraphQLClient) run(ctx context.Context, query string, vars map[string]interface{}, out interface{}) error {
	req := graphql.NewRequest(query)
	for k, v := range vars {
		req.Var(k, v)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())
	if c.tokenFn != nil {
		if token := c.tokenFn(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	if err := c.gql.Run(ctx, req, out); err != nil {
		return c.mapError(err)
	}
	return nil
}

// mapError folds connectivity failures into ErrUnavailable and
// authentication rejections into ErrUnauthorized. Application-level
// errors (bad credentials, duplicate username, validation) pass through
// unmodified so callers can show the server's message.
func (c *GraphQLClient) mapError(err error) error {
	if err == nil {
		return nil
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return ErrUnavailable
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return ErrUnavailable
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "unauthorized"), strings.Contains(msg, "unauthenticated"):
		return ErrUnauthorized
	case strings.Contains(msg, "not found"):
		return ErrNotFound
	}

	return err
}

func (c *GraphQLClient) Login(ctx context.Context, username, password string) (*models.AuthPayload, error) {
	var resp struct {
		LoginUser models.AuthPayload `json:"loginUser"`
	}
	vars := map[string]interface{}{"username": username, "password": password}
	if err := c.run(ctx, mutationLogin, vars, &resp); err != nil {
		return nil, err
	}
	return &resp.LoginUser, nil
}

func (c *GraphQLClient) Signup(ctx context.Context, username, email, password string) (*models.AuthPayload, error) {
	var resp struct {
		SignUpUser models.AuthPayload `json:"signUpUser"`
	}
	vars := map[string]interface{}{"username": username, "email": email, "password": password}
	if err := c.run(ctx, mutationSignup, vars, &resp); err != nil {
		return nil, err
	}
	return &resp.SignUpUser, nil
}

func (c *GraphQLClient) AllEmployees(ctx context.Context) ([]models.Employee, error) {
	var resp struct {
		GetAllEmployees []models.Employee `json:"getAllEmployees"`
	}
	if err := c.run(ctx, queryAllEmployees, nil, &resp); err != nil {
		return nil, err
	}
	return resp.GetAllEmployees, nil
}

// EmployeesByFilter sends both variables, null for an absent criterion,
// matching the server's designation-or-department query contract.
func (c *GraphQLClient) EmployeesByFilter(ctx context.Context, filter models.SearchFilter) ([]models.Employee, error) {
	var resp struct {
		GetEmployeeByDesignationOrDepartment []models.Employee `json:"getEmployeeByDesignationOrDepartment"`
	}
	vars := map[string]interface{}{
		"designation": nullableString(filter.Designation),
		"department":  nullableString(filter.Department),
	}
	if err := c.run(ctx, queryEmployeesByFilter, vars, &resp); err != nil {
		return nil, err
	}
	return resp.GetEmployeeByDesignationOrDepartment, nil
}

func (c *GraphQLClient) Employee(ctx context.Context, id string) (*models.Employee, error) {
	var resp struct {
		GetEmployee models.Employee `json:"getEmployee"`
	}
	vars := map[string]interface{}{"id": id}
	if err := c.run(ctx, queryEmployee, vars, &resp); err != nil {
		return nil, err
	}
	return &resp.GetEmployee, nil
}

func (c *GraphQLClient) AddEmployee(ctx context.Context, in models.EmployeeInput) (*models.Employee, error) {
	var resp struct {
		AddEmployee models.Employee `json:"addEmployee"`
	}
	vars := map[string]interface{}{"input": in}
	if err := c.run(ctx, mutationAddEmployee, vars, &resp); err != nil {
		return nil, err
	}
	return &resp.AddEmployee, nil
}

func (c *GraphQLClient) UpdateEmployee(ctx context.Context, id string, in models.EmployeeInput) (*models.Employee, error) {
	var resp struct {
		UpdateEmployee models.Employee `json:"updateEmployee"`
	}
	vars := map[string]interface{}{"_id": id, "input": in}
	if err := c.run(ctx, mutationUpdateEmployee, vars, &resp); err != nil {
		return nil, err
	}
	return &resp.UpdateEmployee, nil
}

func (c *GraphQLClient) DeleteEmployee(ctx context.Context, id string) error {
	var resp struct {
		DeleteEmployee struct {
			ID string `json:"_id"`
		} `json:"deleteEmployee"`
	}
	vars := map[string]interface{}{"_id": id}
	return c.run(ctx, mutationDeleteEmployee, vars, &resp)
}

// Close releases transport resources.
func (c *GraphQLClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
