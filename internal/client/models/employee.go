// Package models defines the data types exchanged with the employee
// directory service. Field names and JSON tags follow the server schema.
package models

// Employee is the client-side snapshot of a single directory record.
// The authoritative copy lives on the server; instances are replaced
// wholesale after every successful query.
type Employee struct {
	ID            string  `json:"_id"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Email         string  `json:"email"`
	Gender        string  `json:"gender"`
	Designation   string  `json:"designation"`
	Salary        float64 `json:"salary"`
	DateOfJoining string  `json:"date_of_joining"`
	Department    string  `json:"department"`
	Photo         string  `json:"employee_photo"`
}

// EmployeeInput carries the writable fields for add and update mutations.
type EmployeeInput struct {
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Email         string  `json:"email"`
	Gender        string  `json:"gender"`
	Designation   string  `json:"designation"`
	Salary        float64 `json:"salary"`
	DateOfJoining string  `json:"date_of_joining"`
	Department    string  `json:"department"`
	Photo         string  `json:"employee_photo"`
}
