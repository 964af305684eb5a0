package cli

import (
	"context"
	"fmt"
	"net/mail"
	"strconv"

	"github.com/pvolkovs/staffdesk/internal/client/models"
)

// promptEmployeeInput collects the writable employee fields. With a
// non-nil defaults record (edit form) an empty answer keeps the current
// value; otherwise every field except the photo is required.
func (a *App) promptEmployeeInput(defaults *models.Employee) (models.EmployeeInput, error) {
	var in models.EmployeeInput
	var def models.Employee
	if defaults != nil {
		def = *defaults
	}

	var err error
	if in.FirstName, err = GetText(a.reader, "First name", def.FirstName, a.out); err != nil {
		return in, err
	}
	if in.LastName, err = GetText(a.reader, "Last name", def.LastName, a.out); err != nil {
		return in, err
	}
	if in.Email, err = GetText(a.reader, "Email", def.Email, a.out); err != nil {
		return in, err
	}
	if in.Gender, err = GetText(a.reader, "Gender", def.Gender, a.out); err != nil {
		return in, err
	}
	if in.Designation, err = GetText(a.reader, "Designation", def.Designation, a.out); err != nil {
		return in, err
	}

	defSalary := ""
	if defaults != nil {
		defSalary = strconv.FormatFloat(def.Salary, 'f', -1, 64)
	}
	salary, err := GetText(a.reader, "Salary", defSalary, a.out)
	if err != nil {
		return in, err
	}
	if in.DateOfJoining, err = GetText(a.reader, "Date of joining (YYYY-MM-DD)", def.DateOfJoining, a.out); err != nil {
		return in, err
	}
	if in.Department, err = GetText(a.reader, "Department", def.Department, a.out); err != nil {
		return in, err
	}
	if in.Photo, err = GetText(a.reader, "Photo (URL or data URI, optional)", def.Photo, a.out); err != nil {
		return in, err
	}

	if in.FirstName == "" || in.LastName == "" || in.Email == "" || in.Gender == "" ||
		in.Designation == "" || salary == "" || in.DateOfJoining == "" || in.Department == "" {
		return in, fmt.Errorf("please fill all required fields")
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return in, fmt.Errorf("invalid email address")
	}
	in.Salary, err = strconv.ParseFloat(salary, 64)
	if err != nil || in.Salary < 0 {
		return in, fmt.Errorf("salary must be a non-negative number")
	}

	return in, nil
}

// Add is the add-employee form. The mutation funnels through the active
// view's controller so the snapshot is refetched on success.
func (a *App) Add(ctx context.Context) error {
	if !a.guard.CanActivate(ctx, routeEmployeeAdd) {
		return nil
	}

	in, err := a.promptEmployeeInput(nil)
	if err != nil {
		a.Notify(err.Error())
		return err
	}

	view := a.activeView()
	if err := view.Mutate(ctx, func(ctx context.Context) error {
		_, err := a.employees.Add(ctx, in)
		return err
	}, "Employee added successfully!"); err != nil {
		return err
	}
	a.renderList(view.Snapshot())
	return nil
}

// Edit is the edit-employee form: fetch current values, prompt with them
// as defaults, then mutate-and-refetch.
func (a *App) Edit(ctx context.Context, id string) error {
	if !a.guard.CanActivate(ctx, routeEmployeeEdit+"/"+id) {
		return nil
	}

	current, err := a.employees.Get(ctx, id)
	if err != nil {
		a.Notify(err.Error())
		return err
	}

	in, err := a.promptEmployeeInput(current)
	if err != nil {
		a.Notify(err.Error())
		return err
	}

	view := a.activeView()
	if err := view.Mutate(ctx, func(ctx context.Context) error {
		_, err := a.employees.Update(ctx, id, in)
		return err
	}, "Employee updated successfully!"); err != nil {
		return err
	}
	a.renderList(view.Snapshot())
	return nil
}

// Delete records a pending delete target and fires the mutation only
// after an explicit confirmation. Declining issues zero server calls.
func (a *App) Delete(ctx context.Context, id string) error {
	if !a.guard.CanActivate(ctx, routeEmployees) {
		return nil
	}

	view := a.activeView()
	view.RequestDelete(id)

	confirmed, err := GetConfirmation(a.reader, "Delete employee "+id+"?", a.out)
	if err != nil {
		view.CancelDelete()
		return err
	}
	if !confirmed {
		view.CancelDelete()
		a.Notify("Delete cancelled")
		return nil
	}

	if err := view.ConfirmDelete(ctx); err != nil {
		return err
	}
	a.renderList(view.Snapshot())
	return nil
}
