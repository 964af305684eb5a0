package cli

import (
	"context"
	"fmt"
)

// View shows a single employee record.
func (a *App) View(ctx context.Context, id string) error {
	if !a.guard.CanActivate(ctx, routeEmployeeView+"/"+id) {
		return nil
	}

	record, err := a.employees.Get(ctx, id)
	if err != nil {
		a.log.Error(ctx, "failed to fetch employee", "id", id, "error", err)
		a.Notify(err.Error())
		return err
	}

	fmt.Fprintf(a.out, "ID:              %s\n", record.ID)
	fmt.Fprintf(a.out, "First name:      %s\n", record.FirstName)
	fmt.Fprintf(a.out, "Last name:       %s\n", record.LastName)
	fmt.Fprintf(a.out, "Email:           %s\n", record.Email)
	fmt.Fprintf(a.out, "Gender:          %s\n", record.Gender)
	fmt.Fprintf(a.out, "Designation:     %s\n", record.Designation)
	fmt.Fprintf(a.out, "Salary:          %.2f\n", record.Salary)
	fmt.Fprintf(a.out, "Date of joining: %s\n", record.DateOfJoining)
	fmt.Fprintf(a.out, "Department:      %s\n", record.Department)
	if record.Photo != "" {
		fmt.Fprintf(a.out, "Photo:           %.60s\n", record.Photo)
	}
	return nil
}
