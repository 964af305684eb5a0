package cli

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pvolkovs/staffdesk/internal/client/models"
)

// Employees is the "all employees" view: guard, fetch-on-entry, render.
func (a *App) Employees(ctx context.Context) error {
	if !a.guard.CanActivate(ctx, routeEmployees) {
		return nil
	}
	a.showEmployees(ctx)
	return nil
}

func (a *App) showEmployees(ctx context.Context) {
	a.active = a.list
	if err := a.list.Load(ctx, models.SearchFilter{}); err != nil {
		// Snapshot kept as-is; the notification was already raised.
		return
	}
	a.renderList(a.list.Snapshot())
}

// Search routes to the filtered results view. field selects which query
// variable is populated (designation or department); the other one stays
// unset unless supplied explicitly via the query context.
func (a *App) Search(ctx context.Context, field, term string) error {
	if field != "designation" && field != "department" {
		a.Notify("Search field must be 'designation' or 'department'")
		return nil
	}
	if term == "" {
		a.Notify("Please provide a search term")
		return nil
	}
	if !a.guard.CanActivate(ctx, routeSearchResult) {
		return nil
	}

	q := url.Values{}
	q.Set(field, term)
	a.Navigate(ctx, routeSearchResult, q)
	return nil
}

func (a *App) renderList(records []models.Employee) {
	if len(records) == 0 {
		fmt.Fprintln(a.out, "No employees found.")
		return
	}
	fmt.Fprintf(a.out, "%-26s %-12s %-12s %-26s %-16s %10s %-14s\n",
		"ID", "FIRST NAME", "LAST NAME", "EMAIL", "DESIGNATION", "SALARY", "DEPARTMENT")
	for _, e := range records {
		fmt.Fprintf(a.out, "%-26s %-12s %-12s %-26s %-16s %10.2f %-14s\n",
			e.ID, e.FirstName, e.LastName, e.Email, e.Designation, e.Salary, e.Department)
	}
}
