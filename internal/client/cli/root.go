package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus(ctx context.Context) string {
	if !a.session.IsValid(ctx) {
		return ""
	}
	if sub := a.session.Subject(ctx); sub != "" {
		return fmt.Sprintf("(%s)", sub)
	}
	return "(logged in)"
}

// Run starts the REPL. Commands map onto the client's routes; handlers
// log and notify their own errors, so the loop itself stays focused on
// parsing and dispatch.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to staffdesk (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "sd %s> ", a.getStatus(ctx))
		if !scanner.Scan() {
			break
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.session.IsValid(ctx) {
				fmt.Fprintln(a.out, "Available commands: employees, search <designation|department> <term>, view <id>, add, edit <id>, delete <id>, logout, exit")
			} else {
				fmt.Fprintln(a.out, "Available commands: login, signup, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "signup":
			_ = a.Signup(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "employees", "list":
			_ = a.Employees(ctx)

		case "search":
			if len(args) < 2 {
				fmt.Fprintln(a.out, "Usage: search <designation|department> <term>")
				continue
			}
			_ = a.Search(ctx, args[0], strings.Join(args[1:], " "))

		case "view":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: view <id>")
				continue
			}
			_ = a.View(ctx, args[0])

		case "add":
			_ = a.Add(ctx)

		case "edit":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: edit <id>")
				continue
			}
			_ = a.Edit(ctx, args[0])

		case "delete":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: delete <id>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}
