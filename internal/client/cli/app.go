// Package cli is the interactive shell of the staffdesk client. REPL
// commands play the role of routes; the handlers behind them are the
// views. Protected commands pass through the route guard.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/url"
	"os"

	"github.com/pvolkovs/staffdesk/internal/client/client"
	"github.com/pvolkovs/staffdesk/internal/client/config"
	"github.com/pvolkovs/staffdesk/internal/client/guard"
	"github.com/pvolkovs/staffdesk/internal/client/models"
	"github.com/pvolkovs/staffdesk/internal/client/services"
	"github.com/pvolkovs/staffdesk/internal/client/session"
	"github.com/pvolkovs/staffdesk/internal/client/storage"
	recsync "github.com/pvolkovs/staffdesk/internal/client/sync"
	"github.com/pvolkovs/staffdesk/internal/logging"

	_ "modernc.org/sqlite"
)

// Route paths, mirroring the views the client exposes.
const (
	routeEmployees    = "/employees"
	routeSearchResult = "/employees/searchResult"
	routeEmployeeView = "/employee/view"
	routeEmployeeAdd  = "/employee/add"
	routeEmployeeEdit = "/employee/edit"
)

// App wires the session store, guard, services and per-view sync
// controllers together and drives them from the REPL.
type App struct {
	config    *config.Config
	api       client.Client
	kv        storage.Store
	session   *session.Store
	guard     *guard.Guard
	auth      services.AuthService
	employees services.EmployeeService

	list   *recsync.Controller
	search *recsync.Controller
	active *recsync.Controller

	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer
}

// NewApp builds the application. A storage open failure is downgraded to
// an unavailable session store (every check then reports logged out)
// rather than refusing to start.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	var kv storage.Store
	if s, err := storage.Open(ctx, cfg.StoragePath); err != nil {
		log.Warn(ctx, "durable storage unavailable, session will not persist", "error", err)
	} else {
		kv = s
	}

	sess := session.New(kv, log)

	api := client.NewGraphQLClient(cfg.ServerEndpointURL, func() string {
		return sess.Get(context.Background())
	})

	a := &App{
		config:    cfg,
		api:       api,
		kv:        kv,
		session:   sess,
		auth:      services.NewAuthService(api),
		employees: services.NewEmployeeService(api),
		log:       log,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}

	a.guard = guard.New(sess, a, log)

	// The list view always queries the full directory; the search view
	// queries by filter and clears its snapshot on failure.
	a.list = recsync.NewController(
		func(ctx context.Context, _ models.SearchFilter) ([]models.Employee, error) {
			return a.employees.All(ctx)
		},
		a.employees.Delete, a, log,
	)
	a.search = recsync.NewController(
		a.employees.Search,
		a.employees.Delete, a, log,
		recsync.WithClearOnError(),
	)
	a.active = a.list

	return a, nil
}

// Notify prints a transient user-facing notice.
func (a *App) Notify(msg string) {
	fmt.Fprintln(a.out, "! "+msg)
}

// Navigate dispatches to the view behind path. The guard redirects here
// with guard.LoginPath on denial.
func (a *App) Navigate(ctx context.Context, path string, query url.Values) {
	switch path {
	case guard.LoginPath:
		a.Notify("Please log in first (command: login)")
	case routeEmployees:
		a.showEmployees(ctx)
	case routeSearchResult:
		a.showSearchResults(ctx, query)
	default:
		a.Notify("Unknown route: " + path)
	}
}

// activeView returns the controller of the most recently entered record
// view; mutations refetch through it so the snapshot that gets replaced
// is the one the user is looking at.
func (a *App) activeView() *recsync.Controller {
	if a.active == nil {
		return a.list
	}
	return a.active
}

// Close releases the transport and storage resources.
func (a *App) Close() error {
	if a.kv != nil {
		if err := a.kv.Close(); err != nil {
			return err
		}
	}
	return a.api.Close()
}
