package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/teamup-uiuc/teamup-cli/internal/client/api"
	"github.com/teamup-uiuc/teamup-cli/internal/client/config"
	"github.com/teamup-uiuc/teamup-cli/internal/client/guard"
	"github.com/teamup-uiuc/teamup-cli/internal/client/models"
	"github.com/teamup-uiuc/teamup-cli/internal/client/services"
	"github.com/teamup-uiuc/teamup-cli/internal/client/session"
	"github.com/teamup-uiuc/teamup-cli/internal/logging"

	_ "modernc.org/sqlite"
)

// App owns the wired client: session store, API client, session guard and
// auth service. Page commands hang off it as methods dispatched by the REPL.
type App struct {
	config *config.Config
	log    logging.Logger
	db     *sql.DB
	store  *session.Store
	api    *api.Client
	auth   services.AuthService
	guard  *guard.Guard
	reader *bufio.Reader

	user *models.UserSummary
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := session.OpenDatabase(ctx, c.SessionDBPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing session database: %w", err)
	}

	store := session.NewStore(session.NewSQLiteRepository(db))
	apiClient := api.NewClient(c.APIBaseURL, c.RequestTimeout, store, log)

	a := &App{
		config: c,
		log:    log,
		db:     db,
		store:  store,
		api:    apiClient,
		auth:   services.NewAuthService(apiClient, store, log),
		reader: bufio.NewReader(os.Stdin),
	}
	a.guard = guard.New(store, apiClient, log, a.onRedirect)
	return a, nil
}

// onRedirect fires when the guard decides the session is unusable. The CLI
// equivalent of replacing navigation history is dropping the cached user so
// the prompt falls back to the signed-out command set. Quiet when nobody
// was signed in to begin with.
func (a *App) onRedirect() {
	if a.user != nil {
		printlnFn("Your session is no longer valid. Please log in again.")
	}
	a.user = nil
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

// ensureSession gates every protected page: the persisted session is
// re-validated against the server before any page data is fetched.
func (a *App) ensureSession(ctx context.Context) error {
	if err := a.guard.Ensure(ctx); err != nil {
		if errors.Is(err, guard.ErrSuperseded) {
			return err
		}
		return guard.ErrNotAuthenticated
	}
	a.user = a.guard.User()
	return nil
}

// resume silently picks up a persisted session on startup, if it still
// validates. No output when there is nothing to resume.
func (a *App) resume(ctx context.Context) {
	if err := a.guard.Ensure(ctx); err != nil {
		return
	}
	a.user = a.guard.User()
	printlnFn(fmt.Sprintf("Welcome back, %s!", a.user.DisplayName))
}

func (a *App) getStatus() string {
	if a.user == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", a.user.DisplayName)
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	printlnFn("Welcome to TeamUp CLI (type 'help' for commands)")
	a.resume(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
