package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/tokenkeeper/internal/client/client"
	"github.com/dmitrijs2005/tokenkeeper/internal/client/config"
	"github.com/dmitrijs2005/tokenkeeper/internal/client/repositories/session"
	"github.com/dmitrijs2005/tokenkeeper/internal/client/services"
	"github.com/dmitrijs2005/tokenkeeper/internal/filex"
)

type App struct {
	config      *config.Config
	authService services.AuthService
	db          *sql.DB
	reader      *bufio.Reader
	out         io.Writer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	path, err := filex.EnsureParentDir(c.SessionFile)
	if err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("error initializing session store: %w", err)
	}

	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr)
	if err != nil {
		db.Close()
		return nil, err
	}

	as := services.NewAuthService(apiClient, session.NewSQLiteRepository(db))

	return &App{config: c, authService: as, db: db, reader: bufio.NewReader(os.Stdin), out: os.Stdout}, nil
}

func (a *App) Close() error {
	err := a.authService.Close()
	if a.db != nil {
		if cerr := a.db.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Run executes the command from the command line, or starts the REPL when
// there is none.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	if len(a.config.Args) > 0 {
		return dispatch(ctx, a, a.config.Args[0], a.config.Args[1:])
	}

	fmt.Fprintln(a.out, "Welcome to tokenkeeper CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader)
	return nil
}

// withTimeout bounds a single server call.
func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

func (a *App) status() string {
	s, err := a.authService.Current(context.Background())
	if err != nil {
		return ""
	}
	return fmt.Sprintf("(%s)", s.Email)
}

func (a *App) isLoggedIn() bool {
	_, err := a.authService.Current(context.Background())
	return err == nil
}
