package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/taskkeeper/internal/accounts"
	"github.com/dmitrijs2005/taskkeeper/internal/client/config"
	"github.com/dmitrijs2005/taskkeeper/internal/kvstore"
	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/session"
	"github.com/dmitrijs2005/taskkeeper/internal/tasklist"
	"github.com/dmitrijs2005/taskkeeper/internal/tasks"

	_ "modernc.org/sqlite"
)

// App ties the session context and task list controller to the terminal.
type App struct {
	config  *config.Config
	db      *sql.DB
	session *session.Context
	tasks   *tasklist.Controller
	log     logging.Logger
	reader  *bufio.Reader
}

// NewApp opens the local store, restores any persisted session and wires the
// controller to reload whenever the session identity changes.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	db, err := kvstore.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing local store", "error", err)
		return nil, err
	}

	store := kvstore.NewSQLiteStore(db)
	sessCtx := session.NewContext(accounts.NewService(store), log)
	controller := tasklist.NewController(tasks.NewRepository(store), log)

	a := &App{
		config:  cfg,
		db:      db,
		session: sessCtx,
		tasks:   controller,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
	}

	// The controller follows the session: login, logout or a restored
	// session all trigger a reload of that user's tasks.
	sessCtx.Subscribe(func(st session.State) {
		id := ""
		if st.User != nil {
			id = st.User.ID
		}
		if err := controller.Load(ctx, id); err != nil {
			log.Error(ctx, "error loading tasks", "error", err)
		}
	})

	if err := sessCtx.Init(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return a, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.State().IsAuthenticated
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.db.Close() }()
	a.Root(ctx)
}
