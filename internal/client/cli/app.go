package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/investprofile/internal/client/config"
	"github.com/dmitrijs2005/investprofile/internal/client/models"
	"github.com/dmitrijs2005/investprofile/internal/client/profile"
	"github.com/dmitrijs2005/investprofile/internal/client/repositories/accounts"
	"github.com/dmitrijs2005/investprofile/internal/client/repositories/kv"
	"github.com/dmitrijs2005/investprofile/internal/client/services"
	"github.com/dmitrijs2005/investprofile/internal/cryptox"
	"github.com/dmitrijs2005/investprofile/internal/logging"
)

type App struct {
	config *config.Config
	auth   services.AuthService
	recs   services.RecommendationService
	mode   profile.AverageMode
	log    logging.Logger
	db     *sql.DB

	reader *bufio.Reader
	out    io.Writer

	session *models.Session
	// last list shown by "suggest", indexed by "select <n>"
	suggestions []models.Portfolio
}

// NewApp opens the local store at cfg.DBPath and wires the services over it.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.New(os.Stderr, c.LogLevel, c.LogFormat)

	mode, err := profile.ParseAverageMode(c.AverageMode)
	if err != nil {
		return nil, err
	}

	db, err := kv.OpenSQLite(ctx, c.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}
	store := kv.NewSQLiteStore(db)
	keys := kv.NewKeys(c.KeyPrefix)

	accts := accounts.NewStore(store, keys, log)
	accts.Load(ctx)

	app := &App{
		config: c,
		auth:   services.NewAuthService(accts, store, keys, authOptions(c), log),
		recs:   services.NewRecommendationService(store, keys, mode, log),
		mode:   mode,
		log:    log,
		db:     db,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
	return app, nil
}

func authOptions(c *config.Config) services.AuthOptions {
	var opts services.AuthOptions
	if c.PasswordHashing {
		opts.Passwords = cryptox.Argon2Policy{}
	}
	if c.IDScheme == config.IDSchemeUUID {
		opts.NewID = services.UUIDIDs
	}
	return opts
}

// Run restores the persisted session, if any, and blocks in the REPL until
// the user exits or input ends.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	a.session = a.auth.CurrentSession(ctx)
	if a.session != nil {
		a.log.Info(ctx, "session restored", "id", a.session.User.ID)
	}

	fmt.Fprintln(a.out, "Welcome to InvestProfile CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader)
	return nil
}

func (a *App) close() {
	if a.db == nil {
		return
	}
	if err := a.db.Close(); err != nil {
		a.log.Warn(context.Background(), "close local store", "error", err)
	}
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) status() string {
	if a.session == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", a.session.User.Email, a.session.User.Role)
}
