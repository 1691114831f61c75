package cli

import (
	"bufio"
	"bytes"
	"context"
	"database/sql"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/taskkeeper/internal/accounts"
	"github.com/dmitrijs2005/taskkeeper/internal/client/config"
	"github.com/dmitrijs2005/taskkeeper/internal/kvstore"
	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/session"
	"github.com/dmitrijs2005/taskkeeper/internal/tasklist"
	"github.com/dmitrijs2005/taskkeeper/internal/tasks"

	_ "modernc.org/sqlite"
)

// newTestApp wires an App over an in-memory store, with the given terminal
// input pre-loaded.
func newTestApp(t *testing.T, input string) *App {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE kv (key TEXT PRIMARY KEY, value TEXT NOT NULL);`)
	require.NoError(t, err)

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	store := kvstore.NewSQLiteStore(db)
	sessCtx := session.NewContext(accounts.NewService(store), log)
	controller := tasklist.NewController(tasks.NewRepository(store), log)

	ctx := context.Background()
	sessCtx.Subscribe(func(st session.State) {
		id := ""
		if st.User != nil {
			id = st.User.ID
		}
		require.NoError(t, controller.Load(ctx, id))
	})
	require.NoError(t, sessCtx.Init(ctx))

	cfg := &config.Config{}
	cfg.LoadDefaults()

	return &App{
		config:  cfg,
		session: sessCtx,
		tasks:   controller,
		log:     log,
		reader:  bufio.NewReader(strings.NewReader(input)),
	}
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	old := getPassword
	t.Cleanup(func() { getPassword = old })
	getPassword = func(io.Writer) (string, error) { return pw, nil }
}

func TestRegister_SignsUserIn(t *testing.T) {
	a := newTestApp(t, "Alice\na@x.com\n")
	stubPassword(t, "pw")

	require.NoError(t, a.Register(context.Background()))

	require.True(t, a.isLoggedIn())
	st := a.session.State()
	assert.Equal(t, "a@x.com", st.User.Email)
}

func TestRegister_DuplicateEmailIsReportedNotFatal(t *testing.T) {
	a := newTestApp(t, "Alice\na@x.com\nBob\na@x.com\n")
	stubPassword(t, "pw")
	ctx := context.Background()

	require.NoError(t, a.Register(ctx))
	require.NoError(t, a.Logout(ctx))

	// second registration with the same email must not error out of the REPL
	require.NoError(t, a.Register(ctx))
	assert.False(t, a.isLoggedIn())
}

func TestLogin_WrongPasswordIsReportedNotFatal(t *testing.T) {
	a := newTestApp(t, "Alice\na@x.com\na@x.com\n")
	stubPassword(t, "pw")
	ctx := context.Background()

	require.NoError(t, a.Register(ctx))
	require.NoError(t, a.Logout(ctx))

	stubPassword(t, "wrong")
	require.NoError(t, a.Login(ctx))
	assert.False(t, a.isLoggedIn())
}

func TestLogout_UnloadsTasks(t *testing.T) {
	a := newTestApp(t, "Alice\na@x.com\n")
	stubPassword(t, "pw")
	ctx := context.Background()

	require.NoError(t, a.Register(ctx))
	require.NoError(t, a.tasks.Add(ctx, "buy milk"))
	require.Len(t, a.tasks.Tasks(), 1)

	require.NoError(t, a.Logout(ctx))
	assert.Empty(t, a.tasks.Tasks())
}

func TestDelete_ConfirmedRemovesTask(t *testing.T) {
	// terminal input: register prompts, then "y" for the delete confirmation
	a := newTestApp(t, "Alice\na@x.com\ny\n")
	stubPassword(t, "pw")
	ctx := context.Background()

	require.NoError(t, a.Register(ctx))
	require.NoError(t, a.tasks.Add(ctx, "doomed"))

	a.delete(ctx, "1")
	assert.Empty(t, a.tasks.Tasks())
}

func TestDelete_DeclinedKeepsTask(t *testing.T) {
	a := newTestApp(t, "Alice\na@x.com\nn\n")
	stubPassword(t, "pw")
	ctx := context.Background()

	require.NoError(t, a.Register(ctx))
	require.NoError(t, a.tasks.Add(ctx, "survivor"))

	a.delete(ctx, "1")
	require.Len(t, a.tasks.Tasks(), 1)
	assert.Equal(t, tasklist.ConfirmNone, a.tasks.Pending())
}

func TestProfile_PrintsSessionDetails(t *testing.T) {
	a := newTestApp(t, "Alice\na@x.com\n")
	stubPassword(t, "pw")
	ctx := context.Background()

	var buf bytes.Buffer
	a.profile(&buf)
	assert.Equal(t, "Not signed in.\n", buf.String())

	require.NoError(t, a.Register(ctx))
	st := a.session.State()

	buf.Reset()
	a.profile(&buf)
	out := buf.String()
	assert.Contains(t, out, "Name:  Alice")
	assert.Contains(t, out, "Email: a@x.com")
	assert.Contains(t, out, "ID:    "+st.User.ID)
}

// The REPL and the prompts must consume the same reader, so a scripted
// session interleaving commands with prompt answers works end to end.
func TestRoot_CommandsAndPromptsShareOneReader(t *testing.T) {
	input := strings.Join([]string{
		"register",
		"Alice",
		"a@x.com",
		"add buy milk",
		"add", // no inline text, prompts for it
		"walk dog",
		"toggle 1",
		"exit",
	}, "\n") + "\n"
	a := newTestApp(t, input)
	stubPassword(t, "pw")

	a.Root(context.Background())

	require.True(t, a.isLoggedIn())
	list := a.tasks.Tasks()
	require.Len(t, list, 2)
	assert.Equal(t, "buy milk", list[0].Text)
	assert.True(t, list[0].Completed)
	assert.Equal(t, "walk dog", list[1].Text)
}

func TestClear_ConfirmedEmptiesList(t *testing.T) {
	a := newTestApp(t, "Alice\na@x.com\ny\n")
	stubPassword(t, "pw")
	ctx := context.Background()

	require.NoError(t, a.Register(ctx))
	require.NoError(t, a.tasks.Add(ctx, "one"))
	require.NoError(t, a.tasks.Add(ctx, "two"))

	a.clear(ctx)
	assert.Empty(t, a.tasks.Tasks())
}
