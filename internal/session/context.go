// Package session holds the process-wide authentication state: the current
// session, if any, and the operations that change it.
package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/taskkeeper/internal/accounts"
	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/models"
	"github.com/dmitrijs2005/taskkeeper/internal/statex"
)

// State is the published pair consumed by the navigation guard and the
// presentation layer.
type State struct {
	User            *models.Session
	IsAuthenticated bool
}

// Context is the reactive holder of the current session. Operations forward
// to the account service and republish the persisted session on success; a
// service error propagates to the caller without touching published state.
//
// Operations are serialized by an internal mutex. The mutex is released
// before the new state is published, so a subscriber may call back into the
// Context from its callback.
type Context struct {
	mu    sync.Mutex
	svc   accounts.Service
	state *statex.Cell[State]
	log   logging.Logger
}

// NewContext constructs a Context over svc. Call Init before use to restore
// a previously persisted session.
func NewContext(svc accounts.Service, log logging.Logger) *Context {
	return &Context{
		svc:   svc,
		state: statex.NewCell(State{}),
		log:   log,
	}
}

// snapshot re-reads the persisted session. Callers hold mu.
func (c *Context) snapshot(ctx context.Context) (State, error) {
	sess, err := c.svc.Session(ctx)
	if err != nil {
		return State{}, err
	}
	return State{User: sess, IsAuthenticated: sess != nil}, nil
}

// Init publishes the session persisted by a previous run, if any.
func (c *Context) Init(ctx context.Context) error {
	c.mu.Lock()
	st, err := c.snapshot(ctx)
	c.mu.Unlock()
	if err != nil {
		return err
	}
	c.log.Debug(ctx, "session restored", "authenticated", st.IsAuthenticated)
	c.state.Set(st)
	return nil
}

// State returns the currently published state.
func (c *Context) State() State {
	return c.state.Get()
}

// Subscribe registers a listener for state changes and returns an
// unsubscribe function.
func (c *Context) Subscribe(fn func(State)) func() {
	return c.state.Subscribe(fn)
}

// LoginUser authenticates against the account directory and republishes the
// session.
func (c *Context) LoginUser(ctx context.Context, email, password string) error {
	c.mu.Lock()
	if err := c.svc.Login(ctx, email, password); err != nil {
		c.mu.Unlock()
		return err
	}
	st, err := c.snapshot(ctx)
	c.mu.Unlock()
	if err != nil {
		return err
	}
	c.log.Info(ctx, "user logged in", "email", email)
	c.state.Set(st)
	return nil
}

// SignupUser registers candidate and republishes the session; signup signs
// the new account in.
func (c *Context) SignupUser(ctx context.Context, candidate models.Account) error {
	c.mu.Lock()
	if err := c.svc.Signup(ctx, candidate); err != nil {
		c.mu.Unlock()
		return err
	}
	st, err := c.snapshot(ctx)
	c.mu.Unlock()
	if err != nil {
		return err
	}
	c.log.Info(ctx, "user signed up", "email", candidate.Email)
	c.state.Set(st)
	return nil
}

// LogoutUser clears the persisted session unconditionally.
func (c *Context) LogoutUser(ctx context.Context) error {
	c.mu.Lock()
	if err := c.svc.Logout(ctx); err != nil {
		c.mu.Unlock()
		return err
	}
	st, err := c.snapshot(ctx)
	c.mu.Unlock()
	if err != nil {
		return err
	}
	c.log.Info(ctx, "user logged out")
	c.state.Set(st)
	return nil
}
