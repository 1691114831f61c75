// Package accounts owns the durable account directory and the persisted
// session record. It is the only component that interprets the accounts key;
// the session record is persisted here but interpreted by the session context.
package accounts

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/kvstore"
	"github.com/dmitrijs2005/taskkeeper/internal/models"
)

const (
	accountsKey = "accounts"
	sessionKey  = "session"
)

// Service exposes signup, login, logout and session lookup over the local
// store. Accounts are never mutated or deleted after creation.
type Service interface {
	Signup(ctx context.Context, candidate models.Account) error
	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error
	Session(ctx context.Context) (*models.Session, error)
}

type service struct {
	store kvstore.Store
}

// NewService constructs a Service bound to the given store.
func NewService(store kvstore.Store) Service {
	return &service{store: store}
}

// accounts reads the full directory. An absent key is an empty directory.
func (s *service) accounts(ctx context.Context) ([]models.Account, error) {
	list, _, err := kvstore.GetJSON[[]models.Account](ctx, s.store, accountsKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read accounts: %w", err)
	}
	return list, nil
}

func (s *service) saveSession(ctx context.Context, a models.Account) error {
	if err := kvstore.SetJSON(ctx, s.store, sessionKey, models.SessionFromAccount(a)); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Signup appends candidate to the directory and signs it in. Fails with
// common.ErrDuplicateAccount when the email is already registered; in that
// case nothing is persisted.
func (s *service) Signup(ctx context.Context, candidate models.Account) error {
	list, err := s.accounts(ctx)
	if err != nil {
		return err
	}
	for _, a := range list {
		if a.Email == candidate.Email {
			return common.ErrDuplicateAccount
		}
	}
	list = append(list, candidate)
	if err := kvstore.SetJSON(ctx, s.store, accountsKey, list); err != nil {
		return fmt.Errorf("failed to save accounts: %w", err)
	}
	return s.saveSession(ctx, candidate)
}

// Login matches email and password exactly against the directory and signs
// in the first match. Fails with common.ErrInvalidCredentials otherwise.
func (s *service) Login(ctx context.Context, email, password string) error {
	list, err := s.accounts(ctx)
	if err != nil {
		return err
	}
	for _, a := range list {
		if a.Email == email && a.Password == password {
			return s.saveSession(ctx, a)
		}
	}
	return common.ErrInvalidCredentials
}

// Logout removes the persisted session. Calling it when nobody is signed in
// is not an error.
func (s *service) Logout(ctx context.Context) error {
	if err := s.store.Delete(ctx, sessionKey); err != nil {
		return fmt.Errorf("failed to remove session: %w", err)
	}
	return nil
}

// Session returns the persisted session, or nil when nobody is signed in.
func (s *service) Session(ctx context.Context) (*models.Session, error) {
	sess, ok, err := kvstore.GetJSON[models.Session](ctx, s.store, sessionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return &sess, nil
}
