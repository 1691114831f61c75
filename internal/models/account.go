// Package models defines the persistent records of TaskKeeper: accounts,
// sessions and tasks.
package models

import "github.com/google/uuid"

// Account is a registered credential record. The email is the identity key
// (case-sensitive, unique across the directory). Accounts are created by
// signup and never mutated or deleted afterwards.
//
// The password is stored in plain form. This is a documented limitation of
// the local-only design.
type Account struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NewAccount builds an Account with a freshly generated id.
func NewAccount(name, email, password string) Account {
	return Account{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Password: password,
	}
}

// Session is the public subset of an Account, persisted while its owner is
// signed in. At most one session exists at a time.
type Session struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SessionFromAccount derives a Session from an account, stripping the password.
func SessionFromAccount(a Account) Session {
	return Session{ID: a.ID, Name: a.Name, Email: a.Email}
}
