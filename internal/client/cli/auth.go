package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a name, email and password and creates a new account.
// A successful signup signs the user in immediately.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	err = a.session.SignupUser(ctx, models.NewAccount(name, email, password))
	if errors.Is(err, common.ErrDuplicateAccount) {
		fmt.Println("An account with this email already exists.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Println("Success!")
	return nil
}

// Login prompts for credentials and tries to authenticate.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	err = a.session.LoginUser(ctx, email, password)
	if errors.Is(err, common.ErrInvalidCredentials) {
		fmt.Println("Invalid email or password.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Println("Success!")
	return nil
}

// Logout clears the persisted session; the controller unloads via the
// session subscription.
func (a *App) Logout(ctx context.Context) error {
	return a.session.LogoutUser(ctx)
}

// profile prints the signed-in user's name, email and account id.
func (a *App) profile(w io.Writer) {
	st := a.session.State()
	if st.User == nil {
		fmt.Fprintln(w, "Not signed in.")
		return
	}
	fmt.Fprintf(w, "Name:  %s\nEmail: %s\nID:    %s\n", st.User.Name, st.User.Email, st.User.ID)
}
