package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/investprofile/internal/client/models"
	"github.com/dmitrijs2005/investprofile/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for name, email and password and creates a patient
// account. A successful registration also signs the new account in.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	session, err := a.auth.Register(ctx, name, email, string(password))
	if err != nil {
		if errors.Is(err, common.ErrEmailAlreadyInUse) {
			return errors.New("this email is already registered")
		}
		return err
	}

	a.setSession(session)
	return nil
}

// Login prompts for credentials and signs in. Wrong credentials are reported
// without distinguishing an unknown email from a wrong password.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	session, err := a.auth.SignIn(ctx, email, string(password))
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			return errors.New("invalid email or password")
		}
		return err
	}

	a.setSession(session)
	return nil
}

// Logout drops the persisted session. Answers and the selected portfolio
// stay on the device.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.SignOut(ctx); err != nil {
		return err
	}
	a.session = nil
	a.suggestions = nil
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	u := a.auth.StoredUser(ctx)
	if u == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s>\nid: %s\nrole: %s\n", u.Name, u.Email, u.ID, u.Role)
	if u.Image != "" {
		fmt.Fprintf(a.out, "avatar: %s\n", u.Image)
	}
	return nil
}

func (a *App) setSession(s *models.Session) {
	a.session = s
	a.suggestions = nil
	fmt.Fprintf(a.out, "Welcome, %s!\n", s.User.Name)
}
