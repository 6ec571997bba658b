// Package account provides the signup, login, logout, and whoami runners.
package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/studyplan/pkg/auth"
	"tableflip.dev/studyplan/pkg/quote"
)

// Signup creates an account and logs it in.
type Signup struct {
	Manager *auth.Manager
	Request auth.SignupRequest
}

func (n *Signup) Do(ctx context.Context) error {
	if n.Manager == nil {
		return errors.New("can not sign up, no account manager")
	}

	id, err := n.Manager.Signup(n.Request)
	if err != nil {
		return err
	}

	b := color.New(color.Bold)
	_, _ = b.Printf("Account created. Welcome, %s!\n", id.FullName())
	return nil
}

// Login establishes the current session.
type Login struct {
	Manager  *auth.Manager
	Email    string
	Password string
	Remember bool
}

func (n *Login) Do(ctx context.Context) error {
	if n.Manager == nil {
		return errors.New("can not log in, no account manager")
	}

	id, err := n.Manager.Login(n.Email, n.Password, n.Remember)
	if err != nil {
		return err
	}

	b := color.New(color.Bold)
	_, _ = b.Printf("%s Welcome back, %s!\n", quote.Greeting(time.Now()), id.FirstName)
	return nil
}

// Logout clears the current session.
type Logout struct {
	Manager *auth.Manager
}

func (n *Logout) Do(ctx context.Context) error {
	if n.Manager == nil {
		return errors.New("can not log out, no account manager")
	}
	if err := n.Manager.Logout(); err != nil {
		return err
	}
	fmt.Println("logged out")
	return nil
}

// Whoami prints the current identity's profile.
type Whoami struct {
	Manager *auth.Manager
}

func (n *Whoami) Do(ctx context.Context) error {
	if n.Manager == nil {
		return errors.New("can not resolve identity, no account manager")
	}

	id, ok, err := n.Manager.Current()
	if err != nil {
		return err
	}
	if !ok {
		return auth.ErrNotLoggedIn
	}

	b := color.New(color.Bold)
	_, _ = b.Println(id.FullName())
	fmt.Printf("Email: %s\n", id.Email)
	if id.StudyLevel != "" {
		fmt.Printf("Study level: %s\n", id.StudyLevel)
	}
	fmt.Printf("Logged in: %s\n", id.LoginTime.Local().Format("Jan 2, 2006 3:04 PM"))
	return nil
}
