package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tableflip.dev/studyplan/pkg/auth"
	"tableflip.dev/studyplan/pkg/commands/options"
	"tableflip.dev/studyplan/pkg/runner/account"
)

func addSignup(topLevel *cobra.Command) {
	ao := &options.AccountOptions{}

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and log in",
		Example: `
studyplan signup --email ada@example.com --first-name Ada --last-name Lovelace --study-level undergraduate
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, mgr, err := loadManager()
			if err != nil {
				return output.HandleError(err)
			}

			password, err := resolvePassword(ao.Password, true)
			if err != nil {
				return output.HandleError(err)
			}

			r := account.Signup{
				Manager: mgr,
				Request: auth.SignupRequest{
					FirstName:  ao.FirstName,
					LastName:   ao.LastName,
					Email:      ao.Email,
					Password:   password,
					StudyLevel: ao.StudyLevel,
				},
			}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	options.AddSignupArgs(cmd, ao)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addLogin(topLevel *cobra.Command) {
	ao := &options.AccountOptions{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the planner",
		Example: `
studyplan login --email ada@example.com --remember
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, mgr, err := loadManager()
			if err != nil {
				return output.HandleError(err)
			}

			password, err := resolvePassword(ao.Password, false)
			if err != nil {
				return output.HandleError(err)
			}

			r := account.Login{
				Manager:  mgr,
				Email:    ao.Email,
				Password: password,
				Remember: ao.Remember,
			}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	options.AddLoginArgs(cmd, ao)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addLogout(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Clear the current session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, mgr, err := loadManager()
			if err != nil {
				return output.HandleError(err)
			}

			r := account.Logout{Manager: mgr}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}

func addWhoami(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, mgr, err := loadManager()
			if err != nil {
				return output.HandleError(err)
			}

			r := account.Whoami{Manager: mgr}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}

// resolvePassword prompts on the terminal when the flag was omitted, so the
// password stays out of shell history. Signup flows hint the strength of the
// entered password.
func resolvePassword(flagValue string, showStrength bool) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", errors.New("no password given and stdin is not a terminal")
	}

	fmt.Print("Password: ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println("")
	if err != nil {
		return "", err
	}
	password := string(raw)
	if showStrength {
		fmt.Printf("Password strength: %s\n", auth.PasswordStrength(password))
	}
	return password, nil
}
