package options

import (
	"github.com/spf13/cobra"
)

// AccountOptions captures login and signup form fields. Passwords left empty
// are prompted for on the terminal instead.
type AccountOptions struct {
	Email      string
	Password   string
	FirstName  string
	LastName   string
	StudyLevel string
	Remember   bool
}

// AddLoginArgs wires login flags on the provided command.
func AddLoginArgs(cmd *cobra.Command, o *AccountOptions) {
	cmd.Flags().StringVarP(&o.Email, "email", "e", "",
		"Account email.")
	cmd.Flags().StringVar(&o.Password, "password", "",
		"Account password. Prompted when omitted.")
	cmd.Flags().BoolVar(&o.Remember, "remember", false,
		"Keep the session until logout instead of expiring after a day.")
}

// AddSignupArgs wires signup flags on the provided command.
func AddSignupArgs(cmd *cobra.Command, o *AccountOptions) {
	cmd.Flags().StringVarP(&o.Email, "email", "e", "",
		"Account email.")
	cmd.Flags().StringVar(&o.Password, "password", "",
		"Account password. Prompted when omitted.")
	cmd.Flags().StringVar(&o.FirstName, "first-name", "",
		"First name.")
	cmd.Flags().StringVar(&o.LastName, "last-name", "",
		"Last name.")
	cmd.Flags().StringVar(&o.StudyLevel, "study-level", "",
		"Study level, e.g. high-school, undergraduate, graduate.")
}
