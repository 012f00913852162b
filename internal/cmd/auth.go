package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/barhopapp/barhop/internal/api"
	"github.com/barhopapp/barhop/internal/errors"
	"github.com/barhopapp/barhop/internal/session"
	"github.com/barhopapp/barhop/internal/tui"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage your barhop session",
	Long: `Manage your barhop session.

The auth command provides subcommands for registering, signing in, signing
out, and checking who is currently signed in.

Credentials are stored in ~/.barhop/credentials.json.

Examples:
  barhop auth login --email you@example.com
  barhop auth register --account-type business
  barhop auth status
  barhop auth logout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in with email and password",
	Long: `Sign in to barhop with your email and password.

When flags are omitted and the terminal is interactive, the missing values
are prompted for. On success the bearer token is saved locally and used by
every later command until you sign out.

Examples:
  barhop auth login
  barhop auth login --email you@example.com --password mypass`,
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		if (email == "" || password == "") && tui.ShouldPrompt() {
			creds, err := tui.PromptCredentials()
			if err != nil {
				return err
			}
			if email == "" {
				email = creds.Email
			}
			if password == "" {
				password = creds.Password
			}
		}
		if email == "" {
			return fmt.Errorf("--email is required")
		}
		if password == "" {
			return fmt.Errorf("--password is required")
		}

		a, err := newApp()
		if err != nil {
			return err
		}

		user, err := a.session.Login(cmd.Context(), email, password)
		if err != nil {
			return err
		}

		fmt.Printf("Signed in as %s (%s account).\n", user.Name, user.AccountType)
		return nil
	},
}

var authRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account and sign in",
	Long: `Create a new barhop account and sign in.

When flags are omitted and the terminal is interactive, a registration form
is shown. You must be at least 18 years old to register; the birth date is
checked before anything is sent to the server.

Examples:
  barhop auth register
  barhop auth register --account-type business
  barhop auth register --name "Sam" --email sam@example.com \
    --phone "+1 555 0100" --birth-date 1998-04-12 --password mypass`,
	RunE: func(cmd *cobra.Command, args []string) error {
		accountType, _ := cmd.Flags().GetString("account-type")

		profile, err := registrationProfile(cmd, api.AccountType(accountType))
		if err != nil {
			return err
		}

		a, err := newApp()
		if err != nil {
			return err
		}

		user, err := a.session.Register(cmd.Context(), profile)
		if err != nil {
			return err
		}

		fmt.Printf("Welcome to barhop, %s! You are signed in with a %s account.\n", user.Name, user.AccountType)
		return nil
	},
}

// registrationProfile builds the profile from flags, falling back to an
// interactive form when no identifying flags were given.
func registrationProfile(cmd *cobra.Command, accountType api.AccountType) (session.Profile, error) {
	name, _ := cmd.Flags().GetString("name")
	email, _ := cmd.Flags().GetString("email")

	if name == "" && email == "" && tui.ShouldPrompt() {
		return tui.PromptRegistration(accountType)
	}

	phone, _ := cmd.Flags().GetString("phone")
	birthDateStr, _ := cmd.Flags().GetString("birth-date")
	password, _ := cmd.Flags().GetString("password")
	photoURL, _ := cmd.Flags().GetString("photo-url")

	var birthDate time.Time
	if birthDateStr != "" {
		parsed, err := time.Parse("2006-01-02", birthDateStr)
		if err != nil {
			return session.Profile{}, fmt.Errorf("invalid --birth-date %q, expected YYYY-MM-DD", birthDateStr)
		}
		birthDate = parsed
	}

	if accountType == "" {
		accountType = api.AccountTypeUser
	}

	return session.Profile{
		Name:        name,
		Email:       email,
		Phone:       phone,
		BirthDate:   birthDate,
		Password:    password,
		AccountType: accountType,
		PhotoURL:    photoURL,
	}, nil
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and remove stored credentials",
	Long: `Sign out and remove the locally stored credentials.

Signing out while already signed out is not an error. The server is
notified best-effort; the local credential is removed either way.

Examples:
  barhop auth logout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newResolvedApp(cmd.Context())
		if err != nil {
			return err
		}

		if a.session.Status() != session.StatusAuthenticated {
			fmt.Println("Not signed in.")
			return nil
		}

		email, _ := a.store.GetEmail(cmd.Context())
		if err := a.session.Logout(cmd.Context()); err != nil {
			return err
		}

		if email != "" {
			fmt.Printf("Signed out %s.\n", email)
		} else {
			fmt.Println("Signed out.")
		}
		return nil
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show who is currently signed in",
	Long: `Show the current session status.

Examples:
  barhop auth status`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newResolvedApp(cmd.Context())
		if err != nil {
			if errors.IsCode(err, errors.ErrCodeNetwork) {
				fmt.Println("Could not reach the server to verify the stored session.")
			}
			return err
		}

		user := a.session.User()
		if user == nil {
			fmt.Println("Not signed in.")
			fmt.Println()
			fmt.Println("Use 'barhop auth login' to sign in.")
			return nil
		}

		fmt.Printf("Signed in as: %s <%s>\n", user.Name, user.Email)
		fmt.Printf("Account type: %s\n", user.AccountType)
		fmt.Printf("Credentials:  %s\n", a.store.Path())
		return nil
	},
}

func init() {
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authRegisterCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authStatusCmd)

	authLoginCmd.Flags().String("email", "", "Email address")
	authLoginCmd.Flags().String("password", "", "Password")

	authRegisterCmd.Flags().String("name", "", "Full name")
	authRegisterCmd.Flags().String("email", "", "Email address")
	authRegisterCmd.Flags().String("phone", "", "Phone number")
	authRegisterCmd.Flags().String("birth-date", "", "Birth date (YYYY-MM-DD)")
	authRegisterCmd.Flags().String("password", "", "Password")
	authRegisterCmd.Flags().String("account-type", "user", "Account type (user or business)")
	authRegisterCmd.Flags().String("photo-url", "", "Profile photo URL")

	rootCmd.AddCommand(authCmd)
}
