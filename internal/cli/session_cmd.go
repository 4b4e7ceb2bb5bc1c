package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/folio/internal/cli/formatter"
	"github.com/alexanderramin/folio/internal/domain"
)

var errLoginFields = errors.New("--name and --email are required")

func newLoginCmd(app *App) *cobra.Command {
	var name, email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in, creating a seeded portfolio on first use",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" || email == "" {
				if !app.interactive() {
					return errLoginFields
				}
				if err := wizardLogin(&name, &email).Run(); err != nil {
					return err
				}
			}

			doc, created, err := app.Sessions.Login(cmd.Context(), name, email)
			if err != nil {
				return err
			}
			if created {
				fmt.Fprintf(out(cmd), "Created portfolio for %s with sample content.\n", doc.User.Username)
				return nil
			}
			fmt.Fprintf(out(cmd), "Welcome back, %s.\n", doc.User.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")

	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Log out and delete the stored portfolio",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && app.interactive() {
				confirmed := false
				if err := wizardConfirm("Logging out deletes your portfolio. Continue?", &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(out(cmd), "Cancelled.")
					return nil
				}
			}
			if err := app.Sessions.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(out(cmd), "Logged out.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")

	return cmd
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, ok := app.Documents.Current(cmd.Context())
			if !ok {
				fmt.Fprintln(out(cmd), "Not logged in.")
				return nil
			}
			u := doc.User
			fmt.Fprintf(out(cmd), "%s <%s>\n%s\n", formatter.Bold(u.Username), u.Email,
				formatter.Dim(fmt.Sprintf("%s · joined %s", u.ID, formatter.HumanTimestamp(u.CreatedAt, app.now()))))
			return nil
		},
	}
}

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the profile",
	}
	cmd.AddCommand(newProfileSetCmd(app))
	return cmd
}

func newProfileSetCmd(app *App) *cobra.Command {
	var username, email string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change the username or email",
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch domain.ProfilePatch
			if cmd.Flags().Changed("username") {
				patch.Username = &username
			}
			if cmd.Flags().Changed("email") {
				patch.Email = &email
			}
			if patch.Username == nil && patch.Email == nil {
				return errors.New("nothing to change; pass --username or --email")
			}
			p, err := app.Settings.UpdateProfile(cmd.Context(), patch)
			if err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "Profile updated: %s <%s>\n", p.Username, p.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "New display name")
	cmd.Flags().StringVar(&email, "email", "", "New email address")

	return cmd
}
