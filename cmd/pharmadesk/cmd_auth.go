package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pharmadesk/pharmadesk/app/models"
	"github.com/pharmadesk/pharmadesk/app/services"
	"github.com/pharmadesk/pharmadesk/pkg/auth"
	"github.com/pharmadesk/pharmadesk/pkg/session"
)

var (
	signinEmail    string
	signinPassword string
)

// pharmadesk signin — exchange credentials for a session.
var signinCmd = &cobra.Command{
	Use:   "signin",
	Short: "Sign in to the inventory API and persist the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		email := signinEmail
		if email == "" {
			email = prompt("Email: ")
		}
		password := signinPassword
		if password == "" {
			password = prompt("Password: ")
		}

		api := services.NewClient(session.Session{})
		user, token, err := services.NewAdminService(api).SignIn(cmd.Context(), models.SignInInput{
			Email:    email,
			Password: password,
		})
		if err != nil {
			return err
		}

		if _, err := sessionStore().Login(user, token); err != nil {
			return err
		}

		fmt.Printf("Signed in as %s <%s>\n", user.Name, user.Email)
		return nil
	},
}

// pharmadesk signout — clear the persisted session.
var signoutCmd = &cobra.Command{
	Use:   "signout",
	Short: "Sign out and clear the persisted session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := sessionStore().Logout(); err != nil {
			return err
		}
		fmt.Println("Signed out.")
		return nil
	},
}

// pharmadesk whoami — show the signed-in admin and token claims.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in admin",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := sessionStore().Require()
		if err != nil {
			return err
		}

		fmt.Printf("Name:   %s\n", sess.User.Name)
		fmt.Printf("Email:  %s\n", sess.User.Email)
		fmt.Printf("ID:     %s\n", sess.User.ID)

		// Claims are display-only; the token is never validated locally.
		if info, err := auth.InspectToken(sess.Token); err == nil {
			if !info.IssuedAt.IsZero() {
				fmt.Printf("Signed: %s\n", info.IssuedAt.Format("02 Jan 2006 15:04"))
			}
			if !info.ExpiresAt.IsZero() {
				fmt.Printf("Token:  expires %s\n", info.ExpiresAt.Format("02 Jan 2006 15:04"))
			}
		}
		return nil
	},
}

var (
	profileName     string
	profileEmail    string
	profilePassword string
)

// pharmadesk profile:update — change name/email/password.
var profileUpdateCmd = &cobra.Command{
	Use:   "profile:update",
	Short: "Update the signed-in admin's profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		api, sess, err := requireAPI()
		if err != nil {
			return err
		}

		in := models.ProfileInput{
			ID:       sess.User.ID,
			Name:     sess.User.Name,
			Email:    sess.User.Email,
			Password: profilePassword,
		}
		if cmd.Flags().Changed("name") {
			in.Name = profileName
		}
		if cmd.Flags().Changed("email") {
			in.Email = profileEmail
		}

		if err := services.NewAdminService(api).UpdateProfile(cmd.Context(), in); err != nil {
			return err
		}

		// Keep the persisted record in step with the server.
		updated := *sess.User
		updated.Name = in.Name
		updated.Email = in.Email
		if err := sessionStore().Save(session.Session{User: &updated, Token: sess.Token}); err != nil {
			return err
		}

		fmt.Println("Profile updated.")
		return nil
	},
}

func prompt(label string) string {
	fmt.Print(label)
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func init() {
	signinCmd.Flags().StringVar(&signinEmail, "email", "", "admin email")
	signinCmd.Flags().StringVar(&signinPassword, "password", "", "admin password")

	profileUpdateCmd.Flags().StringVar(&profileName, "name", "", "new display name")
	profileUpdateCmd.Flags().StringVar(&profileEmail, "email", "", "new email address")
	profileUpdateCmd.Flags().StringVar(&profilePassword, "password", "", "new password (omit to keep)")
}
