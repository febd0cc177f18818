package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	authName     string
	authEmail    string
	authPassword string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and sign in",
	RunE:  runRegister,
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the backend",
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and discard the stored session",
	RunE:  runLogout,
}

func init() {
	for _, cmd := range []*cobra.Command{registerCmd, loginCmd} {
		cmd.Flags().StringVar(&authEmail, "email", "", "Account email")
		cmd.Flags().StringVar(&authPassword, "password", "", "Account password (prompted when omitted)")
	}
	registerCmd.Flags().StringVar(&authName, "name", "", "Display name")

	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}

func runRegister(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	client, _, err := newClient(cfg, newLogger(cfg))
	if err != nil {
		return err
	}

	name, err := promptIfEmpty(authName, "Name: ")
	if err != nil {
		return err
	}
	email, err := promptIfEmpty(authEmail, "Email: ")
	if err != nil {
		return err
	}
	password, err := promptIfEmpty(authPassword, "Password: ")
	if err != nil {
		return err
	}

	s, err := client.Register(context.Background(), name, email, password)
	if err != nil {
		return err
	}
	fmt.Printf("Registered and signed in as %s <%s>\n", s.User.Name, s.User.Email)
	return nil
}

func runLogin(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	client, _, err := newClient(cfg, newLogger(cfg))
	if err != nil {
		return err
	}

	email, err := promptIfEmpty(authEmail, "Email: ")
	if err != nil {
		return err
	}
	password, err := promptIfEmpty(authPassword, "Password: ")
	if err != nil {
		return err
	}

	s, err := client.Login(context.Background(), email, password)
	if err != nil {
		return err
	}
	fmt.Printf("Signed in as %s <%s>\n", s.User.Name, s.User.Email)
	return nil
}

func runLogout(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	client, _, err := newClient(cfg, newLogger(cfg))
	if err != nil {
		return err
	}
	if err := client.Logout(); err != nil {
		return err
	}
	fmt.Println("Signed out.")
	return nil
}

// promptIfEmpty reads a value from stdin when the flag was not set.
func promptIfEmpty(value, prompt string) (string, error) {
	if value != "" {
		return value, nil
	}
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
