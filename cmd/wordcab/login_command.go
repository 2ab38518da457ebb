package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kbukum/wordcab-go/credentials"
)

func newLoginCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Store API credentials for later commands",
		Long: "Prompts for the account email and API token, verifies the pair " +
			"against the API, and stores it under ~/.wordcab.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			email, token, err := promptCredentials(cmd)
			if err != nil {
				return err
			}

			store, err := credentials.NewStore()
			if err != nil {
				return err
			}
			baseURL, err := flags.resolveBaseURL()
			if err != nil {
				return err
			}
			timeout, err := flags.resolveTimeout()
			if err != nil {
				return err
			}
			if err := credentials.Login(cmd.Context(), store, email, token, credentials.LoginOptions{
				BaseURL: baseURL,
				Timeout: timeout,
			}); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", email)
			return nil
		},
	}
}

func newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove stored API credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := credentials.NewStore()
			if err != nil {
				return err
			}
			if err := credentials.Logout(store); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

// promptCredentials reads the email from stdin and the token without echo
// when stdin is a terminal.
func promptCredentials(cmd *cobra.Command) (email, token string, err error) {
	reader := bufio.NewReader(cmd.InOrStdin())

	fmt.Fprint(cmd.OutOrStdout(), "Account email: ")
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", "", fmt.Errorf("read email: %w", err)
	}
	email = strings.TrimSpace(line)

	fmt.Fprint(cmd.OutOrStdout(), "API token: ")
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(cmd.OutOrStdout())
		if err != nil {
			return "", "", fmt.Errorf("read token: %w", err)
		}
		token = strings.TrimSpace(string(raw))
	} else {
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", "", fmt.Errorf("read token: %w", err)
		}
		token = strings.TrimSpace(line)
	}

	return email, token, nil
}
