package credentials

import (
	"context"
	"strings"
	"time"

	"github.com/kbukum/wordcab-go/config"
	"github.com/kbukum/wordcab-go/errors"
	"github.com/kbukum/wordcab-go/httpclient"
)

// LoginOptions configures the account check performed on login.
type LoginOptions struct {
	// BaseURL overrides the API endpoint used to verify the token.
	BaseURL string
	// Timeout bounds the verification request. Defaults to 30s.
	Timeout time.Duration
}

// Login verifies that the token belongs to the given account email and, if
// so, persists the pair in the store. The check hits the account endpoint
// with the candidate token.
func Login(ctx context.Context, store *Store, email, token string, opts LoginOptions) error {
	if email == "" {
		return errors.InvalidInput("email", "must not be empty")
	}
	if token == "" {
		return errors.InvalidInput("token", "must not be empty")
	}

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = config.DefaultBaseURL
	}
	client, err := httpclient.New(httpclient.Config{
		BaseURL: baseURL,
		Timeout: opts.Timeout,
		Auth:    httpclient.BearerAuth(token),
	})
	if err != nil {
		return err
	}
	defer client.Close()

	type accountInfo struct {
		AccountEmail string `json:"account_email"`
	}
	resp, err := httpclient.Get[accountInfo](client, ctx, "/me")
	if err != nil {
		return err
	}
	if !strings.EqualFold(resp.Data.AccountEmail, email) {
		return errors.Unauthorized("token does not belong to " + email).
			WithDetail("account_email", resp.Data.AccountEmail)
	}
	return store.Save(email, token)
}

// Logout removes stored credentials.
func Logout(store *Store) error {
	return store.Remove()
}
