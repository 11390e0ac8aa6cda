package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/Sky-Wdh/Snuggle/internal/apperr"
	"github.com/Sky-Wdh/Snuggle/internal/config"
)

// UserMetadata is the profile payload the Kakao login flow leaves on the
// auth user. Either avatar_url/name or picture/full_name is populated
// depending on the provider version.
type UserMetadata struct {
	AvatarURL string `json:"avatar_url"`
	Picture   string `json:"picture"`
	Name      string `json:"name"`
	FullName  string `json:"full_name"`
}

type User struct {
	ID           string       `json:"id"`
	Email        string       `json:"email"`
	UserMetadata UserMetadata `json:"user_metadata"`
}

// ImageURL picks the best available profile image from the metadata.
func (u *User) ImageURL() string {
	if u.UserMetadata.AvatarURL != "" {
		return u.UserMetadata.AvatarURL
	}
	return u.UserMetadata.Picture
}

// Nickname picks the best available display name from the metadata.
func (u *User) Nickname() string {
	if u.UserMetadata.Name != "" {
		return u.UserMetadata.Name
	}
	return u.UserMetadata.FullName
}

// Provider resolves a bearer token to a user. The token is forwarded
// verbatim; resolution is entirely the auth server's business.
type Provider interface {
	GetUser(ctx context.Context, token string) (*User, error)
}

type Client struct {
	baseURL string
	anonKey string
	http    *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(cfg.Identity.BaseURL, "/"),
		anonKey: cfg.Identity.AnonKey,
		http:    &http.Client{Timeout: cfg.Identity.Timeout},
	}
}

// GetUser asks the auth server who the token belongs to. Any non-200
// answer means the caller is anonymous.
func (c *Client) GetUser(ctx context.Context, token string) (*User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build auth request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", c.anonKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("auth server request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperr.ErrUnauthenticated
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode auth response: %w", err)
	}

	if user.ID == "" {
		return nil, apperr.ErrUnauthenticated
	}

	return &user, nil
}
