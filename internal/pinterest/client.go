// Package pinterest wraps the Pinterest v5 OAuth flow and the small slice of
// the REST API the frontend needs.
package pinterest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"stylevault/internal/domain"
)

const (
	authURL  = "https://www.pinterest.com/oauth/"
	tokenURL = "https://api.pinterest.com/v5/oauth/token"
	apiBase  = "https://api.pinterest.com/v5"
)

// Scopes requested during the authorization-code flow.
var scopes = []string{"boards:read", "pins:read", "user_accounts:read"}

// APIError is returned when Pinterest responds with a non-200 status. The
// status code is forwarded to the caller unchanged.
type APIError struct {
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("pinterest api returned status %d", e.StatusCode)
}

// Client is a Pinterest OAuth2 + REST client.
type Client struct {
	oauth   *oauth2.Config
	baseURL string
	timeout time.Duration
}

// NewClient creates a Pinterest client. Empty credentials produce an
// unconfigured client; callers must check Configured before starting a flow.
func NewClient(appID, appSecret, redirectURL string) *Client {
	return &Client{
		oauth: &oauth2.Config{
			ClientID:     appID,
			ClientSecret: appSecret,
			RedirectURL:  redirectURL,
			Scopes:       scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:  authURL,
				TokenURL: tokenURL,
				// Pinterest wants client credentials via HTTP basic auth.
				AuthStyle: oauth2.AuthStyleInHeader,
			},
		},
		baseURL: apiBase,
		timeout: 15 * time.Second,
	}
}

// Configured reports whether app credentials are present.
func (c *Client) Configured() bool {
	return c.oauth.ClientID != "" && c.oauth.ClientSecret != ""
}

// AuthURL builds the consent-screen URL for the given state. A non-empty
// redirectURI overrides the configured default so the frontend can supply
// its own callback route.
func (c *Client) AuthURL(state, redirectURI string) string {
	var opts []oauth2.AuthCodeOption
	if redirectURI != "" {
		opts = append(opts, oauth2.SetAuthURLParam("redirect_uri", redirectURI))
	}
	return c.oauth.AuthCodeURL(state, opts...)
}

// Exchange swaps an authorization code for a token set.
func (c *Client) Exchange(ctx context.Context, code, redirectURI string) (*domain.PinterestToken, error) {
	var opts []oauth2.AuthCodeOption
	if redirectURI != "" {
		opts = append(opts, oauth2.SetAuthURLParam("redirect_uri", redirectURI))
	}

	token, err := c.oauth.Exchange(ctx, code, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	return &domain.PinterestToken{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    token.Expiry.UnixMilli(),
	}, nil
}

// Boards lists the connected account's boards.
func (c *Client) Boards(ctx context.Context, token *domain.PinterestToken) ([]domain.PinterestBoard, error) {
	var page struct {
		Items []domain.PinterestBoard `json:"items"`
	}
	if err := c.get(ctx, token, "/boards", &page); err != nil {
		return nil, err
	}
	return page.Items, nil
}

// Pins lists the pins on one board.
func (c *Client) Pins(ctx context.Context, token *domain.PinterestToken, boardID string) ([]domain.PinterestPin, error) {
	var page struct {
		Items []domain.PinterestPin `json:"items"`
	}
	if err := c.get(ctx, token, "/boards/"+boardID+"/pins", &page); err != nil {
		return nil, err
	}
	return page.Items, nil
}

func (c *Client) get(ctx context.Context, token *domain.PinterestToken, path string, dest interface{}) error {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token.AccessToken})
	httpClient := oauth2.NewClient(ctx, src)
	httpClient.Timeout = c.timeout

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build pinterest request: %w", err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("pinterest request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("failed to decode pinterest response: %w", err)
	}
	return nil
}
