package gmail

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gm "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// Client wraps the Gmail API service for read-only inbox access.
type Client struct {
	service *gm.Service
	userID  string
}

// NewClientFromCredentialsFile creates a Gmail client from a credentials JSON file.
// tokenPath is only read for OAuth desktop credentials.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, tokenPath, userID string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, tokenPath, userID)
}

// NewClientFromCredentialsJSON accepts either a service account key (which
// impersonates userID through domain-wide delegation) or OAuth desktop
// credentials paired with a previously saved token.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, tokenPath, userID string) (*Client, error) {
	if userID == "" {
		userID = DefaultUserID
	}

	// Try service account first
	jwtConfig, err := google.JWTConfigFromJSON(credentialsJSON, gm.GmailReadonlyScope)
	if err == nil {
		if userID != DefaultUserID {
			jwtConfig.Subject = userID
		}
		svc, svcErr := gm.NewService(ctx, option.WithTokenSource(jwtConfig.TokenSource(ctx)))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create gmail service: %w", svcErr)
		}
		return &Client{service: svc, userID: userID}, nil
	}

	oauthConfig, cfgErr := google.ConfigFromJSON(credentialsJSON, gm.GmailReadonlyScope)
	if cfgErr != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	tok, err := LoadToken(tokenPath)
	if err != nil {
		return nil, err
	}

	svc, err := gm.NewService(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, tok)))
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail service from OAuth token: %w", err)
	}
	return &Client{service: svc, userID: userID}, nil
}

// NewClientFromHTTP creates a Gmail client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client, userID string) (*Client, error) {
	if userID == "" {
		userID = DefaultUserID
	}
	svc, err := gm.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail service: %w", err)
	}
	return &Client{service: svc, userID: userID}, nil
}

// LoadToken reads an OAuth token saved by SaveToken.
func LoadToken(path string) (*oauth2.Token, error) {
	if path == "" {
		path = "token.json"
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("OAuth desktop credentials need a saved token at %s: %w", path, err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &tok, nil
}

// SaveToken writes an OAuth token with owner-only permissions.
func SaveToken(path string, tok *oauth2.Token) error {
	data, err := json.Marshal(tok)
	if err != nil {
		return fmt.Errorf("failed to marshal token: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// OAuthConfig builds the read-only OAuth config used by the auth flow.
func OAuthConfig(credentialsJSON []byte) (*oauth2.Config, error) {
	cfg, err := google.ConfigFromJSON(credentialsJSON, gm.GmailReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse OAuth credentials: %w", err)
	}
	return cfg, nil
}
