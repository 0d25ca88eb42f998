package ports

import "context"

// PasswordGrant is one token request as received on /oauth/token.
type PasswordGrant struct {
	GrantType    string
	Username     string
	Password     string
	ClientID     string
	ClientSecret string
}

// TokenResult is the issued access token plus the enhancer claims that are
// echoed in the response body alongside the token.
type TokenResult struct {
	AccessToken   string
	TokenType     string
	ExpiresIn     int64
	Scope         string
	UserFirstName string
	UserID        int64
}

// AuthService issues access tokens for the password grant.
type AuthService interface {
	IssueToken(ctx context.Context, grant PasswordGrant) (*TokenResult, error)
}
