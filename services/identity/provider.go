package identity

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"Playhub/utils/logger"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotInitialized     = errors.New("identity provider not initialized")
)

// Tokens is a token response of the identity provider
type Tokens struct {
	AccessToken      string    `json:"access_token"`
	RefreshToken     string    `json:"refresh_token"`
	IDToken          string    `json:"id_token,omitempty"`
	ExpiresIn        int       `json:"expires_in"`
	RefreshExpiresIn int       `json:"refresh_expires_in"`
	ObtainedAt       time.Time `json:"-"`
}

func (t Tokens) ExpiresAt() time.Time {
	return t.ObtainedAt.Add(time.Duration(t.ExpiresIn) * time.Second)
}

// Provider is the external identity provider
type Provider interface {
	Init(ctx context.Context) error
	Login(ctx context.Context, username, password string) (Tokens, error)
	Refresh(ctx context.Context, refreshToken string) (Tokens, error)
	Logout(ctx context.Context, refreshToken string) error
	RegisterURL() string
}

// Keycloak talks OpenID Connect to a Keycloak realm
type Keycloak struct {
	baseURL     string
	realm       string
	clientID    string
	redirectURL string
	http        *http.Client

	oauth      *oauth2.Config
	endSession string
}

func NewKeycloak(baseURL, realm, clientID, redirectURL string, httpClient *http.Client) *Keycloak {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Keycloak{
		baseURL:     strings.TrimRight(baseURL, "/"),
		realm:       realm,
		clientID:    clientID,
		redirectURL: redirectURL,
		http:        httpClient,
	}
}

func (k *Keycloak) realmURL() string {
	return k.baseURL + "/realms/" + url.PathEscape(k.realm)
}

// clientContext makes oidc and oauth2 use the provider's http client
func (k *Keycloak) clientContext(ctx context.Context) context.Context {
	return oidc.ClientContext(ctx, k.http)
}

// Init reads the realm discovery document
func (k *Keycloak) Init(ctx context.Context) error {
	provider, err := oidc.NewProvider(k.clientContext(ctx), k.realmURL())
	if err != nil {
		return fmt.Errorf("fetching discovery document: %w", err)
	}
	var extra struct {
		Issuer             string `json:"issuer"`
		EndSessionEndpoint string `json:"end_session_endpoint"`
	}
	if err := provider.Claims(&extra); err != nil {
		return fmt.Errorf("decoding discovery document: %w", err)
	}

	endpoint := provider.Endpoint()
	if endpoint.TokenURL == "" {
		return errors.New("discovery document has no token endpoint")
	}
	// Public client: client_id goes in the form, there is no secret
	endpoint.AuthStyle = oauth2.AuthStyleInParams

	k.oauth = &oauth2.Config{
		ClientID:    k.clientID,
		Endpoint:    endpoint,
		RedirectURL: k.redirectURL,
		Scopes:      []string{oidc.ScopeOpenID},
	}
	k.endSession = extra.EndSessionEndpoint
	logger.Infof("[AUTH] identity provider ready (issuer %s)", extra.Issuer)
	return nil
}

func (k *Keycloak) Login(ctx context.Context, username, password string) (Tokens, error) {
	if k.oauth == nil {
		return Tokens{}, ErrNotInitialized
	}
	tok, err := k.oauth.PasswordCredentialsToken(k.clientContext(ctx), username, password)
	return toTokens(tok, err)
}

func (k *Keycloak) Refresh(ctx context.Context, refreshToken string) (Tokens, error) {
	if k.oauth == nil {
		return Tokens{}, ErrNotInitialized
	}
	// A token with no access token is never valid, so the source refreshes
	src := k.oauth.TokenSource(k.clientContext(ctx), &oauth2.Token{RefreshToken: refreshToken})
	tok, err := src.Token()
	return toTokens(tok, err)
}

func toTokens(tok *oauth2.Token, err error) (Tokens, error) {
	if err != nil {
		var re *oauth2.RetrieveError
		if errors.As(err, &re) && re.Response != nil {
			status := re.Response.StatusCode
			if status == http.StatusUnauthorized || status == http.StatusBadRequest {
				return Tokens{}, fmt.Errorf("%w: %s", ErrInvalidCredentials, re.ErrorCode)
			}
			return Tokens{}, fmt.Errorf("token endpoint: HTTP %d %s", status, re.ErrorCode)
		}
		return Tokens{}, fmt.Errorf("token request: %w", err)
	}

	now := time.Now()
	tokens := Tokens{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		ObtainedAt:   now,
	}
	if id, ok := tok.Extra("id_token").(string); ok {
		tokens.IDToken = id
	}
	if !tok.Expiry.IsZero() {
		tokens.ExpiresIn = int(tok.Expiry.Sub(now).Round(time.Second) / time.Second)
	}
	if v, ok := tok.Extra("refresh_expires_in").(float64); ok {
		tokens.RefreshExpiresIn = int(v)
	}
	return tokens, nil
}

// Logout ends the provider session bound to refreshToken
func (k *Keycloak) Logout(ctx context.Context, refreshToken string) error {
	if k.oauth == nil {
		return ErrNotInitialized
	}
	if k.endSession == "" {
		return nil
	}
	_, status, err := k.postForm(ctx, k.endSession, url.Values{
		"client_id":     {k.clientID},
		"refresh_token": {refreshToken},
	})
	if err != nil {
		return err
	}
	if status >= 300 {
		return fmt.Errorf("end session endpoint: HTTP %d", status)
	}
	return nil
}

// RegisterURL is the provider's self-registration page
func (k *Keycloak) RegisterURL() string {
	q := url.Values{
		"client_id":     {k.clientID},
		"response_type": {"code"},
		"scope":         {"openid"},
		"redirect_uri":  {k.redirectURL},
	}
	return k.realmURL() + "/protocol/openid-connect/registrations?" + q.Encode()
}

func (k *Keycloak) postForm(ctx context.Context, endpoint string, form url.Values) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := k.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("POST %s: %w", endpoint, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}
	return data, resp.StatusCode, nil
}
