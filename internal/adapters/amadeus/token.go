package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"stayfinder/internal/domain"
)

const (
	// refresh this long before the upstream-reported expiry
	tokenExpiryMargin = 60 * time.Second
	// upstream default lifetime when expires_in is missing
	defaultTokenLifetime = 1799 * time.Second
)

// TokenSource caches the OAuth2 client-credentials token for the upstream
// API. It is shared mutable state: Token may be called concurrently, and the
// client calls Invalidate when the upstream rejects the credential so the
// next call forces a refresh.
type TokenSource struct {
	base   string
	key    string
	secret string
	hc     *http.Client

	mu     sync.Mutex
	token  string
	expiry time.Time
}

func NewTokenSource(base, key, secret string) *TokenSource {
	return &TokenSource{
		base:   base,
		key:    key,
		secret: secret,
		hc:     &http.Client{Timeout: 20 * time.Second},
	}
}

// Token returns the cached credential while it is more than the safety margin
// from expiry, refreshing it otherwise.
func (t *TokenSource) Token(ctx context.Context) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.token != "" && time.Now().Before(t.expiry.Add(-tokenExpiryMargin)) {
		return t.token, nil
	}
	if t.key == "" || t.secret == "" {
		return "", domain.ErrNotConfigured
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", t.key)
	form.Set("client_secret", t.secret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		t.base+"/v1/security/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.hc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusUnauthorized {
			return "", domain.ErrUnauthorized
		}
		return "", fmt.Errorf("token request failed (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("parse token response: %w", err)
	}
	lifetime := defaultTokenLifetime
	if out.ExpiresIn > 0 {
		lifetime = time.Duration(out.ExpiresIn) * time.Second
	}
	t.token = out.AccessToken
	t.expiry = time.Now().Add(lifetime)
	return t.token, nil
}

// Invalidate drops the cached credential.
func (t *TokenSource) Invalidate() {
	t.mu.Lock()
	t.token = ""
	t.expiry = time.Time{}
	t.mu.Unlock()
}
