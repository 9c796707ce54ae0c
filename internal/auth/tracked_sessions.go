package auth

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"

	"github.com/puneethk/portfolio-backend/pkg"
)

const (
	sessionKeyPrefix = "portfolio-admin-session||"
	tokensSetKey     = "portfolio-admin-sessions"
	tokenLength      = 35
)

// TokenStore keeps admin session tokens in redis, so sessions can be
// looked up and, unlike the plain cookie mode, thrown away server-side.
type TokenStore struct {
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

func NewTokenStore(ttl time.Duration, redisClient *redis.Client) *TokenStore {
	return &TokenStore{
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

func (ts *TokenStore) Create(ctx context.Context, createdAt time.Time) (string, error) {
	token, err := ts.RandStringFunc(tokenLength)
	if err != nil {
		return "", err
	}

	sessionKey := sessionKeyPrefix + token
	if err := ts.redisClient.Set(ctx, sessionKey, createdAt.Unix(), ts.ttl).Err(); err != nil {
		return "", err
	}

	// add token to the list of sessions
	if err := ts.redisClient.SAdd(ctx, tokensSetKey, token).Err(); err != nil {
		return "", err
	}

	return token, nil
}

func (ts *TokenStore) Exists(ctx context.Context, token string) (bool, error) {
	sessionKey := sessionKeyPrefix + token
	cmd := ts.redisClient.Get(ctx, sessionKey)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}

	createdAtUnix, err := strconv.ParseInt(cmd.Val(), 10, 64)
	if err != nil {
		return false, err
	}

	createdAt := time.Unix(createdAtUnix, 0)
	if time.Since(createdAt) > ts.ttl {
		return false, nil
	}

	return true, nil
}

func (ts *TokenStore) Delete(ctx context.Context, token string) error {
	sessionKey := sessionKeyPrefix + token
	if err := ts.redisClient.Del(ctx, sessionKey).Err(); err != nil {
		return err
	}
	return ts.redisClient.SRem(ctx, tokensSetKey, token).Err()
}

// DeleteAll throws away every session token. Called after a successful
// password change when tracked sessions are enabled.
func (ts *TokenStore) DeleteAll(ctx context.Context) error {
	cmd := ts.redisClient.SMembers(ctx, tokensSetKey)
	if err := cmd.Err(); err != nil {
		return err
	}

	for _, token := range cmd.Val() {
		if err := ts.Delete(ctx, token); err != nil {
			log.Errorf("token store, delete session %s: %s", token, err)
		}
	}

	return nil
}

var (
	_ SessionIssuer    = (*TrackedCookieIssuer)(nil)
	_ SessionValidator = (*TrackedSessionValidator)(nil)
)

// TrackedCookieIssuer puts a random token in the session cookie instead
// of the bare "true" flag. The admin panel does not care about the
// value, so both modes look the same from the browser's side.
type TrackedCookieIssuer struct {
	tokens *TokenStore
	secure bool
}

func NewTrackedCookieIssuer(tokens *TokenStore, secure bool) *TrackedCookieIssuer {
	return &TrackedCookieIssuer{
		tokens: tokens,
		secure: secure,
	}
}

func (ti *TrackedCookieIssuer) Issue(ctx context.Context, w http.ResponseWriter) error {
	token, err := ti.tokens.Create(ctx, time.Now())
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   ti.secure,
	})
	return nil
}

func (ti *TrackedCookieIssuer) Revoke(ctx context.Context, r *http.Request, w http.ResponseWriter) error {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		if err := ti.tokens.Delete(ctx, cookie.Value); err != nil {
			log.Errorf("tracked issuer, delete session token: %s", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   ti.secure,
	})
	return nil
}

func (ti *TrackedCookieIssuer) RevokeAll(ctx context.Context) error {
	return ti.tokens.DeleteAll(ctx)
}

// TrackedSessionValidator checks the cookie token against redis.
type TrackedSessionValidator struct {
	tokens *TokenStore
}

func NewTrackedSessionValidator(tokens *TokenStore) *TrackedSessionValidator {
	return &TrackedSessionValidator{
		tokens: tokens,
	}
}

func (tv *TrackedSessionValidator) IsAuthenticated(ctx context.Context, r *http.Request) (bool, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return false, nil
	}
	return tv.tokens.Exists(ctx, cookie.Value)
}
