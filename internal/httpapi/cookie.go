package httpapi

import (
	"net/http"
	"time"

	"github.com/dharmayuga/dharmayuga/internal/session"
	"github.com/dharmayuga/dharmayuga/pkg/errors"
)

// cookieStorage keeps the session identifier in a browser cookie for the
// duration of one request.
type cookieStorage struct {
	w      http.ResponseWriter
	r      *http.Request
	name   string
	maxAge time.Duration

	value string
}

var _ session.Storage = (*cookieStorage)(nil)

func newCookieStorage(w http.ResponseWriter, r *http.Request, name string, maxAge time.Duration) *cookieStorage {
	return &cookieStorage{w: w, r: r, name: name, maxAge: maxAge}
}

func (c *cookieStorage) Get(key string) (string, bool, error) {
	if key != session.StorageKey {
		return "", false, errors.Invalid("unsupported storage key " + key)
	}
	if c.value != "" {
		return c.value, true, nil
	}

	cookie, err := c.r.Cookie(c.name)
	if err != nil || cookie.Value == "" {
		return "", false, nil
	}
	c.value = cookie.Value
	return c.value, true, nil
}

func (c *cookieStorage) Set(key, value string) error {
	if key != session.StorageKey {
		return errors.Invalid("unsupported storage key " + key)
	}
	c.value = value
	http.SetCookie(c.w, &http.Cookie{
		Name:     c.name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(c.maxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
