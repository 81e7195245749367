package configssession

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
)

var (
	store     *session.Store
	storeOnce sync.Once
)

// SetupSession returns the shared cookie-backed session store.
func SetupSession() *session.Store {
	storeOnce.Do(func() {
		store = session.New(session.Config{
			Expiration:     24 * time.Hour,
			KeyLookup:      "cookie:undangan_session",
			CookieHTTPOnly: true,
			CookieSameSite: "Lax",
		})
	})
	return store
}
