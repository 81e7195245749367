package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

var ErrSessionStoreMissing = errors.New("session store is not attached to the request")

// SessionStart returns the request's session from the store placed in locals
// by the session middleware.
func SessionStart(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals("session_store").(*session.Store)
	if !ok || store == nil {
		return nil, ErrSessionStoreMissing
	}
	return store.Get(c)
}

// GetUserIDFromSession reads the logged-in user's ID.
func GetUserIDFromSession(sess *session.Session) (uint, error) {
	id, ok := sess.Get("user_id").(uint)
	if !ok || id == 0 {
		return 0, errors.New("no user in session")
	}
	return id, nil
}

// GetIsSystemFromSession reads the admin flag.
func GetIsSystemFromSession(sess *session.Session) (bool, error) {
	isSystem, ok := sess.Get("is_system").(bool)
	if !ok {
		return false, errors.New("no admin flag in session")
	}
	return isSystem, nil
}

// SetUserSession stores the login identity.
func SetUserSession(sess *session.Session, userID uint, userName string, isSystem bool) error {
	sess.Set("user_id", userID)
	sess.Set("user_name", userName)
	sess.Set("is_system", isSystem)
	return sess.Save()
}

// ClearSession drops everything, ending the login.
func ClearSession(sess *session.Session) error {
	return sess.Destroy()
}
