package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const sessionUserKey = "userId"

// NewSessionStore builds the cookie-session store. Only the session id
// travels in the cookie; identity stays server-side.
func NewSessionStore() *session.Store {
	return session.New(session.Config{
		Expiration:     24 * time.Hour,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
}

// RequireAuth resolves the session into a user identity. Handlers
// behind it read the id from c.Locals("userId") as uint.
func RequireAuth(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		userID, ok := sess.Get(sessionUserKey).(uint)
		if !ok || userID == 0 {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		c.Locals("userId", userID)
		return c.Next()
	}
}

// LoginSession binds the user identity to a fresh session
func LoginSession(c *fiber.Ctx, store *session.Store, userID uint) error {
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	// New id on login so a pre-auth session id is never promoted
	if err := sess.Regenerate(); err != nil {
		return err
	}
	sess.Set(sessionUserKey, userID)
	return sess.Save()
}

// LogoutSession invalidates the current session
func LogoutSession(c *fiber.Ctx, store *session.Store) error {
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}
