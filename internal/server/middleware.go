package server

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"pasteboard/internal/common"
)

const sessionCookieName = "pasteboard_session"

// requirePage gates the server-rendered routes. Unauthenticated
// browsers are redirected to the login page.
func (s *FiberServer) requirePage(c *fiber.Ctx) error {
	token := c.Cookies(sessionCookieName)
	userID, err := s.auth.Authenticate(c.Context(), token)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			return c.Redirect("/login", fiber.StatusFound)
		}
		return err
	}
	c.Locals("userID", userID)
	return c.Next()
}

// requireAPI gates the JSON API. The token travels in the X-Session-ID
// header, or as a bearer token in Authorization.
func (s *FiberServer) requireAPI(c *fiber.Ctx) error {
	token := c.Get("X-Session-ID")
	if token == "" {
		if h := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(h, "Bearer ") {
			token = strings.TrimPrefix(h, "Bearer ")
		}
	}
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Session ID required in X-Session-ID header or Authorization header",
		})
	}

	userID, err := s.auth.Authenticate(c.Context(), token)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired session"})
		}
		return err
	}
	c.Locals("userID", userID)
	return c.Next()
}
