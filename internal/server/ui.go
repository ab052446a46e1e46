package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"pasteboard/internal/common"
	"pasteboard/internal/database/models"
)

func (s *FiberServer) setSessionCookie(c *fiber.Ctx, session *models.Session) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HTTPOnly: true,
		Secure:   s.cfg.SessionSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (s *FiberServer) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   s.cfg.SessionSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// isAuthenticated reports whether the request carries a valid session
// cookie. Storage errors count as unauthenticated here; the login and
// register pages must still render.
func (s *FiberServer) isAuthenticated(c *fiber.Ctx) bool {
	_, err := s.auth.Authenticate(c.Context(), c.Cookies(sessionCookieName))
	return err == nil
}

func (s *FiberServer) showLogin(c *fiber.Ctx) error {
	if s.isAuthenticated(c) {
		return c.Redirect("/", fiber.StatusFound)
	}
	return c.Render("login", fiber.Map{"Title": "Login - Pasteboard", "Error": nil}, "layout")
}

func (s *FiberServer) login(c *fiber.Ctx) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	_, session, err := s.auth.Login(c.Context(), email, password, c.Cookies(sessionCookieName))
	if err != nil {
		msg := "Database error"
		if errors.Is(err, common.ErrMissingCredential) || errors.Is(err, common.ErrInvalidCredentials) {
			msg = err.Error()
		} else {
			s.log.Error("login failed", "error", err)
		}
		return c.Render("login", fiber.Map{"Title": "Login - Pasteboard", "Error": msg}, "layout")
	}

	s.setSessionCookie(c, session)
	return c.Redirect("/", fiber.StatusFound)
}

func (s *FiberServer) showRegister(c *fiber.Ctx) error {
	if s.isAuthenticated(c) {
		return c.Redirect("/", fiber.StatusFound)
	}
	return c.Render("register", fiber.Map{"Title": "Register - Pasteboard", "Error": nil}, "layout")
}

func (s *FiberServer) register(c *fiber.Ctx) error {
	email := c.FormValue("email")
	password := c.FormValue("password")
	confirmPassword := c.FormValue("confirmPassword")

	_, session, err := s.auth.Register(c.Context(), email, password, confirmPassword, c.Cookies(sessionCookieName))
	if err != nil {
		msg := "Database error"
		switch {
		case errors.Is(err, common.ErrFieldsRequired),
			errors.Is(err, common.ErrPasswordMismatch),
			errors.Is(err, common.ErrPasswordTooShort),
			errors.Is(err, common.ErrEmailTaken):
			msg = err.Error()
		default:
			s.log.Error("registration failed", "error", err)
		}
		return c.Render("register", fiber.Map{"Title": "Register - Pasteboard", "Error": msg}, "layout")
	}

	s.setSessionCookie(c, session)
	return c.Redirect("/", fiber.StatusFound)
}

func (s *FiberServer) logout(c *fiber.Ctx) error {
	if err := s.auth.Logout(c.Context(), c.Cookies(sessionCookieName)); err != nil {
		s.log.Error("logout failed", "error", err)
	}
	s.clearSessionCookie(c)
	return c.Redirect("/login", fiber.StatusFound)
}

func (s *FiberServer) home(c *fiber.Ctx) error {
	userID := c.Locals("userID").(int64)

	list, err := s.notes.List(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.Render("home", fiber.Map{
		"Title":     "Home - Pasteboard",
		"Notes":     list,
		"SessionID": c.Cookies(sessionCookieName),
	}, "layout")
}
