package server

import "github.com/gofiber/fiber/v2"

func (s *FiberServer) RegisterFiberRoutes() {
	s.App.Get("/health", s.healthHandler)

	s.App.Get("/login", s.showLogin)
	s.App.Post("/login", s.login)
	s.App.Get("/register", s.showRegister)
	s.App.Post("/register", s.register)
	s.App.Post("/logout", s.logout)
	s.App.Get("/", s.requirePage, s.home)

	api := s.App.Group("/api", s.requireAPI)
	api.Get("/notes", s.listNotes)
	api.Get("/notes/:id", s.getNote)
	api.Post("/notes", s.createNote)
	api.Put("/notes/:id", s.updateNote)
	api.Delete("/notes/:id", s.deleteNote)
}

func (s *FiberServer) healthHandler(c *fiber.Ctx) error {
	return c.JSON(s.db.Health())
}
