package server

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"pasteboard/internal/common"
)

type noteBody struct {
	Content string `json:"content"`
}

func noteID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, common.ErrInvalidNoteID
	}
	return id, nil
}

func (s *FiberServer) listNotes(c *fiber.Ctx) error {
	userID := c.Locals("userID").(int64)

	list, err := s.notes.List(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"notes": list})
}

func (s *FiberServer) getNote(c *fiber.Ctx) error {
	userID := c.Locals("userID").(int64)

	id, err := noteID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid note ID"})
	}
	note, err := s.notes.Get(c.Context(), id, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Note not found"})
		}
		return err
	}
	return c.JSON(fiber.Map{"note": note})
}

func (s *FiberServer) createNote(c *fiber.Ctx) error {
	userID := c.Locals("userID").(int64)

	var body noteBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Content is required"})
	}
	note, err := s.notes.Create(c.Context(), userID, body.Content)
	if err != nil {
		if errors.Is(err, common.ErrContentRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Content is required"})
		}
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"note": note})
}

func (s *FiberServer) updateNote(c *fiber.Ctx) error {
	userID := c.Locals("userID").(int64)

	id, err := noteID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid note ID"})
	}
	var body noteBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Content is required"})
	}
	note, err := s.notes.Update(c.Context(), id, userID, body.Content)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrContentRequired):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Content is required"})
		case errors.Is(err, common.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Note not found"})
		}
		return err
	}
	return c.JSON(fiber.Map{"note": note})
}

func (s *FiberServer) deleteNote(c *fiber.Ctx) error {
	userID := c.Locals("userID").(int64)

	id, err := noteID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid note ID"})
	}
	if err := s.notes.Delete(c.Context(), id, userID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Note not found"})
		}
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
