package category

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) CreateCategory(c *fiber.Ctx) error {
	var req CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Name is Required")
	}

	if _, err := h.Repo.AddCategory(userContext(c), req.Name); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Server error, "+err.Error())
	}

	return c.JSON(fiber.Map{"msg": "Category created"})
}

func (h *Handler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.Repo.GetCategories(userContext(c))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Server error, "+err.Error())
	}

	return c.JSON(fiber.Map{"categories": categories})
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
