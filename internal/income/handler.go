package income

import (
	"context"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) CreateIncome(c *fiber.Ctx) error {
	var req CreateIncomeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	req.Concept = strings.TrimSpace(req.Concept)
	if err := req.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	inc := &Income{
		Concept:    req.Concept,
		Amount:     req.Amount,
		Date:       req.Date,
		CategoryID: req.CategoryID,
		UserID:     req.UserID,
	}

	id, err := h.Repo.Insert(userContext(c), inc)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Server error, "+err.Error())
	}
	inc.IncomeID = id

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"msg":       "Income created",
		"newIncome": inc,
	})
}

func (h *Handler) GetIncomes(c *fiber.Ctx) error {
	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "user_id required")
	}

	incomes, err := h.Repo.ListByUser(userContext(c), userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Server error, "+err.Error())
	}

	return c.JSON(fiber.Map{"incomes": incomes})
}

func (h *Handler) UpdateIncome(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("income_id"), 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid income id")
	}

	var req UpdateIncomeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	req.Concept = strings.TrimSpace(req.Concept)
	if err := req.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	affected, err := h.Repo.Update(userContext(c), id, req.Concept, req.Amount, req.Date, req.CategoryID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Server error, "+err.Error())
	}

	return c.JSON(fiber.Map{
		"msg":           "Income updated",
		"rows_affected": affected,
	})
}

func (h *Handler) RemoveIncome(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("income_id"), 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid income id")
	}

	affected, err := h.Repo.Remove(userContext(c), id)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Server error, "+err.Error())
	}

	return c.JSON(fiber.Map{
		"msg":           "Income removed",
		"rows_affected": affected,
	})
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
