package expense

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

func (h *Handler) CreateExpense(c *fiber.Ctx) error {
	var req CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	req.Concept = strings.TrimSpace(req.Concept)
	if err := req.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	exp := &Expense{
		Concept:    req.Concept,
		Amount:     req.Amount,
		Date:       req.Date,
		CategoryID: req.CategoryID,
		UserID:     req.UserID,
	}

	id, err := h.Repo.Insert(userContext(c), exp)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Server error, "+err.Error())
	}
	exp.ExpenseID = id

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"msg":        "Expense created",
		"newExpense": exp,
	})
}

func (h *Handler) GetExpenses(c *fiber.Ctx) error {
	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "user_id required")
	}

	expenses, err := h.Repo.ListByUser(userContext(c), userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Server error, "+err.Error())
	}

	return c.JSON(fiber.Map{"expenses": expenses})
}

func (h *Handler) UpdateExpense(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("expense_id"), 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid expense id")
	}

	var req UpdateExpenseRequest
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
		"msg":           "Expense updated",
		"rows_affected": affected,
	})
}

func (h *Handler) RemoveExpense(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("expense_id"), 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid expense id")
	}

	affected, err := h.Repo.Remove(userContext(c), id)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Server error, "+err.Error())
	}

	return c.JSON(fiber.Map{
		"msg":           "Expense removed",
		"rows_affected": affected,
	})
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
