package operations

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"github.com/AndresNazzari/budgetApp/internal/expense"
	"github.com/AndresNazzari/budgetApp/internal/income"
	"github.com/AndresNazzari/budgetApp/internal/reports"
)

type Handler struct {
	Incomes  *income.Repository
	Expenses *expense.Repository
}

func NewHandler(incomes *income.Repository, expenses *expense.Repository) *Handler {
	return &Handler{Incomes: incomes, Expenses: expenses}
}

// GetOperations returns the all-time balance and the recent-operations feed
// for a user. Both stores are read concurrently; the combination itself is
// pure and happens in memory.
func (h *Handler) GetOperations(c *fiber.Ctx) error {
	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "user_id required")
	}

	ops, err := h.fetch(userContext(c), userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Server error, "+err.Error())
	}

	return c.JSON(fiber.Map{
		"balance":    Balance(ops),
		"operations": Recent(ops, RecentLimit),
	})
}

// GetStatement renders the same feed as a downloadable PDF statement.
func (h *Handler) GetStatement(c *fiber.Ctx) error {
	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "user_id required")
	}

	ops, err := h.fetch(userContext(c), userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Server error, "+err.Error())
	}

	rows := make([]reports.StatementRow, 0, len(ops))
	for _, op := range Recent(ops, RecentLimit) {
		rows = append(rows, reports.StatementRow{
			Date:    op.Date,
			Type:    op.Type,
			Concept: op.Concept,
			Amount:  op.Amount,
		})
	}

	pdf, err := reports.BuildStatementPDF(userID, Balance(ops), rows)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Server error, "+err.Error())
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="operations.pdf"`)
	return c.Send(pdf)
}

func (h *Handler) fetch(ctx context.Context, userID int64) ([]Operation, error) {
	var (
		incomes  []income.Income
		expenses []expense.Expense
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		incomes, err = h.Incomes.ListByUser(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		expenses, err = h.Expenses.ListByUser(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Merge(incomes, expenses), nil
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
