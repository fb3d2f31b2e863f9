package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AndresNazzari/budgetApp/internal/category"
	"github.com/AndresNazzari/budgetApp/internal/expense"
	"github.com/AndresNazzari/budgetApp/internal/income"
	"github.com/AndresNazzari/budgetApp/internal/operations"
	"github.com/AndresNazzari/budgetApp/internal/user"
)

type Router struct {
	UserHandler       *user.Handler
	CategoryHandler   *category.Handler
	IncomeHandler     *income.Handler
	ExpenseHandler    *expense.Handler
	OperationsHandler *operations.Handler
	AuthMW            fiber.Handler
	AuthLimiter       fiber.Handler
}

func (r *Router) RegisterRoutes(app *fiber.App) {
	if r.UserHandler != nil {
		app.Post("/api/user", r.AuthLimiter, r.UserHandler.Register)
		app.Post("/api/user/auth", r.AuthLimiter, r.UserHandler.Login)
		app.Get("/api/user", r.AuthMW, r.UserHandler.Me)
		app.Delete("/api/user/:id", r.AuthMW, r.UserHandler.Delete)
	}

	if r.CategoryHandler != nil {
		app.Post("/api/category", r.AuthMW, r.CategoryHandler.CreateCategory)
		app.Get("/api/category", r.AuthMW, r.CategoryHandler.GetCategories)
	}

	if r.IncomeHandler != nil {
		app.Post("/api/income", r.AuthMW, r.IncomeHandler.CreateIncome)
		app.Get("/api/income", r.AuthMW, r.IncomeHandler.GetIncomes)
		app.Put("/api/income/:income_id", r.AuthMW, r.IncomeHandler.UpdateIncome)
		app.Delete("/api/income/:income_id", r.AuthMW, r.IncomeHandler.RemoveIncome)
	}

	if r.ExpenseHandler != nil {
		app.Post("/api/expense", r.AuthMW, r.ExpenseHandler.CreateExpense)
		app.Get("/api/expense", r.AuthMW, r.ExpenseHandler.GetExpenses)
		app.Put("/api/expense/:expense_id", r.AuthMW, r.ExpenseHandler.UpdateExpense)
		app.Delete("/api/expense/:expense_id", r.AuthMW, r.ExpenseHandler.RemoveExpense)
	}

	if r.OperationsHandler != nil {
		app.Get("/api/operations", r.AuthMW, r.OperationsHandler.GetOperations)
		app.Get("/api/operations/report", r.AuthMW, r.OperationsHandler.GetStatement)
	}
}
