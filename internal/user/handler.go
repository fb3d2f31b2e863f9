package user

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/AndresNazzari/budgetApp/internal/audit"
	"github.com/AndresNazzari/budgetApp/internal/auth"
)

type Handler struct {
	Repo   *Repository
	Secret []byte
}

func NewHandler(repo *Repository, secret []byte) *Handler {
	return &Handler{Repo: repo, Secret: secret}
}

type fieldError struct {
	Msg string `json:"msg"`
}

func errorList(msgs ...string) fiber.Map {
	list := make([]fieldError, 0, len(msgs))
	for _, m := range msgs {
		list = append(list, fieldError{Msg: m})
	}
	return fiber.Map{"errors": list}
}

// Register creates a user and returns a session token.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorList("invalid body"))
	}

	if errs := ValidateRegister(req); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(errorList(errs...))
	}

	ctx := userContext(c)

	existing, err := h.Repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Server error, "+err.Error())
	}
	if existing != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorList("Email already registered"))
	}

	if req.Password != req.Password2 {
		return c.Status(fiber.StatusBadRequest).JSON(errorList("Passwords do not match"))
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Server error, "+err.Error())
	}

	avatar := auth.GravatarURL(req.Email)

	id, err := h.Repo.AddUser(ctx, req.Name, req.Email, avatar, hashed)
	if err != nil {
		// A concurrent registration can slip past the exists check; the
		// unique constraint on email is the real backstop.
		if errors.Is(err, ErrDuplicateEmail) {
			return c.Status(fiber.StatusBadRequest).JSON(errorList("Email already registered"))
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Server error, "+err.Error())
	}

	token, err := auth.GenerateToken(h.Secret, req.Email)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Server error, "+err.Error())
	}

	h.writeAudit(c, &id, "user.register")

	return c.JSON(TokenResponse{Token: token})
}

// Login authenticates a user and returns a session token. Unknown email and
// wrong password fail with the identical message so account existence never
// leaks.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorList("invalid body"))
	}

	if errs := ValidateLogin(req); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(errorList(errs...))
	}

	ctx := userContext(c)

	record, err := h.Repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Server error, "+err.Error())
	}
	if record == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(errorList("Invalid Credentials"))
	}

	if !auth.CheckPassword(req.Password, record.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(errorList("Invalid Credentials"))
	}

	token, err := auth.GenerateToken(h.Secret, record.Email)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Server error, "+err.Error())
	}

	h.writeAudit(c, &record.UserID, "user.login")

	return c.JSON(TokenResponse{Token: token})
}

// Me returns the profile for the verified identity claim.
func (h *Handler) Me(c *fiber.Ctx) error {
	email, ok := auth.EmailFromCtx(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	profile, err := h.Repo.GetUser(userContext(c), email)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Server error, "+err.Error())
	}
	if profile == nil {
		return c.JSON(fiber.Map{"user": fiber.Map{}})
	}

	return c.JSON(fiber.Map{"user": profile})
}

// Delete removes a user by id and returns the record it fetched first.
// Fetch-then-delete is not atomic: a concurrent delete between the two steps
// yields an empty user object with a 200, not an error.
func (h *Handler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid user id")
	}

	ctx := userContext(c)

	profile, err := h.Repo.GetUserByID(ctx, id)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Server error, "+err.Error())
	}

	if _, err := h.Repo.DeleteUserByID(ctx, id); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Server error, "+err.Error())
	}

	h.writeAudit(c, &id, "user.delete")

	if profile == nil {
		return c.JSON(fiber.Map{"user": fiber.Map{}})
	}
	return c.JSON(fiber.Map{"user": profile})
}

// writeAudit records the action best-effort without blocking the request.
func (h *Handler) writeAudit(c *fiber.Ctx, userID *int64, action string) {
	ip := c.IP()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = audit.Write(ctx, h.Repo.Pool, audit.Entry{
			UserID:     userID,
			Action:     action,
			EntityType: "user",
			EntityID:   userID,
			IP:         ip,
		})
	}()
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
