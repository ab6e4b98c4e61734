package fiber

import (
	"context"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"group-analytics-service/internal/registry/core/usecase"
)

type RegisterGroupUseCase interface {
	Execute(ctx context.Context, in usecase.RegisterGroupInput) (string, error)
}

type LoginUseCase interface {
	Execute(ctx context.Context, code string) (usecase.LoginResult, error)
	Resolve(ctx context.Context, code string) (int64, error)
}

type GroupHandler struct {
	registerUC RegisterGroupUseCase
	loginUC    LoginUseCase
}

func NewGroupHandler(registerUC RegisterGroupUseCase, loginUC LoginUseCase) *GroupHandler {
	return &GroupHandler{registerUC: registerUC, loginUC: loginUC}
}

// Login godoc
// @Summary Dashboard login
// @Description Validates a 6-character dashboard access code
// @Tags Registry
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Access code"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/login [post]
func (h *GroupHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Status:  "error",
			Message: "Invalid code format.",
		})
	}

	res, err := h.loginUC.Execute(c.UserContext(), req.Code)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCode):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Status:  "error",
				Message: "Invalid code format.",
			})
		case errors.Is(err, usecase.ErrUnknownCode):
			return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
				Status:  "error",
				Message: "Invalid login code.",
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Status:  "error",
				Message: "internal_server_error",
			})
		}
	}

	return c.Status(http.StatusOK).JSON(LoginResponse{
		Status:    "success",
		GCID:      res.GCID,
		GroupName: res.GroupName,
		Tier:      string(res.Tier),
	})
}

// RegisterGroup godoc
// @Summary Register a group
// @Description Called by the bot after verifying the requester is a group admin
// @Tags Registry
// @Accept json
// @Produce json
// @Param request body RegisterGroupRequest true "Group registration"
// @Success 201 {object} RegisterGroupResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/bot/register [post]
func (h *GroupHandler) RegisterGroup(c *fiber.Ctx) error {
	var req RegisterGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Status:  "error",
			Message: "Missing GC ID or Owner ID.",
		})
	}

	code, err := h.registerUC.Execute(c.UserContext(), usecase.RegisterGroupInput{
		GCID:      req.GCID,
		OwnerID:   req.OwnerID,
		GroupName: req.GroupName,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidRegistration) {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Status:  "error",
				Message: "Missing GC ID or Owner ID.",
			})
		}
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Status:  "error",
			Message: "internal_server_error",
		})
	}

	return c.Status(http.StatusCreated).JSON(RegisterGroupResponse{
		Status:    "success",
		Message:   "Group registered. Trial started.",
		LoginCode: code,
	})
}

// ResolveCode godoc
// @Summary Resolve an access code
// @Description Maps a dashboard access code to the absolute group id
// @Tags Registry
// @Produce json
// @Param code path string true "Access code"
// @Success 200 {object} ResolveCodeResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/code/{code} [get]
func (h *GroupHandler) ResolveCode(c *fiber.Ctx) error {
	id, err := h.loginUC.Resolve(c.UserContext(), c.Params("code"))
	if err != nil {
		if errors.Is(err, usecase.ErrUnknownCode) {
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Status:  "error",
				Message: "Invalid Access Code. Please check your bot's /start message.",
			})
		}
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Status:  "error",
			Message: "internal_server_error",
		})
	}

	return c.Status(http.StatusOK).JSON(ResolveCodeResponse{
		Status: "success",
		ChatID: id,
	})
}
