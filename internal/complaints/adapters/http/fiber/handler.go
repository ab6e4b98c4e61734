package fiber

import (
	"context"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"group-analytics-service/internal/complaints/core/usecase"
)

type SubmitComplaintUseCase interface {
	Execute(ctx context.Context, in usecase.SubmitComplaintInput) (bool, error)
}

type ComplaintHandler struct {
	submitUC SubmitComplaintUseCase
}

func NewComplaintHandler(submitUC SubmitComplaintUseCase) *ComplaintHandler {
	return &ComplaintHandler{submitUC: submitUC}
}

// SubmitComplaint godoc
// @Summary Submit an anonymous complaint
// @Description Records a complaint and flags abusive text at submission time
// @Tags Complaints
// @Accept json
// @Produce json
// @Param request body SubmitComplaintRequest true "Complaint"
// @Success 201 {object} SubmitComplaintResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/complaint [post]
func (h *ComplaintHandler) SubmitComplaint(c *fiber.Ctx) error {
	var req SubmitComplaintRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Status:  "error",
			Message: "Missing GC ID or complaint text.",
		})
	}

	flagged, err := h.submitUC.Execute(c.UserContext(), usecase.SubmitComplaintInput{
		GCID:         req.GCID,
		ComplainerID: req.ComplainerID,
		Text:         req.Text,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidComplaint) {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Status:  "error",
				Message: "Missing GC ID or complaint text.",
			})
		}
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Status:  "error",
			Message: "internal_server_error",
		})
	}

	return c.Status(http.StatusCreated).JSON(SubmitComplaintResponse{
		Status:           "success",
		Message:          "Complaint recorded. Admins will be notified.",
		IsAbusiveFlagged: flagged,
	})
}
