package fiber

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"group-analytics-service/internal/analytics/core/domain"
	"group-analytics-service/internal/analytics/core/usecase"
)

type GetSnapshotUseCase interface {
	Execute(ctx context.Context, gcID int64) (*domain.Snapshot, error)
}

type IngestMessageUseCase interface {
	Execute(ctx context.Context, gcID, userID int64, text string) int64
}

type RecordObservationUseCase interface {
	Execute(ctx context.Context, in usecase.RecordObservationInput) error
}

type AnalyticsHandler struct {
	snapshotUC GetSnapshotUseCase
	ingestUC   IngestMessageUseCase
	recordUC   RecordObservationUseCase
}

func NewAnalyticsHandler(snapshotUC GetSnapshotUseCase, ingestUC IngestMessageUseCase, recordUC RecordObservationUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{snapshotUC: snapshotUC, ingestUC: ingestUC, recordUC: recordUC}
}

// GetData godoc
// @Summary Dashboard snapshot
// @Description Full analytics snapshot for one group
// @Tags Analytics
// @Produce json
// @Param gc_id path int true "Group id (absolute form accepted)"
// @Success 200 {object} SnapshotResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/data/{gc_id} [get]
func (h *AnalyticsHandler) GetData(c *fiber.Ctx) error {
	gcID, err := strconv.ParseInt(c.Params("gc_id"), 10, 64)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Status:  "error",
			Message: "invalid group id",
		})
	}

	snap, err := h.snapshotUC.Execute(c.UserContext(), gcID)
	if err != nil {
		if errors.Is(err, usecase.ErrNotRegistered) {
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Status:  "error",
				Message: "Group not registered.",
			})
		}
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Status:  "error",
			Message: "internal_server_error",
		})
	}

	return c.Status(http.StatusOK).JSON(SnapshotResponse{
		Status:         "success",
		ChatID:         snap.GCID,
		IsElite:        snap.IsPremium,
		Tier:           string(snap.Tier),
		GroupName:      snap.GroupName,
		TotalMessages:  snap.TotalMessages,
		TotalMembers:   snap.TotalMembers,
		EngagementRate: snap.EngagementRate,
		QualityScore:   snap.QualityScore,
		GrowthTip:      snap.GrowthTip,
		GCHealth:       snap.GCHealth,
		Retention:      snap.Retention,
		HourlyActivity: snap.HourlyActivity,
		TrendingTopics: snap.TrendingTopics,
		Leaderboard:    snap.Leaderboard,
		MemberList:     snap.MemberList,
		BadWordTracker: snap.BadWordTracker,
	})
}

// LogMessage godoc
// @Summary Count one message
// @Description Fire-and-forget message ingestion from the bot; always answers success
// @Tags Analytics
// @Accept json
// @Produce json
// @Param request body LogMessageRequest true "Message event"
// @Success 200 {object} LogMessageResponse
// @Router /api/bot/log_message [post]
func (h *AnalyticsHandler) LogMessage(c *fiber.Ctx) error {
	var req LogMessageRequest
	if err := c.BodyParser(&req); err != nil {
		// Even unparsable events answer success-shaped: the bot layer must
		// never stall on ingestion.
		return c.Status(http.StatusOK).JSON(LogMessageResponse{Status: "success"})
	}

	newCount := h.ingestUC.Execute(c.UserContext(), req.GCID, req.UserID, req.Text)

	return c.Status(http.StatusOK).JSON(LogMessageResponse{
		Status:   "success",
		NewCount: newCount,
	})
}

// RecordObservation godoc
// @Summary Record a metric observation
// @Description Intake for external analytics jobs pushing chart or scalar metrics
// @Tags Analytics
// @Accept json
// @Produce json
// @Param request body RecordObservationRequest true "Observation"
// @Success 201 {object} RecordObservationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/metrics [post]
func (h *AnalyticsHandler) RecordObservation(c *fiber.Ctx) error {
	var req RecordObservationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Status:  "error",
			Message: "invalid_json",
		})
	}

	err := h.recordUC.Execute(c.UserContext(), usecase.RecordObservationInput{
		GCID:       req.GCID,
		MetricType: req.MetricType,
		Payload:    req.Payload,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidObservation) {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Status:  "error",
				Message: err.Error(),
			})
		}
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Status:  "error",
			Message: "internal_server_error",
		})
	}

	return c.Status(http.StatusCreated).JSON(RecordObservationResponse{Status: "recorded"})
}
