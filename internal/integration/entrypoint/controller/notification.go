// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/farm-tracker/backend/internal/application/usecase/notification"
	domainerror "github.com/farm-tracker/backend/internal/domain/error"
	"github.com/farm-tracker/backend/internal/integration/entrypoint/dto"
)

// NotificationController handles notification endpoints.
type NotificationController struct {
	listUseCase     *notification.ListNotificationsUseCase
	markReadUseCase *notification.MarkReadUseCase
	generateUseCase *notification.GenerateRemindersUseCase
}

// NewNotificationController creates a new notification controller instance.
func NewNotificationController(
	listUseCase *notification.ListNotificationsUseCase,
	markReadUseCase *notification.MarkReadUseCase,
	generateUseCase *notification.GenerateRemindersUseCase,
) *NotificationController {
	return &NotificationController{
		listUseCase:     listUseCase,
		markReadUseCase: markReadUseCase,
		generateUseCase: generateUseCase,
	}
}

// List handles GET /notifications requests.
func (c *NotificationController) List(ctx *gin.Context) {
	var input notification.ListNotificationsInput

	if farmerIDStr := ctx.Query("farmer_id"); farmerIDStr != "" {
		farmerID, err := uuid.Parse(farmerIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid farmer ID format",
			})
			return
		}
		input.FarmerID = &farmerID
	}
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			input.Limit = limit
		}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve notifications",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNotificationListResponse(output))
}

// MarkRead handles POST /notifications/:id/read requests.
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	notificationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid notification ID format",
		})
		return
	}

	if err := c.markReadUseCase.Execute(ctx.Request.Context(), notification.MarkReadInput{ID: notificationID}); err != nil {
		c.handleNotificationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Notification marked as read"})
}

// GenerateReminders handles POST /notifications/generate requests.
func (c *NotificationController) GenerateReminders(ctx *gin.Context) {
	output, err := c.generateUseCase.Execute(ctx.Request.Context(), notification.GenerateRemindersInput{})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to generate reminders",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGenerateRemindersResponse(output))
}

// handleNotificationError handles notification errors and returns appropriate HTTP responses.
func (c *NotificationController) handleNotificationError(ctx *gin.Context, err error) {
	var notifErr *domainerror.NotificationError
	if errors.As(err, &notifErr) && notifErr.Code == domainerror.ErrCodeNotificationNotFound {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: notifErr.Message,
			Code:  string(notifErr.Code),
		})
		return
	}
	if errors.Is(err, domainerror.ErrNotificationNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Notification not found",
			Code:  string(domainerror.ErrCodeNotificationNotFound),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
