// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/farm-tracker/backend/internal/application/usecase/advisor"
	domainerror "github.com/farm-tracker/backend/internal/domain/error"
	"github.com/farm-tracker/backend/internal/integration/entrypoint/dto"
)

// AdvisorController handles AI category suggestion endpoints.
type AdvisorController struct {
	suggestUseCase *advisor.SuggestCategoryUseCase
	listUseCase    *advisor.ListSuggestionsUseCase
	approveUseCase *advisor.ApproveSuggestionUseCase
	rejectUseCase  *advisor.RejectSuggestionUseCase
}

// NewAdvisorController creates a new advisor controller instance.
func NewAdvisorController(
	suggestUseCase *advisor.SuggestCategoryUseCase,
	listUseCase *advisor.ListSuggestionsUseCase,
	approveUseCase *advisor.ApproveSuggestionUseCase,
	rejectUseCase *advisor.RejectSuggestionUseCase,
) *AdvisorController {
	return &AdvisorController{
		suggestUseCase: suggestUseCase,
		listUseCase:    listUseCase,
		approveUseCase: approveUseCase,
		rejectUseCase:  rejectUseCase,
	}
}

// Suggest handles POST /suggestions requests.
func (c *AdvisorController) Suggest(ctx *gin.Context) {
	var req dto.SuggestCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	cropID, err := uuid.Parse(req.CropID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid crop ID format",
		})
		return
	}

	output, err := c.suggestUseCase.Execute(ctx.Request.Context(), advisor.SuggestCategoryInput{CropID: cropID})
	if err != nil {
		c.handleAdvisorError(ctx, err)
		return
	}

	if output.Suggestion == nil {
		ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "No category suggestion available"})
		return
	}

	response := dto.ToSuggestionResponse(output.Suggestion)
	if output.Category != nil {
		response.CategoryName = output.Category.Name
		response.CategoryIcon = output.Category.Icon
	}
	ctx.JSON(http.StatusCreated, response)
}

// List handles GET /suggestions requests.
func (c *AdvisorController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve suggestions",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSuggestionListResponse(output.Suggestions))
}

// Approve handles POST /suggestions/:id/approve requests.
func (c *AdvisorController) Approve(ctx *gin.Context) {
	suggestionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid suggestion ID format",
		})
		return
	}

	output, err := c.approveUseCase.Execute(ctx.Request.Context(), advisor.ApproveSuggestionInput{SuggestionID: suggestionID})
	if err != nil {
		c.handleAdvisorError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCropResponse(output.Crop))
}

// Reject handles POST /suggestions/:id/reject requests.
func (c *AdvisorController) Reject(ctx *gin.Context) {
	suggestionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid suggestion ID format",
		})
		return
	}

	if err := c.rejectUseCase.Execute(ctx.Request.Context(), advisor.RejectSuggestionInput{SuggestionID: suggestionID}); err != nil {
		c.handleAdvisorError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Suggestion rejected"})
}

// handleAdvisorError handles advisor errors and returns appropriate HTTP responses.
func (c *AdvisorController) handleAdvisorError(ctx *gin.Context, err error) {
	if errors.Is(err, domainerror.ErrCropNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Crop not found",
			Code:  string(domainerror.ErrCodeCropNotFound),
		})
		return
	}

	var advisorErr *domainerror.AdvisorError
	if errors.As(err, &advisorErr) {
		ctx.JSON(c.getStatusCodeForAdvisorError(advisorErr.Code), dto.ErrorResponse{
			Error: advisorErr.Message,
			Code:  string(advisorErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForAdvisorError maps advisor error codes to HTTP status codes.
func (c *AdvisorController) getStatusCodeForAdvisorError(code domainerror.AdvisorErrorCode) int {
	switch code {
	case domainerror.ErrCodeSuggestionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeCropAlreadyCategorized,
		domainerror.ErrCodeSuggestionNotPending:
		return http.StatusConflict
	case domainerror.ErrCodeAdvisorUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
