// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farm-tracker/backend/internal/application/usecase/farmer"
	domainerror "github.com/farm-tracker/backend/internal/domain/error"
	"github.com/farm-tracker/backend/internal/integration/entrypoint/dto"
)

// FarmerController handles farmer endpoints.
type FarmerController struct {
	listUseCase   *farmer.ListFarmersUseCase
	getUseCase    *farmer.GetFarmerUseCase
	createUseCase *farmer.CreateFarmerUseCase
	updateUseCase *farmer.UpdateFarmerUseCase
	deleteUseCase *farmer.DeleteFarmerUseCase
}

// NewFarmerController creates a new farmer controller instance.
func NewFarmerController(
	listUseCase *farmer.ListFarmersUseCase,
	getUseCase *farmer.GetFarmerUseCase,
	createUseCase *farmer.CreateFarmerUseCase,
	updateUseCase *farmer.UpdateFarmerUseCase,
	deleteUseCase *farmer.DeleteFarmerUseCase,
) *FarmerController {
	return &FarmerController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /farmers requests.
func (c *FarmerController) List(ctx *gin.Context) {
	input := farmer.ListFarmersInput{
		Search:           ctx.Query("search"),
		ExperienceBucket: ctx.Query("experience"),
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFarmerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFarmerListResponse(output.Farmers))
}

// Get handles GET /farmers/:id requests.
func (c *FarmerController) Get(ctx *gin.Context) {
	farmerID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid farmer ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), farmer.GetFarmerInput{FarmerID: farmerID})
	if err != nil {
		c.handleFarmerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFarmerDetailResponse(output))
}

// Create handles POST /farmers requests.
func (c *FarmerController) Create(ctx *gin.Context) {
	var req dto.CreateFarmerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFarmerFields),
		})
		return
	}

	input := farmer.CreateFarmerInput{
		Name:            req.Name,
		Phone:           req.Phone,
		Email:           req.Email,
		Address:         req.Address,
		DateOfBirth:     req.DateOfBirth,
		ExperienceYears: req.ExperienceYears,
		LandAreaAcres:   decimal.NewFromFloat(req.LandAreaAcres),
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFarmerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToFarmerResponse(output.Farmer))
}

// Update handles PATCH /farmers/:id requests.
func (c *FarmerController) Update(ctx *gin.Context) {
	farmerID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid farmer ID format",
		})
		return
	}

	var req dto.UpdateFarmerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := farmer.UpdateFarmerInput{
		FarmerID:        farmerID,
		Name:            req.Name,
		Phone:           req.Phone,
		Email:           req.Email,
		Address:         req.Address,
		DateOfBirth:     req.DateOfBirth,
		ExperienceYears: req.ExperienceYears,
	}
	if req.LandAreaAcres != nil {
		landArea := decimal.NewFromFloat(*req.LandAreaAcres)
		input.LandAreaAcres = &landArea
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFarmerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFarmerResponse(output.Farmer))
}

// Delete handles DELETE /farmers/:id requests.
func (c *FarmerController) Delete(ctx *gin.Context) {
	farmerID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid farmer ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), farmer.DeleteFarmerInput{FarmerID: farmerID}); err != nil {
		c.handleFarmerError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleFarmerError handles farmer errors and returns appropriate HTTP responses.
func (c *FarmerController) handleFarmerError(ctx *gin.Context, err error) {
	if errors.Is(err, domainerror.ErrFarmerNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Farmer not found",
			Code:  string(domainerror.ErrCodeFarmerNotFound),
		})
		return
	}

	var farmerErr *domainerror.FarmerError
	if errors.As(err, &farmerErr) {
		ctx.JSON(c.getStatusCodeForFarmerError(farmerErr.Code), dto.ErrorResponse{
			Error: farmerErr.Message,
			Code:  string(farmerErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForFarmerError maps farmer error codes to HTTP status codes.
func (c *FarmerController) getStatusCodeForFarmerError(code domainerror.FarmerErrorCode) int {
	switch code {
	case domainerror.ErrCodeFarmerNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeFarmerNameRequired,
		domainerror.ErrCodeInvalidExperienceYears,
		domainerror.ErrCodeInvalidLandArea,
		domainerror.ErrCodeInvalidExperienceBucket,
		domainerror.ErrCodeMissingFarmerFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
