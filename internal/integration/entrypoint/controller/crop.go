// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farm-tracker/backend/internal/application/adapter"
	"github.com/farm-tracker/backend/internal/application/usecase/crop"
	"github.com/farm-tracker/backend/internal/domain/entity"
	domainerror "github.com/farm-tracker/backend/internal/domain/error"
	"github.com/farm-tracker/backend/internal/integration/entrypoint/dto"
)

// CropController handles crop endpoints.
type CropController struct {
	listUseCase   *crop.ListCropsUseCase
	getUseCase    *crop.GetCropUseCase
	createUseCase *crop.CreateCropUseCase
	updateUseCase *crop.UpdateCropUseCase
	deleteUseCase *crop.DeleteCropUseCase
}

// NewCropController creates a new crop controller instance.
func NewCropController(
	listUseCase *crop.ListCropsUseCase,
	getUseCase *crop.GetCropUseCase,
	createUseCase *crop.CreateCropUseCase,
	updateUseCase *crop.UpdateCropUseCase,
	deleteUseCase *crop.DeleteCropUseCase,
) *CropController {
	return &CropController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /crops requests.
func (c *CropController) List(ctx *gin.Context) {
	input := crop.ListCropsInput{
		Search: ctx.Query("search"),
		Season: ctx.Query("season"),
		Status: ctx.Query("status"),
		Sort:   adapter.CropSort(ctx.Query("sort")),
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCropError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCropListResponse(output.Crops))
}

// Get handles GET /crops/:id requests.
func (c *CropController) Get(ctx *gin.Context) {
	cropID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid crop ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), crop.GetCropInput{CropID: cropID})
	if err != nil {
		c.handleCropError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCropListResponse([]*crop.CropListItem{output.Crop}).Crops[0])
}

// Create handles POST /crops requests.
func (c *CropController) Create(ctx *gin.Context) {
	var req dto.CreateCropRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingCropFields),
		})
		return
	}

	farmerID, err := uuid.Parse(req.FarmerID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid farmer ID format",
		})
		return
	}

	status := entity.CropStatusPlanted
	if req.Status != "" {
		status = entity.CropStatus(req.Status)
	}

	input := crop.CreateCropInput{
		Name:           req.Name,
		FarmerID:       farmerID,
		Season:         entity.Season(req.Season),
		Status:         status,
		PricePerKg:     decimal.NewFromFloat(req.PricePerKg),
		Quantity:       decimal.NewFromFloat(req.Quantity),
		PlantedDate:    req.PlantedDate,
		HarvestDate:    req.HarvestDate,
		InvestmentCost: decimal.NewFromFloat(req.InvestmentCost),
		Notes:          req.Notes,
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID format",
			})
			return
		}
		input.CategoryID = &categoryID
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCropError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCropResponse(output.Crop))
}

// Update handles PATCH /crops/:id requests.
func (c *CropController) Update(ctx *gin.Context) {
	cropID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid crop ID format",
		})
		return
	}

	var req dto.UpdateCropRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := crop.UpdateCropInput{
		CropID:            cropID,
		Name:              req.Name,
		ClearCategory:     req.ClearCategory,
		PlantedDate:       req.PlantedDate,
		HarvestDate:       req.HarvestDate,
		ActualHarvestDate: req.ActualHarvestDate,
		Notes:             req.Notes,
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID format",
			})
			return
		}
		input.CategoryID = &categoryID
	}
	if req.Season != nil {
		season := entity.Season(*req.Season)
		input.Season = &season
	}
	if req.Status != nil {
		status := entity.CropStatus(*req.Status)
		input.Status = &status
	}
	if req.PricePerKg != nil {
		price := decimal.NewFromFloat(*req.PricePerKg)
		input.PricePerKg = &price
	}
	if req.Quantity != nil {
		quantity := decimal.NewFromFloat(*req.Quantity)
		input.Quantity = &quantity
	}
	if req.InvestmentCost != nil {
		cost := decimal.NewFromFloat(*req.InvestmentCost)
		input.InvestmentCost = &cost
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCropError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCropResponse(output.Crop))
}

// Delete handles DELETE /crops/:id requests.
func (c *CropController) Delete(ctx *gin.Context) {
	cropID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid crop ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), crop.DeleteCropInput{CropID: cropID}); err != nil {
		c.handleCropError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleCropError handles crop errors and returns appropriate HTTP responses.
func (c *CropController) handleCropError(ctx *gin.Context, err error) {
	if errors.Is(err, domainerror.ErrCropNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Crop not found",
			Code:  string(domainerror.ErrCodeCropNotFound),
		})
		return
	}

	var cropErr *domainerror.CropError
	if errors.As(err, &cropErr) {
		ctx.JSON(c.getStatusCodeForCropError(cropErr.Code), dto.ErrorResponse{
			Error: cropErr.Message,
			Code:  string(cropErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForCropError maps crop error codes to HTTP status codes.
func (c *CropController) getStatusCodeForCropError(code domainerror.CropErrorCode) int {
	switch code {
	case domainerror.ErrCodeCropNotFound,
		domainerror.ErrCodeCropCategoryNotFound,
		domainerror.ErrCodeCropFarmerNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidSeason,
		domainerror.ErrCodeInvalidCropStatus,
		domainerror.ErrCodeHarvestDateRequired,
		domainerror.ErrCodeNegativePrice,
		domainerror.ErrCodeNegativeQuantity,
		domainerror.ErrCodeNegativeInvestment,
		domainerror.ErrCodeInvalidCropSort,
		domainerror.ErrCodeMissingCropFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
