// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/farm-tracker/backend/internal/application/usecase/market"
	domainerror "github.com/farm-tracker/backend/internal/domain/error"
	"github.com/farm-tracker/backend/internal/integration/entrypoint/dto"
)

// MarketController handles market price endpoints.
type MarketController struct {
	recordUseCase  *market.RecordPriceUseCase
	listUseCase    *market.ListPricesUseCase
	compareUseCase *market.ComparePriceUseCase
}

// NewMarketController creates a new market controller instance.
func NewMarketController(
	recordUseCase *market.RecordPriceUseCase,
	listUseCase *market.ListPricesUseCase,
	compareUseCase *market.ComparePriceUseCase,
) *MarketController {
	return &MarketController{
		recordUseCase:  recordUseCase,
		listUseCase:    listUseCase,
		compareUseCase: compareUseCase,
	}
}

// Record handles POST /market-prices requests.
func (c *MarketController) Record(ctx *gin.Context) {
	var req dto.RecordPriceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingMarketFields),
		})
		return
	}

	input := market.RecordPriceInput{
		CropName:       req.CropName,
		PricePerKg:     decimal.NewFromFloat(req.PricePerKg),
		MarketLocation: req.MarketLocation,
		Source:         req.Source,
	}
	if req.DateRecorded != nil {
		input.DateRecorded = *req.DateRecorded
	}

	output, err := c.recordUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleMarketError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToMarketPriceResponse(output.Price))
}

// List handles GET /market-prices requests.
func (c *MarketController) List(ctx *gin.Context) {
	input := market.ListPricesInput{
		CropName: ctx.Query("crop"),
	}
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			input.Limit = limit
		}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleMarketError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMarketPriceListResponse(output.Prices))
}

// Compare handles POST /market-prices/compare requests.
func (c *MarketController) Compare(ctx *gin.Context) {
	var req dto.ComparePriceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingMarketFields),
		})
		return
	}

	input := market.ComparePriceInput{
		CropName:          req.CropName,
		Quantity:          decimal.NewFromFloat(req.Quantity),
		ClaimedPricePerKg: decimal.NewFromFloat(req.PricePerKg),
	}

	output, err := c.compareUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleMarketError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToComparePriceResponse(output))
}

// handleMarketError handles market errors and returns appropriate HTTP responses.
func (c *MarketController) handleMarketError(ctx *gin.Context, err error) {
	var marketErr *domainerror.MarketError
	if errors.As(err, &marketErr) {
		ctx.JSON(c.getStatusCodeForMarketError(marketErr.Code), dto.ErrorResponse{
			Error: marketErr.Message,
			Code:  string(marketErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForMarketError maps market error codes to HTTP status codes.
func (c *MarketController) getStatusCodeForMarketError(code domainerror.MarketErrorCode) int {
	switch code {
	case domainerror.ErrCodeMarketPriceNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidQuantity,
		domainerror.ErrCodeInvalidClaimedPrice,
		domainerror.ErrCodeCropNameRequired,
		domainerror.ErrCodeMissingMarketFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
