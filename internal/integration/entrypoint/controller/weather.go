// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/farm-tracker/backend/internal/application/usecase/weather"
	domainerror "github.com/farm-tracker/backend/internal/domain/error"
	"github.com/farm-tracker/backend/internal/integration/entrypoint/dto"
)

// WeatherController handles weather observation endpoints.
type WeatherController struct {
	recordUseCase    *weather.RecordObservationUseCase
	listUseCase      *weather.ListObservationsUseCase
	locationsUseCase *weather.ListLocationsUseCase
}

// NewWeatherController creates a new weather controller instance.
func NewWeatherController(
	recordUseCase *weather.RecordObservationUseCase,
	listUseCase *weather.ListObservationsUseCase,
	locationsUseCase *weather.ListLocationsUseCase,
) *WeatherController {
	return &WeatherController{
		recordUseCase:    recordUseCase,
		listUseCase:      listUseCase,
		locationsUseCase: locationsUseCase,
	}
}

// Record handles POST /weather requests.
func (c *WeatherController) Record(ctx *gin.Context) {
	var req dto.RecordObservationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeLocationRequired),
		})
		return
	}

	input := weather.RecordObservationInput{
		Location:    req.Location,
		Temperature: req.Temperature,
		Humidity:    req.Humidity,
		Rainfall:    req.Rainfall,
		Condition:   req.Condition,
	}
	if req.DateRecorded != nil {
		input.DateRecorded = *req.DateRecorded
	}

	output, err := c.recordUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleWeatherError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToWeatherObservationResponse(output.Observation))
}

// List handles GET /weather requests.
func (c *WeatherController) List(ctx *gin.Context) {
	input := weather.ListObservationsInput{
		Location: ctx.Query("location"),
	}
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			input.Limit = limit
		}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleWeatherError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWeatherListResponse(output.Observations))
}

// Locations handles GET /weather/locations requests.
func (c *WeatherController) Locations(ctx *gin.Context) {
	output, err := c.locationsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve locations",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.WeatherLocationsResponse{Locations: output.Locations})
}

// handleWeatherError handles weather errors and returns appropriate HTTP responses.
func (c *WeatherController) handleWeatherError(ctx *gin.Context, err error) {
	var weatherErr *domainerror.WeatherError
	if errors.As(err, &weatherErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: weatherErr.Message,
			Code:  string(weatherErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
