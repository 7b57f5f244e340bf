package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"registry/internal/delivery/http/response"
	"registry/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LocationHandler serves the exclusive location list.
type LocationHandler struct {
	uc     usecase.LocationUsecase
	logger *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler, injected by Fx.
func NewLocationHandler(uc usecase.LocationUsecase, logger *slog.Logger) *LocationHandler {
	return &LocationHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListLocations lists active partner venues. When the caller supplies both
// "lat" and "lng" query parameters the list is ordered nearest-first.
func (h *LocationHandler) ListLocations(c echo.Context) error {
	input := &usecase.ListLocationsInput{}

	latStr := c.QueryParam("lat")
	lngStr := c.QueryParam("lng")
	if latStr != "" && lngStr != "" {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid latitude")
		}
		lng, err := strconv.ParseFloat(lngStr, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid longitude")
		}
		input.Latitude = &lat
		input.Longitude = &lng
	}

	locations, err := h.uc.ListLocations(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, locations, "Locations retrieved")
}
