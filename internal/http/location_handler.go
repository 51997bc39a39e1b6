package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-marketplace.com/task-marketplace/internal/data_models"
)

func (h *Handler) CreateLocation(c echo.Context) error {
	var req dto.CreateLocationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	location, err := h.locationService.CreateLocation(
		c.Request().Context(),
		req.UserID,
		req.Address,
		req.City,
		req.PostalCode,
	)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, location)
}

func (h *Handler) GetLocation(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	location, err := h.locationService.GetLocation(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, location)
}
