package http

import (
	"github.com/labstack/echo/v4"

	apperrors "task-marketplace.com/task-marketplace/internal/errors"
	"task-marketplace.com/task-marketplace/internal/services"
)

type Handler struct {
	taskService     *services.TaskService
	offerService    *services.OfferService
	locationService *services.LocationService
}

func NewHandler(
	taskService *services.TaskService,
	offerService *services.OfferService,
	locationService *services.LocationService,
) *Handler {
	return &Handler{
		taskService:     taskService,
		offerService:    offerService,
		locationService: locationService,
	}
}

// bindAndValidate decodes the request body into req and runs the registered validator.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return toHTTPError(apperrors.ErrInvalidJSON)
	}
	return c.Validate(req)
}

func pathID(c echo.Context) (string, error) {
	id := c.Param("id")
	if id == "" {
		return "", toHTTPError(apperrors.ErrIDRequired)
	}
	return id, nil
}

// toHTTPError keeps the cause as the internal error so it reaches the request log but not the client.
func toHTTPError(err error) error {
	return echo.NewHTTPError(apperrors.StatusCode(err), apperrors.PublicMessage(err)).SetInternal(err)
}
