package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-marketplace.com/task-marketplace/internal/data_models"
)

// ValidateCreateTaskRequest holds the checks struct tags cannot express.
func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	if r.Price.IsNegative() {
		return echo.NewHTTPError(http.StatusBadRequest, "price must not be negative")
	}
	return nil
}

func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest) error {
	if r.Price != nil && r.Price.IsNegative() {
		return echo.NewHTTPError(http.StatusBadRequest, "price must not be negative")
	}
	return nil
}
