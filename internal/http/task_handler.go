package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-marketplace.com/task-marketplace/internal/data_models"
	"task-marketplace.com/task-marketplace/internal/http/validators"
	model "task-marketplace.com/task-marketplace/internal/models"
	"task-marketplace.com/task-marketplace/internal/services"
)

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return err
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), services.CreateTaskInput{
		Title:              req.Title,
		Description:        req.Description,
		Price:              req.Price,
		IsPaid:             req.IsPaid,
		CreatedByUserID:    req.CreatedByUserID,
		LocationID:         req.LocationID,
		ExpectedFinishDate: req.ExpectedFinishDate,
	})
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) GetTask(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.GetTask(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) ListTasks(c echo.Context) error {
	tasks, err := h.taskService.ListTasks(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count": len(tasks),
		"tasks": tasks,
	})
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateTaskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := validators.ValidateUpdateTaskRequest(&req); err != nil {
		return err
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), id, services.TaskPatch{
		Title:              req.Title,
		Description:        req.Description,
		Price:              req.Price,
		IsPaid:             req.IsPaid,
		ExpectedFinishDate: req.ExpectedFinishDate,
		LocationID:         req.LocationID,
	})
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) CancelTask(c echo.Context) error {
	return h.transitionTask(c, h.taskService.CancelTask)
}

func (h *Handler) StartTask(c echo.Context) error {
	return h.transitionTask(c, h.taskService.MarkInProgress)
}

func (h *Handler) CompleteTask(c echo.Context) error {
	return h.transitionTask(c, h.taskService.MarkCompleted)
}

func (h *Handler) UnconcludeTask(c echo.Context) error {
	return h.transitionTask(c, h.taskService.MarkUnconcluded)
}

func (h *Handler) transitionTask(
	c echo.Context,
	transition func(ctx context.Context, id string) (*model.Task, error),
) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	task, err := transition(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, task)
}
