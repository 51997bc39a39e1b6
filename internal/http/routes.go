package http

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"

	middleware "task-marketplace.com/task-marketplace/internal/http/middlewares"
	"task-marketplace.com/task-marketplace/internal/http/validators"
)

func Register(e *echo.Echo, h *Handler, rateLimitPerMinute int, logger *slog.Logger) {
	e.Validator = validators.NewRequestValidator()

	e.Use(middleware.RequestLogger(logger))
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.POST("/task", h.CreateTask)
	e.GET("/task", h.ListTasks)
	e.GET("/task/:id", h.GetTask)
	e.PATCH("/task/:id", h.UpdateTask)
	e.DELETE("/task/:id", h.CancelTask)
	e.POST("/task/:id/start", h.StartTask)
	e.POST("/task/:id/complete", h.CompleteTask)
	e.POST("/task/:id/unconclude", h.UnconcludeTask)

	e.POST("/offer", h.CreateOffer)
	e.GET("/offer", h.ListOffers)
	e.GET("/offer/:id", h.GetOffer)
	e.PATCH("/offer/:id", h.UpdateOffer)
	e.POST("/offer/:id/accept", h.AcceptOffer)
	e.POST("/offer/:id/reject", h.RejectOffer)
	e.POST("/offer/:id/withdraw", h.WithdrawOffer)

	e.POST("/location", h.CreateLocation)
	e.GET("/location/:id", h.GetLocation)
}
