package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-marketplace.com/task-marketplace/internal/data_models"
	model "task-marketplace.com/task-marketplace/internal/models"
)

func (h *Handler) CreateOffer(c echo.Context) error {
	var req dto.CreateOfferRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	offer, err := h.offerService.CreateOffer(c.Request().Context(), req.TaskID, req.UserID, req.Message)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, offer)
}

func (h *Handler) GetOffer(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	offer, err := h.offerService.GetOffer(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, offer)
}

func (h *Handler) ListOffers(c echo.Context) error {
	var (
		offers []model.Offer
		err    error
	)
	if taskID := c.QueryParam("task_id"); taskID != "" {
		offers, err = h.offerService.ListOffersByTask(c.Request().Context(), taskID)
	} else {
		offers, err = h.offerService.ListOffers(c.Request().Context())
	}
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count":  len(offers),
		"offers": offers,
	})
}

func (h *Handler) UpdateOffer(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateOfferRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	offer, err := h.offerService.UpdateMessage(c.Request().Context(), id, *req.Message)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, offer)
}

func (h *Handler) AcceptOffer(c echo.Context) error {
	return h.transitionOffer(c, h.offerService.AcceptOffer)
}

func (h *Handler) RejectOffer(c echo.Context) error {
	return h.transitionOffer(c, h.offerService.RejectOffer)
}

func (h *Handler) WithdrawOffer(c echo.Context) error {
	return h.transitionOffer(c, h.offerService.WithdrawOffer)
}

func (h *Handler) transitionOffer(
	c echo.Context,
	transition func(ctx context.Context, id string) (*model.Offer, error),
) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	offer, err := transition(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, offer)
}
