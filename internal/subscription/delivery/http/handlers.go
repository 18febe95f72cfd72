package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"easyplug-admin/internal/subscription"
	"easyplug-admin/pkg/response"
)

// List godoc
// @Summary     List subscription tiers
// @Tags        Subscriptions
// @Produce     json
// @Success     200 {object} listResp
// @Failure     502 {object} response.Resp "Upstream API failure"
// @Router      /api/v1/subscriptions [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, listResp{Subscriptions: output.Subscriptions})
}

// Detail godoc
// @Summary     Get one subscription tier
// @Tags        Subscriptions
// @Produce     json
// @Param       id path string true "Subscription ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/subscriptions/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, detailResp{Subscription: output.Subscription})
}

// Create godoc
// @Summary     Create a subscription tier
// @Tags        Subscriptions
// @Accept      json
// @Produce     json
// @Param       body body subscriptionReq true "Subscription form"
// @Success     200 {object} detailResp
// @Failure     422 {object} response.Resp "Validation failed"
// @Router      /api/v1/subscriptions [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req subscriptionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		var vErr *subscription.ValidationError
		if errors.As(err, &vErr) {
			response.ValidationError(c, "validation failed", vErr.Fields)
			return
		}
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, detailResp{Subscription: output.Subscription})
}

// Update godoc
// @Summary     Update a subscription tier
// @Tags        Subscriptions
// @Accept      json
// @Produce     json
// @Param       id   path string          true "Subscription ID"
// @Param       body body subscriptionReq true "Subscription form"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     422 {object} response.Resp "Validation failed"
// @Router      /api/v1/subscriptions/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	var req subscriptionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, c.Param("id"), req.toInput())
	if err != nil {
		var vErr *subscription.ValidationError
		if errors.As(err, &vErr) {
			response.ValidationError(c, "validation failed", vErr.Fields)
			return
		}
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, detailResp{Subscription: output.Subscription})
}
