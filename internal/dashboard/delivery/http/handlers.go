package http

import (
	"github.com/gin-gonic/gin"

	"easyplug-admin/pkg/easyplug"
	pkgErrors "easyplug-admin/pkg/errors"
	"easyplug-admin/pkg/response"
)

type metricsResp struct {
	TotalListings  int `json:"totalListings"`
	Active         int `json:"active"`
	Draft          int `json:"draft"`
	Sold           int `json:"sold"`
	Expired        int `json:"expired"`
	Products       int `json:"products"`
	Services       int `json:"services"`
	Advertisements int `json:"advertisements"`
}

// Metrics godoc
// @Summary     Dashboard metrics
// @Description Counts over the admin listing collection.
// @Tags        Dashboard
// @Produce     json
// @Success     200 {object} metricsResp
// @Failure     502 {object} response.Resp "Upstream API failure"
// @Router      /api/v1/dashboard/metrics [GET]
func (h *handler) Metrics(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Metrics(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Metrics: %v", err)
		response.Error(c, pkgErrors.NewHTTPError(502, easyplug.ServerMessage(err, "EasyPlug API request failed")))
		return
	}

	m := output.Metrics
	response.OK(c, metricsResp{
		TotalListings:  m.TotalListings,
		Active:         m.Active,
		Draft:          m.Draft,
		Sold:           m.Sold,
		Expired:        m.Expired,
		Products:       m.Products,
		Services:       m.Services,
		Advertisements: m.Advertisements,
	})
}
