package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"easyplug-admin/internal/inventory"
	"easyplug-admin/pkg/response"
)

// List godoc
// @Summary     List listings
// @Description Returns the admin view of all listings with optional filters.
// @Tags        Inventory
// @Produce     json
// @Param       status query string false "Filter by status (active/draft/sold/expired)"
// @Param       type   query string false "Filter by type (PRODUCTS/SERVICES)"
// @Param       limit  query int    false "Page size"
// @Param       offset query int    false "Page offset"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Upstream API failure"
// @Router      /api/v1/inventory [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, listResp{Listings: output.Listings, Total: output.Total})
}

// Detail godoc
// @Summary     Get listing detail
// @Tags        Inventory
// @Produce     json
// @Param       id path string true "Listing ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/inventory/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, detailResp{Listing: output.Listing})
}

// Delete godoc
// @Summary     Delete a listing
// @Tags        Inventory
// @Produce     json
// @Param       id path string true "Listing ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/inventory/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// OpenWizard godoc
// @Summary     Open the listing wizard
// @Description Starts a wizard session. A listingId in the body opens it in
// @Description edit mode, prefilled from the existing listing.
// @Tags        Inventory
// @Accept      json
// @Produce     json
// @Param       body body openWizardReq false "Optional edit target"
// @Success     200 {object} wizardResp
// @Failure     404 {object} response.Resp "Listing not found"
// @Router      /api/v1/inventory/wizard [POST]
func (h *handler) OpenWizard(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processOpenWizardReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.OpenWizard(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.OpenWizard: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newWizardResp(output))
}

// Wizard godoc
// @Summary     Get wizard state
// @Tags        Inventory
// @Produce     json
// @Param       sid path string true "Wizard session ID"
// @Success     200 {object} wizardResp
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/inventory/wizard/{sid} [GET]
func (h *handler) Wizard(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Wizard(ctx, c.Param("sid"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newWizardResp(output))
}

// UpdateFields godoc
// @Summary     Update wizard form fields
// @Description Applies a partial update to the draft. Changing the
// @Description subscription recomputes the tier-derived fields.
// @Tags        Inventory
// @Accept      json
// @Produce     json
// @Param       sid  path string          true "Wizard session ID"
// @Param       body body updateFieldsReq true "Changed fields"
// @Success     200 {object} wizardResp
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/inventory/wizard/{sid}/fields [PUT]
func (h *handler) UpdateFields(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateFieldsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdateFields(ctx, c.Param("sid"), req.toChanges())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newWizardResp(output))
}

// AddImages godoc
// @Summary     Add images to the wizard
// @Description Accepts multipart files under the "images" field. The set is
// @Description capped at six; the response carries a warning when truncated.
// @Tags        Inventory
// @Accept      multipart/form-data
// @Produce     json
// @Param       sid    path     string true "Wizard session ID"
// @Param       images formData file   true "Image files"
// @Success     200 {object} wizardResp
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/inventory/wizard/{sid}/images [POST]
func (h *handler) AddImages(c *gin.Context) {
	ctx := c.Request.Context()

	form, err := c.MultipartForm()
	if err != nil {
		response.Error(c, err)
		return
	}

	var uploads []inventory.ImageUpload
	var closers []io.Closer
	defer func() {
		for _, cl := range closers {
			cl.Close()
		}
	}()
	for _, fh := range form.File["images"] {
		f, err := fh.Open()
		if err != nil {
			response.Error(c, err)
			return
		}
		closers = append(closers, f)
		uploads = append(uploads, inventory.ImageUpload{Name: fh.Filename, Reader: f})
	}

	output, err := h.uc.AddImages(ctx, c.Param("sid"), uploads)
	if err != nil {
		h.l.Errorf(ctx, "uc.AddImages: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newWizardResp(output))
}

// RemoveImage godoc
// @Summary     Remove one wizard image
// @Tags        Inventory
// @Produce     json
// @Param       sid   path string true "Wizard session ID"
// @Param       index path int    true "Image position"
// @Success     200 {object} wizardResp
// @Failure     400 {object} response.Resp "Index out of range"
// @Router      /api/v1/inventory/wizard/{sid}/images/{index} [DELETE]
func (h *handler) RemoveImage(c *gin.Context) {
	ctx := c.Request.Context()

	idx, err := h.processImageIndex(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.RemoveImage(ctx, c.Param("sid"), idx)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newWizardResp(output))
}

// Preview godoc
// @Summary     Serve an image preview
// @Description Streams the image behind a preview handle. Handles are
// @Description invalidated whenever the image set changes.
// @Tags        Inventory
// @Produce     octet-stream
// @Param       sid path string true "Wizard session ID"
// @Param       pid path string true "Preview handle"
// @Success     200 {file} binary
// @Failure     404 {object} response.Resp "Preview not found"
// @Router      /api/v1/inventory/wizard/{sid}/previews/{pid} [GET]
func (h *handler) Preview(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Preview(ctx, c.Param("sid"), c.Param("pid"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	c.File(output.Path)
}

// Next godoc
// @Summary     Advance an edit session to payment
// @Tags        Inventory
// @Produce     json
// @Param       sid path string true "Wizard session ID"
// @Success     200 {object} wizardResp
// @Failure     409 {object} response.Resp "Create sessions must submit first"
// @Router      /api/v1/inventory/wizard/{sid}/next [POST]
func (h *handler) Next(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Next(ctx, c.Param("sid"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newWizardResp(output))
}

// Submit godoc
// @Summary     Submit the details step
// @Description Validates the draft and saves it upstream. Creates advance to
// @Description the payment step; edits close the wizard and redirect.
// @Tags        Inventory
// @Produce     json
// @Param       sid path string true "Wizard session ID"
// @Success     200 {object} submitResp
// @Failure     422 {object} response.Resp "Validation failed"
// @Failure     502 {object} response.Resp "Upstream API failure"
// @Router      /api/v1/inventory/wizard/{sid}/submit [POST]
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Submit(ctx, c.Param("sid"))
	if err != nil {
		if errors.Is(err, inventory.ErrValidation) {
			response.ValidationError(c, "validation failed", output.FieldErrors)
			return
		}
		h.l.Errorf(ctx, "uc.Submit: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSubmitResp(output))
}

// Pay godoc
// @Summary     Complete the mock payment step
// @Description MasterCard requires complete card details; Capitec Pay is
// @Description simulated without them. Either closes the wizard.
// @Tags        Inventory
// @Accept      json
// @Produce     json
// @Param       sid  path string true "Wizard session ID"
// @Param       body body payReq true "Payment method and card"
// @Success     200 {object} payResp
// @Failure     422 {object} response.Resp "Card incomplete"
// @Router      /api/v1/inventory/wizard/{sid}/pay [POST]
func (h *handler) Pay(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPayReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Pay(ctx, c.Param("sid"), req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, payResp{Message: output.Message, Redirect: output.Redirect})
}

// CancelWizard godoc
// @Summary     Discard a wizard session
// @Tags        Inventory
// @Produce     json
// @Param       sid path string true "Wizard session ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/inventory/wizard/{sid} [DELETE]
func (h *handler) CancelWizard(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.CancelWizard(ctx, c.Param("sid")); err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
