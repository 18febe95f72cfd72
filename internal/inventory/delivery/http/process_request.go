package http

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

var errBadIndex = errors.New("image index must be a non-negative integer")

// processOpenWizardReq binds the optional edit-mode body. An empty body opens
// the wizard in create mode.
func (h *handler) processOpenWizardReq(c *gin.Context) (openWizardReq, error) {
	var req openWizardReq
	if c.Request.ContentLength == 0 {
		return req, nil
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processUpdateFieldsReq(c *gin.Context) (updateFieldsReq, error) {
	var req updateFieldsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processPayReq(c *gin.Context) (payReq, error) {
	var req payReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processImageIndex parses the :index path segment.
func (h *handler) processImageIndex(c *gin.Context) (int, error) {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil || idx < 0 {
		return 0, errBadIndex
	}
	return idx, nil
}
