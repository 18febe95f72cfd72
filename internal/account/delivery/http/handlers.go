package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"easyplug-admin/pkg/easyplug"
	"easyplug-admin/pkg/response"
)

// Profile godoc
// @Summary     Full profile of the signed-in user
// @Tags        Account
// @Produce     json
// @Success     200 {object} profileResp
// @Failure     502 {object} response.Resp "Upstream API failure"
// @Router      /api/v1/auth/me/full [GET]
func (h *handler) Profile(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Profile(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Profile: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, profileResp{
		User:       output.Profile.User,
		SellerInfo: output.Profile.SellerInfo,
	})
}

// UpdateUser godoc
// @Summary     Update user fields
// @Tags        Account
// @Accept      json
// @Produce     json
// @Param       id   path string        true "User ID"
// @Param       body body updateUserReq true "Changed fields"
// @Success     200 {object} userResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/users/{id} [PUT]
func (h *handler) UpdateUser(c *gin.Context) {
	ctx := c.Request.Context()

	var req updateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	user, err := h.uc.UpdateUser(ctx, c.Param("id"), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateUser: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, userResp{User: user})
}

// UploadProfilePicture godoc
// @Summary     Upload the profile picture
// @Tags        Account
// @Accept      multipart/form-data
// @Produce     json
// @Param       profilePicture formData file true "Image file"
// @Success     200 {object} response.Resp
// @Router      /api/v1/users/me/profile-picture [POST]
func (h *handler) UploadProfilePicture(c *gin.Context) {
	h.uploadPicture(c, "profilePicture", h.uc.UploadProfilePicture)
}

// UpdateSellerInfo godoc
// @Summary     Update seller info by ID
// @Tags        Account
// @Accept      json
// @Produce     json
// @Param       id   path string        true "Seller info ID"
// @Param       body body sellerInfoReq true "Changed fields"
// @Success     200 {object} sellerInfoResp
// @Router      /api/v1/seller-info/{id} [PUT]
func (h *handler) UpdateSellerInfo(c *gin.Context) {
	ctx := c.Request.Context()

	var req sellerInfoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	info, err := h.uc.UpdateSellerInfo(ctx, c.Param("id"), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateSellerInfo: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, sellerInfoResp{SellerInfo: info})
}

// UpdateSellerInfoMe godoc
// @Summary     Update the signed-in seller's info
// @Tags        Account
// @Accept      json
// @Produce     json
// @Param       body body sellerInfoReq true "Changed fields"
// @Success     200 {object} sellerInfoResp
// @Router      /api/v1/seller-info/me [PUT]
func (h *handler) UpdateSellerInfoMe(c *gin.Context) {
	ctx := c.Request.Context()

	var req sellerInfoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	info, err := h.uc.UpdateSellerInfoMe(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateSellerInfoMe: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, sellerInfoResp{SellerInfo: info})
}

// UploadBusinessPicture godoc
// @Summary     Upload the business picture
// @Tags        Account
// @Accept      multipart/form-data
// @Produce     json
// @Param       businessPicture formData file true "Image file"
// @Success     200 {object} response.Resp
// @Router      /api/v1/seller-info/me/business-picture [POST]
func (h *handler) UploadBusinessPicture(c *gin.Context) {
	h.uploadPicture(c, "businessPicture", h.uc.UploadBusinessPicture)
}

// uploadPicture handles the single-file multipart upload endpoints.
func (h *handler) uploadPicture(c *gin.Context, field string, upload func(ctx context.Context, file easyplug.ImageFile) error) {
	ctx := c.Request.Context()

	fh, err := c.FormFile(field)
	if err != nil {
		response.Error(c, err)
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer f.Close()

	if err := upload(ctx, easyplug.ImageFile{Name: fh.Filename, Reader: f}); err != nil {
		h.l.Errorf(ctx, "uc upload %s: %v", field, err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
