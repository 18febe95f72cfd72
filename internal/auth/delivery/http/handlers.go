package http

import (
	"io"

	"github.com/gin-gonic/gin"

	"easyplug-admin/pkg/easyplug"
	"easyplug-admin/pkg/response"
)

// Login godoc
// @Summary     Sign in with email and password
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} sessionResp
// @Failure     401 {object} response.Resp "Invalid credentials"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Login: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, sessionResp{Redirect: output.Redirect})
}

// GoogleLogin godoc
// @Summary     Sign in with a Google credential
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body googleLoginReq true "Google ID token credential"
// @Success     200 {object} sessionResp
// @Failure     401 {object} response.Resp "Invalid credential"
// @Router      /api/v1/auth/login/google [POST]
func (h *handler) GoogleLogin(c *gin.Context) {
	ctx := c.Request.Context()

	var req googleLoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.GoogleLogin(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.GoogleLogin: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, sessionResp{Redirect: output.Redirect})
}

// RegisterSeller godoc
// @Summary     Register a new seller
// @Description Multipart form: registration fields plus optional
// @Description profilePicture and businessPicture files.
// @Tags        Auth
// @Accept      multipart/form-data
// @Produce     json
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/auth/register/seller [POST]
func (h *handler) RegisterSeller(c *gin.Context) {
	ctx := c.Request.Context()

	form, err := c.MultipartForm()
	if err != nil {
		response.Error(c, err)
		return
	}

	files := make(map[string]easyplug.ImageFile)
	var closers []io.Closer
	defer func() {
		for _, cl := range closers {
			cl.Close()
		}
	}()
	for _, field := range registerFileFields {
		fhs := form.File[field]
		if len(fhs) == 0 {
			continue
		}
		f, err := fhs[0].Open()
		if err != nil {
			response.Error(c, err)
			return
		}
		closers = append(closers, f)
		files[field] = easyplug.ImageFile{Name: fhs[0].Filename, Reader: f}
	}

	output, err := h.uc.RegisterSeller(ctx, registerInputFromForm(form, files))
	if err != nil {
		h.l.Errorf(ctx, "uc.RegisterSeller: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, sessionResp{Redirect: output.Redirect})
}

// SendCode godoc
// @Summary     Send an email verification code
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body sendCodeReq true "Target email"
// @Success     200 {object} sendCodeResp
// @Router      /api/v1/auth/send-code [POST]
func (h *handler) SendCode(c *gin.Context) {
	ctx := c.Request.Context()

	var req sendCodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SendCode(ctx, req.Email)
	if err != nil {
		h.l.Errorf(ctx, "uc.SendCode: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, sendCodeResp{Message: output.Message})
}

// Logout godoc
// @Summary     Sign out
// @Description Clears the stored session token.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Logout(ctx); err != nil {
		h.l.Errorf(ctx, "uc.Logout: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, sessionResp{Redirect: "/login"})
}

// Me godoc
// @Summary     Current identity
// @Tags        Auth
// @Produce     json
// @Success     200 {object} meResp
// @Failure     401 {object} response.Resp "Not signed in"
// @Router      /api/v1/auth/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	identity, err := h.uc.Me(ctx)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, meResp{Identity: identity})
}
