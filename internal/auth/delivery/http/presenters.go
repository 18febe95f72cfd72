package http

import (
	"mime/multipart"

	"easyplug-admin/internal/auth"
	"easyplug-admin/pkg/easyplug"
)

type loginReq struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput() auth.LoginInput {
	return auth.LoginInput{Email: r.Email, Password: r.Password}
}

type googleLoginReq struct {
	Credential string `json:"credential" binding:"required"`
}

func (r googleLoginReq) toInput() auth.GoogleLoginInput {
	return auth.GoogleLoginInput{Credential: r.Credential}
}

type sendCodeReq struct {
	Email string `json:"email" binding:"required,email"`
}

// registerFileFields are the multipart file fields accepted on seller
// registration, keyed by their upstream field names.
var registerFileFields = []string{"profilePicture", "businessPicture"}

func registerInputFromForm(form *multipart.Form, files map[string]easyplug.ImageFile) auth.RegisterInput {
	fields := make(map[string]string, len(form.Value))
	for name, values := range form.Value {
		if len(values) > 0 {
			fields[name] = values[0]
		}
	}
	return auth.RegisterInput{Fields: fields, Files: files}
}

type sessionResp struct {
	Redirect string `json:"redirect"`
}

type sendCodeResp struct {
	Message string `json:"message"`
}

type meResp struct {
	Identity easyplug.Identity `json:"identity"`
}
