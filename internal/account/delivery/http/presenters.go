package http

import (
	"easyplug-admin/internal/account"
	"easyplug-admin/pkg/easyplug"
)

type updateUserReq struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	Email       *string `json:"email"       binding:"omitempty,email"`
	PhoneNumber *string `json:"phoneNumber"`
}

func (r updateUserReq) toInput() account.UserInput {
	return account.UserInput{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
	}
}

type sellerInfoReq struct {
	BusinessName    *string `json:"businessName"`
	BusinessAddress *string `json:"businessAddress"`
	Description     *string `json:"description"`
}

func (r sellerInfoReq) toInput() account.SellerInfoInput {
	return account.SellerInfoInput{
		BusinessName:    r.BusinessName,
		BusinessAddress: r.BusinessAddress,
		Description:     r.Description,
	}
}

type profileResp struct {
	User       easyplug.User       `json:"user"`
	SellerInfo easyplug.SellerInfo `json:"sellerInfo"`
}

type userResp struct {
	User easyplug.User `json:"user"`
}

type sellerInfoResp struct {
	SellerInfo easyplug.SellerInfo `json:"sellerInfo"`
}
