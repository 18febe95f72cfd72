package http

import (
	"easyplug-admin/internal/subscription"
	"easyplug-admin/pkg/easyplug"
)

type subscriptionReq struct {
	Name            string `json:"name"`
	DurationInHours string `json:"durationInHours"`
	Price           string `json:"price"`
	Description     string `json:"description"`
	Status          string `json:"status"`
}

func (r subscriptionReq) toInput() subscription.CreateInput {
	return subscription.CreateInput{
		Name:            r.Name,
		DurationInHours: r.DurationInHours,
		Price:           r.Price,
		Description:     r.Description,
		Status:          r.Status,
	}
}

type listResp struct {
	Subscriptions []easyplug.Subscription `json:"subscriptions"`
}

type detailResp struct {
	Subscription easyplug.Subscription `json:"subscription"`
}
