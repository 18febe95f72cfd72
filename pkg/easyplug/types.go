package easyplug

import "io"

// Listing is an inventory listing as returned by the EasyPlug API.
type Listing struct {
	ListingID       string   `json:"listingId"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Price           float64  `json:"price"`
	Category        string   `json:"category"`
	Type            string   `json:"type"`   // SERVICES | PRODUCTS
	Images          []string `json:"images"` // stored image URLs
	IsAdvertisement bool     `json:"isAdvertisement"`
	SubscriptionID  string   `json:"subscriptionId"`
	Condition       string   `json:"condition"` // Old | New
	Status          string   `json:"status"`    // active | draft | sold | expired
	ExpiresAt       string   `json:"expires_at"`
	SellerID        string   `json:"sellerId"`
}

// Subscription is a subscription tier.
type Subscription struct {
	SubscriptionID  string  `json:"subscriptionId"`
	Name            string  `json:"name"`
	DurationInHours int     `json:"durationInHours"`
	Price           float64 `json:"price"`
	Description     string  `json:"description"`
	Status          string  `json:"status"`
}

// Identity is the minimal identity returned by GET /auth/me.
type Identity struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

// User is the full user record.
type User struct {
	UserID         string `json:"userId"`
	Email          string `json:"email"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	PhoneNumber    string `json:"phoneNumber"`
	Role           string `json:"role"`
	ProfilePicture string `json:"profilePicture"`
}

// SellerInfo is the seller/business record attached to a user.
type SellerInfo struct {
	SellerInfoID    string `json:"sellerInfoId"`
	BusinessName    string `json:"businessName"`
	BusinessAddress string `json:"businessAddress"`
	BusinessPicture string `json:"businessPicture"`
	Description     string `json:"description"`
}

// Profile is the response of GET /auth/me/full.
type Profile struct {
	User       User       `json:"user"`
	SellerInfo SellerInfo `json:"sellerInfo"`
}

// TokenEnvelope tolerates both token field spellings the auth endpoints use.
type TokenEnvelope struct {
	Token       string `json:"token"`
	AccessToken string `json:"accessToken"`
}

// BearerToken returns whichever token field the server populated.
func (e TokenEnvelope) BearerToken() string {
	if e.AccessToken != "" {
		return e.AccessToken
	}
	return e.Token
}

// ImageFile is one file to append under a multipart field.
type ImageFile struct {
	Name   string
	Reader io.Reader
}

// ListingPayload is the multipart body for listing create/update. Fields hold
// the already-stringified form values (nested objects JSON-encoded by the
// caller); Images are each appended under the "images" field.
type ListingPayload struct {
	Fields map[string]string
	Images []ImageFile
}
