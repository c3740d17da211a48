package dto

type OwnerLoginRequest struct {
	AccessKey string `json:"access_key" validate:"required"`
}

type OwnerLoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"` // seconds
}
