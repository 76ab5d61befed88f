package auth

import "github.com/vetrivel962969-dotcom/Paperid/internal/model"

type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type LoginResponse struct {
	User        model.User `json:"user"`
	AccessToken string     `json:"access_token"`
}
