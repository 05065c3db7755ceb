package dto

import "time"

// CreateCustomerRequest entrada del registro de cliente (password y datos de perfil).
type CreateCustomerRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Firstname   string `json:"firstname"`
	Lastname    string `json:"lastname"`
	PhoneNumber string `json:"phoneNumber"`
}

// VerifyCustomerRequest entrada de la verificación por OTP.
type VerifyCustomerRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// CustomerResponse salida de un cliente con su cuenta (sin credenciales).
type CustomerResponse struct {
	ID               string    `json:"id"`
	Firstname        string    `json:"firstname"`
	Lastname         string    `json:"lastname"`
	Email            string    `json:"email"`
	PhoneNumber      string    `json:"phoneNumber"`
	IsActive         bool      `json:"isActive"`
	IsEmailConfirmed bool      `json:"isEmailConfirmed"`
	CreatedAt        time.Time `json:"createdAt"`
}
