package handler

import "github.com/spyweb/portal-api/internal/core/domain"

type signupRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Company  string `json:"company"`
	Phone    string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type profileUpdateRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"    validate:"omitempty,email"`
	Company  *string `json:"company,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6"`
}

// authResponse is the session payload: the profile snapshot plus, when the
// operation minted one, a bearer token. The client stores the whole payload.
type authResponse struct {
	Token   string `json:"token,omitempty"`
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Role    string `json:"role"`
	Status  string `json:"status"`
}

func toAuthResponse(token string, account *domain.Account) authResponse {
	return authResponse{
		Token:   token,
		ID:      account.ID,
		Name:    account.Name,
		Email:   account.Email,
		Company: account.Company,
		Phone:   account.Phone,
		Address: account.Address,
		Role:    account.Role,
		Status:  string(account.Status),
	}
}
