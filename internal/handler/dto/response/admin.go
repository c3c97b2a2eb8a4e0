package response

type AdminLoginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}
