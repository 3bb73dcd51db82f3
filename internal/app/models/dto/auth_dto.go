package dto

// LoginRequest carries the credentials of a login attempt
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"student@university.edu"`
	Password string `json:"password" binding:"required" example:"secret1"`
}

// LoginResponse carries the issued access token and the resolved role
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int    `json:"expiresIn" example:"3600"`
	Role        string `json:"role" example:"STUDENT"`
}
