package dto

// RegisterStudentRequest carries a coordinator's student registration
type RegisterStudentRequest struct {
	Email    string `json:"email" binding:"required" example:"student@university.edu"`
	Password string `json:"password" binding:"required" example:"secret1"`
	Code     string `json:"code" binding:"required" example:"S00000001"`
}

// RegisterStudentResponse returns the generated account id
type RegisterStudentResponse struct {
	AccountID int64 `json:"accountId" example:"1"`
}

// UpdateProfileRequest carries a student's personal-data update
type UpdateProfileRequest struct {
	Phone   string `json:"phone" binding:"required" example:"5512345678"`
	Name    string `json:"name" binding:"required" example:"Ana Torres"`
	Address string `json:"address" binding:"required" example:"Av. Universidad 123"`
	Gender  string `json:"gender" binding:"required" example:"Feminine"`
}

// ProfileResponse returns the account profile with its resolved role
type ProfileResponse struct {
	ID      int64  `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Role    string `json:"role" example:"STUDENT"`
}
