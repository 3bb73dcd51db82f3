package models

// Account defines the base identity row shared by both roles, based on the
// 'accounts' table. Profile fields start as placeholders at registration and
// are filled in by the personal-data update.
type Account struct {
	ID       int64  `json:"id" db:"id"`
	Email    string `json:"email" db:"email"`
	Password string `json:"-" db:"password_digest"` // hashed, excluded from JSON
	Name     string `json:"name" db:"name"`
	Phone    string `json:"phone" db:"phone"`
	Address  string `json:"address" db:"address"`
}

// StudentRecord defines the student role row based on the 'students' table.
// ProjectID is the currently assigned project, nil until an assignment is
// made.
type StudentRecord struct {
	AccountID int64  `json:"accountId" db:"account_id"`
	Code      string `json:"code" db:"code"`
	Gender    Gender `json:"gender" db:"gender"`
	ProjectID *int64 `json:"projectId,omitempty" db:"project_id"`

	Account *Account `json:"account,omitempty"` // relation, no db tag
}

// CoordinatorRecord defines the coordinator role row based on the
// 'coordinators' table.
type CoordinatorRecord struct {
	AccountID int64  `json:"accountId" db:"account_id"`
	StaffCode string `json:"staffCode" db:"staff_code"`
	Gender    Gender `json:"gender" db:"gender"`

	Account *Account `json:"account,omitempty"` // relation, no db tag
}
