package models

// Role identifies which role table an account resolved to.
type Role string

const (
	RoleStudent     Role = "STUDENT"
	RoleCoordinator Role = "COORDINATOR"
)

// Gender is constrained to the two values the registry accepts.
type Gender string

const (
	GenderMasculine Gender = "Masculine"
	GenderFeminine  Gender = "Feminine"
)
