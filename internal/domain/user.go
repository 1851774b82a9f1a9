package domain

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
	RoleKlant Role = "klant"
)

// User is a roster entry. Accounts are managed elsewhere in the
// application; only role "user" accrues time entries.
type User struct {
	ID   int
	Name string
	Role Role
}
