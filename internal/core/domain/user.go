package domain

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User models an account known to the catalog backend.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	Avatar       string `json:"avatar,omitempty"`
	PasswordHash string `json:"-"`
}
