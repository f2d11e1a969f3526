package domain

// UserRole defines the access level of a user.
type UserRole string

const (
	RoleAdmin   UserRole = "ADMIN"
	RoleCashier UserRole = "CASHIER"
)

// User represents a staff member able to sign in and ring sales.
type User struct {
	UserID       string   `json:"userID"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"` // Never serialized
	Role         UserRole `json:"role"`
	AuditFields
}
