package entity

// User is the authenticated staff profile returned by the upstream
// /auth/login/ endpoint alongside the API token.
type User struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DisplayName string `json:"display_name,omitempty"`
	Role        string `json:"role,omitempty"`
	IsStaff     bool   `json:"is_staff"`
}
