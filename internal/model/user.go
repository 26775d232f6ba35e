package model

// User is a dashboard login. Credentials are a plaintext match against the
// backend's user list; this is the mock login of the original system, not a
// real auth boundary. Read-only from the client's perspective.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"`
}

// CheckPassword compares the candidate against the stored plaintext value.
func (u *User) CheckPassword(password string) bool {
	return u.Password == password
}
