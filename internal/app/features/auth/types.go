// internal/app/features/auth/types.go
package auth

// signupInput is the body of POST /auth/signup.
type signupInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	RollNumber string `json:"rollNumber"`
	Department string `json:"department"`
	Year       int    `json:"year"`
	Section    string `json:"section"`
}

// loginInput is the body of POST /auth/login. Year and Section, when
// present on a student login, refresh the stored profile.
type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Year     int    `json:"year"`
	Section  string `json:"section"`
}

// identityResponse is the fixed shape returned by signup, login, and
// /auth/me. Token is empty for /auth/me.
type identityResponse struct {
	ID         string `json:"_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	RollNumber string `json:"rollNumber,omitempty"`
	Department string `json:"department,omitempty"`
	Year       int    `json:"year,omitempty"`
	Section    string `json:"section,omitempty"`
	Token      string `json:"token,omitempty"`
}
