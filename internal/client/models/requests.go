package models

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest is the body of POST /auth/signup.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by login and signup. User may be absent, in which
// case the client fetches the profile separately.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user,omitempty"`
}

// UserResponse wraps the user returned by profile and goal endpoints.
type UserResponse struct {
	User *User `json:"user"`
}

// ProfileUpdate is the body of PUT /auth/profile. Zero height or weight
// means "leave unchanged".
type ProfileUpdate struct {
	Height         float64 `json:"height,omitempty"`
	Weight         float64 `json:"weight,omitempty"`
	BodyType       string  `json:"bodyType"`
	DesiredOutcome string  `json:"desiredOutcome"`
}

// MessageResponse is the acknowledgement and error body shape of the backend.
type MessageResponse struct {
	Message string `json:"message"`
}
