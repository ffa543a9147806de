package domain

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is the auth service's view of an account. It is never stored locally.
type User struct {
	ID       string `json:"id"`
	UserName string `json:"user_name"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
}

// Credentials is the login payload forwarded to the auth service.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserInput carries the fields of a register or modify request. Empty fields
// are omitted from the upstream body.
type UserInput struct {
	UserName string `json:"user_name,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}

// TokenMessage is returned by login and token introspection.
type TokenMessage struct {
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
	User    *User  `json:"user,omitempty"`
}

// UserMessage is returned by register, update and delete.
type UserMessage struct {
	Message string `json:"message"`
	User    *User  `json:"user,omitempty"`
}
