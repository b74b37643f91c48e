package models

// UserRole is one of logist, manager or director
type UserRole string

const (
	RoleLogist   UserRole = "logist"
	RoleManager  UserRole = "manager"
	RoleDirector UserRole = "director"
)

type User struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Role     UserRole `json:"role"`
	Password string   `json:"-"` // Compared verbatim on login, never exposed in JSON
}

// Actor identifies who performed an audited mutation
type Actor struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
}

// ActorOf returns the actor for a user
func ActorOf(u User) Actor {
	return Actor{UserID: u.ID, UserName: u.Name}
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
