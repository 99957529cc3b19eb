package users

// CreateUserRequest represents the data needed to create a new user
type CreateUserRequest struct {
	DisplayName string `json:"display_name"`
}

// GetUserRequest identifies a user
type GetUserRequest struct {
	ID string `json:"id"`
}
