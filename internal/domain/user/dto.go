package user

// ListFilter narrows the user list. ExcludeProjectID wins when both are set.
type ListFilter struct {
	ProjectID        *int64
	ExcludeProjectID *int64
}

type UserResponse struct {
	ID    int64   `json:"id"`
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Image *string `json:"image"`
	Role  Role    `json:"role"`
}

func (u User) ToResponse() UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Image: u.Image,
		Role:  u.Role,
	}
}
