package user

type UserResponse struct {
	ID   string `json:"id"`
	Mail string `json:"mail"`
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
}
