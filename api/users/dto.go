package users

type CreateUserBody struct {
	Email string `json:"email" validate:"required,email"`
}

type UpdateUserBody struct {
	Email string `json:"email" validate:"required,email"`
}
