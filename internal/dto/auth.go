package dto

type RegisterRequestDTO struct {
	Login    string `json:"login" validate:"required,min=3,max=50" example:"librarian"`
	Password string `json:"password" validate:"required,min=8" example:"s3cretpass"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" validate:"required,min=3,max=50" example:"librarian"`
	Password string `json:"password" validate:"required,min=8" example:"s3cretpass"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}
