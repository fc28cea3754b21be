package dto

import "github.com/GlebRadaev/library/internal/domain"

type CardRequestDTO struct {
	BookLimit int    `json:"book_limit" validate:"required,min=1" example:"3"`
	User      string `json:"user" validate:"required,oneof=student teacher" example:"student"`
	StudentID *int   `json:"student_id,omitempty" example:"1"`
	TeacherID *int   `json:"teacher_id,omitempty"`
}

func (d CardRequestDTO) ToDomain() *domain.Card {
	return &domain.Card{
		BookLimit: d.BookLimit,
		User:      domain.HolderType(d.User),
		StudentID: d.StudentID,
		TeacherID: d.TeacherID,
	}
}

type CardResponseDTO struct {
	ID         int    `json:"id" example:"1"`
	Code       string `json:"code" example:"000000018"`
	BookLimit  int    `json:"book_limit" example:"3"`
	User       string `json:"user" example:"student"`
	StudentID  *int   `json:"student_id,omitempty" example:"1"`
	TeacherID  *int   `json:"teacher_id,omitempty"`
	Standard   string `json:"standard,omitempty" example:"9B"`
	RollNo     int    `json:"roll_no,omitempty" example:"17"`
	HolderName string `json:"name" example:"Ann Smith"`
}

func NewCardResponse(c domain.Card) CardResponseDTO {
	return CardResponseDTO{
		ID:         c.ID,
		Code:       c.Code,
		BookLimit:  c.BookLimit,
		User:       string(c.User),
		StudentID:  c.StudentID,
		TeacherID:  c.TeacherID,
		Standard:   c.Standard,
		RollNo:     c.RollNo,
		HolderName: c.HolderName,
	}
}
