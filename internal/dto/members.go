package dto

import "github.com/GlebRadaev/library/internal/domain"

type StudentRequestDTO struct {
	Name           string `json:"name" validate:"required" example:"Ann Smith"`
	RollNo         int    `json:"roll_no" validate:"gte=0" example:"17"`
	Standard       string `json:"standard" example:"9B"`
	ContactAddress string `json:"contact_address" example:"12 Elm Street"`
}

func (d StudentRequestDTO) ToDomain() *domain.Student {
	return &domain.Student{
		Name:           d.Name,
		RollNo:         d.RollNo,
		Standard:       d.Standard,
		ContactAddress: d.ContactAddress,
	}
}

type TeacherRequestDTO struct {
	Name        string `json:"name" validate:"required" example:"John Doe"`
	HomeAddress string `json:"home_address" example:"3 Oak Avenue"`
}

func (d TeacherRequestDTO) ToDomain() *domain.Teacher {
	return &domain.Teacher{Name: d.Name, HomeAddress: d.HomeAddress}
}
