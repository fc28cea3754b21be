package dto

import (
	"time"

	"github.com/GlebRadaev/library/internal/domain"
)

type PriceCategoryRequestDTO struct {
	Name  string  `json:"name" validate:"required" example:"Hardcover"`
	Price float64 `json:"price" validate:"gte=0" example:"25"`
}

func (d PriceCategoryRequestDTO) ToDomain() *domain.PriceCategory {
	return &domain.PriceCategory{Name: d.Name, Price: d.Price}
}

type RackRequestDTO struct {
	Name   string `json:"name" validate:"required" example:"Science fiction"`
	Code   string `json:"code" validate:"required" example:"R-12"`
	Active *bool  `json:"active,omitempty" example:"true"`
}

func (d RackRequestDTO) ToDomain() *domain.Rack {
	active := true
	if d.Active != nil {
		active = *d.Active
	}
	return &domain.Rack{Name: d.Name, Code: d.Code, Active: active}
}

type CollectionRequestDTO struct {
	Name string `json:"name" validate:"required" example:"Classics"`
	Code string `json:"code" validate:"required" example:"CL"`
}

func (d CollectionRequestDTO) ToDomain() *domain.Collection {
	return &domain.Collection{Name: d.Name, Code: d.Code}
}

type ReturnDayRequestDTO struct {
	Day        int     `json:"day" validate:"required,min=1" example:"14"`
	Code       string  `json:"code" validate:"required" example:"2W"`
	FineAmount float64 `json:"fine_amt" validate:"gte=0" example:"5"`
}

func (d ReturnDayRequestDTO) ToDomain() *domain.ReturnDay {
	return &domain.ReturnDay{Day: d.Day, Code: d.Code, FineAmount: d.FineAmount}
}

type AuthorRequestDTO struct {
	Name      string     `json:"name" validate:"required" example:"Frank Herbert"`
	BornDate  *time.Time `json:"born_date,omitempty" example:"1920-10-08T00:00:00Z"`
	DeathDate *time.Time `json:"death_date,omitempty" example:"1986-02-11T00:00:00Z"`
	Biography string     `json:"biography,omitempty"`
	Note      string     `json:"note,omitempty"`
}

func (d AuthorRequestDTO) ToDomain() *domain.Author {
	return &domain.Author{
		Name:      d.Name,
		BornDate:  d.BornDate,
		DeathDate: d.DeathDate,
		Biography: d.Biography,
		Note:      d.Note,
	}
}

type BookRequestDTO struct {
	Name            string  `json:"name" validate:"required" example:"Dune"`
	Price           float64 `json:"price" validate:"gte=0" example:"40"`
	PriceCategoryID *int    `json:"price_category_id,omitempty" example:"1"`
	RackID          *int    `json:"rack_id,omitempty" example:"1"`
	CollectionID    *int    `json:"collection_id,omitempty"`
	AuthorID        *int    `json:"author_id,omitempty" example:"1"`
	Availability    string  `json:"availability,omitempty" validate:"omitempty,oneof=available notavailable" example:"available"`
}

func (d BookRequestDTO) ToDomain() *domain.Book {
	return &domain.Book{
		Name:            d.Name,
		Price:           d.Price,
		PriceCategoryID: d.PriceCategoryID,
		RackID:          d.RackID,
		CollectionID:    d.CollectionID,
		AuthorID:        d.AuthorID,
		Availability:    domain.Availability(d.Availability),
	}
}
