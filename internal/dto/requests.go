package dto

import "github.com/GlebRadaev/library/internal/domain"

type BookRequestCreateDTO struct {
	CardID      int    `json:"card_id" validate:"required" example:"1"`
	Type        string `json:"type" validate:"required,oneof=existing new" example:"existing"`
	BookID      *int   `json:"book_id,omitempty" example:"1"`
	NewBookName string `json:"new_book_name,omitempty" example:"Hyperion"`
}

func (d BookRequestCreateDTO) ToDomain() domain.NewRequest {
	return domain.NewRequest{
		CardID:      d.CardID,
		Type:        domain.RequestType(d.Type),
		BookID:      d.BookID,
		NewBookName: d.NewBookName,
	}
}

type BookRequestResponseDTO struct {
	ID          int    `json:"id" example:"1"`
	ReqID       string `json:"req_id" example:"BR/00001"`
	CardID      int    `json:"card_id" example:"1"`
	Type        string `json:"type" example:"existing"`
	BookID      *int   `json:"book_id,omitempty" example:"1"`
	NewBookName string `json:"new_book_name,omitempty"`
	BookName    string `json:"book_name" example:"Dune"`
	IssueID     *int   `json:"issue_id,omitempty"`
	State       string `json:"state" example:"draft"`
}

func NewBookRequestResponse(r domain.BookRequest) BookRequestResponseDTO {
	return BookRequestResponseDTO{
		ID:          r.ID,
		ReqID:       r.ReqID,
		CardID:      r.CardID,
		Type:        string(r.Type),
		BookID:      r.BookID,
		NewBookName: r.NewBookName,
		BookName:    r.BookName,
		IssueID:     r.IssueID,
		State:       string(r.State),
	}
}
