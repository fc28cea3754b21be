package dto

import (
	"time"

	"github.com/GlebRadaev/library/internal/domain"
)

type IssueRequestDTO struct {
	BookID      int        `json:"book_id" validate:"required" example:"1"`
	CardID      int        `json:"card_id" validate:"required" example:"1"`
	ReturnDayID *int       `json:"return_day_id,omitempty" example:"1"`
	DateIssue   *time.Time `json:"date_issue,omitempty" example:"2024-01-01T00:00:00Z"`
}

func (d IssueRequestDTO) ToDomain() domain.NewIssue {
	return domain.NewIssue{
		BookID:      d.BookID,
		CardID:      d.CardID,
		ReturnDayID: d.ReturnDayID,
		DateIssue:   d.DateIssue,
	}
}

type IssueResponseDTO struct {
	ID               int        `json:"id" example:"1"`
	IssueCode        string     `json:"issue_code" example:"BI/00001"`
	BookID           int        `json:"book_id" example:"1"`
	CardID           int        `json:"card_id" example:"1"`
	ReturnDayID      *int       `json:"return_day_id,omitempty" example:"1"`
	User             string     `json:"user" example:"Student"`
	StudentID        *int       `json:"student_id,omitempty" example:"1"`
	TeacherID        *int       `json:"teacher_id,omitempty"`
	HolderName       string     `json:"name" example:"Ann Smith"`
	Standard         string     `json:"standard,omitempty" example:"9B"`
	RollNo           int        `json:"roll_no,omitempty" example:"17"`
	DateIssue        time.Time  `json:"date_issue" example:"2024-01-01T00:00:00Z"`
	DateReturn       *time.Time `json:"date_return,omitempty" example:"2024-01-15T00:00:00Z"`
	ActualReturnDate *time.Time `json:"actual_return_date,omitempty"`
	Penalty          float64    `json:"penalty" example:"15"`
	LostPenalty      float64    `json:"lost_penalty" example:"0"`
	InvoiceID        *int       `json:"invoice_id,omitempty"`
	State            string     `json:"state" example:"issue"`
}

func NewIssueResponse(i domain.BookIssue) IssueResponseDTO {
	return IssueResponseDTO{
		ID:               i.ID,
		IssueCode:        i.IssueCode,
		BookID:           i.BookID,
		CardID:           i.CardID,
		ReturnDayID:      i.ReturnDayID,
		User:             i.User,
		StudentID:        i.StudentID,
		TeacherID:        i.TeacherID,
		HolderName:       i.HolderName,
		Standard:         i.Standard,
		RollNo:           i.RollNo,
		DateIssue:        i.DateIssue,
		DateReturn:       i.DateReturn,
		ActualReturnDate: i.ActualReturnDate,
		Penalty:          i.Penalty,
		LostPenalty:      i.LostPenalty,
		InvoiceID:        i.InvoiceID,
		State:            string(i.State),
	}
}

type InvoiceLineDTO struct {
	Name      string  `json:"name" example:"Late return fine"`
	PriceUnit float64 `json:"price_unit" example:"15"`
}

type InvoiceResponseDTO struct {
	ID        int              `json:"id" example:"1"`
	UID       string           `json:"invoice_uid" example:"1b4e28ba-2fa1-11d2-883f-0016d3cca427"`
	IssueID   int              `json:"issue_id" example:"1"`
	Type      string           `json:"type" example:"out_invoice"`
	Partner   string           `json:"partner" example:"Ann Smith"`
	Address   string           `json:"address" example:"12 Elm Street"`
	Reference string           `json:"reference" example:"BI/00001"`
	Status    string           `json:"status" example:"open"`
	CreatedAt time.Time        `json:"created_at" example:"2024-02-01T10:00:00Z"`
	Lines     []InvoiceLineDTO `json:"lines"`
	Total     float64          `json:"total" example:"15"`
}

func NewInvoiceResponse(inv domain.Invoice) InvoiceResponseDTO {
	lines := make([]InvoiceLineDTO, 0, len(inv.Lines))
	for _, l := range inv.Lines {
		lines = append(lines, InvoiceLineDTO{Name: l.Name, PriceUnit: l.PriceUnit})
	}
	return InvoiceResponseDTO{
		ID:        inv.ID,
		UID:       inv.UID,
		IssueID:   inv.IssueID,
		Type:      inv.Type,
		Partner:   inv.Partner,
		Address:   inv.Address,
		Reference: inv.Reference,
		Status:    string(inv.Status),
		CreatedAt: inv.CreatedAt,
		Lines:     lines,
		Total:     inv.Total(),
	}
}
