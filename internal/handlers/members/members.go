package members

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/library/internal/domain"
	"github.com/GlebRadaev/library/internal/dto"
	"github.com/GlebRadaev/library/internal/handlers/httperr"
	"github.com/GlebRadaev/library/pkg/utils"
	"github.com/GlebRadaev/library/pkg/validate"
)

//go:generate mockgen -source=members.go -destination=mock_members.go -package=members

type Service interface {
	CreateStudent(ctx context.Context, student *domain.Student) error
	GetStudent(ctx context.Context, id int) (*domain.Student, error)
	CreateTeacher(ctx context.Context, teacher *domain.Teacher) error
	GetTeacher(ctx context.Context, id int) (*domain.Teacher, error)
}

type MemberHandler struct {
	memberService Service
}

func New(memberService Service) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

// CreateStudent godoc
//
//	@Summary	Register a student
//	@Tags		Members
//	@Accept		json
//	@Produce	json
//	@Param		request	body	dto.StudentRequestDTO	true	"Student"
//	@Security	BearerAuth
//	@Success	201	{object}	domain.Student
//	@Failure	400	{object}	utils.Response	"Invalid request body"
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/members/students [post]
func (h *MemberHandler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	var req dto.StudentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	student := req.ToDomain()
	if err := h.memberService.CreateStudent(r.Context(), student); err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, student)
}

// GetStudent godoc
//
//	@Summary	Get a student
//	@Tags		Members
//	@Produce	json
//	@Param		id	path	int	true	"Student id"
//	@Security	BearerAuth
//	@Success	200	{object}	domain.Student
//	@Failure	400	{object}	utils.Response	"Invalid id"
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Failure	404	{object}	utils.Response	"Student not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/members/students/{id} [get]
func (h *MemberHandler) GetStudent(w http.ResponseWriter, r *http.Request) {
	id, err := utils.URLParamInt(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	student, err := h.memberService.GetStudent(r.Context(), id)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, student)
}

// CreateTeacher godoc
//
//	@Summary	Register a teacher
//	@Tags		Members
//	@Accept		json
//	@Produce	json
//	@Param		request	body	dto.TeacherRequestDTO	true	"Teacher"
//	@Security	BearerAuth
//	@Success	201	{object}	domain.Teacher
//	@Failure	400	{object}	utils.Response	"Invalid request body"
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/members/teachers [post]
func (h *MemberHandler) CreateTeacher(w http.ResponseWriter, r *http.Request) {
	var req dto.TeacherRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	teacher := req.ToDomain()
	if err := h.memberService.CreateTeacher(r.Context(), teacher); err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, teacher)
}

// GetTeacher godoc
//
//	@Summary	Get a teacher
//	@Tags		Members
//	@Produce	json
//	@Param		id	path	int	true	"Teacher id"
//	@Security	BearerAuth
//	@Success	200	{object}	domain.Teacher
//	@Failure	400	{object}	utils.Response	"Invalid id"
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Failure	404	{object}	utils.Response	"Teacher not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/members/teachers/{id} [get]
func (h *MemberHandler) GetTeacher(w http.ResponseWriter, r *http.Request) {
	id, err := utils.URLParamInt(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	teacher, err := h.memberService.GetTeacher(r.Context(), id)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, teacher)
}
