package handler

import (
	"errors"

	"skillseeker/internal/delivery/http/dto"
	"skillseeker/internal/delivery/http/middleware"
	"skillseeker/internal/pkg/response"
	"skillseeker/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type SkillHandler struct {
	uc usecase.SkillUsecase
}

type addSkillRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Progress    int    `json:"progress"`
}

type updateSkillRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Progress    *int    `json:"progress"`
}

func NewSkillHandler(uc usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/me/skills")
	grp.Get("/", h.List)
	grp.Post("/", h.Add)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
}

func (h *SkillHandler) List(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, categories, err := h.uc.ListSkills(c.Context(), userID)
	if err != nil {
		return mapSkillUsecaseError(err)
	}

	skills := make([]dto.SkillResponse, 0, len(items))
	for _, it := range items {
		skills = append(skills, toSkillResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SkillListResponse{
		Skills:     skills,
		Categories: categories,
	})
}

func (h *SkillHandler) Add(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req addSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	created, err := h.uc.AddSkill(c.Context(), userID, usecase.AddSkillInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Progress:    req.Progress,
	})
	if err != nil {
		return mapSkillUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, toSkillResponse(created))
}

func (h *SkillHandler) Update(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid skill id", nil, err)
	}

	var req updateSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	updated, err := h.uc.UpdateSkill(c.Context(), userID, id, usecase.UpdateSkillInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Progress:    req.Progress,
	})
	if err != nil {
		return mapSkillUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, toSkillResponse(updated))
}

func (h *SkillHandler) Delete(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid skill id", nil, err)
	}

	if err := h.uc.DeleteSkill(c.Context(), userID, id); err != nil {
		return mapSkillUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func toSkillResponse(it usecase.SkillItem) dto.SkillResponse {
	return dto.SkillResponse{
		ID:          it.ID,
		Title:       it.Title,
		Description: it.Description,
		Category:    it.Category,
		Progress:    it.Progress,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}

func mapSkillUsecaseError(err error) error {
	var vErr *usecase.ValidationError
	switch {
	case errors.As(err, &vErr):
		return validationAppError(vErr)
	case errors.Is(err, usecase.ErrSkillNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Skill not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
