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

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

type updateProfileRequest struct {
	Username  *string `json:"username"`
	Bio       *string `json:"bio"`
	Interests *string `json:"interests"`
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/me", h.GetMe)
	r.Put("/me", h.UpdateMe)
}

func (h *ProfileHandler) GetMe(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	prof, err := h.uc.GetProfile(c.Context(), userID)
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, toProfileResponse(prof))
}

func (h *ProfileHandler) UpdateMe(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req updateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	prof, err := h.uc.UpdateProfile(c.Context(), userID, usecase.UpdateProfileInput{
		Username:  req.Username,
		Bio:       req.Bio,
		Interests: req.Interests,
	})
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, toProfileResponse(prof))
}

func toProfileResponse(p usecase.ProfileItem) dto.ProfileResponse {
	return dto.ProfileResponse{
		UserID:    p.UserID,
		Username:  p.Username,
		Bio:       p.Bio,
		Interests: p.Interests,
		AvatarURL: p.AvatarURL,
		Onboarded: p.Onboarded,
	}
}

func mapProfileUsecaseError(err error) error {
	var vErr *usecase.ValidationError
	switch {
	case errors.As(err, &vErr):
		return validationAppError(vErr)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Nothing to update", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

// validationAppError surfaces field-scoped messages in the envelope's
// data so forms can annotate the offending controls.
func validationAppError(v *usecase.ValidationError) error {
	return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Validation failed", map[string]any{"fields": v.Fields}, v)
}
