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

type EnrollmentHandler struct {
	uc usecase.EnrollmentUsecase
}

type enrollRequest struct {
	CourseID string `json:"course_id"`
}

func NewEnrollmentHandler(uc usecase.EnrollmentUsecase) *EnrollmentHandler {
	return &EnrollmentHandler{uc: uc}
}

func (h *EnrollmentHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/me/enrollments")
	grp.Get("/", h.List)
	grp.Post("/", h.Enroll)
	grp.Delete("/:courseID", h.Unenroll)
}

func (h *EnrollmentHandler) List(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.uc.ListEnrollments(c.Context(), userID)
	if err != nil {
		return mapEnrollmentUsecaseError(err)
	}

	out := make([]dto.EnrollmentResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.EnrollmentResponse{Course: it.Course, EnrolledAt: it.EnrolledAt})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *EnrollmentHandler) Enroll(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Please sign in to enroll in courses", nil, nil)
	}

	var req enrollRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	result, err := h.uc.Enroll(c.Context(), userID, req.CourseID)
	if err != nil {
		return mapEnrollmentUsecaseError(err)
	}

	msg := "Enrolled"
	if result.AlreadyEnrolled {
		msg = "Already enrolled"
	}
	return response.Success(c, fiber.StatusOK, msg, dto.EnrollOutcomeResponse{
		CourseID:        result.CourseID,
		Enrolled:        true,
		AlreadyEnrolled: result.AlreadyEnrolled,
	})
}

func (h *EnrollmentHandler) Unenroll(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	courseID := c.Params("courseID")
	if err := h.uc.Unenroll(c.Context(), userID, courseID); err != nil {
		return mapEnrollmentUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Unenrolled", dto.EnrollOutcomeResponse{
		CourseID: courseID,
		Enrolled: false,
	})
}

func mapEnrollmentUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrCourseNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Course not found", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Please sign in to enroll in courses", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
