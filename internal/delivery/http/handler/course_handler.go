package handler

import (
	"skillseeker/internal/catalog"
	"skillseeker/internal/delivery/http/dto"
	"skillseeker/internal/delivery/http/middleware"
	"skillseeker/internal/pkg/response"
	"skillseeker/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// CourseHandler serves the static catalog. Routes are public; an
// authenticated caller additionally gets per-course enrolled flags.
type CourseHandler struct {
	enrollments usecase.EnrollmentUsecase
}

func NewCourseHandler(enrollments usecase.EnrollmentUsecase) *CourseHandler {
	return &CourseHandler{enrollments: enrollments}
}

func (h *CourseHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Get("/:id", h.Get)
}

func (h *CourseHandler) List(c fiber.Ctx) error {
	courses := catalog.All()
	userID, authed := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)

	out := make([]dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		res := dto.CourseResponse{Course: course}
		if authed {
			enrolled, err := h.enrollments.IsEnrolled(c.Context(), userID, course.ID)
			if err == nil {
				res.Enrolled = &enrolled
			}
		}
		out = append(out, res)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *CourseHandler) Get(c fiber.Ctx) error {
	course, ok := catalog.ByID(c.Params("id"))
	if !ok {
		return middleware.NewAppError(fiber.StatusNotFound, "Course not found", nil, nil)
	}

	res := dto.CourseResponse{Course: course}
	if userID, authed := c.Locals(middleware.CtxUserIDKey).(uuid.UUID); authed {
		enrolled, err := h.enrollments.IsEnrolled(c.Context(), userID, course.ID)
		if err == nil {
			res.Enrolled = &enrolled
		}
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
