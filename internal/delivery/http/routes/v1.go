package routes

import (
	"skillseeker/internal/delivery/http/handler"
	"skillseeker/internal/delivery/http/middleware"
	"skillseeker/internal/pkg/jwt"
	"skillseeker/internal/repository"
	"skillseeker/internal/usecase"
	"skillseeker/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// RegisterV1 wires repositories, usecases and handlers onto the /api/v1
// router. All state comes in through deps so tests can register the same
// tree against an in-memory app.
func RegisterV1(v1 fiber.Router, deps Deps) {
	if v1 == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		deps.Config.JWT.AccessSecret,
		deps.Config.JWT.RefreshSecret,
		deps.Config.JWT.AccessExpiresIn,
		deps.Config.JWT.RefreshExpiresIn,
	)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	users := repository.NewPostgresUserRepository(deps.DB)
	profiles := repository.NewPostgresProfileRepository(deps.DB)
	skills := repository.NewPostgresSkillRepository(deps.DB)
	enrollments := repository.NewPostgresEnrollmentRepository(deps.DB)

	authUC := usecase.NewAuthUsecase(users, profiles, jwtSvc)
	profileUC := usecase.NewProfileUsecase(profiles)
	skillUC := usecase.NewSkillUsecase(skills, deps.Cache)
	enrollmentUC := usecase.NewEnrollmentUsecase(enrollments, deps.Cache)
	dashboardUC := usecase.NewDashboardUsecase(skills, enrollments, deps.Cache, deps.Config.Redis.TTL)

	handler.NewAuthHandler(authUC).RegisterRoutes(v1.Group("/auth"))

	// Course listing is public, but an authenticated caller gets enrolled
	// flags merged in.
	handler.NewCourseHandler(enrollmentUC).RegisterRoutes(
		v1.Group("/courses", authMw.OptionalMiddleware()),
	)

	protected := v1.Group("/users", authMw.Middleware())
	handler.NewProfileHandler(profileUC).RegisterRoutes(protected)
	handler.NewSkillHandler(skillUC).RegisterRoutes(protected)
	handler.NewEnrollmentHandler(enrollmentUC).RegisterRoutes(protected)
	handler.NewDashboardHandler(dashboardUC).RegisterRoutes(protected)

	if deps.Hub != nil {
		wsHandler := ws.NewHandler(deps.Hub, jwtSvc, deps.Log)
		v1.Get("/ws", wsHandler.HandleEvents)
	}
}
