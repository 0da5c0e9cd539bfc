package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"skillseeker/internal/delivery/http/middleware"
	"skillseeker/internal/pkg/logger"
	"skillseeker/internal/pkg/response"
	"skillseeker/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type fakeSkillUsecase struct {
	items      []usecase.SkillItem
	categories []string
	addErr     error
}

func (f *fakeSkillUsecase) ListSkills(context.Context, uuid.UUID) ([]usecase.SkillItem, []string, error) {
	return f.items, f.categories, nil
}

func (f *fakeSkillUsecase) AddSkill(_ context.Context, _ uuid.UUID, in usecase.AddSkillInput) (usecase.SkillItem, error) {
	if f.addErr != nil {
		return usecase.SkillItem{}, f.addErr
	}
	item := usecase.SkillItem{
		ID:          uuid.New(),
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Progress:    in.Progress,
	}
	f.items = append(f.items, item)
	return item, nil
}

func (f *fakeSkillUsecase) UpdateSkill(context.Context, uuid.UUID, uuid.UUID, usecase.UpdateSkillInput) (usecase.SkillItem, error) {
	return usecase.SkillItem{}, usecase.ErrSkillNotFound
}

func (f *fakeSkillUsecase) DeleteSkill(context.Context, uuid.UUID, uuid.UUID) error {
	return usecase.ErrSkillNotFound
}

// newSkillTestApp mounts the skill routes behind the error middleware,
// with authAs injected into request locals the way the auth middleware
// would after validating a token.
func newSkillTestApp(uc usecase.SkillUsecase, authAs uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(logger.NewNop()).Middleware())
	if authAs != uuid.Nil {
		app.Use(func(c fiber.Ctx) error {
			c.Locals(middleware.CtxUserIDKey, authAs)
			return c.Next()
		})
	}
	NewSkillHandler(uc).RegisterRoutes(app.Group("/users"))
	return app
}

func decodeEnvelope(t *testing.T, body io.Reader) response.SemanticResponse {
	t.Helper()
	var env response.SemanticResponse
	if err := json.NewDecoder(body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return env
}

func TestSkillHandler_List_EnvelopesSkillsAndCategories(t *testing.T) {
	uc := &fakeSkillUsecase{
		items: []usecase.SkillItem{
			{ID: uuid.New(), Title: "Go", Category: "Programming", Progress: 70},
		},
		categories: []string{"All", "Programming"},
	}
	app := newSkillTestApp(uc, uuid.New())

	resp, err := app.Test(httptest.NewRequest("GET", "/users/me/skills/", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	env := decodeEnvelope(t, resp.Body)
	data, ok := env.Data.(map[string]any)
	if !ok {
		t.Fatalf("expected object data, got %T", env.Data)
	}
	cats, ok := data["categories"].([]any)
	if !ok || len(cats) != 2 || cats[0] != "All" {
		t.Fatalf("expected categories [All Programming], got %v", data["categories"])
	}
}

func TestSkillHandler_Add_ValidationFailureIs422WithFields(t *testing.T) {
	vErr := &usecase.ValidationError{Fields: map[string]string{
		"description": "Description must be at least 10 characters",
	}}
	app := newSkillTestApp(&fakeSkillUsecase{addErr: vErr}, uuid.New())

	body := bytes.NewReader([]byte(`{"title":"Go","description":"short","category":"Misc","progress":10}`))
	req := httptest.NewRequest("POST", "/users/me/skills/", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}

	env := decodeEnvelope(t, resp.Body)
	data, ok := env.Data.(map[string]any)
	if !ok {
		t.Fatalf("expected object data, got %T", env.Data)
	}
	fields, ok := data["fields"].(map[string]any)
	if !ok {
		t.Fatalf("expected fields map, got %v", data)
	}
	if fields["description"] != "Description must be at least 10 characters" {
		t.Fatalf("unexpected field message: %v", fields)
	}
}

func TestSkillHandler_WithoutAuthContextIs401(t *testing.T) {
	app := newSkillTestApp(&fakeSkillUsecase{}, uuid.Nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/users/me/skills/", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestSkillHandler_Update_UnknownSkillIs404(t *testing.T) {
	app := newSkillTestApp(&fakeSkillUsecase{}, uuid.New())

	body := bytes.NewReader([]byte(`{"progress":50}`))
	req := httptest.NewRequest("PUT", "/users/me/skills/"+uuid.NewString(), body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestSkillHandler_Update_MalformedIDIs400(t *testing.T) {
	app := newSkillTestApp(&fakeSkillUsecase{}, uuid.New())

	req := httptest.NewRequest("PUT", "/users/me/skills/not-a-uuid", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}
