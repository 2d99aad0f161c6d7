package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/careertrack/internal/application"
	"github.com/oksasatya/careertrack/internal/domain/entity"
	"github.com/oksasatya/careertrack/internal/domain/repository"
	"github.com/oksasatya/careertrack/pkg/helpers"
	"github.com/oksasatya/careertrack/pkg/validation"
)

var testInit sync.Once

func setup() {
	testInit.Do(func() {
		gin.SetMode(gin.TestMode)
		validation.Init()
	})
}

// asUser fakes the auth middleware for handler tests.
func asUser(id string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", id)
		c.Next()
	}
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(payload))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	body := map[string]any{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w, body
}

// ---- skills over a fake repo ----

type stubSkillRepo struct {
	createErr error
	deleteErr error
	list      []entity.Skill
}

func (s *stubSkillRepo) Create(_ context.Context, sk *entity.Skill) error {
	if s.createErr != nil {
		return s.createErr
	}
	sk.ID = "skill-1"
	return nil
}

func (s *stubSkillRepo) ListByUser(context.Context, string) ([]entity.Skill, error) {
	return s.list, nil
}

func (s *stubSkillRepo) Update(_ context.Context, id, _ string, _ entity.SkillPatch) (*entity.Skill, error) {
	return &entity.Skill{ID: id}, nil
}

func (s *stubSkillRepo) Delete(context.Context, string, string) error { return s.deleteErr }

func skillRouter(repo *stubSkillRepo) *gin.Engine {
	setup()
	svc := &application.ProfileService{Skills: repo}
	h := NewProfileHandler(svc, nil)

	r := gin.New()
	p := r.Group("/api", asUser("u1"))
	p.POST("/skills", h.CreateSkill)
	p.GET("/skills", h.ListSkills)
	p.DELETE("/skills/:id", h.DeleteSkill)
	return r
}

func TestCreateSkill_Duplicate409(t *testing.T) {
	t.Parallel()
	r := skillRouter(&stubSkillRepo{createErr: repository.ErrDuplicate})

	w, body := doJSON(t, r, http.MethodPost, "/api/skills", gin.H{"name": "Go"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "DUPLICATE", body["code"])
}

func TestCreateSkill_MissingName400(t *testing.T) {
	t.Parallel()
	r := skillRouter(&stubSkillRepo{})

	w, body := doJSON(t, r, http.MethodPost, "/api/skills", gin.H{"name": "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
}

func TestListSkills_Empty200(t *testing.T) {
	t.Parallel()
	r := skillRouter(&stubSkillRepo{list: []entity.Skill{}})

	w, body := doJSON(t, r, http.MethodGet, "/api/skills", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	skills, ok := body["skills"].([]any)
	require.True(t, ok, "skills must be a JSON array, got %T", body["skills"])
	assert.Empty(t, skills)
}

func TestDeleteSkill_Missing404(t *testing.T) {
	t.Parallel()
	r := skillRouter(&stubSkillRepo{deleteErr: repository.ErrNotFound})

	w, body := doJSON(t, r, http.MethodDelete, "/api/skills/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

// ---- auth over a fake user repo ----

type stubUserRepo struct {
	createErr error
	byEmail   *entity.User
}

func (s *stubUserRepo) Create(_ context.Context, u *entity.User) error {
	if s.createErr != nil {
		return s.createErr
	}
	u.ID = "u1"
	return nil
}

func (s *stubUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return &entity.User{ID: id}, nil
}

func (s *stubUserRepo) GetByEmail(context.Context, string) (*entity.User, error) {
	if s.byEmail == nil {
		return nil, repository.ErrNotFound
	}
	return s.byEmail, nil
}

func (s *stubUserRepo) Update(context.Context, *entity.User) error { return nil }

func (s *stubUserRepo) UpdatePassword(context.Context, string, string) error { return nil }

func authTestRouter(users *stubUserRepo) *gin.Engine {
	setup()
	svc := &application.AuthService{
		Users: users,
		JWT:   helpers.NewJWTManager("test-secret", time.Hour),
	}
	h := NewAuthHandler(svc, nil)

	r := gin.New()
	r.POST("/api/register", h.Register)
	r.POST("/api/login", h.Login)
	return r
}

func TestRegister_Created(t *testing.T) {
	t.Parallel()
	r := authTestRouter(&stubUserRepo{})

	w, body := doJSON(t, r, http.MethodPost, "/api/register", gin.H{
		"email":    "new@example.com",
		"password": "supersecret",
		"name":     "New User",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NotEmpty(t, body["token"])
}

func TestRegister_DuplicateEmail409(t *testing.T) {
	t.Parallel()
	r := authTestRouter(&stubUserRepo{createErr: repository.ErrDuplicate})

	w, body := doJSON(t, r, http.MethodPost, "/api/register", gin.H{
		"email":    "taken@example.com",
		"password": "supersecret",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "DUPLICATE", body["code"])
}

func TestRegister_ShortPassword400(t *testing.T) {
	t.Parallel()
	r := authTestRouter(&stubUserRepo{})

	w, body := doJSON(t, r, http.MethodPost, "/api/register", gin.H{
		"email":    "new@example.com",
		"password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
}

func TestLogin_WrongPassword401(t *testing.T) {
	t.Parallel()
	hash, err := helpers.HashPassword("rightpassword")
	require.NoError(t, err)
	r := authTestRouter(&stubUserRepo{byEmail: &entity.User{ID: "u1", Email: "a@example.com", Password: hash}})

	w, body := doJSON(t, r, http.MethodPost, "/api/login", gin.H{
		"email":    "a@example.com",
		"password": "wrongpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", body["code"])
}

func TestLogin_UnknownEmail401(t *testing.T) {
	t.Parallel()
	r := authTestRouter(&stubUserRepo{})

	w, body := doJSON(t, r, http.MethodPost, "/api/login", gin.H{
		"email":    "ghost@example.com",
		"password": "whatever",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", body["code"])
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()
	hash, err := helpers.HashPassword("rightpassword")
	require.NoError(t, err)
	r := authTestRouter(&stubUserRepo{byEmail: &entity.User{ID: "u1", Email: "a@example.com", Password: hash}})

	w, body := doJSON(t, r, http.MethodPost, "/api/login", gin.H{
		"email":    "a@example.com",
		"password": "rightpassword",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, body["token"])
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "a@example.com", user["email"])
	_, leaked := user["password"]
	assert.False(t, leaked, "password hash must never serialize")
}
