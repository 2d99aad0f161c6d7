package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/careertrack/internal/domain/entity"
)

type fakeUserRepo struct {
	user    *entity.User
	updated *entity.User
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	u.ID = "u1"
	return nil
}

func (f *fakeUserRepo) GetByID(context.Context, string) (*entity.User, error) {
	return f.user, nil
}

func (f *fakeUserRepo) GetByEmail(context.Context, string) (*entity.User, error) {
	return f.user, nil
}

func (f *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	f.updated = u
	return nil
}

func (f *fakeUserRepo) UpdatePassword(context.Context, string, string) error { return nil }

func strPtr(s string) *string { return &s }

func TestUpdateProfile_OmittedFieldsUntouched(t *testing.T) {
	t.Parallel()
	repo := &fakeUserRepo{user: &entity.User{ID: "u1", Name: "Ada", AvatarURL: "/uploads/a.png"}}
	svc := &AuthService{Users: repo}

	u, err := svc.UpdateProfile(context.Background(), "u1", UpdateProfileInput{Name: strPtr("Grace")})
	require.NoError(t, err)
	assert.Equal(t, "Grace", u.Name)
	assert.Equal(t, "/uploads/a.png", u.AvatarURL)
}

func TestUpdateProfile_EmptyStringClears(t *testing.T) {
	t.Parallel()
	repo := &fakeUserRepo{user: &entity.User{ID: "u1", Name: "Ada", AvatarURL: "/uploads/a.png"}}
	svc := &AuthService{Users: repo}

	u, err := svc.UpdateProfile(context.Background(), "u1", UpdateProfileInput{AvatarURL: strPtr("")})
	require.NoError(t, err)
	assert.Equal(t, "Ada", u.Name)
	assert.Empty(t, u.AvatarURL)
	require.NotNil(t, repo.updated)
	assert.Empty(t, repo.updated.AvatarURL)
}
