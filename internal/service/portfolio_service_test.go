package service

import (
	"context"
	"testing"

	"portfolio-be/internal/dto"
	"portfolio-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPortfolioFixture() (*assistantFixture, IPortfolioService) {
	fx := newAssistantFixture()
	svc := NewPortfolioService(fx.profiles, fx.skills, fx.experiences, fx.projects, fx.certifications, fx.docs)
	return fx, svc
}

func TestGetProfile(t *testing.T) {
	_, svc := newPortfolioFixture()

	res, err := svc.GetProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Jane Developer", res.Name)
	assert.Equal(t, "Backend Engineer", res.Headline)
}

func TestGetProfile_NotFound(t *testing.T) {
	fx, svc := newPortfolioFixture()
	fx.profiles.profile = nil

	res, err := svc.GetProfile(context.Background())
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpsertProfile_CreatesWhenMissing(t *testing.T) {
	fx, svc := newPortfolioFixture()
	fx.profiles.profile = nil

	res, err := svc.UpsertProfile(context.Background(), &dto.UpsertProfileRequest{
		Name:       "Jane Developer",
		Headline:   "Backend Engineer",
		YearsOfExp: 5,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, res.Id)
	assert.Equal(t, "Jane Developer", res.Name)
	assert.Equal(t, 5, res.YearsOfExp)
}

func TestListSkills(t *testing.T) {
	_, svc := newPortfolioFixture()

	skills, err := svc.ListSkills(context.Background())
	require.NoError(t, err)
	require.Len(t, skills, 3)
	assert.Equal(t, "Go", skills[0].Name)
}

func TestCreateSkill_AppendsAtEnd(t *testing.T) {
	fx, svc := newPortfolioFixture()

	res, err := svc.CreateSkill(context.Background(), &dto.SkillRequest{
		Category: "Backend",
		Name:     "Redis",
		Level:    80,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, res.Id)
	assert.Equal(t, len(fx.skills.skills), res.Position, "new records append after the existing order")
}

func TestUpdateSkill_NotFound(t *testing.T) {
	_, svc := newPortfolioFixture()

	res, err := svc.UpdateSkill(context.Background(), uuid.New(), &dto.SkillRequest{Category: "Backend", Name: "Go"})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteSkill_NotFound(t *testing.T) {
	_, svc := newPortfolioFixture()

	err := svc.DeleteSkill(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListProjects_FeaturedFilterPassesSpec(t *testing.T) {
	fx, svc := newPortfolioFixture()
	fx.projects.projects = []*entity.Project{
		{Id: uuid.New(), Title: "Portfolio Backend", Category: "Backend", IsFeatured: true},
	}

	projects, err := svc.ListProjects(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Portfolio Backend", projects[0].Title)
}
