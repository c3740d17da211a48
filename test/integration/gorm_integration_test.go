package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"portfolio-be/internal/entity"
	"portfolio-be/internal/repository/implementation"
	"portfolio-be/internal/repository/specification"
	"portfolio-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)

	skillRepo := implementation.NewSkillRepository(gormDB)
	projectRepo := implementation.NewProjectRepository(gormDB)

	t.Run("Check Skill Repository", func(t *testing.T) {
		count, err := skillRepo.Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Skill count: %d", count)
	})

	t.Run("Check Project Repository", func(t *testing.T) {
		count, err := projectRepo.Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Project count: %d", count)
	})

	t.Run("Skill Round Trip", func(t *testing.T) {
		ctx := context.Background()

		skill := &entity.Skill{
			Category:  "Integration",
			Name:      "test-skill-" + uuid.New().String(),
			Level:     60,
			CreatedAt: time.Now(),
		}
		err := skillRepo.Create(ctx, skill)
		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, skill.Id)

		found, err := skillRepo.FindOne(ctx, specification.ByID{ID: skill.Id})
		assert.NoError(t, err)
		if assert.NotNil(t, found) {
			assert.Equal(t, skill.Name, found.Name)
			assert.Equal(t, "Integration", found.Category)
		}

		// Cleanup
		err = skillRepo.Delete(ctx, skill.Id)
		assert.NoError(t, err)

		gone, err := skillRepo.FindOne(ctx, specification.ByID{ID: skill.Id})
		assert.NoError(t, err)
		assert.Nil(t, gone)
	})
}
