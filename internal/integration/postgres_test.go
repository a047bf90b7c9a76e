package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ascend-community/backend/internal/model"
	"github.com/ascend-community/backend/internal/service"
	"github.com/ascend-community/backend/internal/testhelpers"
)

// setupPostgres starts a throwaway PostgreSQL container. Skipped with
// -short so the suite runs without Docker.
func setupPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping PostgreSQL container test in short mode")
	}
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "testuser",
				"POSTGRES_PASSWORD": "testpass",
				"POSTGRES_DB":       "testdb",
			},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("5432/tcp"),
				wait.ForLog("database system is ready to accept connections"),
			).WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err, "failed to start container")
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Errorf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	mappedPort, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("host=%s port=%s user=testuser password=testpass dbname=testdb sslmode=disable",
		host, mappedPort.Port())
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to connect to database")

	require.NoError(t, db.AutoMigrate(
		&model.IngredientFact{},
		&model.UserProfile{},
		&model.PlanTemplate{},
		&model.CustomPlan{},
		&model.ActivePlan{},
	))
	return db
}

// Exercises the JSONB snapshot round trip and the upsert paths against a
// real PostgreSQL, which SQLite approximates only loosely.
func TestPostgresSnapshotRoundTrip(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	testhelpers.SeedFacts(t, db)
	userID := uuid.New()
	testhelpers.SeedProfile(t, db, userID)
	tpl := testhelpers.SeedTemplate(t, db)

	ingredients := service.NewIngredientService(db, nil)
	require.NoError(t, ingredients.Reload(ctx))
	plans := service.NewPlanService(db, ingredients, service.NewProfileService(db), nil, nil)

	edited := []model.IngredientLine{
		{Name: "Ei", Amount: 3, Unit: model.UnitPerPiece},
		{Name: "Quark", Amount: 150, Unit: model.UnitPer100g},
	}
	plan, err := plans.EditMeal(ctx, userID, tpl.ID, model.Monday, model.SlotBreakfast, edited)
	require.NoError(t, err)
	assert.Equal(t, 566, plan.WeekPlan[model.Monday].DailyTotals.Calories)
	plans.WaitForSaves()

	// Edit again; the snapshot upserts onto the same (user, plan) row
	_, err = plans.EditMeal(ctx, userID, tpl.ID, model.Tuesday, model.SlotDinner, []model.IngredientLine{
		{Name: "Reis", Amount: 200, Unit: model.UnitPer100g},
	})
	require.NoError(t, err)
	plans.WaitForSaves()

	var rows []model.CustomPlan
	require.NoError(t, db.Where("user_id = ?", userID).Find(&rows).Error)
	require.Len(t, rows, 1)

	stored := model.PlanData(rows[0].Data)
	assert.Equal(t, 566, stored.WeekPlan[model.Monday].DailyTotals.Calories)
	assert.Equal(t, 260, stored.WeekPlan[model.Tuesday].DailyTotals.Calories)
	assert.True(t, stored.ModifiedMeals.IsModified(model.Monday, model.SlotBreakfast))
	assert.True(t, stored.ModifiedMeals.IsModified(model.Tuesday, model.SlotDinner))

	// Active plan pointer upserts too
	require.NoError(t, plans.SelectActivePlan(ctx, userID, tpl.ID))
	require.NoError(t, plans.SelectActivePlan(ctx, userID, tpl.ID))
	var activeCount int64
	require.NoError(t, db.Model(&model.ActivePlan{}).Where("user_id = ?", userID).Count(&activeCount).Error)
	assert.Equal(t, int64(1), activeCount)
}
