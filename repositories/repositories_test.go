package repositories

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/protrack-simple/database"
	"github.com/protrack-simple/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	database.DB = db
}

func seedUser(t *testing.T, email string) models.User {
	t.Helper()
	user := models.User{
		FirstName: "jane",
		LastName:  "doe",
		Email:     email,
		Password:  "hashed",
	}
	require.NoError(t, database.DB.Create(&user).Error)
	return user
}

func TestUserDeleteCascades(t *testing.T) {
	setupDB(t)

	user := seedUser(t, "jane@example.com")
	projectRepo := NewProjectRepository()
	project, err := projectRepo.CreateWithOwner(models.Project{Name: "project a", Status: models.StatusPending}, user.ID)
	require.NoError(t, err)

	timesheet := models.Timesheet{
		UserID:    user.ID,
		ProjectID: project.ID,
		TaskName:  "design",
		Date:      "2026-02-12",
		Hours:     6,
	}
	require.NoError(t, database.DB.Create(&timesheet).Error)

	require.NoError(t, NewUserRepository().Delete(user.ID))

	var count int64
	database.DB.Model(&models.Timesheet{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Zero(t, count)
	database.DB.Model(&models.ProjectUser{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Zero(t, count)

	// The project itself is not owned by the membership row and survives
	database.DB.Model(&models.Project{}).Where("id = ?", project.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestListFilteredOrdering(t *testing.T) {
	setupDB(t)

	user := seedUser(t, "jane@example.com")
	repo := NewProjectRepository()

	names := []string{"gamma", "alpha", "beta"}
	for _, name := range names {
		_, err := repo.CreateWithOwner(models.Project{Name: name, Status: models.StatusPending}, user.ID)
		require.NoError(t, err)
	}

	// Creation order, not alphabetical
	projects, err := repo.ListFiltered(nil)
	require.NoError(t, err)
	require.Len(t, projects, 3)
	for i, p := range projects {
		assert.Equal(t, names[i], p.Name)
	}
}

func TestListFilteredNativeOnlyIgnoresEAV(t *testing.T) {
	setupDB(t)

	user := seedUser(t, "jane@example.com")
	repo := NewProjectRepository()

	_, err := repo.CreateWithOwner(models.Project{Name: "project a", Status: models.StatusPending}, user.ID)
	require.NoError(t, err)
	_, err = repo.CreateWithOwner(models.Project{Name: "project b", Status: models.StatusCompleted}, user.ID)
	require.NoError(t, err)

	// No attributes exist, so these keys run the native pass only
	projects, err := repo.ListFiltered(map[string]string{"name": "project", "status": "pend"})
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "project a", projects[0].Name)
}
