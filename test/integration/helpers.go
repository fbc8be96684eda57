//go:build integration
// +build integration

package integration

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stwalsh4118/rabbitears/internal/api"
	"github.com/stwalsh4118/rabbitears/internal/config"
	"github.com/stwalsh4118/rabbitears/internal/db"
	"github.com/stwalsh4118/rabbitears/internal/guide"
	"github.com/stwalsh4118/rabbitears/internal/models"
	"github.com/stwalsh4118/rabbitears/internal/schedule"
)

// setupTestDB creates an in-memory test database with migrations applied
func setupTestDB(t *testing.T) (*db.DB, *db.Repositories, func()) {
	t.Helper()

	database, err := db.New(":memory:")
	require.NoError(t, err, "Failed to create in-memory database")

	sqlDB, err := database.GetSQLDB()
	require.NoError(t, err, "Failed to get SQL DB")

	// Resolve the migrations directory relative to this file so tests work
	// regardless of working directory
	_, filename, _, ok := runtime.Caller(0)
	require.True(t, ok, "Failed to get current file path")

	testDir := filepath.Dir(filename)                     // test/integration
	rootDir := filepath.Dir(filepath.Dir(testDir))        // repo root
	migrationsDir := filepath.Join(rootDir, "migrations") // migrations
	migrationsPath := "file://" + migrationsDir

	err = db.RunMigrations(sqlDB, migrationsPath)
	require.NoError(t, err, "Failed to run migrations")

	repos := db.NewRepositories(database)

	cleanup := func() {
		database.Close()
	}

	return database, repos, cleanup
}

// setupTestRouter creates a test Gin router with the full API surface wired
func setupTestRouter(database *db.DB, repos *db.Repositories) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(gin.Recovery())

	guideSvc := guide.NewService(repos)
	scheduleSvc := schedule.NewService(repos, guideSvc)

	apiGroup := router.Group("/api")
	api.SetupHealthRoutes(apiGroup, database)
	api.SetupChannelRoutes(apiGroup, repos)
	api.SetupMediaRoutes(apiGroup, repos)
	api.SetupBlockRoutes(apiGroup, repos)
	api.SetupSettingsRoutes(apiGroup, repos)
	api.SetupGuideRoutes(apiGroup, scheduleSvc)
	api.SetupPlayerRoutes(apiGroup, testPlaybackConfig())

	return router
}

// testPlaybackConfig returns a fixed playback tuning for router tests
func testPlaybackConfig() config.PlaybackConfig {
	return config.PlaybackConfig{
		BreakTolerance:             0.25,
		PaddingThresholdSeconds:    5,
		ChannelEntryTimeoutSeconds: 2,
		ChannelInfoDurationSeconds: 3,
		MediaInfoDurationSeconds:   5,
	}
}

// createTestChannel creates a channel directly in the database
func createTestChannel(t *testing.T, repos *db.Repositories, number int, name string) *models.Channel {
	t.Helper()

	channel := models.NewChannel(number, name)
	err := repos.Channels.Create(context.Background(), channel)
	require.NoError(t, err, "Failed to create test channel")

	return channel
}

// createTestMedia creates a media item directly in the database
func createTestMedia(t *testing.T, repos *db.Repositories, mediaType, title, filePath string) *models.Media {
	t.Helper()

	item := models.NewMedia(mediaType, title, filePath)
	err := repos.Media.Create(context.Background(), item)
	require.NoError(t, err, "Failed to create test media")

	return item
}

// createTestFiller populates the filler pool with categorized commercials
func createTestFiller(t *testing.T, repos *db.Repositories, categories ...string) []*models.Media {
	t.Helper()

	pool := make([]*models.Media, len(categories))
	for i, category := range categories {
		item := createTestMedia(t, repos, models.MediaTypeFiller,
			"ad-"+category, "https://cdn.example.com/ads/"+category+".mp4")
		if category != "" {
			c := category
			item.Category = &c
			require.NoError(t, repos.Media.Update(context.Background(), item))
		}
		pool[i] = item
	}
	return pool
}

// createTestScheduleEntry places a media item on the channel's grid
func createTestScheduleEntry(t *testing.T, repos *db.Repositories, channel *models.Channel, media *models.Media, dayOfWeek int, startTime, endTime string) *models.ScheduleEntry {
	t.Helper()

	entry := models.NewScheduleEntry(channel.ID, media.ID, media.Type, dayOfWeek, startTime, endTime)
	err := repos.ScheduleEntries.Create(context.Background(), entry)
	require.NoError(t, err, "Failed to create test schedule entry")

	return entry
}
