package alert

import (
	"context"
	"fmt"
	"testing"

	"github.com/Naamee/distance-backend/domain"
	"github.com/Naamee/distance-backend/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestService(t *testing.T) AlertService {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.User{}, &entities.Alert{}))

	return NewAlertService(NewAlertRepository(db))
}

func TestCreateAndListAlerts(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.CreateAlert(ctx, domain.CreateAlertRequest{Task: "  "}, 1)
	assert.ErrorIs(t, err, domain.ErrBlankTask)

	created, err := s.CreateAlert(ctx, domain.CreateAlertRequest{Task: "water plants", Occurrence: "weekly"}, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.AlertStatusActive, created.Status)
	assert.Nil(t, created.LastRead)

	_, err = s.CreateAlert(ctx, domain.CreateAlertRequest{Task: "other user task"}, 2)
	require.NoError(t, err)

	// Listing only sees the caller's alerts.
	alerts, err := s.ListAlerts(ctx, 1)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "water plants", alerts[0].Task)
}

func TestMarkAsRead(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	created, err := s.CreateAlert(ctx, domain.CreateAlertRequest{Task: "water plants"}, 1)
	require.NoError(t, err)

	err = s.MarkAsRead(ctx, 999, 1)
	assert.ErrorIs(t, err, domain.ErrAlertNotFound)

	// Someone else's alert reads as absent, not forbidden.
	err = s.MarkAsRead(ctx, created.ID, 2)
	assert.ErrorIs(t, err, domain.ErrAlertNotFound)

	require.NoError(t, s.MarkAsRead(ctx, created.ID, 1))

	alerts, err := s.ListAlerts(ctx, 1)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, domain.AlertStatusRead, alerts[0].Status)
	assert.NotNil(t, alerts[0].LastRead)
}
