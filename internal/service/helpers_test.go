package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/alexanderramin/meridian/internal/domain"
	"github.com/alexanderramin/meridian/internal/repository"
	"github.com/alexanderramin/meridian/internal/testutil"
	"github.com/stretchr/testify/require"
)

type testRepos struct {
	db           *sql.DB
	profiles     *repository.SQLiteProfileRepo
	health       *repository.SQLiteHealthLogRepo
	looks        *repository.SQLiteLooksLogRepo
	routine      *repository.SQLiteRoutineLogRepo
	weights      *repository.SQLiteWeightRepo
	calibrations *repository.SQLiteCalibrationRepo
	snapshots    *repository.SQLitePlanSnapshotRepo
}

func newTestRepos(t *testing.T) testRepos {
	t.Helper()
	database := testutil.NewTestDB(t)
	return testRepos{
		db:           database,
		profiles:     repository.NewSQLiteProfileRepo(database),
		health:       repository.NewSQLiteHealthLogRepo(database),
		looks:        repository.NewSQLiteLooksLogRepo(database),
		routine:      repository.NewSQLiteRoutineLogRepo(database),
		weights:      repository.NewSQLiteWeightRepo(database),
		calibrations: repository.NewSQLiteCalibrationRepo(database),
		snapshots:    repository.NewSQLitePlanSnapshotRepo(database),
	}
}

func (r testRepos) planRepos() PlanRepos {
	return PlanRepos{
		Profiles:     r.profiles,
		Health:       r.health,
		Looks:        r.looks,
		Routine:      r.routine,
		Weights:      r.weights,
		Calibrations: r.calibrations,
		Snapshots:    r.snapshots,
	}
}

func (r testRepos) seedProfile(t *testing.T, opts ...testutil.ProfileOption) *domain.Profile {
	t.Helper()
	p := testutil.NewTestProfile("p", opts...)
	require.NoError(t, r.profiles.Upsert(context.Background(), p))
	return p
}

func (r testRepos) seedHealth(t *testing.T, l *domain.DailyHealthLog) {
	t.Helper()
	require.NoError(t, r.health.Upsert(context.Background(), l))
}
