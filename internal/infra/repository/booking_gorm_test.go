package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// statementRecorder captures the SQL gorm renders so dry-run tests can
// assert on the statements a method would send to Postgres.
type statementRecorder struct {
	statements []string
}

func (r *statementRecorder) LogMode(gormlogger.LogLevel) gormlogger.Interface { return r }
func (r *statementRecorder) Info(context.Context, string, ...interface{})     {}
func (r *statementRecorder) Warn(context.Context, string, ...interface{})     {}
func (r *statementRecorder) Error(context.Context, string, ...interface{})    {}

func (r *statementRecorder) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()
	r.statements = append(r.statements, sql)
}

func dryRunDB(t *testing.T, rec *statementRecorder) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  "host=localhost user=salon dbname=salon",
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               rec,
	})
	require.NoError(t, err)
	return db
}

// Postgres rejects locking clauses on aggregate queries, so the capacity
// count must serialize through an advisory lock instead of FOR UPDATE.
func TestCountActiveForDateSerializesWithoutLockingAggregate(t *testing.T) {
	rec := &statementRecorder{}
	repo := NewBookingGormRepository(dryRunDB(t, rec))

	_, err := repo.CountActiveForDate(context.Background(), "2030-06-02")
	require.NoError(t, err)

	require.Len(t, rec.statements, 2)
	assert.Contains(t, rec.statements[0], "pg_advisory_xact_lock")
	assert.Contains(t, rec.statements[0], "2030-06-02")

	countSQL := rec.statements[1]
	assert.Contains(t, countSQL, "count(*)")
	assert.Contains(t, countSQL, "Cancelled")
	assert.NotContains(t, countSQL, "FOR UPDATE")
}
