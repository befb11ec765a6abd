// internal/export/postgres_test.go
package export

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadscore/internal/common/logger"
)

func TestPostgresSink_EnsureSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS scored_leads").
		WillReturnResult(sqlmock.NewResult(0, 0))

	sink := NewPostgresSink(db, "scored_leads", logger.NewNoOpLogger())
	require.NoError(t, sink.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSink_ExportUpsertsAllLeads(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO scored_leads").
		WithArgs(
			"lead-1", "Acme National Fitness Co", "", "", "Dallas", "", "owner@acme.com",
			"", "", 80, 100, 95, 92, "HOT", "$2000-5000/month",
			false, true, "Chain", "DecisionMaker", "batch-1", sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO scored_leads").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	sink := NewPostgresSink(db, "scored_leads", logger.NewNoOpLogger())
	require.NoError(t, sink.Export(context.Background(), sampleBatch()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSink_ExportRollsBackOnInsertFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO scored_leads").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	sink := NewPostgresSink(db, "scored_leads", logger.NewNoOpLogger())
	err = sink.Export(context.Background(), sampleBatch())
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
