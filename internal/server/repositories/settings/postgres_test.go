package settings

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/smartfridge/internal/common"
	"github.com/dmitrijs2005/smartfridge/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	userID      = "7f0c1a34-3b0e-4c38-9d55-0c8f6d1d2a10"
	upsertQuery = `(?s)^\s*INSERT\s+INTO\s+user_settings\s*\(user_id,\s*theme\)\s*VALUES\s*\(\$1,\s*\$2\)\s*ON\s+CONFLICT\s*\(user_id\)\s*DO\s+UPDATE\s+SET\s+theme\s*=\s*EXCLUDED\.theme\s*$`
	selectQuery = `(?s)^\s*SELECT\s+theme\s+FROM\s+user_settings\s+WHERE\s+user_id\s*=\s*\$1\s*$`
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPostgresRepository(db), mock, db
}

func TestUpsert(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(upsertQuery).WithArgs(userID, "Foxy").WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Upsert(context.Background(), &models.Settings{UserID: userID, Theme: models.ThemeFoxy})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(upsertQuery).WithArgs(userID, "Dark").WillReturnError(errors.New("fk violation"))

	err := repo.Upsert(context.Background(), &models.Settings{UserID: userID, Theme: models.ThemeDark})
	require.Error(t, err)
	assert.Regexp(t, `db error: .*fk violation`, err.Error())
}

func TestGet(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		want    *models.Settings
		wantErr error
		anyErr  bool
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectQuery).WithArgs(userID).
					WillReturnRows(sqlmock.NewRows([]string{"theme"}).AddRow("DarkOcean"))
			},
			want: &models.Settings{UserID: userID, Theme: models.ThemeDarkOcean},
		},
		{
			name: "missing",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectQuery).WithArgs(userID).WillReturnError(sql.ErrNoRows)
			},
			wantErr: common.ErrorNotFound,
		},
		{
			name: "unknown theme stored",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectQuery).WithArgs(userID).
					WillReturnRows(sqlmock.NewRows([]string{"theme"}).AddRow("Neon"))
			},
			anyErr: true,
		},
		{
			name: "db error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectQuery).WithArgs(userID).WillReturnError(errors.New("timeout"))
			},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newRepoWithMock(t)
			defer db.Close()
			tt.setup(mock)

			got, err := repo.Get(context.Background(), userID)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				require.Error(t, err)
				assert.NotErrorIs(t, err, common.ErrorNotFound)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
