package gqlpager

import (
	"math"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func Test_NewParams(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		pageSize int
		skip     int
		take     int
		err      error
	}{
		{"first page", 1, 25, 0, 25, nil},
		{"second page", 2, 10, 10, 10, nil},
		{"page size one", 7, 1, 6, 1, nil},
		{"zero page", 0, 10, 0, 0, ErrInvalidPage},
		{"negative page", -1, 10, 0, 0, ErrInvalidPage},
		{"zero page size", 1, 0, 0, 0, ErrInvalidPageSize},
		{"negative page size", 1, -5, 0, 0, ErrInvalidPageSize},
		{"overflowing offset", math.MaxInt, 2, 0, 0, ErrOffsetOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewParams(tt.page, tt.pageSize)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.page, p.Page)
			require.Equal(t, tt.pageSize, p.PageSize)
			require.Equal(t, tt.skip, p.Skip)
			require.Equal(t, tt.take, p.Take)
			require.Empty(t, p.Sort)
		})
	}
}

func Test_Params_CalculatePageInfo(t *testing.T) {
	p, err := NewParams(2, 10)
	require.NoError(t, err)

	info := p.CalculatePageInfo(35)
	require.Equal(t, 2, info.Page)
	require.Equal(t, 4, info.TotalPages)
	require.NotNil(t, info.NextPage)
	require.Equal(t, 3, *info.NextPage)
}

func Test_Params_WithSort(t *testing.T) {
	p, err := NewParams(1, 10)
	require.NoError(t, err)

	sorted := p.WithSort(OrderBy{Column: "id", Direction: DirectionDESC})
	require.Equal(t, Orderings{{Column: "id", Direction: DirectionDESC}}, sorted.Sort)
	require.Empty(t, p.Sort, "original params must stay untouched")
}

func Test_Params_ToSQL(t *testing.T) {
	first, err := NewParams(1, 10)
	require.NoError(t, err)
	require.Equal(t, "LIMIT 10", first.ToSQL())

	third, err := NewParams(3, 10)
	require.NoError(t, err)
	require.Equal(t, "LIMIT 10 OFFSET 20", third.ToSQL())
}

func Test_Params_Apply(t *testing.T) {
	for _, newMock := range []func() (string, *gorm.DB, sqlmock.Sqlmock, error){
		newGORMPostgresMock,
		newGORMMySQLMock,
	} {
		dialect, db, _, err := newMock()
		require.NoError(t, err)

		t.Run(dialect, func(t *testing.T) {
			third, err := NewParams(3, 10)
			require.NoError(t, err)
			third = third.WithSort(OrderBy{Column: "id", Direction: DirectionDESC})

			sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
				return third.Apply(tx.Model(&testUser{})).Find(&[]testUser{})
			})
			require.Contains(t, sql, "ORDER BY id DESC")
			require.Contains(t, sql, "LIMIT 10")
			require.Contains(t, sql, "OFFSET 20")

			first, err := NewParams(1, 5)
			require.NoError(t, err)

			sql = db.ToSQL(func(tx *gorm.DB) *gorm.DB {
				return tx.Model(&testUser{}).Scopes(first.Scope()).Find(&[]testUser{})
			})
			require.Contains(t, sql, "LIMIT 5")
			require.NotContains(t, sql, "OFFSET")
			require.NotContains(t, sql, "ORDER BY")
		})
	}
}

func Test_Params_Apply_Query(t *testing.T) {
	_, db, mock, err := newGORMPostgresMock()
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "test_users" ORDER BY name ASC LIMIT .+ OFFSET .+`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(3, "c").AddRow(4, "d"))

	p, err := NewParams(2, 2)
	require.NoError(t, err)
	p = p.WithSort(OrderBy{Column: "name", Direction: DirectionASC})

	var users []testUser
	err = p.Apply(db.Model(&testUser{})).Find(&users).Error
	require.NoError(t, err)
	require.Equal(t, []testUser{{ID: 3, Name: "c"}, {ID: 4, Name: "d"}}, users)
	require.NoError(t, mock.ExpectationsWereMet())
}
