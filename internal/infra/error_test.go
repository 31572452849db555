//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"rentalflow/internal/infra"
	"rentalflow/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestKindForPgErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want infra.RepositoryErrorKind
	}{
		{
			name: "serialization failure",
			err:  &pgconn.PgError{Code: "40001"},
			want: infra.KindSerializationFailure,
		},
		{
			name: "deadlock detected",
			err:  &pgconn.PgError{Code: "40P01"},
			want: infra.KindSerializationFailure,
		},
		{
			name: "unique violation",
			err:  &pgconn.PgError{Code: "23505"},
			want: infra.KindDuplicateKey,
		},
		{
			name: "wrapped pg error",
			err:  errs.Wrap(&pgconn.PgError{Code: "40001"}, "lock counter"),
			want: infra.KindSerializationFailure,
		},
		{
			name: "plain error",
			err:  errors.New("connection reset"),
			want: infra.KindDBFailure,
		},
		{
			name: "nil error",
			err:  nil,
			want: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, infra.KindForPgErr(tt.err))
		})
	}
}

func TestWrapRepoErr_DerivesKindFromPgCode(t *testing.T) {
	err := infra.WrapRepoErr("advance counter", &pgconn.PgError{Code: "40001"})

	assert.True(t, infra.IsKind(err, infra.KindSerializationFailure))
	assert.False(t, infra.IsKind(err, infra.KindDBFailure))

	var pgErr *pgconn.PgError
	assert.True(t, errors.As(err, &pgErr))
}

func TestWrapRepoErr_ExplicitKindWins(t *testing.T) {
	err := infra.WrapRepoErr("order not found", &pgconn.PgError{Code: "40001"}, infra.KindNotFound)

	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
