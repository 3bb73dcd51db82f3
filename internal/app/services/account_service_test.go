package services

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santiv/proyecta/internal/app/models"
	"github.com/santiv/proyecta/internal/app/repositories"
	"github.com/santiv/proyecta/internal/pkg/apperrors"
	"github.com/santiv/proyecta/internal/pkg/auth"
	"github.com/santiv/proyecta/internal/pkg/validation"
)

func newAccountService(mock pgxmock.PgxPoolIface) AccountService {
	return NewAccountService(repositories.NewAccountRepository(mock), zerolog.Nop())
}

func TestAccountService_RegisterStudent(t *testing.T) {
	t.Run("hashes the password and stores both rows", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO accounts`).
			WithArgs("student@university.edu", pgxmock.AnyArg()).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))
		mock.ExpectExec(`INSERT INTO students`).
			WithArgs(int64(7), "S12345678").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		id, err := newAccountService(mock).RegisterStudent(context.Background(), "student@university.edu", "secret1", "S12345678")

		require.NoError(t, err)
		assert.Equal(t, int64(7), id)
		assert.NoError(t, mock.ExpectationsWereMet(), "unfulfilled expectations")
	})

	t.Run("stores a digest that verifies, never the plaintext", func(t *testing.T) {
		mock := newMockPool(t)
		var stored string
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO accounts`).
			WithArgs("student@university.edu", digestCapture{&stored}).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))
		mock.ExpectExec(`INSERT INTO students`).
			WithArgs(int64(7), "S12345678").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		_, err := newAccountService(mock).RegisterStudent(context.Background(), "student@university.edu", "secret1", "S12345678")

		require.NoError(t, err)
		assert.NotEqual(t, "secret1", stored)
		assert.True(t, auth.CheckPassword(stored, "secret1"))
	})

	t.Run("invalid code never reaches the store", func(t *testing.T) {
		mock := newMockPool(t)

		_, err := newAccountService(mock).RegisterStudent(context.Background(), "student@university.edu", "secret1", "A12345678")

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

		var fieldErr *validation.FieldError
		require.True(t, errors.As(err, &fieldErr))
		assert.Equal(t, "code", fieldErr.Field)
		assert.NoError(t, mock.ExpectationsWereMet(), "no store activity expected")
	})
}

// digestCapture matches any string argument and records it for later
// assertions.
type digestCapture struct {
	dest *string
}

func (c digestCapture) Match(v interface{}) bool {
	s, ok := v.(string)
	if ok {
		*c.dest = s
	}
	return ok
}

func TestAccountService_RegisterCoordinator(t *testing.T) {
	t.Run("stores both rows", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO accounts`).
			WithArgs("coord@university.edu", pgxmock.AnyArg()).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(3)))
		mock.ExpectExec(`INSERT INTO coordinators`).
			WithArgs(int64(3), "COORD1").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		id, err := newAccountService(mock).RegisterCoordinator(context.Background(), "coord@university.edu", "secret1", "COORD1")

		require.NoError(t, err)
		assert.Equal(t, int64(3), id)
		assert.NoError(t, mock.ExpectationsWereMet(), "unfulfilled expectations")
	})

	t.Run("short staff code never reaches the store", func(t *testing.T) {
		mock := newMockPool(t)

		_, err := newAccountService(mock).RegisterCoordinator(context.Background(), "coord@university.edu", "secret1", "1234")

		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		assert.NoError(t, mock.ExpectationsWereMet(), "no store activity expected")
	})
}

func TestAccountService_UpdateProfile(t *testing.T) {
	t.Run("applies a valid update", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE accounts`).
			WithArgs("Ana Torres", "5512345678", "Av. Universidad 123", "student@university.edu").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(`UPDATE students`).
			WithArgs(models.GenderFeminine, "student@university.edu").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		err := newAccountService(mock).UpdateProfile(context.Background(),
			"student@university.edu", "5512345678", "Ana Torres", "Av. Universidad 123", "Feminine")

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet(), "unfulfilled expectations")
	})

	t.Run("gender outside the enum never reaches the store", func(t *testing.T) {
		mock := newMockPool(t)

		err := newAccountService(mock).UpdateProfile(context.Background(),
			"student@university.edu", "5512345678", "Ana Torres", "Av. Universidad 123", "Other")

		var fieldErr *validation.FieldError
		require.True(t, errors.As(err, &fieldErr))
		assert.Equal(t, "gender", fieldErr.Field)
		assert.NoError(t, mock.ExpectationsWereMet(), "no store activity expected")
	})
}

func TestAccountService_GetProfile(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectQuery(`SELECT id, email, password_digest, name, phone, address`).
		WithArgs("student@university.edu").
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "password_digest", "name", "phone", "address"}).
			AddRow(int64(7), "student@university.edu", "digest", "Ana Torres", "5512345678", "Av. Universidad 123"))
	mock.ExpectQuery(`SELECT EXISTS \( SELECT 1 FROM students`).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(`SELECT EXISTS \( SELECT 1 FROM coordinators`).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	acc, role, err := newAccountService(mock).GetProfile(context.Background(), "student@university.edu")

	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, role)
	assert.Equal(t, "Ana Torres", acc.Name)
	assert.NoError(t, mock.ExpectationsWereMet(), "unfulfilled expectations")
}
