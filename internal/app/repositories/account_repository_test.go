package repositories

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santiv/proyecta/internal/app/models"
	"github.com/santiv/proyecta/internal/pkg/apperrors"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err, "failed to create mock pool")
	t.Cleanup(mock.Close)
	return mock
}

func TestAccountRepository_CreateStudentAccount(t *testing.T) {
	account := &models.Account{Email: "student@university.edu", Password: "digest"}

	t.Run("commits both inserts and returns the generated id", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO accounts`).
			WithArgs("student@university.edu", "digest").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))
		mock.ExpectExec(`INSERT INTO students`).
			WithArgs(int64(7), "S12345678").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		repo := NewAccountRepository(mock)
		id, err := repo.CreateStudentAccount(context.Background(), account, "S12345678")

		require.NoError(t, err)
		assert.Equal(t, int64(7), id)
		assert.NoError(t, mock.ExpectationsWereMet(), "unfulfilled expectations")
	})

	t.Run("duplicate email rolls back before the student insert", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO accounts`).
			WithArgs("student@university.edu", "digest").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "accounts_email_key"})
		mock.ExpectRollback()

		repo := NewAccountRepository(mock)
		_, err := repo.CreateStudentAccount(context.Background(), account, "S12345678")

		assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
		assert.NoError(t, mock.ExpectationsWereMet(), "unfulfilled expectations")
	})

	t.Run("duplicate code rolls back the account insert too", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO accounts`).
			WithArgs("student@university.edu", "digest").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))
		mock.ExpectExec(`INSERT INTO students`).
			WithArgs(int64(7), "S12345678").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "students_code_key"})
		mock.ExpectRollback()

		repo := NewAccountRepository(mock)
		_, err := repo.CreateStudentAccount(context.Background(), account, "S12345678")

		assert.ErrorIs(t, err, apperrors.ErrStudentCodeExists)
		assert.NoError(t, mock.ExpectationsWereMet(), "unfulfilled expectations")
	})
}

func TestAccountRepository_CreateCoordinatorAccount(t *testing.T) {
	account := &models.Account{Email: "coord@university.edu", Password: "digest"}

	t.Run("commits both inserts", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO accounts`).
			WithArgs("coord@university.edu", "digest").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(3)))
		mock.ExpectExec(`INSERT INTO coordinators`).
			WithArgs(int64(3), "COORD1").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		repo := NewAccountRepository(mock)
		id, err := repo.CreateCoordinatorAccount(context.Background(), account, "COORD1")

		require.NoError(t, err)
		assert.Equal(t, int64(3), id)
		assert.NoError(t, mock.ExpectationsWereMet(), "unfulfilled expectations")
	})

	t.Run("duplicate staff code rolls back", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO accounts`).
			WithArgs("coord@university.edu", "digest").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(3)))
		mock.ExpectExec(`INSERT INTO coordinators`).
			WithArgs(int64(3), "COORD1").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "coordinators_staff_code_key"})
		mock.ExpectRollback()

		repo := NewAccountRepository(mock)
		_, err := repo.CreateCoordinatorAccount(context.Background(), account, "COORD1")

		assert.ErrorIs(t, err, apperrors.ErrStaffCodeExists)
		assert.NoError(t, mock.ExpectationsWereMet(), "unfulfilled expectations")
	})
}

func TestAccountRepository_UpdateStudentPersonalData(t *testing.T) {
	t.Run("commits both updates", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE accounts`).
			WithArgs("Ana Torres", "5512345678", "Av. Universidad 123", "student@university.edu").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(`UPDATE students`).
			WithArgs(models.GenderFeminine, "student@university.edu").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		repo := NewAccountRepository(mock)
		err := repo.UpdateStudentPersonalData(context.Background(),
			"student@university.edu", "5512345678", "Ana Torres", "Av. Universidad 123", models.GenderFeminine)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet(), "unfulfilled expectations")
	})

	t.Run("unknown email aborts at the account update", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE accounts`).
			WithArgs("Ana Torres", "5512345678", "Av. Universidad 123", "ghost@university.edu").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectRollback()

		repo := NewAccountRepository(mock)
		err := repo.UpdateStudentPersonalData(context.Background(),
			"ghost@university.edu", "5512345678", "Ana Torres", "Av. Universidad 123", models.GenderFeminine)

		assert.ErrorIs(t, err, apperrors.ErrAccountNotFound)
		assert.NoError(t, mock.ExpectationsWereMet(), "unfulfilled expectations")
	})

	t.Run("account without a student row rolls back the profile change", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE accounts`).
			WithArgs("Ana Torres", "5512345678", "Av. Universidad 123", "coord@university.edu").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(`UPDATE students`).
			WithArgs(models.GenderFeminine, "coord@university.edu").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectRollback()

		repo := NewAccountRepository(mock)
		err := repo.UpdateStudentPersonalData(context.Background(),
			"coord@university.edu", "5512345678", "Ana Torres", "Av. Universidad 123", models.GenderFeminine)

		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
		assert.NoError(t, mock.ExpectationsWereMet(), "unfulfilled expectations")
	})
}

func TestAccountRepository_GetAccountByEmail(t *testing.T) {
	t.Run("returns the full row", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(`SELECT id, email, password_digest, name, phone, address`).
			WithArgs("student@university.edu").
			WillReturnRows(pgxmock.NewRows([]string{"id", "email", "password_digest", "name", "phone", "address"}).
				AddRow(int64(7), "student@university.edu", "digest", "Ana Torres", "5512345678", "Av. Universidad 123"))

		repo := NewAccountRepository(mock)
		acc, err := repo.GetAccountByEmail(context.Background(), "student@university.edu")

		require.NoError(t, err)
		assert.Equal(t, int64(7), acc.ID)
		assert.Equal(t, "Ana Torres", acc.Name)
		assert.NoError(t, mock.ExpectationsWereMet(), "unfulfilled expectations")
	})

	t.Run("unknown email maps to not found", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(`SELECT id, email, password_digest, name, phone, address`).
			WithArgs("ghost@university.edu").
			WillReturnError(pgx.ErrNoRows)

		repo := NewAccountRepository(mock)
		_, err := repo.GetAccountByEmail(context.Background(), "ghost@university.edu")

		assert.ErrorIs(t, err, apperrors.ErrAccountNotFound)
		assert.NoError(t, mock.ExpectationsWereMet(), "unfulfilled expectations")
	})
}

func TestAccountRepository_RoleProbes(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectQuery(`SELECT EXISTS \( SELECT 1 FROM students`).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(`SELECT EXISTS \( SELECT 1 FROM coordinators`).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	repo := NewAccountRepository(mock)

	isStudent, err := repo.HasStudentRecord(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, isStudent)

	isCoordinator, err := repo.HasCoordinatorRecord(context.Background(), 7)
	require.NoError(t, err)
	assert.False(t, isCoordinator)

	assert.NoError(t, mock.ExpectationsWereMet(), "unfulfilled expectations")
}

func TestAccountRepository_GetStudent_NotImplemented(t *testing.T) {
	repo := NewAccountRepository(newMockPool(t))
	_, err := repo.GetStudent(context.Background(), "student@university.edu")
	assert.ErrorIs(t, err, apperrors.ErrNotImplemented)
}
