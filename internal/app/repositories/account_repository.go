package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/santiv/proyecta/internal/app/models"
	"github.com/santiv/proyecta/internal/db"
	"github.com/santiv/proyecta/internal/pkg/apperrors"
	"github.com/santiv/proyecta/internal/pkg/dberrors"
	"github.com/santiv/proyecta/internal/pkg/logger"
)

// AccountRepository handles account and role-record database operations.
// Writes that touch both the accounts table and a role table run inside one
// transaction; a failure at either statement rolls the whole unit back.
type AccountRepository struct {
	db db.Pool
	sb squirrel.StatementBuilderType
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(pool db.Pool) *AccountRepository {
	return &AccountRepository{
		db: pool,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateStudentAccount inserts the base account row and its student row as a
// single atomic unit and returns the generated account id. The caller
// supplies an already-hashed password; profile fields start as placeholders.
func (r *AccountRepository) CreateStudentAccount(ctx context.Context, acc *models.Account, code string) (int64, error) {
	var accountID int64

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO accounts (email, password_digest)
			VALUES ($1, $2)
			RETURNING id`,
			acc.Email, acc.Password).Scan(&accountID)
		if err != nil {
			if dberrors.IsDuplicateConstraintError(err, "accounts_email_key") {
				return apperrors.ErrEmailAlreadyExists
			}
			return fmt.Errorf("error creating account: %w", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO students (account_id, code)
			VALUES ($1, $2)`,
			accountID, code)
		if err != nil {
			if dberrors.IsDuplicateConstraintError(err, "students_code_key") {
				return apperrors.ErrStudentCodeExists
			}
			return fmt.Errorf("error creating student record: %w", err)
		}

		return nil
	})
	if err != nil {
		logger.Warn().Err(err).Str("email", acc.Email).Msg("Student registration rolled back")
		return 0, err
	}

	logger.Info().Int64("accountID", accountID).Str("code", code).Msg("Student account created")
	return accountID, nil
}

// CreateCoordinatorAccount inserts the base account row and its coordinator
// row atomically and returns the generated account id.
func (r *AccountRepository) CreateCoordinatorAccount(ctx context.Context, acc *models.Account, staffCode string) (int64, error) {
	var accountID int64

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO accounts (email, password_digest)
			VALUES ($1, $2)
			RETURNING id`,
			acc.Email, acc.Password).Scan(&accountID)
		if err != nil {
			if dberrors.IsDuplicateConstraintError(err, "accounts_email_key") {
				return apperrors.ErrEmailAlreadyExists
			}
			return fmt.Errorf("error creating account: %w", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO coordinators (account_id, staff_code)
			VALUES ($1, $2)`,
			accountID, staffCode)
		if err != nil {
			if dberrors.IsDuplicateConstraintError(err, "coordinators_staff_code_key") {
				return apperrors.ErrStaffCodeExists
			}
			return fmt.Errorf("error creating coordinator record: %w", err)
		}

		return nil
	})
	if err != nil {
		logger.Warn().Err(err).Str("email", acc.Email).Msg("Coordinator registration rolled back")
		return 0, err
	}

	logger.Info().Int64("accountID", accountID).Msg("Coordinator account created")
	return accountID, nil
}

// UpdateStudentPersonalData updates the base profile fields and the student
// row's gender in one transaction, keyed by email. Zero matched rows at
// either statement aborts and rolls back the whole update.
func (r *AccountRepository) UpdateStudentPersonalData(ctx context.Context, email, phone, name, address string, gender models.Gender) error {
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE accounts
			SET name = $1, phone = $2, address = $3
			WHERE email = $4`,
			name, phone, address, email)
		if err != nil {
			return fmt.Errorf("error updating account: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrAccountNotFound
		}

		tag, err = tx.Exec(ctx, `
			UPDATE students
			SET gender = $1
			WHERE account_id = (SELECT id FROM accounts WHERE email = $2)`,
			gender, email)
		if err != nil {
			return fmt.Errorf("error updating student record: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrStudentNotFound
		}

		return nil
	})
	if err != nil {
		logger.Warn().Err(err).Str("email", email).Msg("Personal data update rolled back")
		return err
	}

	logger.Info().Str("email", email).Msg("Personal data updated")
	return nil
}

// GetAccountByEmail retrieves an account by email
func (r *AccountRepository) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	acc := &models.Account{}
	err := r.db.QueryRow(ctx, `
		SELECT id, email, password_digest, name, phone, address
		FROM accounts
		WHERE email = $1`,
		email).Scan(&acc.ID, &acc.Email, &acc.Password, &acc.Name, &acc.Phone, &acc.Address)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("error retrieving account: %w", err)
	}

	return acc, nil
}

// HasStudentRecord checks whether the account id appears in the students
// table.
func (r *AccountRepository) HasStudentRecord(ctx context.Context, accountID int64) (bool, error) {
	return r.roleRecordExists(ctx, "students", accountID)
}

// HasCoordinatorRecord checks whether the account id appears in the
// coordinators table.
func (r *AccountRepository) HasCoordinatorRecord(ctx context.Context, accountID int64) (bool, error) {
	return r.roleRecordExists(ctx, "coordinators", accountID)
}

func (r *AccountRepository) roleRecordExists(ctx context.Context, table string, accountID int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From(table).
		Where(squirrel.Eq{"account_id": accountID}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build role record query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		logger.Error().Err(err).Str("table", table).Int64("accountID", accountID).Msg("Error checking role record")
		return false, fmt.Errorf("error checking %s record: %w", table, err)
	}

	return exists, nil
}

// GetStudent retrieves a full student record by email. No caller needs it
// yet; it fails loudly instead of returning an empty record.
func (r *AccountRepository) GetStudent(ctx context.Context, email string) (*models.StudentRecord, error) {
	return nil, fmt.Errorf("get student by email: %w", apperrors.ErrNotImplemented)
}
