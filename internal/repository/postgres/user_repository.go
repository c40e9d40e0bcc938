package postgres

import (
	"context"
	"errors"
	"parimutuel-engine/internal/model"
	"parimutuel-engine/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.UserRepository = (*UserRepositoryImpl)(nil)

// UserRepositoryImpl is the PostgreSQL implementation of UserRepository
type UserRepositoryImpl struct {
	*TransactionManager
}

func NewUserRepository(pool *pgxpool.Pool) repository.UserRepository {
	return &UserRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const userColumns = `id, balance, total_staked, total_won, version, created_at, updated_at`

func scanUser(row pgx.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(&user.ID, &user.Balance, &user.TotalStaked, &user.TotalWon, &user.Version, &user.CreatedAt, &user.UpdatedAt)
	return user, err
}

// EnsureUser creates the user with a zero balance if missing
func (r *UserRepositoryImpl) EnsureUser(ctx context.Context, userID string, tx pgx.Tx) error {
	query := `INSERT INTO users (id) VALUES ($1) ON CONFLICT (id) DO NOTHING`

	if _, err := tx.Exec(ctx, query, userID); err != nil {
		return storageErr("ensure user", err)
	}
	return nil
}

// GetUserForUpdate retrieves a user with row-level lock
func (r *UserRepositoryImpl) GetUserForUpdate(ctx context.Context, userID string, tx pgx.Tx) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 FOR UPDATE`

	user, err := scanUser(tx.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, storageErr("get user for update", err)
	}
	return user, nil
}

// GetUser retrieves a user without locking
func (r *UserRepositoryImpl) GetUser(ctx context.Context, userID string, tx ...pgx.Tx) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.getExecutor(tx...).QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, storageErr("get user", err)
	}
	return user, nil
}

// AdjustBalance adds delta to the balance in a single statement
func (r *UserRepositoryImpl) AdjustBalance(ctx context.Context, userID string, delta int64, tx pgx.Tx) (int64, error) {
	query := `
        UPDATE users
        SET balance = balance + $1, version = version + 1, updated_at = NOW()
        WHERE id = $2
        RETURNING balance`

	var balance int64
	err := tx.QueryRow(ctx, query, delta, userID).Scan(&balance)
	if err != nil {
		// CONSTRAINT balance_non_negative CHECK (balance >= 0)
		if _, ok := isCheckViolation(err); ok {
			return 0, model.ErrInsufficientFunds
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, model.ErrUserNotFound
		}
		return 0, storageErr("adjust balance", err)
	}
	return balance, nil
}

// AddStats increments lifetime totals
func (r *UserRepositoryImpl) AddStats(ctx context.Context, userID string, staked, won int64, tx pgx.Tx) error {
	query := `
        UPDATE users
        SET total_staked = total_staked + $1, total_won = total_won + $2, updated_at = NOW()
        WHERE id = $3`

	commandTag, err := tx.Exec(ctx, query, staked, won, userID)
	if err != nil {
		return storageErr("add user stats", err)
	}
	if commandTag.RowsAffected() == 0 {
		return model.ErrUserNotFound
	}
	return nil
}
