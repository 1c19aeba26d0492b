package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookhub-backend/internal/domains/follow"
)

const pgForeignKeyViolation = "23503"

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates the pgx-backed follow repository.
func NewPostgresRepository(pool *pgxpool.Pool) follow.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) AddEdge(ctx context.Context, followerID, followeeID uuid.UUID) error {
	query := `
		INSERT INTO follows (follower_id, followee_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (follower_id, followee_id) DO NOTHING
	`

	_, err := r.pool.Exec(ctx, query, followerID, followeeID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return follow.ErrUserNotFound
		}
		return fmt.Errorf("failed to add follow edge: %w", err)
	}

	return nil
}

func (r *postgresRepository) RemoveEdge(ctx context.Context, followerID, followeeID uuid.UUID) error {
	query := `
		DELETE FROM follows
		WHERE follower_id = $1 AND followee_id = $2
	`

	result, err := r.pool.Exec(ctx, query, followerID, followeeID)
	if err != nil {
		return fmt.Errorf("failed to remove follow edge: %w", err)
	}

	if result.RowsAffected() == 0 {
		return follow.ErrNotFollowing
	}

	return nil
}

func (r *postgresRepository) Exists(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM follows WHERE follower_id = $1 AND followee_id = $2
		)
	`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, followerID, followeeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check follow edge: %w", err)
	}

	return exists, nil
}

func (r *postgresRepository) UserExists(ctx context.Context, userID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check user: %w", err)
	}

	return exists, nil
}

func (r *postgresRepository) Followers(ctx context.Context, userID uuid.UUID, limit, offset int) ([]follow.FollowUser, int, error) {
	return r.listEdge(ctx, userID, limit, offset, "f.followee_id", "f.follower_id")
}

func (r *postgresRepository) Following(ctx context.Context, userID uuid.UUID, limit, offset int) ([]follow.FollowUser, int, error) {
	return r.listEdge(ctx, userID, limit, offset, "f.follower_id", "f.followee_id")
}

func (r *postgresRepository) listEdge(ctx context.Context, userID uuid.UUID, limit, offset int, whereColumn, joinColumn string) ([]follow.FollowUser, int, error) {
	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM follows f WHERE %s = $1`, whereColumn)
	if err := r.pool.QueryRow(ctx, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count query failed: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT u.id, u.username, f.created_at AS followed_at
		FROM follows f
		JOIN users u ON u.id = %s
		WHERE %s = $1
		ORDER BY f.created_at DESC
		LIMIT $2 OFFSET $3
	`, joinColumn, whereColumn)

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list follows query failed: %w", err)
	}
	defer rows.Close()

	users := []follow.FollowUser{}
	for rows.Next() {
		var fu follow.FollowUser
		if err := rows.Scan(&fu.ID, &fu.Username, &fu.FollowedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan follow user: %w", err)
		}
		users = append(users, fu)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows error: %w", err)
	}

	return users, total, nil
}

func (r *postgresRepository) Counts(ctx context.Context, userID uuid.UUID) (int, int, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM follows WHERE followee_id = $1),
			(SELECT COUNT(*) FROM follows WHERE follower_id = $1)
	`

	var followers, following int
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&followers, &following); err != nil {
		return 0, 0, fmt.Errorf("failed to count follows: %w", err)
	}

	return followers, following, nil
}
