package repository

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"bookhub-backend/internal/domains/post"
)

const pgUniqueViolation = "23505"

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates the pgx-backed post repository.
func NewPostgresRepository(pool *pgxpool.Pool) post.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, p *post.Post) error {
	query := `
		INSERT INTO posts (id, author_id, title, content, tags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		p.ID, p.AuthorID, p.Title, p.Content, pq.Array(p.Tags), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}

	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*post.PostWithMeta, error) {
	query := `
		SELECT p.id, p.author_id, p.title, p.content, p.tags, p.created_at, p.updated_at,
		       u.username AS author_username,
		       COUNT(l.user_id) AS like_count
		FROM posts p
		JOIN users u ON u.id = p.author_id
		LEFT JOIN likes l ON l.post_id = p.id
		WHERE p.id = $1
		GROUP BY p.id, u.username
	`

	var pm post.PostWithMeta
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&pm.ID, &pm.AuthorID, &pm.Title, &pm.Content, pq.Array(&pm.Tags),
		&pm.CreatedAt, &pm.UpdatedAt, &pm.AuthorUsername, &pm.LikeCount,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, post.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return &pm, nil
}

func (r *postgresRepository) List(ctx context.Context, params url.Values, limit, offset int) ([]post.PostWithMeta, int, error) {
	compiled := post.ListQuery.Apply(params, 1)

	whereClause := ""
	if len(compiled.Conditions) > 0 {
		whereClause = "WHERE " + strings.Join(compiled.Conditions, " AND ")
	}

	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM posts p
		%s
	`, whereClause)

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, compiled.Args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count query failed: %w", err)
	}

	argIndex := len(compiled.Args)
	listQuery := fmt.Sprintf(`
		SELECT p.id, p.author_id, p.title, p.content, p.tags, p.created_at, p.updated_at,
		       u.username AS author_username,
		       COUNT(l.user_id) AS like_count
		FROM posts p
		JOIN users u ON u.id = p.author_id
		LEFT JOIN likes l ON l.post_id = p.id
		%s
		GROUP BY p.id, u.username
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, whereClause, compiled.OrderBy, argIndex+1, argIndex+2)

	args := append(compiled.Args, limit, offset)
	rows, err := r.pool.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list posts query failed: %w", err)
	}
	defer rows.Close()

	posts := []post.PostWithMeta{}
	for rows.Next() {
		var pm post.PostWithMeta
		if err := rows.Scan(
			&pm.ID, &pm.AuthorID, &pm.Title, &pm.Content, pq.Array(&pm.Tags),
			&pm.CreatedAt, &pm.UpdatedAt, &pm.AuthorUsername, &pm.LikeCount,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, pm)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows error: %w", err)
	}

	return posts, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, p *post.Post) error {
	query := `
		UPDATE posts
		SET title = $1, content = $2, tags = $3, updated_at = $4
		WHERE id = $5
	`

	result, err := r.pool.Exec(ctx, query, p.Title, p.Content, pq.Array(p.Tags), p.UpdatedAt, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	if result.RowsAffected() == 0 {
		return post.ErrPostNotFound
	}

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Likes referencing the post go first.
	if _, err := r.pool.Exec(ctx, `DELETE FROM likes WHERE post_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete post likes: %w", err)
	}

	result, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	if result.RowsAffected() == 0 {
		return post.ErrPostNotFound
	}

	return nil
}

func (r *postgresRepository) AddLike(ctx context.Context, postID, userID uuid.UUID) error {
	query := `
		INSERT INTO likes (post_id, user_id, created_at)
		VALUES ($1, $2, NOW())
	`

	_, err := r.pool.Exec(ctx, query, postID, userID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return post.ErrAlreadyLiked
		}
		return fmt.Errorf("failed to add like: %w", err)
	}

	return nil
}

func (r *postgresRepository) RemoveLike(ctx context.Context, postID, userID uuid.UUID) error {
	query := `
		DELETE FROM likes
		WHERE post_id = $1 AND user_id = $2
	`

	result, err := r.pool.Exec(ctx, query, postID, userID)
	if err != nil {
		return fmt.Errorf("failed to remove like: %w", err)
	}

	if result.RowsAffected() == 0 {
		return post.ErrNotLiked
	}

	return nil
}
