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

	"bookhub-backend/internal/domains/book"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates the pgx-backed book repository.
func NewPostgresRepository(pool *pgxpool.Pool) book.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, b *book.Book) error {
	query := `
		INSERT INTO books (id, title, publication_year, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query, b.ID, b.Title, b.PublicationYear, b.AuthorID, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		return translateError(err)
	}

	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*book.BookWithAuthor, error) {
	query := `
		SELECT b.id, b.title, b.publication_year, b.author_id, b.created_at, b.updated_at, a.name AS author_name
		FROM books b
		JOIN authors a ON a.id = b.author_id
		WHERE b.id = $1
	`

	var bw book.BookWithAuthor
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&bw.ID, &bw.Title, &bw.PublicationYear, &bw.AuthorID,
		&bw.CreatedAt, &bw.UpdatedAt, &bw.AuthorName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, book.ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get book: %w", err)
	}

	return &bw, nil
}

func (r *postgresRepository) List(ctx context.Context, params url.Values, limit, offset int) ([]book.BookWithAuthor, int, error) {
	compiled := book.ListQuery.Apply(params, 1)

	whereClause := ""
	if len(compiled.Conditions) > 0 {
		whereClause = "WHERE " + strings.Join(compiled.Conditions, " AND ")
	}

	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM books b
		JOIN authors a ON a.id = b.author_id
		%s
	`, whereClause)

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, compiled.Args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count query failed: %w", err)
	}

	argIndex := len(compiled.Args)
	listQuery := fmt.Sprintf(`
		SELECT b.id, b.title, b.publication_year, b.author_id, b.created_at, b.updated_at, a.name AS author_name
		FROM books b
		JOIN authors a ON a.id = b.author_id
		%s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, whereClause, compiled.OrderBy, argIndex+1, argIndex+2)

	args := append(compiled.Args, limit, offset)
	rows, err := r.pool.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list books query failed: %w", err)
	}
	defer rows.Close()

	books := []book.BookWithAuthor{}
	for rows.Next() {
		var bw book.BookWithAuthor
		if err := rows.Scan(
			&bw.ID, &bw.Title, &bw.PublicationYear, &bw.AuthorID,
			&bw.CreatedAt, &bw.UpdatedAt, &bw.AuthorName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, bw)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows error: %w", err)
	}

	return books, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, b *book.Book) error {
	query := `
		UPDATE books
		SET title = $1, publication_year = $2, author_id = $3, updated_at = $4
		WHERE id = $5
	`

	result, err := r.pool.Exec(ctx, query, b.Title, b.PublicationYear, b.AuthorID, b.UpdatedAt, b.ID)
	if err != nil {
		return translateError(err)
	}

	if result.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	if result.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}

	return nil
}

// Stats aggregates the catalog grouped by decade. The decade is the
// publication year floored to a multiple of ten.
func (r *postgresRepository) Stats(ctx context.Context) (*book.Stats, error) {
	stats := &book.Stats{ByDecade: []book.DecadeCount{}}

	countQuery := `
		SELECT
			(SELECT COUNT(*) FROM books),
			(SELECT COUNT(*) FROM authors)
	`
	if err := r.pool.QueryRow(ctx, countQuery).Scan(&stats.TotalBooks, &stats.TotalAuthors); err != nil {
		return nil, fmt.Errorf("stats count query failed: %w", err)
	}

	oldest, err := r.statBook(ctx, "ASC")
	if err != nil {
		return nil, err
	}
	latest, err := r.statBook(ctx, "DESC")
	if err != nil {
		return nil, err
	}
	stats.OldestBook = oldest
	stats.LatestBook = latest

	decadeQuery := `
		SELECT (publication_year / 10) * 10 AS decade, COUNT(*)
		FROM books
		GROUP BY decade
		ORDER BY decade
	`
	rows, err := r.pool.Query(ctx, decadeQuery)
	if err != nil {
		return nil, fmt.Errorf("stats decade query failed: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var dc book.DecadeCount
		if err := rows.Scan(&dc.Decade, &dc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan decade: %w", err)
		}
		stats.ByDecade = append(stats.ByDecade, dc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return stats, nil
}

func (r *postgresRepository) statBook(ctx context.Context, direction string) (*book.StatBook, error) {
	query := fmt.Sprintf(`
		SELECT id, title, publication_year
		FROM books
		ORDER BY publication_year %s, title ASC
		LIMIT 1
	`, direction)

	var sb book.StatBook
	err := r.pool.QueryRow(ctx, query).Scan(&sb.ID, &sb.Title, &sb.PublicationYear)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stats book query failed: %w", err)
	}

	return &sb, nil
}

func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return book.ErrDuplicateBook
		case pgForeignKeyViolation:
			return book.ErrAuthorNotFound
		}
	}
	return fmt.Errorf("book query failed: %w", err)
}
