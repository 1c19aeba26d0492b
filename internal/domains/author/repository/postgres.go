package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookhub-backend/internal/domains/author"
	"bookhub-backend/pkg/database"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates the pgx-backed author repository.
func NewPostgresRepository(pool *pgxpool.Pool) author.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, a *author.Author) error {
	query := `
		INSERT INTO authors (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.pool.Exec(ctx, query, a.ID, a.Name, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert author: %w", err)
	}

	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM authors
		WHERE id = $1
	`

	var a author.Author
	err := r.pool.QueryRow(ctx, query, id).Scan(&a.ID, &a.Name, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, author.ErrAuthorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get author: %w", err)
	}

	return &a, nil
}

// GetBooks loads the author's books for the nested read-only response.
// Ordered like the book list default: newest year first, then title.
func (r *postgresRepository) GetBooks(ctx context.Context, id uuid.UUID) ([]author.BookBrief, error) {
	query := `
		SELECT id, title, publication_year
		FROM books
		WHERE author_id = $1
		ORDER BY publication_year DESC, title ASC
	`

	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list author books: %w", err)
	}
	defer rows.Close()

	books := []author.BookBrief{}
	for rows.Next() {
		var b author.BookBrief
		if err := rows.Scan(&b.ID, &b.Title, &b.PublicationYear); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) List(ctx context.Context, limit, offset int) ([]author.AuthorWithCount, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM authors`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count query failed: %w", err)
	}

	query := `
		SELECT a.id, a.name, a.created_at, a.updated_at, COUNT(b.id) AS book_count
		FROM authors a
		LEFT JOIN books b ON b.author_id = a.id
		GROUP BY a.id
		ORDER BY a.name ASC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list authors query failed: %w", err)
	}
	defer rows.Close()

	authors := []author.AuthorWithCount{}
	for rows.Next() {
		var a author.AuthorWithCount
		if err := rows.Scan(&a.ID, &a.Name, &a.CreatedAt, &a.UpdatedAt, &a.BookCount); err != nil {
			return nil, 0, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows error: %w", err)
	}

	return authors, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *author.Author) error {
	query := `
		UPDATE authors
		SET name = $1, updated_at = $2
		WHERE id = $3
	`

	result, err := r.pool.Exec(ctx, query, a.Name, a.UpdatedAt, a.ID)
	if err != nil {
		return fmt.Errorf("failed to update author: %w", err)
	}

	if result.RowsAffected() == 0 {
		return author.ErrAuthorNotFound
	}

	return nil
}

// DeleteWithBooks cascades inside one transaction so a concurrent book
// insert cannot leave an orphan behind.
func (r *postgresRepository) DeleteWithBooks(ctx context.Context, id uuid.UUID) (int, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (int, error) {
		booksResult, err := tx.Exec(ctx, `DELETE FROM books WHERE author_id = $1`, id)
		if err != nil {
			return 0, fmt.Errorf("failed to delete author books: %w", err)
		}

		authorResult, err := tx.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
		if err != nil {
			return 0, fmt.Errorf("failed to delete author: %w", err)
		}
		if authorResult.RowsAffected() == 0 {
			return 0, author.ErrAuthorNotFound
		}

		return int(booksResult.RowsAffected()), nil
	})
}
