package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookhub-backend/internal/domains/library"
)

const pgForeignKeyViolation = "23503"

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates the pgx-backed library repository.
func NewPostgresRepository(pool *pgxpool.Pool) library.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, l *library.Library) error {
	query := `
		INSERT INTO libraries (id, name, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query, l.ID, l.Name, l.Address, l.CreatedAt, l.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert library: %w", err)
	}

	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*library.Library, error) {
	query := `
		SELECT id, name, address, created_at, updated_at
		FROM libraries
		WHERE id = $1
	`

	var l library.Library
	err := r.pool.QueryRow(ctx, query, id).Scan(&l.ID, &l.Name, &l.Address, &l.CreatedAt, &l.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, library.ErrLibraryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get library: %w", err)
	}

	return &l, nil
}

func (r *postgresRepository) GetBooks(ctx context.Context, id uuid.UUID) ([]library.ShelvedBook, error) {
	query := `
		SELECT b.id, b.title, b.publication_year, a.name AS author_name
		FROM library_books lb
		JOIN books b ON b.id = lb.book_id
		JOIN authors a ON a.id = b.author_id
		WHERE lb.library_id = $1
		ORDER BY b.title ASC
	`

	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list library books: %w", err)
	}
	defer rows.Close()

	books := []library.ShelvedBook{}
	for rows.Next() {
		var b library.ShelvedBook
		if err := rows.Scan(&b.ID, &b.Title, &b.PublicationYear, &b.AuthorName); err != nil {
			return nil, fmt.Errorf("failed to scan shelved book: %w", err)
		}
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) List(ctx context.Context, limit, offset int) ([]library.LibraryListItem, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM libraries`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count query failed: %w", err)
	}

	query := `
		SELECT l.id, l.name, l.address, COUNT(lb.book_id) AS book_count
		FROM libraries l
		LEFT JOIN library_books lb ON lb.library_id = l.id
		GROUP BY l.id
		ORDER BY l.name ASC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list libraries query failed: %w", err)
	}
	defer rows.Close()

	libraries := []library.LibraryListItem{}
	for rows.Next() {
		var l library.LibraryListItem
		if err := rows.Scan(&l.ID, &l.Name, &l.Address, &l.BookCount); err != nil {
			return nil, 0, fmt.Errorf("failed to scan library: %w", err)
		}
		libraries = append(libraries, l)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows error: %w", err)
	}

	return libraries, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, l *library.Library) error {
	query := `
		UPDATE libraries
		SET name = $1, address = $2, updated_at = $3
		WHERE id = $4
	`

	result, err := r.pool.Exec(ctx, query, l.Name, l.Address, l.UpdatedAt, l.ID)
	if err != nil {
		return fmt.Errorf("failed to update library: %w", err)
	}

	if result.RowsAffected() == 0 {
		return library.ErrLibraryNotFound
	}

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Shelf links go first; the books themselves stay.
	if _, err := r.pool.Exec(ctx, `DELETE FROM library_books WHERE library_id = $1`, id); err != nil {
		return fmt.Errorf("failed to clear library books: %w", err)
	}

	result, err := r.pool.Exec(ctx, `DELETE FROM libraries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete library: %w", err)
	}

	if result.RowsAffected() == 0 {
		return library.ErrLibraryNotFound
	}

	return nil
}

func (r *postgresRepository) AddBook(ctx context.Context, libraryID, bookID uuid.UUID) error {
	query := `
		INSERT INTO library_books (library_id, book_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (library_id, book_id) DO NOTHING
	`

	_, err := r.pool.Exec(ctx, query, libraryID, bookID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return library.ErrBookNotFound
		}
		return fmt.Errorf("failed to add book to library: %w", err)
	}

	return nil
}

func (r *postgresRepository) RemoveBook(ctx context.Context, libraryID, bookID uuid.UUID) error {
	query := `
		DELETE FROM library_books
		WHERE library_id = $1 AND book_id = $2
	`

	result, err := r.pool.Exec(ctx, query, libraryID, bookID)
	if err != nil {
		return fmt.Errorf("failed to remove book from library: %w", err)
	}

	if result.RowsAffected() == 0 {
		return library.ErrBookNotInLibrary
	}

	return nil
}
