package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/author"
	"library-backend/internal/domains/book"
)

// postgresRepository implements author.Repository on pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new author repository instance.
func NewPostgresRepository(pool *pgxpool.Pool) author.Repository {
	return &postgresRepository{pool: pool}
}

// Create inserts new author with generated ID and timestamps.
func (r *postgresRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        INSERT INTO authors (name, email, bio, nationality, birth_year)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, name, email, bio, nationality, birth_year, created_at, updated_at
    `

	var created author.Author
	err := r.pool.QueryRow(
		ctx,
		query,
		a.Name,
		a.Email,
		a.Bio,
		a.Nationality,
		a.BirthYear,
	).Scan(
		&created.ID,
		&created.Name,
		&created.Email,
		&created.Bio,
		&created.Nationality,
		&created.BirthYear,
		&created.CreatedAt,
		&created.UpdatedAt,
	)

	if err != nil {
		// Unique constraint violation on email
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName, "email") {
				return nil, author.ErrDuplicateEmail
			}
		}
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return &created, nil
}

// GetByID retrieves author by UUID.
func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	query := `
        SELECT id, name, email, bio, nationality, birth_year, created_at, updated_at
        FROM authors
        WHERE id = $1
    `

	var a author.Author
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID,
		&a.Name,
		&a.Email,
		&a.Bio,
		&a.Nationality,
		&a.BirthYear,
		&a.CreatedAt,
		&a.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	return &a, nil
}

// GetAll retrieves paginated list with filtering and sorting.
func (r *postgresRepository) GetAll(ctx context.Context, filter author.AuthorFilter) ([]author.Author, int64, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
        SELECT id, name, email, bio, nationality, birth_year, created_at, updated_at
        FROM authors
        WHERE 1=1
    `)

	args := []interface{}{}
	argPos := 1

	if filter.Search != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND name ILIKE $%d", argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	sortColumn := "created_at"
	if filter.SortBy == "name" {
		sortColumn = "name"
	}

	sortOrder := "DESC"
	if filter.Order == "asc" {
		sortOrder = "ASC"
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s %s", sortColumn, sortOrder))
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argPos, argPos+1))
	args = append(args, filter.Limit, filter.Offset())

	rows, err := r.pool.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	var authors []author.Author
	for rows.Next() {
		var a author.Author
		err := rows.Scan(
			&a.ID,
			&a.Name,
			&a.Email,
			&a.Bio,
			&a.Nationality,
			&a.BirthYear,
			&a.CreatedAt,
			&a.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating authors: %w", err)
	}

	// Total count for pagination, same filter as the fetch
	countQuery := `SELECT COUNT(*) FROM authors WHERE 1=1`
	countArgs := []interface{}{}

	if filter.Search != "" {
		countQuery += " AND name ILIKE $1"
		countArgs = append(countArgs, "%"+filter.Search+"%")
	}

	var total int64
	err = r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count authors: %w", err)
	}

	return authors, total, nil
}

// Update persists a fully-populated author entity.
func (r *postgresRepository) Update(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        UPDATE authors
        SET
            name = $1,
            email = $2,
            bio = $3,
            nationality = $4,
            birth_year = $5,
            updated_at = NOW()
        WHERE id = $6
        RETURNING id, name, email, bio, nationality, birth_year, created_at, updated_at
    `

	var updated author.Author
	err := r.pool.QueryRow(
		ctx,
		query,
		a.Name,
		a.Email,
		a.Bio,
		a.Nationality,
		a.BirthYear,
		a.ID,
	).Scan(
		&updated.ID,
		&updated.Name,
		&updated.Email,
		&updated.Bio,
		&updated.Nationality,
		&updated.BirthYear,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName, "email") {
				return nil, author.ErrDuplicateEmail
			}
		}

		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	return &updated, nil
}

// Delete removes author by ID. The books FK is declared ON DELETE
// CASCADE, so the store removes the author's books in the same
// statement.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM authors WHERE id = $1`

	cmdTag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return author.ErrAuthorNotFound
	}

	return nil
}

// ExistsByID checks if author exists (lightweight query).
func (r *postgresRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1)`

	var exists bool
	err := r.pool.QueryRow(ctx, query, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check author existence: %w", err)
	}

	return exists, nil
}

// ListBooks returns the author's books ordered by publication year
// ascending. The statistics aggregation depends on that order for its
// first/latest and tie-breaking semantics.
func (r *postgresRepository) ListBooks(ctx context.Context, authorID uuid.UUID) ([]book.Book, error) {
	query := `
        SELECT id, title, genre, description, published_year, pages,
               author_id, created_at, updated_at
        FROM books
        WHERE author_id = $1
        ORDER BY published_year ASC
    `

	rows, err := r.pool.Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query author books: %w", err)
	}
	defer rows.Close()

	books := []book.Book{}
	for rows.Next() {
		var b book.Book
		err := rows.Scan(
			&b.ID,
			&b.Title,
			&b.Genre,
			&b.Description,
			&b.PublishedYear,
			&b.Pages,
			&b.AuthorID,
			&b.CreatedAt,
			&b.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating author books: %w", err)
	}

	return books, nil
}
