package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/book"
)

// postgresRepository implements book.Repository on pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new book repository instance.
func NewPostgresRepository(pool *pgxpool.Pool) book.Repository {
	return &postgresRepository{pool: pool}
}

// bookWithAuthorQuery joins the owning author into every single-book
// fetch so responses can embed author id/name/email.
const bookWithAuthorQuery = `
    SELECT b.id, b.title, b.genre, b.description, b.published_year,
           b.pages, b.author_id, b.created_at, b.updated_at,
           a.id, a.name, a.email
    FROM books b
    JOIN authors a ON a.id = b.author_id
    WHERE b.id = $1
`

// Create inserts a new book.
func (r *postgresRepository) Create(ctx context.Context, b *book.Book) (*book.Book, error) {
	query := `
        INSERT INTO books (title, genre, description, published_year, pages, author_id)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, title, genre, description, published_year, pages,
                  author_id, created_at, updated_at
    `

	var created book.Book
	err := r.pool.QueryRow(
		ctx,
		query,
		b.Title,
		b.Genre,
		b.Description,
		b.PublishedYear,
		b.Pages,
		b.AuthorID,
	).Scan(
		&created.ID,
		&created.Title,
		&created.Genre,
		&created.Description,
		&created.PublishedYear,
		&created.Pages,
		&created.AuthorID,
		&created.CreatedAt,
		&created.UpdatedAt,
	)

	if err != nil {
		// FK violation means the referenced author does not exist
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, book.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return &created, nil
}

// GetByID retrieves a book with its author joined.
func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	var b book.Book
	var ref book.AuthorRef

	err := r.pool.QueryRow(ctx, bookWithAuthorQuery, id).Scan(
		&b.ID,
		&b.Title,
		&b.Genre,
		&b.Description,
		&b.PublishedYear,
		&b.Pages,
		&b.AuthorID,
		&b.CreatedAt,
		&b.UpdatedAt,
		&ref.ID,
		&ref.Name,
		&ref.Email,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	b.Author = &ref
	return &b, nil
}

// Update persists a fully-populated book entity.
func (r *postgresRepository) Update(ctx context.Context, b *book.Book) (*book.Book, error) {
	query := `
        UPDATE books
        SET
            title = $1,
            genre = $2,
            description = $3,
            published_year = $4,
            pages = $5,
            author_id = $6,
            updated_at = NOW()
        WHERE id = $7
        RETURNING id, title, genre, description, published_year, pages,
                  author_id, created_at, updated_at
    `

	var updated book.Book
	err := r.pool.QueryRow(
		ctx,
		query,
		b.Title,
		b.Genre,
		b.Description,
		b.PublishedYear,
		b.Pages,
		b.AuthorID,
		b.ID,
	).Scan(
		&updated.ID,
		&updated.Title,
		&updated.Genre,
		&updated.Description,
		&updated.PublishedYear,
		&updated.Pages,
		&updated.AuthorID,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, book.ErrAuthorNotFound
		}

		return nil, fmt.Errorf("failed to update book: %w", err)
	}

	return &updated, nil
}

// Delete removes a book by ID.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}

	return nil
}

// Search runs the count query and the windowed fetch over the same
// predicate. Count first: the fetch window is only meaningful together
// with the total.
func (r *postgresRepository) Search(ctx context.Context, params book.SearchParams) ([]book.Book, int64, error) {
	countSQL, countArgs, err := book.BuildCountSQL(params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var total int64
	if err := r.pool.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count books: %w", err)
	}

	searchSQL, searchArgs, err := book.BuildSearchSQL(params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build search query: %w", err)
	}

	rows, err := r.pool.Query(ctx, searchSQL, searchArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search books: %w", err)
	}
	defer rows.Close()

	books := []book.Book{}
	for rows.Next() {
		var b book.Book
		var ref book.AuthorRef

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
			&ref.ID,
			&ref.Name,
			&ref.Email,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan book: %w", err)
		}

		b.Author = &ref
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating books: %w", err)
	}

	return books, total, nil
}

// AuthorExists checks that an author row exists.
func (r *postgresRepository) AuthorExists(ctx context.Context, authorID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1)`, authorID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check author existence: %w", err)
	}

	return exists, nil
}
