package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/Veraticus/bookmgr/internal/model"
	"github.com/google/uuid"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStore implements service.BookStore on a private in-memory SQLite database.
// Nothing is written to disk; the database disappears with the process.
type SQLiteStore struct {
	db   *sql.DB
	name string
}

// NewSQLiteStore opens a fresh in-memory database. Call Migrate before use.
func NewSQLiteStore() (*SQLiteStore, error) {
	name := uuid.NewString()

	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// An in-memory database lives only as long as its last connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	slog.Debug("opened in-memory book store", "name", name)
	return &SQLiteStore{db: db, name: name}, nil
}

// Close closes the database connection, discarding all books.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Append inserts a book after all existing ones.
func (s *SQLiteStore) Append(ctx context.Context, book model.Book) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateBook(book); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO books (id, name, category) VALUES (?, ?, ?)`,
		book.ID.String(), book.Name, book.Category)
	if err != nil {
		return fmt.Errorf("failed to insert book: %w", err)
	}
	return nil
}

// Delete removes the book with the given ID.
func (s *SQLiteStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM books WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("book %s: %w", id, ErrBookMissing)
	}
	return nil
}

// Books returns all books in insertion order.
func (s *SQLiteStore) Books(ctx context.Context) ([]model.Book, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT id, name, category FROM books ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	var books []model.Book
	for rows.Next() {
		var (
			book model.Book
			id   string
		)
		if err := rows.Scan(&id, &book.Name, &book.Category); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		if book.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("failed to parse book id %q: %w", id, err)
		}
		books = append(books, book)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}

	return books, nil
}
