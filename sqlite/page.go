package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/prodspan"
	"github.com/google/uuid"
	"github.com/ncruces/go-sqlite3"
)

// Compile-time interface verification.
var _ prodspan.PageService = (*PageService)(nil)

// PageService implements prodspan.PageService using SQLite.
type PageService struct {
	db *DB
}

// NewPageService creates a new PageService.
func NewPageService(db *DB) *PageService {
	return &PageService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	return hex.EncodeToString(binary.BigEndian.AppendUint64(nil, xxhash.Sum64String(content)))
}

const pageColumns = "id, url, title, text, content_hash, fetched_at"

// CreatePage stores a page. A missing ID, content hash or fetch time is
// filled in. Returns ECONFLICT if a page with the same URL exists.
func (s *PageService) CreatePage(ctx context.Context, page *prodspan.Page) error {
	if err := page.Validate(); err != nil {
		return err
	}

	if page.ID == "" {
		page.ID = uuid.New().String()
	}
	if page.ContentHash == "" {
		page.ContentHash = hashContent(page.Text)
	}
	if page.FetchedAt.IsZero() {
		page.FetchedAt = time.Now()
	}
	page.FetchedAt = page.FetchedAt.UTC().Truncate(time.Second)
	fetchedAt := formatTime(page.FetchedAt)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pages (`+pageColumns+`)
		VALUES (?, ?, ?, ?, ?, ?)
	`, page.ID, page.URL, page.Title, page.Text, page.ContentHash, fetchedAt)

	if errors.Is(err, sqlite3.CONSTRAINT_UNIQUE) || errors.Is(err, sqlite3.CONSTRAINT_PRIMARYKEY) {
		return prodspan.Errorf(prodspan.ECONFLICT, "page already exists: %s", page.URL)
	}
	return err
}

// FindPageByURL retrieves a page by URL.
func (s *PageService) FindPageByURL(ctx context.Context, url string) (*prodspan.Page, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+pageColumns+" FROM pages WHERE url = ?", url)

	page, err := scanPage(row)
	if err == sql.ErrNoRows {
		return nil, prodspan.Errorf(prodspan.ENOTFOUND, "page not found")
	}
	if err != nil {
		return nil, err
	}
	return page, nil
}

// FindPages retrieves pages matching the filter, most recently fetched
// first.
func (s *PageService) FindPages(ctx context.Context, filter prodspan.PageFilter) ([]*prodspan.Page, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + pageColumns + " FROM pages WHERE 1=1")

	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	if filter.ContentHash != nil {
		query.WriteString(" AND content_hash = ?")
		args = append(args, *filter.ContentHash)
	}

	query.WriteString(" ORDER BY fetched_at DESC, url ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pages := []*prodspan.Page{}
	for rows.Next() {
		page, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}

	return pages, rows.Err()
}

// DeletePage permanently removes a page.
func (s *PageService) DeletePage(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM pages WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return prodspan.Errorf(prodspan.ENOTFOUND, "page not found")
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPage(row scanner) (*prodspan.Page, error) {
	var page prodspan.Page
	var fetchedAt string

	if err := row.Scan(&page.ID, &page.URL, &page.Title, &page.Text, &page.ContentHash, &fetchedAt); err != nil {
		return nil, err
	}

	t, err := parseTime(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}
	page.FetchedAt = t

	return &page, nil
}
