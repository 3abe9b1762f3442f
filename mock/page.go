package mock

import (
	"context"

	"github.com/fwojciec/prodspan"
)

// Compile-time interface verification.
var (
	_ prodspan.PageFetcher = (*PageFetcher)(nil)
	_ prodspan.PageStore   = (*PageStore)(nil)
	_ prodspan.PageService = (*PageService)(nil)
)

// PageFetcher is a mock implementation of prodspan.PageFetcher.
type PageFetcher struct {
	FetchAllFn func(ctx context.Context, urls []string, progress prodspan.FetchProgressFunc) ([]*prodspan.Page, error)
}

func (f *PageFetcher) FetchAll(ctx context.Context, urls []string, progress prodspan.FetchProgressFunc) ([]*prodspan.Page, error) {
	return f.FetchAllFn(ctx, urls, progress)
}

// PageStore is a mock implementation of prodspan.PageStore.
type PageStore struct {
	SaveFn   func(ctx context.Context, page *prodspan.Page) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *PageStore) Save(ctx context.Context, page *prodspan.Page) error {
	return s.SaveFn(ctx, page)
}

func (s *PageStore) Commit() error {
	return s.CommitFn()
}

func (s *PageStore) Abort() error {
	return s.AbortFn()
}

// PageService is a mock implementation of prodspan.PageService.
type PageService struct {
	CreatePageFn    func(ctx context.Context, page *prodspan.Page) error
	FindPageByURLFn func(ctx context.Context, url string) (*prodspan.Page, error)
	FindPagesFn     func(ctx context.Context, filter prodspan.PageFilter) ([]*prodspan.Page, error)
	DeletePageFn    func(ctx context.Context, id string) error
}

func (s *PageService) CreatePage(ctx context.Context, page *prodspan.Page) error {
	return s.CreatePageFn(ctx, page)
}

func (s *PageService) FindPageByURL(ctx context.Context, url string) (*prodspan.Page, error) {
	return s.FindPageByURLFn(ctx, url)
}

func (s *PageService) FindPages(ctx context.Context, filter prodspan.PageFilter) ([]*prodspan.Page, error) {
	return s.FindPagesFn(ctx, filter)
}

func (s *PageService) DeletePage(ctx context.Context, id string) error {
	return s.DeletePageFn(ctx, id)
}
