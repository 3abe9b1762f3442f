package sqlite_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/fwojciec/prodspan"
	"github.com/fwojciec/prodspan/sqlite"
	"github.com/stretchr/testify/require"
)

// BenchmarkCreatePage measures cache writes during a scrape.
func BenchmarkCreatePage(b *testing.B) {
	db := sqlite.NewDB(filepath.Join(b.TempDir(), "bench.db"))
	require.NoError(b, db.Open())
	defer db.Close()

	svc := sqlite.NewPageService(db)
	ctx := context.Background()

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		page := &prodspan.Page{
			URL:   fmt.Sprintf("https://shop.example/products/item-%d", i),
			Title: fmt.Sprintf("Item %d", i),
			Text:  fmt.Sprintf("Item %d Sofa\nRegular price $%d.00\nAdd to cart", i, 100+i),
		}
		if err := svc.CreatePage(ctx, page); err != nil {
			b.Fatal(err)
		}
	}
}
