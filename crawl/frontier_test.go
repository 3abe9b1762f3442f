package crawl_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/fwojciec/prodspan/crawl"
	"github.com/stretchr/testify/assert"
)

func TestLinkPriority(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url  string
		want int
	}{
		{"https://shop.example/products/milo-sofa", crawl.PriorityProduct},
		{"https://shop.example/collections/sofas/products/milo-sofa", crawl.PriorityProduct},
		{"https://shop.example/collections/sofas", crawl.PriorityCollection},
		{"https://shop.example/category/lighting", crawl.PriorityCollection},
		{"https://shop.example/pages/about", crawl.PriorityOther},
		{"://bad", crawl.PriorityOther},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, crawl.LinkPriority(tt.url))
		})
	}
}

func TestFrontier_Push_rejects_duplicate_URLs(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(1000, 0.0001)

	assert.True(t, f.Push("https://shop.example/products/milo-sofa"), "first push should succeed")
	assert.False(t, f.Push("https://shop.example/products/milo-sofa"), "duplicate URL should be rejected")
	assert.False(t, f.Push("https://shop.example/products/milo-sofa#reviews"), "fragment-only variant should be rejected")
}

func TestFrontier_Pop_returns_products_first(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(1000, 0.0001)

	f.Push("https://shop.example/pages/about")
	f.Push("https://shop.example/collections/sofas")
	f.Push("https://shop.example/products/milo-sofa")
	f.Push("https://shop.example/pages/contact")
	f.Push("https://shop.example/products/oslo-chair#details")

	var got []string
	for {
		u, ok := f.Pop()
		if !ok {
			break
		}
		got = append(got, u)
	}

	assert.Equal(t, []string{
		"https://shop.example/products/milo-sofa",
		"https://shop.example/products/oslo-chair",
		"https://shop.example/collections/sofas",
		"https://shop.example/pages/about",
		"https://shop.example/pages/contact",
	}, got)
}

func TestFrontier_Len_tracks_queue_size(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(1000, 0.0001)

	assert.Equal(t, 0, f.Len(), "new frontier should be empty")

	f.Push("https://shop.example/a")
	f.Push("https://shop.example/b")
	assert.Equal(t, 2, f.Len())

	f.Pop()
	assert.Equal(t, 1, f.Len())
}

func TestFrontier_Seen_tracks_all_pushed_URLs(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(1000, 0.0001)

	assert.False(t, f.Seen("https://shop.example/products/milo-sofa"))

	f.Push("https://shop.example/products/milo-sofa")
	f.Pop()

	assert.True(t, f.Seen("https://shop.example/products/milo-sofa"), "popped URL should still be seen")
	assert.True(t, f.Seen("https://shop.example/products/milo-sofa#reviews"))
}

func TestFrontier_concurrent_access(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(10000, 0.0001)

	const numGoroutines = 10
	const numOpsPerGoroutine = 100

	var wg sync.WaitGroup
	wg.Add(numGoroutines * 2)

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numOpsPerGoroutine; j++ {
				f.Push(fmt.Sprintf("https://shop.example/products/%d-%d", id, j))
			}
		}(i)
	}

	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < numOpsPerGoroutine; j++ {
				f.Pop()
				f.Len()
			}
		}()
	}

	wg.Wait()

	for i := 0; i < numGoroutines; i++ {
		for j := 0; j < numOpsPerGoroutine; j++ {
			u := fmt.Sprintf("https://shop.example/products/%d-%d", i, j)
			assert.True(t, f.Seen(u), "pushed URL %s should be seen", u)
		}
	}
}
