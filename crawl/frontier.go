package crawl

import (
	"container/heap"
	"net/url"
	"strings"
	"sync"

	"github.com/fwojciec/prodspan/bloom"
)

// Link priorities used to order the frontier. Product pages are visited
// before listing pages, which are visited before everything else.
const (
	PriorityOther      = 0
	PriorityCollection = 1
	PriorityProduct    = 2
)

// LinkPriority classifies a shop URL by its path.
func LinkPriority(rawURL string) int {
	u, err := url.Parse(rawURL)
	if err != nil {
		return PriorityOther
	}
	path := strings.ToLower(u.Path)
	switch {
	case strings.Contains(path, "/products/"), strings.Contains(path, "/product/"), strings.Contains(path, "/p/"):
		return PriorityProduct
	case strings.Contains(path, "/collections/"), strings.Contains(path, "/category/"), strings.Contains(path, "/shop/"):
		return PriorityCollection
	}
	return PriorityOther
}

// Frontier is an in-memory URL frontier with priority queue and Bloom filter
// deduplication. Links of equal priority are popped in the order they were
// pushed. It is safe for concurrent use by multiple goroutines.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.Filter
	queue *linkHeap
	seq   int
}

// NewFrontier creates a new Frontier sized for n expected URLs
// with the given false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	h := &linkHeap{}
	heap.Init(h)
	return &Frontier{
		seen:  bloom.NewFilter(n, fpRate),
		queue: h,
	}
}

// Push adds a URL to the frontier, prioritized by LinkPriority.
// Returns false if the URL has already been seen.
// URL fragments are stripped before deduplication.
func (f *Frontier) Push(rawURL string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	u := stripFragment(rawURL)
	if f.seen.Seen(u) {
		return false
	}

	heap.Push(f.queue, queuedLink{url: u, priority: LinkPriority(u), seq: f.seq})
	f.seq++
	return true
}

// Pop returns the next URL by priority.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.queue.Len() == 0 {
		return "", false
	}
	link, _ := heap.Pop(f.queue).(queuedLink)
	return link.url, true
}

// Len returns the number of URLs in the queue.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queue.Len()
}

// Seen returns true if the URL has been queued.
// URL fragments are stripped before checking.
func (f *Frontier) Seen(rawURL string) bool {
	return f.seen.Test(stripFragment(rawURL))
}

func stripFragment(rawURL string) string {
	if i := strings.Index(rawURL, "#"); i != -1 {
		return rawURL[:i]
	}
	return rawURL
}

type queuedLink struct {
	url      string
	priority int
	seq      int
}

// linkHeap implements heap.Interface, highest priority first.
type linkHeap []queuedLink

func (h linkHeap) Len() int { return len(h) }

func (h linkHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority > h[j].priority
	}
	return h[i].seq < h[j].seq
}

func (h linkHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *linkHeap) Push(x any) {
	link, _ := x.(queuedLink)
	*h = append(*h, link)
}

func (h *linkHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}
