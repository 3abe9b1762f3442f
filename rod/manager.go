package rod

import (
	"errors"
	"fmt"
	"sync"

	"github.com/fwojciec/prodspan"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultMaxPages is the default number of pages before browser recycling.
const DefaultMaxPages = 50

// BrowserManager owns the headless browser behind a Fetcher and replaces it
// every maxPages pages. Shop pages are heavy (trackers, carousels, chat
// widgets) and Chrome's memory baseline keeps rising across pages even when
// each page is closed.
//
// Browsers are handed out as leases. A replaced browser stays open until its
// last lease is released, so recycling never interrupts a page in flight.
//
// BrowserManager is safe for concurrent use.
type BrowserManager struct {
	mu       sync.Mutex
	current  *generation
	retiring []*generation
	pages    int64
	maxPages int64
	closed   bool
}

// generation is one launched browser and the leases held on it.
type generation struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	leases   int
}

func (g *generation) close() error {
	var err error
	if g.browser != nil {
		err = g.browser.Close()
	}
	if g.launcher != nil {
		g.launcher.Kill()
	}
	return err
}

// ManagerOption configures a BrowserManager.
type ManagerOption func(*BrowserManager)

// WithMaxPages sets the maximum number of pages before the browser is recycled.
// Values below 1 keep DefaultMaxPages.
func WithMaxPages(n int64) ManagerOption {
	return func(bm *BrowserManager) {
		if n > 0 {
			bm.maxPages = n
		}
	}
}

// NewBrowserManager launches a headless Chrome browser.
// Close must be called when the BrowserManager is no longer needed.
func NewBrowserManager(opts ...ManagerOption) (*BrowserManager, error) {
	bm := &BrowserManager{
		maxPages: DefaultMaxPages,
	}
	for _, opt := range opts {
		opt(bm)
	}

	g, err := launchBrowser()
	if err != nil {
		return nil, err
	}
	bm.current = g

	return bm, nil
}

// Acquire leases the current browser for one page. The browser is replaced
// first when it has served maxPages pages. The returned release function
// must be called once the page is closed; calling it more than once is
// harmless.
func (bm *BrowserManager) Acquire() (*rod.Browser, func(), error) {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.closed {
		return nil, nil, prodspan.Errorf(prodspan.EINVALID, "browser manager is closed")
	}
	if bm.pages >= bm.maxPages {
		bm.recycle()
	}

	g := bm.current
	g.leases++
	bm.pages++

	release := sync.OnceFunc(func() {
		bm.mu.Lock()
		defer bm.mu.Unlock()
		g.leases--
		if g.leases == 0 && g != bm.current {
			bm.retire(g)
		}
	})
	return g.browser, release, nil
}

// Close releases all browsers, including those with open leases.
// Close is safe to call multiple times.
func (bm *BrowserManager) Close() error {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.closed {
		return nil
	}
	bm.closed = true

	var errs []error
	for _, g := range bm.retiring {
		errs = append(errs, g.close())
	}
	bm.retiring = nil
	if bm.current != nil {
		errs = append(errs, bm.current.close())
	}
	return errors.Join(errs...)
}

// LauncherPID returns the process ID of the current browser launcher, or 0
// after Close. This method exists for testing purposes to verify proper
// cleanup.
func (bm *BrowserManager) LauncherPID() int {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	if bm.closed || bm.current == nil || bm.current.launcher == nil {
		return 0
	}
	return bm.current.launcher.PID()
}

// recycle starts a fresh browser for new leases. If launching fails, the
// old browser is kept and the page count is left as is so the next Acquire
// retries. Must be called with mu held.
func (bm *BrowserManager) recycle() {
	g, err := launchBrowser()
	if err != nil {
		return
	}

	old := bm.current
	bm.current = g
	bm.pages = 0
	if old.leases == 0 {
		_ = old.close()
	} else {
		bm.retiring = append(bm.retiring, old)
	}
}

// retire closes a replaced browser whose last lease was released.
// Must be called with mu held.
func (bm *BrowserManager) retire(g *generation) {
	for i, r := range bm.retiring {
		if r == g {
			bm.retiring = append(bm.retiring[:i], bm.retiring[i+1:]...)
			_ = g.close()
			return
		}
	}
}

// launchBrowser starts a browser with flags that keep long scrapes stable.
// Images are disabled since only page text is used.
func launchBrowser() (*generation, error) {
	lnchr := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Set("blink-settings", "imagesEnabled=false").
		Leakless(true).
		Headless(true)

	u, err := lnchr.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &generation{browser: browser, launcher: lnchr}, nil
}
