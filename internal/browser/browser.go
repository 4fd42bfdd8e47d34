// Package browser provides headless page rendering via chromedp. Career
// sites routinely build their listing markup client-side, so the fetch waits
// a fixed interval after load before reading the document back.
package browser

import (
	"context"
	"time"

	"github.com/chromedp/chromedp"
)

// Service wraps a shared headless Chrome allocator.
type Service struct {
	allocCtx context.Context
	cancel   context.CancelFunc
}

// Config configures a new Service instance.
type Config struct {
	Headless  bool
	Proxy     string
	UserAgent string
}

// NewService initializes the chromedp execution allocator.
func NewService(cfg Config) *Service {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", cfg.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(cfg.UserAgent),
	)
	if cfg.Proxy != "" {
		opts = append(opts, chromedp.ProxyServer(cfg.Proxy))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)
	return &Service{allocCtx: allocCtx, cancel: cancel}
}

// RenderHTML navigates to pageURL, waits renderWait for dynamic content and
// returns the final document markup. The whole task is bounded by timeout.
func (s *Service) RenderHTML(ctx context.Context, pageURL string, renderWait, timeout time.Duration) (string, error) {
	taskCtx, cancel := chromedp.NewContext(s.allocCtx)
	defer cancel()

	taskCtx, cancel = context.WithTimeout(taskCtx, timeout)
	defer cancel()

	go func() {
		select {
		case <-ctx.Done():
			cancel()
		case <-taskCtx.Done():
		}
	}()

	var html string
	err := chromedp.Run(taskCtx,
		chromedp.Navigate(pageURL),
		chromedp.Sleep(renderWait),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", err
	}
	return html, nil
}

// Close shuts down the browser service and all associated processes.
func (s *Service) Close() {
	s.cancel()
}
