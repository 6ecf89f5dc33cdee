package schedule

import (
	"context"
	"sync"
	"time"
)

type Notice struct {
	TitleKey   string
	ContentKey string
}

var DefaultNotices = []Notice{
	{TitleKey: "noticeTitle1", ContentKey: "noticeContent1"},
	{TitleKey: "noticeTitle2", ContentKey: "noticeContent2"},
	{TitleKey: "noticeTitle3", ContentKey: "noticeContent3"},
}

// Carousel cycles through notices on a fixed interval while started.
type Carousel struct {
	notices  []Notice
	interval time.Duration
	clock    Clock

	mu     sync.Mutex
	index  int
	cancel context.CancelFunc
	done   chan struct{}
}

func NewCarousel(notices []Notice, interval time.Duration, clock Clock) *Carousel {
	return &Carousel{notices: notices, interval: interval, clock: clock}
}

func (c *Carousel) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil || len(c.notices) < 2 {
		return
	}
	ticks, stopTicker := c.clock.Ticker(c.interval)
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	c.cancel, c.done = cancel, done

	go func() {
		defer close(done)
		defer stopTicker()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticks:
				c.Next()
			}
		}
	}()
}

func (c *Carousel) Stop() {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.cancel, c.done = nil, nil
	c.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (c *Carousel) Current() (Notice, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.notices) == 0 {
		return Notice{}, -1
	}
	return c.notices[c.index], c.index
}

func (c *Carousel) Next() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.notices) > 0 {
		c.index = (c.index + 1) % len(c.notices)
	}
}
