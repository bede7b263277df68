package debug

// Memory periodic logger enabled when config.Debug is true.
// Logs resident memory along with Go heap stats to correlate native vs heap
// growth while large photos are decoded and re-encoded.

import (
	"log/slog"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
)

// StartMemLogger launches a goroutine that logs memory stats every interval.
// It is best-effort; failures to query RSS are logged once and suppressed.
func StartMemLogger(interval time.Duration, logger *slog.Logger, done <-chan struct{}) {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		var rssErrLogged bool
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
			}
			var ms runtime.MemStats
			runtime.ReadMemStats(&ms)
			rss, err := residentBytes()
			if err != nil && !rssErrLogged {
				logger.Warn("memlog: resident size query failed", slog.String("err", err.Error()))
				rssErrLogged = true
			}
			logger.Info("memstats", memAttrs(&ms, runtime.NumGoroutine(), rss)...)
		}
	}()
}

func memAttrs(ms *runtime.MemStats, goroutines int, rss uint64) []any {
	return []any{
		slog.Int("goroutines", goroutines),
		slog.String("heap_alloc", humanize.Bytes(ms.HeapAlloc)),
		slog.String("heap_inuse", humanize.Bytes(ms.HeapInuse)),
		slog.String("heap_idle", humanize.Bytes(ms.HeapIdle)),
		slog.String("heap_sys", humanize.Bytes(ms.HeapSys)),
		slog.String("next_gc", humanize.Bytes(ms.NextGC)),
		slog.String("rss", humanize.Bytes(rss)),
		slog.Uint64("num_gc", uint64(ms.NumGC)),
	}
}
