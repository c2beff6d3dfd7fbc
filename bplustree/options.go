package bplus

import "log/slog"

// Option configures a BPlusTree at construction time.
type Option func(*options)

type options struct {
	// logger receives debug records for splits and root growth.
	// Default: a logger that discards everything.
	logger *slog.Logger

	// cacheEntries bounds the range search result cache.
	// Default: 0 (no cache).
	cacheEntries int64
}

func defaultOptions() options {
	return options{
		logger: slog.New(slog.DiscardHandler),
	}
}

// WithLogger sets the logger used for structural events. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithResultCache memoises up to maxEntries range search results, at most
// 1<<20. The cache is cleared by every Insert. Entries are looked up by the
// %v rendering of the query key and then confirmed with the key comparator.
func WithResultCache(maxEntries int64) Option {
	return func(o *options) {
		o.cacheEntries = maxEntries
	}
}
