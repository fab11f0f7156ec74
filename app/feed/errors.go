package feed

import "errors"

var (
	// ErrNoFeeds indicates no feed URLs were configured.
	ErrNoFeeds = errors.New("no feed URLs configured")

	// ErrAllFeedsFailed indicates every configured feed failed to fetch or
	// parse, so there is nothing to emit.
	ErrAllFeedsFailed = errors.New("all feeds failed to fetch or parse")
)
