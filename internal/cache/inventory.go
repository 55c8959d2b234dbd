package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	userKeyPrefix = "user:%s"
	feedKey       = "feed:all"
	reelsKey      = "reels:all"
)

const (
	UserTTL  = 5 * time.Minute
	FeedTTL  = 30 * time.Second
	ReelsTTL = 2 * time.Minute
)

func UserKey(username string) string {
	return fmt.Sprintf(userKeyPrefix, username)
}

func FeedKey() string {
	return feedKey
}

func ReelsKey() string {
	return reelsKey
}

func Invalidate(ctx context.Context, keys ...string) {
	if client != nil && len(keys) > 0 {
		client.Del(ctx, keys...)
	}
}

func InvalidateUser(ctx context.Context, username string) {
	Invalidate(ctx, UserKey(username))
}

func InvalidateFeed(ctx context.Context) {
	Invalidate(ctx, feedKey)
}

func InvalidateReels(ctx context.Context) {
	Invalidate(ctx, reelsKey)
}
