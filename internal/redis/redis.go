package redis

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	redisClient "github.com/go-redis/redis/v8"
)

const (
	recentKey  = "lyrics:recent"
	sourcesKey = "lyrics:sources"

	recentLimit = 50
)

// DBManager keeps a short history of saved songs and where they came from.
type DBManager struct {
	client *redisClient.Client
}

func NewDBManager(addr, password string) (*DBManager, error) {
	opt, err := redisClient.ParseURL(connectionURL(addr, password))
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	return &DBManager{client: redisClient.NewClient(opt)}, nil
}

// connectionURL accepts either a bare host:port, dialled in plaintext, or a
// full redis:// or rediss:// URL. TLS is used only when asked for.
func connectionURL(addr, password string) string {
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		return addr
	}
	if password == "" {
		return "redis://" + addr
	}
	return fmt.Sprintf("redis://default:%s@%s", url.PathEscape(password), addr)
}

// sourceHost reduces an address to the host it was scraped from.
func sourceHost(address string) string {
	u, err := url.Parse(address)
	if err != nil || u.Host == "" {
		return "unknown"
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}

// RecordSong pushes title onto the recent list and counts its source host.
func (redis *DBManager) RecordSong(ctx context.Context, title, address string) error {
	pipe := redis.client.TxPipeline()
	pipe.LPush(ctx, recentKey, title)
	pipe.LTrim(ctx, recentKey, 0, recentLimit-1)
	pipe.HIncrBy(ctx, sourcesKey, sourceHost(address), 1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record song %q: %v", title, err)
	}
	return nil
}

// RecentSongs returns up to n titles, newest first.
func (redis *DBManager) RecentSongs(ctx context.Context, n int) ([]string, error) {
	if n <= 0 || n > recentLimit {
		n = recentLimit
	}
	titles, err := redis.client.LRange(ctx, recentKey, 0, int64(n-1)).Result()
	if err != nil {
		if err == redisClient.Nil {
			return []string{}, nil
		}
		return nil, err
	}
	return titles, nil
}

// SourceCounts retrieves how many songs were saved per source host.
func (redis *DBManager) SourceCounts(ctx context.Context) (map[string]int, error) {
	result := make(map[string]int)
	raw, err := redis.client.HGetAll(ctx, sourcesKey).Result()
	if err != nil {
		if err == redisClient.Nil {
			return result, nil
		}
		return nil, err
	}
	for host, count := range raw {
		countInt, err := strconv.Atoi(count)
		if err != nil {
			continue // skip invalid counts
		}
		result[host] = countInt
	}
	return result, nil
}

func (redis *DBManager) Close() error {
	return redis.client.Close()
}
