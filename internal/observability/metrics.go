// Package observability provides metrics and tracing.
package observability

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aperture_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"operation"})

	// PostsCreated counts posts created.
	PostsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aperture_posts_created_total",
		Help: "Total number of posts created",
	})

	// CommentsCreated counts comments created.
	CommentsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aperture_comments_created_total",
		Help: "Total number of comments created",
	})

	// LikeToggles counts like mutations by action (like/unlike).
	LikeToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aperture_like_toggles_total",
		Help: "Total number of like and unlike mutations",
	}, []string{"action"})

	// FollowToggles counts follow mutations by action (follow/unfollow).
	FollowToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aperture_follow_toggles_total",
		Help: "Total number of follow and unfollow mutations",
	}, []string{"action"})

	// FeedRequests counts feed compositions.
	FeedRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aperture_feed_requests_total",
		Help: "Total number of feed requests served",
	})

	// FeedSize records how many posts each composed feed contained.
	FeedSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "aperture_feed_size_posts",
		Help:    "Number of posts per composed feed",
		Buckets: prometheus.ExponentialBuckets(1, 2, 10),
	})
)

var (
	httpMetricsOnce sync.Once
	httpMetrics     *fiberprometheus.FiberPrometheus
)

// HTTPMetrics returns the shared HTTP metrics middleware. The underlying
// collectors register against the default registry, so this must only
// happen once per process.
func HTTPMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	httpMetricsOnce.Do(func() {
		httpMetrics = fiberprometheus.New(serviceName)
	})
	return httpMetrics
}
