package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Notification outcomes used as the "result" label.
const (
	ResultOK           = "ok"
	ResultDecodeError  = "decode_error"
	ResultCopyError    = "copy_error"
	ResultPersistError = "persist_error"
)

var (
	once sync.Once

	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	notifications    *prometheus.CounterVec
	copyDuration     prometheus.Histogram
	bytesCopied      prometheus.Counter
	checklistMatches prometheus.Counter
)

// InitMetrics registers collectors with the default registry. Safe to call repeatedly.
func InitMetrics() {
	once.Do(func() {
		httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "objcopy",
			Name:      "http_requests_total",
			Help:      "HTTP requests handled by the webhook server.",
		}, []string{"method", "path", "status"})

		httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "objcopy",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"})

		notifications = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "objcopy",
			Name:      "notifications_total",
			Help:      "Processed object notifications by result.",
		}, []string{"result"})

		copyDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "objcopy",
			Name:      "copy_duration_seconds",
			Help:      "Server-side object copy latency.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
		})

		bytesCopied = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "objcopy",
			Name:      "bytes_copied_total",
			Help:      "Bytes reported by notifications of successfully copied objects.",
		})

		checklistMatches = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "objcopy",
			Name:      "checklist_matches_total",
			Help:      "Copied objects whose name matched the checklist.",
		})

		prometheus.MustRegister(httpRequests, httpDuration, notifications, copyDuration, bytesCopied, checklistMatches)
	})
}

// ObserveNotification counts one processed notification.
func ObserveNotification(result string) {
	InitMetrics()
	notifications.WithLabelValues(result).Inc()
}

// ObserveCopy records a successful copy of size bytes.
func ObserveCopy(d time.Duration, size int64) {
	InitMetrics()
	copyDuration.Observe(d.Seconds())
	if size > 0 {
		bytesCopied.Add(float64(size))
	}
}

// ObserveChecklistMatch counts a name that matched the checklist.
func ObserveChecklistMatch() {
	InitMetrics()
	checklistMatches.Inc()
}

// Middleware records request counts and latency.
func Middleware() gin.HandlerFunc {
	InitMetrics()
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		httpRequests.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// Register attaches the Prometheus metrics endpoint to the router.
func Register(router *gin.Engine, path string) {
	router.GET(path, gin.WrapH(promhttp.Handler()))
}
