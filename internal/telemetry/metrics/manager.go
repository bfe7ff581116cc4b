package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterMenuActions  *prometheus.CounterVec
	CounterBlogsCreated prometheus.Counter
	CounterPostsCreated prometheus.Counter
	CounterInvalidInput prometheus.Counter

	// histograms
	HistogramActionDuration *prometheus.HistogramVec
}

func NewTestManager() *Manager {
	return NewManager("blogsandposts", "test", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("blogsandposts", "test", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterMenuActions := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "menu_actions",
		Help:      "The total number of menu actions run",
	}, []string{"action"})
	counterBlogsCreated := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "blogs_created",
		Help:      "The total number of added blogs",
	})
	counterPostsCreated := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "posts_created",
		Help:      "The total number of added posts",
	})
	counterInvalidInput := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "invalid_blog_selections",
		Help:      "Number of blog ids entered that did not match a blog",
	})

	histogramActionDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "action_duration_seconds",
		Help:      "Histogram of menu action durations in seconds, user input time included",
		Buckets:   []float64{.01, .05, .1, .5, 1, 5, 10, 30, 60, 300},
	}, []string{"action"})

	return &Manager{
		CounterMenuActions:      counterMenuActions,
		CounterBlogsCreated:     counterBlogsCreated,
		CounterPostsCreated:     counterPostsCreated,
		CounterInvalidInput:     counterInvalidInput,
		HistogramActionDuration: histogramActionDuration,
	}
}
