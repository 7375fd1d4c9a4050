// Package metrics provides observability for the course module.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks course lifecycle counts and catalog cache effectiveness.
type Metrics struct {
	CoursesCreated       prometheus.Counter
	CoursesDeleted       prometheus.Counter
	CatalogCacheHits     prometheus.Counter
	CatalogCacheMisses   prometheus.Counter
	CreateCourseDuration prometheus.Histogram
}

// New creates a Metrics instance with all course module metrics registered.
func New() *Metrics {
	return &Metrics{
		CoursesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "coursebay_courses_created_total",
			Help: "Total number of courses created",
		}),
		CoursesDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "coursebay_courses_deleted_total",
			Help: "Total number of courses deleted",
		}),
		CatalogCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "coursebay_catalog_cache_hits_total",
			Help: "Catalog listings served from the Redis cache",
		}),
		CatalogCacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "coursebay_catalog_cache_misses_total",
			Help: "Catalog listings that fell through to the store",
		}),
		CreateCourseDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "coursebay_create_course_duration_seconds",
			Help:    "Duration of CreateCourse operations including the owner-list update",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

// IncrementCourseCreated records a successful course creation.
func (m *Metrics) IncrementCourseCreated() { m.CoursesCreated.Inc() }

// IncrementCourseDeleted records a successful course deletion.
func (m *Metrics) IncrementCourseDeleted() { m.CoursesDeleted.Inc() }

// IncrementCacheHit records a catalog listing served from cache.
func (m *Metrics) IncrementCacheHit() { m.CatalogCacheHits.Inc() }

// IncrementCacheMiss records a catalog listing served from the store.
func (m *Metrics) IncrementCacheMiss() { m.CatalogCacheMisses.Inc() }

// ObserveCreateCourse records the duration of a CreateCourse operation.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveCreateCourse(start time.Time) {
	m.CreateCourseDuration.Observe(time.Since(start).Seconds())
}
