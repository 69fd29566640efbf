package services

import "github.com/prometheus/client_golang/prometheus"

var (
	// postsTotal counts stored posts by origin (form, slack) and entity.
	postsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gchan_posts_total",
			Help: "Total number of rows created on the board.",
		},
		[]string{"entity", "source"},
	)

	// uploadsTotal counts relayed uploads by media kind and outcome.
	uploadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gchan_uploads_total",
			Help: "Total number of uploads relayed to the image host.",
		},
		[]string{"kind", "outcome"},
	)
)

func init() {
	prometheus.MustRegister(postsTotal, uploadsTotal)
}
