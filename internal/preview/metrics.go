package preview

import (
	"github.com/prometheus/client_golang/prometheus"
)

// metrics groups the Prometheus collectors for the preview server.
type metrics struct {
	pageRenders  prometheus.Counter
	apiRequests  *prometheus.CounterVec
	wsClients    prometheus.GaugeFunc
	renderErrors prometheus.Counter
}

func newMetrics(reg *prometheus.Registry, hub *Hub) *metrics {
	m := &metrics{
		pageRenders: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "exampro_ui",
			Name:      "page_renders_total",
			Help:      "Number of preview page renders.",
		}),
		apiRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "exampro_ui",
			Name:      "api_requests_total",
			Help:      "Number of fixture API requests by route.",
		}, []string{"route"}),
		wsClients: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "exampro_ui",
			Name:      "ws_clients",
			Help:      "Connected preview websocket clients.",
		}, func() float64 { return float64(hub.ClientCount()) }),
		renderErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "exampro_ui",
			Name:      "render_errors_total",
			Help:      "Number of failed page renders.",
		}),
	}

	reg.MustRegister(m.pageRenders, m.apiRequests, m.wsClients, m.renderErrors)
	return m
}
