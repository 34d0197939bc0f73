package preview

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Zookegger/ExamPro-Scheduler-sub003/ui"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins in development
	},
}

// Server hosts the component preview: the rendered page, the fixture
// notification API, the connectivity websocket, and Prometheus metrics.
type Server struct {
	router  *chi.Mux
	store   *Store
	hub     *Hub
	logger  *zap.Logger
	metrics *metrics

	fullName    string
	development bool
}

// ServerOptions configures a preview server.
type ServerOptions struct {
	// FullName is the display name shown in the navbar and sidebar.
	FullName string

	// Development controls the development-only sidebar section and the
	// footer environment tag.
	Development bool
}

// NewServer wires the preview routes. Run the hub with StartHub before
// serving.
func NewServer(logger *zap.Logger, opts ServerOptions) *Server {
	if opts.FullName == "" {
		opts.FullName = "Preview User"
	}

	hub := NewHub(logger)
	registry := prometheus.NewRegistry()

	s := &Server{
		store:       NewStore(),
		hub:         hub,
		logger:      logger,
		metrics:     newMetrics(registry, hub),
		fullName:    opts.FullName,
		development: opts.Development,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handlePage)
	r.Route("/api/notifications", func(r chi.Router) {
		r.Post("/{id}/read", s.handleMarkRead)
		r.Post("/read-all", s.handleMarkAllRead)
	})
	r.Get("/ws", s.handleWebsocket)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	s.router = r
	return s
}

// Router returns the configured handler.
func (s *Server) Router() http.Handler {
	return s.router
}

// StartHub launches the websocket hub loop on its own goroutine.
func (s *Server) StartHub() {
	go s.hub.Run()
}

// handlePage renders the preview page. Role and visibility flags arrive as
// query parameters so every component variant is reachable by URL.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	role := ui.Normalize(ui.Role(q.Get("role")))
	if q.Get("role") == "" {
		role = ui.RoleAdmin
	}

	currentPath := q.Get("path")
	if currentPath == "" {
		currentPath = "/"
	}

	data := PageData{
		Role:                 role,
		FullName:             s.fullName,
		Development:          s.development,
		SidebarVisible:       q.Get("sidebar") != "0",
		NotificationsVisible: q.Get("notifications") == "1",
		CurrentPath:          currentPath,
		Notifications:        s.store.List(),
		UnreadCount:          s.store.UnreadCount(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")

	if err := Page(data).Render(w); err != nil {
		s.metrics.renderErrors.Inc()
		s.logger.Error("page render failed", zap.Error(err))
		return
	}
	s.metrics.pageRenders.Inc()
}

func (s *Server) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	s.metrics.apiRequests.WithLabelValues("mark_read").Inc()

	id := chi.URLParam(r, "id")
	changed := s.store.MarkRead(id)
	if changed {
		if err := s.hub.Broadcast(NewEvent("notification_read", map[string]any{"id": id})); err != nil {
			s.logger.Warn("broadcast failed", zap.Error(err))
		}
	}

	s.respondJSON(w, map[string]any{
		"changed":      changed,
		"unread_count": s.store.UnreadCount(),
	})
}

func (s *Server) handleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	s.metrics.apiRequests.WithLabelValues("mark_all_read").Inc()

	n := s.store.MarkAllRead()
	if n > 0 {
		if err := s.hub.Broadcast(NewEvent("notifications_cleared", map[string]any{"count": n})); err != nil {
			s.logger.Warn("broadcast failed", zap.Error(err))
		}
	}

	s.respondJSON(w, map[string]any{
		"changed":      n,
		"unread_count": s.store.UnreadCount(),
	})
}

// handleWebsocket upgrades the connection and hands it to the hub. The
// browser side treats the socket lifetime as the connectivity signal.
func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", zap.Error(err))
		return
	}

	c := newClient(s.hub, conn)
	s.hub.register <- c
	c.start()
}

func (s *Server) respondJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")

	data, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("json encode failed", zap.Error(err))
		http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
		return
	}
	w.Write(data)
}

// logRequests logs one line per request with method, path, status and
// duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.logger.Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
