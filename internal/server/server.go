// Package server exposes the post repository as a read-only JSON API plus
// an RSS feed.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"github.com/theamazingmrb/portfolio-sub000"
	"github.com/theamazingmrb/portfolio-sub000/internal/feed"
	"github.com/theamazingmrb/portfolio-sub000/internal/logging"
)

// ShutdownTimeout bounds how long in-flight requests may run after the
// serve context is cancelled.
const ShutdownTimeout = 5 * time.Second

// PostStore is the read side of the post repository.
type PostStore interface {
	ListPosts() []portfolio.Post
	GetPost(id string) (portfolio.Post, error)
	ListPostIDs() ([]string, error)
}

var _ PostStore = (*portfolio.Repository)(nil)

// Options configures a Server.
type Options struct {
	Addr           string
	AllowedOrigins []string // Empty = any origin
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	Channel        feed.Channel
	Version        string
	Logger         logging.Logger
}

// Server serves the blog API.
type Server struct {
	store  PostStore
	opts   Options
	feed   *feed.Generator
	logger logging.Logger
	engine *gin.Engine
}

// New builds the router. It does not start listening.
func New(store PostStore, opts Options) *Server {
	s := &Server{
		store:  store,
		opts:   opts,
		feed:   feed.NewGenerator(opts.Version),
		logger: opts.Logger,
	}
	if s.logger == nil {
		s.logger = logging.Discard{}
	}

	r := gin.New()
	r.Use(requestID(), s.accessLog(), gin.Recovery())
	s.setupRoutes(r)
	s.engine = r
	return s
}

func (s *Server) setupRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/posts", s.listPosts)
		api.GET("/posts/:id", s.getPost)
		api.GET("/post-ids", s.postIDs)
	}
	r.GET("/rss.xml", s.rss)
	r.GET("/health", s.health)
}

// Handler returns the router wrapped in CORS handling.
func (s *Server) Handler() http.Handler {
	origins := s.opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Origin", "Content-Type", "Accept", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
	})
	return c.Handler(s.engine)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.opts.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadTimeout:       s.opts.ReadTimeout,
		ReadHeaderTimeout: s.opts.ReadTimeout,
		WriteTimeout:      s.opts.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("listening on %s", ln.Addr())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
