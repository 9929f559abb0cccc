// Package control exposes the parameter store over HTTP. It plays the
// automation role: every write lands in the store's atomic cells and is
// picked up by the audio thread on its next block.
package control

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/param"
)

// ParamView is the JSON representation of a parameter.
type ParamView struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Unit    string   `json:"unit,omitempty"`
	Min     float64  `json:"min"`
	Max     float64  `json:"max"`
	Default float64  `json:"default"`
	Step    float64  `json:"step"`
	Choices []string `json:"choices,omitempty"`
	Value   float64  `json:"value"`
	Display string   `json:"display"`
}

func viewOf(p *param.Parameter) ParamView {
	return ParamView{
		ID:      p.ID,
		Name:    p.Name,
		Unit:    p.Unit,
		Min:     p.Min,
		Max:     p.Max,
		Default: p.Default,
		Step:    p.Step,
		Choices: p.Choices,
		Value:   p.Value(),
		Display: p.Format(),
	}
}

// SetRequest updates one parameter. Exactly one field must be set.
type SetRequest struct {
	Value      *float64 `json:"value"`
	Normalized *float64 `json:"normalized"`
	Display    *string  `json:"display"`
}

// Server serves the parameter API.
type Server struct {
	store  *param.Store
	logger *slog.Logger
	engine *gin.Engine
}

// New builds the router for store.
func New(store *param.Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{store: store, logger: logger, engine: gin.New()}
	s.engine.Use(gin.Recovery(), s.accessLog())

	s.engine.GET("/healthz", s.health)
	group := s.engine.Group("/params")
	group.GET("", s.list)
	group.GET("/:id", s.get)
	group.PUT("/:id", s.set)
	group.POST("/reset", s.reset)

	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("control listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("control request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"elapsed", time.Since(start))
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) list(c *gin.Context) {
	all := s.store.All()
	views := make([]ParamView, len(all))
	for i, p := range all {
		views[i] = viewOf(p)
	}
	c.JSON(http.StatusOK, gin.H{"params": views, "count": len(views)})
}

func (s *Server) get(c *gin.Context) {
	p, err := s.store.Lookup(c.Param("id"))
	if err != nil {
		errorResponse(c, http.StatusNotFound, "UNKNOWN_PARAMETER", err.Error())
		return
	}
	c.JSON(http.StatusOK, viewOf(p))
}

func (s *Server) set(c *gin.Context) {
	p, err := s.store.Lookup(c.Param("id"))
	if err != nil {
		errorResponse(c, http.StatusNotFound, "UNKNOWN_PARAMETER", err.Error())
		return
	}

	old := p.Value()

	var req SetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	switch {
	case req.Value != nil && req.Normalized == nil && req.Display == nil:
		_, err = s.store.Set(p.ID, *req.Value)
	case req.Normalized != nil && req.Value == nil && req.Display == nil:
		p.SetNormalized(*req.Normalized)
	case req.Display != nil && req.Value == nil && req.Normalized == nil:
		var v float64
		if v, err = p.Parse(*req.Display); err == nil {
			_, err = s.store.Set(p.ID, v)
		}
	default:
		errorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", "exactly one of value, normalized or display is required")
		return
	}
	if err != nil {
		errorResponse(c, http.StatusUnprocessableEntity, "INVALID_VALUE", err.Error())
		return
	}

	if v := p.Value(); !core.NearlyEqual(old, v, 0) {
		s.logger.Info("parameter set", "id", p.ID, "from", old, "to", v)
	}
	c.JSON(http.StatusOK, viewOf(p))
}

func (s *Server) reset(c *gin.Context) {
	s.store.Reset()
	s.logger.Info("parameters reset")
	s.list(c)
}
