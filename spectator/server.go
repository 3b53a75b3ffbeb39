// Package spectator serves a running match over HTTP: the snapshot as JSON,
// a rendered PNG frame and pause control.
package spectator

import (
	"net/http"
	"strconv"

	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/stage"
	"github.com/automoto/brawler/systems"
	"github.com/gin-gonic/gin"
)

// Source is the match being watched.
type Source interface {
	Snapshot() systems.Snapshot
	Stage() *stage.Stage
	Pause() bool
	Resume() bool
}

// Server routes spectator requests to whatever match current returns, so
// the match can change between rounds.
type Server struct {
	current  func() Source
	renderer *Renderer
	router   *gin.Engine
}

func NewServer(current func() Source, renderer *Renderer) *Server {
	if renderer == nil {
		renderer = NewRenderer()
	}
	s := &Server{
		current:  current,
		renderer: renderer,
		router:   gin.Default(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := s.router.Group("/api")
	{
		api.GET("/snapshot", s.getSnapshot)
		api.GET("/frame.png", s.getFrame)
		api.POST("/pause", s.setPaused(true))
		api.POST("/resume", s.setPaused(false))
	}
}

// Handler exposes the router for an http.Server or httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) source(c *gin.Context) Source {
	src := s.current()
	if src == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no match running"})
	}
	return src
}

func (s *Server) getSnapshot(c *gin.Context) {
	src := s.source(c)
	if src == nil {
		return
	}
	c.JSON(http.StatusOK, src.Snapshot())
}

func (s *Server) getFrame(c *gin.Context) {
	scale, err := strconv.ParseFloat(c.DefaultQuery("scale", "1"), 64)
	if err != nil || scale <= 0 || scale > cfg.Spectator.MaxScale {
		c.JSON(http.StatusBadRequest, gin.H{"error": "scale must be in (0, " + strconv.FormatFloat(cfg.Spectator.MaxScale, 'g', -1, 64) + "]"})
		return
	}

	src := s.source(c)
	if src == nil {
		return
	}
	buf, err := s.renderer.EncodePNG(src.Snapshot(), src.Stage(), scale)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode image"})
		return
	}
	c.Data(http.StatusOK, "image/png", buf)
}

func (s *Server) setPaused(paused bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		src := s.source(c)
		if src == nil {
			return
		}
		var changed bool
		if paused {
			changed = src.Pause()
		} else {
			changed = src.Resume()
		}
		c.JSON(http.StatusOK, gin.H{"paused": paused, "changed": changed})
	}
}
