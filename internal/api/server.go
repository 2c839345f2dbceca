package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Server struct {
	addr    string
	engine  *gin.Engine
	srv     *http.Server
	handler *Handler
}

func NewServer(addr string, h *Handler) *Server {
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())

	s := &Server{
		addr:    addr,
		engine:  engine,
		handler: h,
	}
	s.registerRoutes()

	return s
}

func (s *Server) registerRoutes() {
	s.engine.GET("/health", s.handler.Health)

	v1 := s.engine.Group("/v1")

	vault := v1.Group("/vault")

	vault.POST("/deposits", s.handler.Deposit)
	vault.POST("/withdrawals", s.handler.Withdraw)
	vault.GET("/accounts/:account/balance", s.handler.Balance)
	vault.GET("/stats", s.handler.Stats)
	vault.GET("/operations", s.handler.Operations)
}

func (s *Server) Run() error {
	s.srv = &http.Server{
		Addr:    s.addr,
		Handler: s.engine,
	}
	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

// Engine exposes the router for in-process tests.
func (s *Server) Engine() http.Handler {
	return s.engine
}
