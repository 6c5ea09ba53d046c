package handlers

import (
	"github.com/rogerio-castellano/inventory-manager/internal/auth"
	"github.com/rogerio-castellano/inventory-manager/internal/logger"
	"github.com/rogerio-castellano/inventory-manager/internal/repo"
)

// Deps are the collaborators shared by all handlers.
type Deps struct {
	Products      repo.ProductRepository
	Metrics       repo.MetricsRepository
	Authenticator auth.Authenticator
	Tokens        *auth.TokenIssuer
	Log           *logger.Logger
}

// Server holds the handlers of the inventory API.
type Server struct {
	products repo.ProductRepository
	metrics  repo.MetricsRepository
	auth     auth.Authenticator
	tokens   *auth.TokenIssuer
	log      *logger.Logger
}

func NewServer(d Deps) *Server {
	log := d.Log
	if log == nil {
		log = logger.Nop()
	}
	return &Server{
		products: d.Products,
		metrics:  d.Metrics,
		auth:     d.Authenticator,
		tokens:   d.Tokens,
		log:      log,
	}
}
