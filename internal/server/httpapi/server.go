// Package httpapi exposes the REST surface of the server: registration,
// login, the token gate, and the catalog endpoints.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopkeeper/shopkeeper/internal/logging"
	"github.com/shopkeeper/shopkeeper/internal/server/models"
)

// UserService is the account/session flow consumed by the HTTP layer.
type UserService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Authenticate(ctx context.Context, token string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
}

// ProductService is the catalog flow consumed by the HTTP layer.
type ProductService interface {
	AddBatch(ctx context.Context, batch []*models.Product) ([]*models.Product, error)
	Update(ctx context.Context, id string, upd *models.ProductUpdate) (*models.Product, error)
	List(ctx context.Context) ([]*models.Product, error)
}

type Server struct {
	address    string
	logger     logging.Logger
	users      UserService
	products   ProductService
	corsOrigin string
}

func NewServer(address string, l logging.Logger, us UserService, ps ProductService, corsOrigin string) *Server {
	return &Server{
		address:    address,
		logger:     l.With("module", "http_server"),
		users:      us,
		products:   ps,
		corsOrigin: corsOrigin,
	}
}

// Handler builds the full middleware/router stack.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/", s.hello).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/auth/signup", s.registerUser).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", s.loginUser).Methods(http.MethodPost)

	protected := api.NewRoute().Subrouter()
	protected.Use(s.requireAuth)
	protected.HandleFunc("/users", s.getUsers).Methods(http.MethodGet)
	protected.HandleFunc("/categories", s.addProducts).Methods(http.MethodPost)
	protected.HandleFunc("/categories/{id}", s.updateProduct).Methods(http.MethodPut)
	protected.HandleFunc("/categories/products", s.getProducts).Methods(http.MethodGet)

	// CORS sits outside the router so preflight requests are answered
	// even for paths the router would not match.
	return s.corsMiddleware(s.recoveryMiddleware(s.loggingMiddleware(r)))
}

func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "Shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) hello(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Hello World!"))
}
