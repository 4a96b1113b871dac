package server

import (
	"context"
	"errors"
	"github.com/blinky-z/postboard/handler/restapi"
	"github.com/blinky-z/postboard/service/postService"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"net"
	"net/http"
	"time"
)

const shutdownTimeout = 5 * time.Second

// NewRouter - sets api handlers over the given store and wraps them with CORS policy
func NewRouter(config Config, store *postService.Store, log *zap.SugaredLogger) http.Handler {
	postAPIHandler := restapi.NewPostAPIHandler(store, log.Named("restApi.post"))

	router := mux.NewRouter()

	router.Handle("/posts", postAPIHandler.GetPostsHandler()).Methods("GET")
	router.Handle("/posts", postAPIHandler.CreatePostHandler()).Methods("POST")

	router.HandleFunc("/api/hc", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")

	corsPolicy := cors.New(cors.Options{
		AllowedOrigins: config.CorsOrigins,
		// GET is listed so that post list responses carry the allow-origin header
		AllowedMethods: []string{http.MethodPost, http.MethodGet},
		AllowedHeaders: []string{"*"},
	})

	return corsPolicy.Handler(router)
}

// Serve - serves requests on the given listener until ctx is done
func Serve(ctx context.Context, listener net.Listener, handler http.Handler, log *zap.SugaredLogger) error {
	srv := &http.Server{Handler: handler}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(listener)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	log.Infow("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// RunServer - creates an empty post store and serves it until ctx is done
func RunServer(ctx context.Context, config Config, log *zap.SugaredLogger) error {
	serverLog := log.Named("server")
	store := postService.NewStore()

	listener, err := net.Listen("tcp", config.Address())
	if err != nil {
		return err
	}

	serverLog.Infow("Starting server", "address", listener.Addr().String())
	return Serve(ctx, listener, NewRouter(config, store, log), serverLog)
}
