package http

import (
	"context"
	"errors"
	nethttp "net/http"
	"time"

	"github.com/MikeRez0/ordermodule/internal/core/port"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	tokenService port.TokenService,
	orderHandler *OrderHandler,
	logger *zap.Logger) (*Router, error) {

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		orders := api.Group("/orders")
		{
			orders.Use(authCheck(tokenService))
			orders.GET("", orderHandler.SearchOrders)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.POST("", orderHandler.SaveOrders)
			orders.DELETE("", orderHandler.DeleteOrders)
		}
	}

	return &Router{router}, nil
}

// Serve runs the HTTP server until ctx is done.
func (r *Router) Serve(ctx context.Context, listenAddr string) error {
	srv := &nethttp.Server{
		Addr:              listenAddr,
		Handler:           r.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, nethttp.ErrServerClosed) {
		return err
	}
	return nil
}
