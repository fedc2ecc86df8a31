package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"deck/internal/config"
	"deck/internal/handler"
	"deck/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// ルーティングまで済んだechoを返す
func New(cfg config.Config, log *zap.Logger, basketH *handler.BasketHandler, productH *handler.ProductHandler, preOrderH *handler.PreOrderHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(middleware.RequestLogger(log))

	handler.RegisterHealth(e)
	productH.RegisterRoutes(e)
	basketH.RegisterRoutes(e, cfg)
	preOrderH.RegisterRoutes(e, cfg)

	return e
}

// ctxが終わったら10秒待って止める
func Start(ctx context.Context, e *echo.Echo, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
