package handler

import (
	"net/http"

	"deck/internal/config"
	"deck/internal/domain/model"
	"deck/internal/middleware"
	"deck/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /preorders（出品者向け）
type PreOrderHandler struct {
	uc *usecase.PreOrderUsecase
}

// DI
func NewPreOrderHandler(uc *usecase.PreOrderUsecase) *PreOrderHandler {
	return &PreOrderHandler{uc: uc}
}

func (h *PreOrderHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/preorders")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.RoleGuard(model.RoleCreator))

	g.GET("", h.list)
	g.POST("/:id/sent", h.markSent)
}

func (h *PreOrderHandler) list(c echo.Context) error {
	sellerID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.ListForSeller(c.Request().Context(), sellerID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PreOrderHandler) markSent(c echo.Context) error {
	sellerID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	if err := h.uc.MarkSent(c.Request().Context(), sellerID, c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
