package handler

import (
	"net/http"

	"deck/internal/config"
	"deck/internal/domain/model"
	"deck/internal/middleware"
	"deck/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// /basketのHTTP
type BasketHandler struct {
	uc *usecase.BasketUsecase
}

// DI
func NewBasketHandler(uc *usecase.BasketUsecase) *BasketHandler {
	return &BasketHandler{uc: uc}
}

type AddBasketItemRequest struct {
	ProductID    string           `json:"product_id"`
	VariantName  string           `json:"variant_name"`
	Size         *string          `json:"size"`
	PackID       *string          `json:"pack_id"`
	Quantity     int64            `json:"quantity"`
	SpecialPrice *decimal.Decimal `json:"special_price"`
}

type UpdateBasketItemRequest struct {
	Quantity int64 `json:"quantity"`
}

// /basket 以下を登録（営業担当と管理者だけ）
func (h *BasketHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/basket")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.RoleGuard(model.RoleSales, model.RoleAdmin))

	g.GET("", h.getBasket)
	g.POST("/items", h.addItem)
	g.PATCH("/items/:id", h.patchItem)
	g.DELETE("/items/:id", h.deleteItem)
	g.POST("/sellers/:sellerId/preorder", h.sendPreOrder)
	g.GET("/sellers/:sellerId/summary", h.summary)
}

func (h *BasketHandler) getBasket(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.GetBasket(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BasketHandler) addItem(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req AddBasketItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.AddItem(c.Request().Context(), userID, usecase.AddBasketItemInput{
		ProductID:    req.ProductID,
		VariantName:  req.VariantName,
		Size:         req.Size,
		PackID:       req.PackID,
		Quantity:     req.Quantity,
		SpecialPrice: req.SpecialPrice,
		Role:         getUserRoleFromContext(c),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BasketHandler) patchItem(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req UpdateBasketItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.UpdateItemQuantity(c.Request().Context(), userID, c.Param("id"), usecase.UpdateBasketItemInput{
		Quantity: req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BasketHandler) deleteItem(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.DeleteItem(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BasketHandler) sendPreOrder(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.SendPreOrder(c.Request().Context(), userID, c.Param("sellerId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

// 共有シート・クリップボード向けのプレーンテキスト
func (h *BasketHandler) summary(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	text, err := h.uc.ShareSummary(c.Request().Context(), userID, c.Param("sellerId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.String(http.StatusOK, text)
}
