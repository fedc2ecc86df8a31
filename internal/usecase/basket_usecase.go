package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"deck/internal/domain/model"
	"deck/internal/pricing"
	repo "deck/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// BasketUsecase は /basket の業務ロジックです。
// 価格の計算は pricing に任せ、ここでは読み込みと受け渡しだけ。
type BasketUsecase struct {
	cartRepo     repo.CartRepository
	cartItemRepo repo.CartItemRepository
	productRepo  repo.ProductRepository
	userRepo     repo.UserRepository
	preOrderRepo repo.PreOrderRepository
	idGen        IDGenerator
	clock        Clock
	summary      pricing.SummaryFormat
	log          *zap.Logger
}

func NewBasketUsecase(
	cartRepo repo.CartRepository,
	cartItemRepo repo.CartItemRepository,
	productRepo repo.ProductRepository,
	userRepo repo.UserRepository,
	preOrderRepo repo.PreOrderRepository,
	idGen IDGenerator,
	clock Clock,
	summary pricing.SummaryFormat,
	log *zap.Logger,
) *BasketUsecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &BasketUsecase{
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
		userRepo:     userRepo,
		preOrderRepo: preOrderRepo,
		idGen:        idGen,
		clock:        clock,
		summary:      summary,
		log:          log,
	}
}

type BasketLineResponse struct {
	ID          string              `json:"id"`
	ProductID   string              `json:"product_id"`
	ProductName string              `json:"product_name"`
	VariantName string              `json:"variant_name"`
	Size        *string             `json:"size,omitempty"`
	PackID      *string             `json:"pack_id,omitempty"`
	PackName    *string             `json:"pack_name,omitempty"`
	Quantity    int64               `json:"quantity"`
	PriceSource pricing.PriceSource `json:"price_source"`
	UnitPrice   decimal.Decimal     `json:"unit_price"`
	LineTotal   decimal.Decimal     `json:"line_total"`
	DisplayName string              `json:"display_name"`
	Subtitle    string              `json:"subtitle"`
	UnitCount   int64               `json:"unit_count"`
	MediaURL    string              `json:"media_url"`
}

type SellerBasketResponse struct {
	SellerID      string               `json:"seller_id"`
	SellerName    string               `json:"seller_name"`
	Items         []BasketLineResponse `json:"items"`
	Subtotal      decimal.Decimal      `json:"subtotal"`
	TotalQuantity int64                `json:"total_quantity"`
}

type BasketResponse struct {
	Sellers       []SellerBasketResponse `json:"sellers"`
	Total         decimal.Decimal        `json:"total"`
	TotalQuantity int64                  `json:"total_quantity"`
}

type AddBasketItemInput struct {
	ProductID    string
	VariantName  string
	Size         *string
	PackID       *string
	Quantity     int64
	SpecialPrice *decimal.Decimal
	// 特価を付けられるのはADMINだけ
	Role model.Role
}

type UpdateBasketItemInput struct {
	Quantity int64
}

type PreOrderResponse struct {
	ID        string               `json:"id"`
	Status    model.PreOrderStatus `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
	pricing.PreOrderPayload
}

// GetBasket は出品者ごとにまとめたカート。
func (u *BasketUsecase) GetBasket(ctx context.Context, userID string) (BasketResponse, error) {
	if userID == "" {
		return BasketResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	groups, err := u.loadGroups(ctx, userID)
	if err != nil {
		return BasketResponse{}, err
	}

	names, err := u.sellerNames(ctx, groups.SellerIDs())
	if err != nil {
		return BasketResponse{}, err
	}

	out := BasketResponse{
		Sellers: make([]SellerBasketResponse, 0, groups.Len()),
		Total:   decimal.Zero,
	}
	for _, g := range groups.All() {
		totals := pricing.ComputeSellerTotals(g.Lines)

		items := make([]BasketLineResponse, 0, len(g.Lines))
		for _, l := range g.Lines {
			items = append(items, toLineResponse(l))
		}

		out.Sellers = append(out.Sellers, SellerBasketResponse{
			SellerID:      g.SellerID,
			SellerName:    names[g.SellerID],
			Items:         items,
			Subtotal:      totals.Subtotal,
			TotalQuantity: totals.TotalQuantity,
		})
		out.Total = out.Total.Add(totals.Subtotal)
		out.TotalQuantity += totals.TotalQuantity
	}

	return out, nil
}

// AddItem はカートに1行追加（パック違い・サイズ違いは別行）。
func (u *BasketUsecase) AddItem(ctx context.Context, userID string, in AddBasketItemInput) (BasketResponse, error) {
	if userID == "" {
		return BasketResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(in.ProductID) == "" {
		return BasketResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if in.Quantity < 1 {
		return BasketResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}
	if in.SpecialPrice != nil && in.SpecialPrice.IsNegative() {
		return BasketResponse{}, NewHTTPError(http.StatusBadRequest, "invalid special_price")
	}
	if in.SpecialPrice != nil && in.Role != model.RoleAdmin {
		return BasketResponse{}, NewHTTPError(http.StatusForbidden, "forbidden")
	}

	p, err := u.productRepo.FindByID(ctx, in.ProductID)
	if err == repo.ErrNotFound {
		return BasketResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if err != nil {
		return BasketResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// バリエーションが登録されている商品だけ名前をチェック
	if len(p.Variants) > 0 {
		if _, ok := p.FindVariant(in.VariantName); !ok {
			return BasketResponse{}, NewHTTPError(http.StatusBadRequest, "invalid variant")
		}
	}
	if in.PackID != nil {
		if _, ok := p.FindPack(*in.PackID); !ok {
			return BasketResponse{}, NewHTTPError(http.StatusBadRequest, "invalid pack_id")
		}
	}

	cart, err := u.cartRepo.GetOrCreateActiveByUserID(ctx, userID)
	if err != nil {
		return BasketResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	now := u.clock.Now()
	item := model.CartItem{
		ID:           u.idGen.NewID(),
		CartID:       cart.ID,
		ProductID:    p.ID,
		VariantName:  in.VariantName,
		Size:         in.Size,
		PackID:       in.PackID,
		Quantity:     in.Quantity,
		SpecialPrice: in.SpecialPrice,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.cartItemRepo.Create(ctx, item); err != nil {
		return BasketResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.GetBasket(ctx, userID)
}

// 数量変更（所有チェックあり）。
func (u *BasketUsecase) UpdateItemQuantity(ctx context.Context, userID string, cartItemID string, in UpdateBasketItemInput) (BasketResponse, error) {
	if userID == "" {
		return BasketResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if cartItemID == "" {
		return BasketResponse{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if in.Quantity < 1 {
		return BasketResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	if err := u.checkOwned(ctx, userID, cartItemID); err != nil {
		return BasketResponse{}, err
	}

	if err := u.cartItemRepo.UpdateQuantity(ctx, cartItemID, in.Quantity); err != nil {
		if err == repo.ErrNotFound {
			return BasketResponse{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return BasketResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.GetBasket(ctx, userID)
}

// 明細削除
func (u *BasketUsecase) DeleteItem(ctx context.Context, userID string, cartItemID string) (BasketResponse, error) {
	if userID == "" {
		return BasketResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if cartItemID == "" {
		return BasketResponse{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := u.checkOwned(ctx, userID, cartItemID); err != nil {
		return BasketResponse{}, err
	}

	if err := u.cartItemRepo.DeleteByID(ctx, cartItemID); err != nil {
		if err == repo.ErrNotFound {
			return BasketResponse{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return BasketResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.GetBasket(ctx, userID)
}

// SendPreOrder は出品者1人分の事前注文をアウトボックスに積む。
func (u *BasketUsecase) SendPreOrder(ctx context.Context, userID string, sellerID string) (PreOrderResponse, error) {
	if userID == "" {
		return PreOrderResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	lines, err := u.sellerLines(ctx, userID, sellerID)
	if err != nil {
		return PreOrderResponse{}, err
	}

	sp, err := u.salesperson(ctx, userID)
	if err != nil {
		return PreOrderResponse{}, err
	}

	payload := pricing.BuildPreOrderPayload(sellerID, lines, sp)
	po := model.PreOrder{
		ID:              u.idGen.NewID(),
		SellerID:        payload.SellerID,
		SalespersonID:   sp.ID,
		SalespersonName: sp.Name,
		Items:           payload.Items,
		Subtotal:        payload.Subtotal,
		TotalQuantity:   payload.TotalQuantity,
		Status:          model.PreOrderStatusPending,
		CreatedAt:       u.clock.Now(),
	}
	if err := u.preOrderRepo.Create(ctx, po); err != nil {
		return PreOrderResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.log.Info("pre-order queued",
		zap.String("pre_order_id", po.ID),
		zap.String("seller_id", po.SellerID),
		zap.String("salesperson_id", po.SalespersonID),
		zap.Int("items", len(po.Items)),
		zap.String("subtotal", po.Subtotal.StringFixed(2)),
	)

	return PreOrderResponse{
		ID:              po.ID,
		Status:          po.Status,
		CreatedAt:       po.CreatedAt,
		PreOrderPayload: payload,
	}, nil
}

// ShareSummary は共有用のテキスト。時刻はClockから取って渡す。
func (u *BasketUsecase) ShareSummary(ctx context.Context, userID string, sellerID string) (string, error) {
	if userID == "" {
		return "", NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	lines, err := u.sellerLines(ctx, userID, sellerID)
	if err != nil {
		return "", err
	}

	sp, err := u.salesperson(ctx, userID)
	if err != nil {
		return "", err
	}

	names, err := u.sellerNames(ctx, []string{sellerID})
	if err != nil {
		return "", err
	}
	sellerName := names[sellerID]
	if sellerName == "" {
		sellerName = sellerID
	}

	return u.summary.Format(sellerName, lines, sp.Name, u.clock.Now()), nil
}

// カートとカタログを読んで出品者ごとにまとめる。カートが無ければ空。
func (u *BasketUsecase) loadGroups(ctx context.Context, userID string) (pricing.SellerGroups, error) {
	cart, err := u.cartRepo.FindActiveByUserID(ctx, userID)
	if err == repo.ErrNotFound {
		return pricing.SellerGroups{}, nil
	}
	if err != nil {
		return pricing.SellerGroups{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items, err := u.cartItemRepo.ListByCartID(ctx, cart.ID)
	if err != nil {
		return pricing.SellerGroups{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	products, err := u.productRepo.FindByIDs(ctx, productIDs(items))
	if err != nil {
		return pricing.SellerGroups{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	catalog := pricing.NewCatalog(products)

	u.logInconsistencies(items, catalog)
	return pricing.GroupBySeller(items, catalog), nil
}

// 商品削除・パック削除はエラーにせずログだけ
func (u *BasketUsecase) logInconsistencies(items []model.CartItem, catalog pricing.Catalog) {
	for _, it := range items {
		p, ok := catalog.Lookup(it.ProductID)
		if !ok {
			u.log.Debug("cart item skipped: product missing",
				zap.String("cart_item_id", it.ID),
				zap.String("product_id", it.ProductID),
			)
			continue
		}
		if it.PackID != nil {
			if _, ok := p.FindPack(*it.PackID); !ok {
				u.log.Debug("cart item priced as single: pack missing",
					zap.String("cart_item_id", it.ID),
					zap.String("pack_id", *it.PackID),
				)
			}
		}
	}
}

func (u *BasketUsecase) sellerLines(ctx context.Context, userID string, sellerID string) ([]pricing.Line, error) {
	if strings.TrimSpace(sellerID) == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid seller id")
	}

	groups, err := u.loadGroups(ctx, userID)
	if err != nil {
		return nil, err
	}

	lines, ok := groups.Get(sellerID)
	if !ok {
		return nil, NewHTTPError(http.StatusNotFound, "not found")
	}
	return lines, nil
}

func (u *BasketUsecase) salesperson(ctx context.Context, userID string) (pricing.Salesperson, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err == repo.ErrNotFound {
		return pricing.Salesperson{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err != nil {
		return pricing.Salesperson{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return pricing.Salesperson{ID: user.ID, Name: user.DisplayName}, nil
}

func (u *BasketUsecase) sellerNames(ctx context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	users, err := u.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	for _, usr := range users {
		names[usr.ID] = usr.DisplayName
	}
	return names, nil
}

func (u *BasketUsecase) checkOwned(ctx context.Context, userID string, cartItemID string) error {
	owned, err := u.cartItemRepo.IsOwnedByUser(ctx, cartItemID, userID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !owned {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	return nil
}

// 重複なし・初出順
func productIDs(items []model.CartItem) []string {
	seen := make(map[string]struct{}, len(items))
	ids := make([]string, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it.ProductID]; ok {
			continue
		}
		seen[it.ProductID] = struct{}{}
		ids = append(ids, it.ProductID)
	}
	return ids
}

func toLineResponse(l pricing.Line) BasketLineResponse {
	return BasketLineResponse{
		ID:          l.CartItemID,
		ProductID:   l.ProductID,
		ProductName: l.ProductName,
		VariantName: l.VariantName,
		Size:        l.Size,
		PackID:      l.PackID,
		PackName:    l.PackName,
		Quantity:    l.Quantity,
		PriceSource: l.PriceSource,
		UnitPrice:   l.UnitPrice,
		LineTotal:   l.LineTotal,
		DisplayName: l.DisplayName,
		Subtitle:    l.Subtitle,
		UnitCount:   l.QuantityContribution,
		MediaURL:    l.MediaURL,
	}
}
