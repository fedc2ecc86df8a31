package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"deck/internal/config"
	"deck/internal/domain/model"
	"deck/internal/handler"
	"deck/internal/infra/db"
	infraRepo "deck/internal/infra/repository"
	"deck/internal/pricing"
	"deck/internal/server"
	"deck/internal/usecase"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.IsProd() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func main() {
	//.envは無くてもよい（本番は環境変数）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal("db connect failed", zap.Error(err))
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Variant{},
		&model.Pack{},
		&model.Cart{},
		&model.CartItem{},
		&model.PreOrder{},
	); err != nil {
		log.Fatal("migrate failed", zap.Error(err))
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	preOrderRepo := infraRepo.NewPreOrderGormRepository(gormDB)

	//サマリーの通貨・タイムゾーン
	summary := pricing.DefaultSummaryFormat
	summary.Currency = cfg.CurrencySymbol
	summary.Location = cfg.Location

	//Usecase生成
	basketUC := usecase.NewBasketUsecase(
		cartRepo,
		cartRepo,
		productRepo,
		userRepo,
		preOrderRepo,
		&uuidGenerator{},
		&realClock{},
		summary,
		log.Named("basket"),
	)
	productUC := usecase.NewProductUsecase(productRepo)
	preOrderUC := usecase.NewPreOrderUsecase(preOrderRepo, log.Named("preorder"))

	//Handler生成
	e := server.New(cfg, log,
		handler.NewBasketHandler(basketUC),
		handler.NewProductHandler(productUC),
		handler.NewPreOrderHandler(preOrderUC),
	)

	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("server started", zap.String("addr", addr), zap.String("env", cfg.GoEnv))
	if err := server.Start(ctx, e, addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
	log.Info("server stopped")
}
