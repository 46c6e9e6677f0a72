package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/go-playground/validator/v10"
	"github.com/pokemarket/goapi/base/ctx"
	"github.com/pokemarket/goapi/base/database/mongoclient"
	"github.com/pokemarket/goapi/base/log"
	bValidator "github.com/pokemarket/goapi/base/validator"
	"github.com/pokemarket/goapi/domain/listing"
	"github.com/pokemarket/goapi/domain/payment"
	mmiddleware "github.com/pokemarket/goapi/middleware"
	"github.com/pokemarket/goapi/service/algorand"
	"github.com/pokemarket/goapi/service/aptos"
	"github.com/pokemarket/goapi/service/cache"
	"github.com/pokemarket/goapi/service/evmchain"
	"github.com/pokemarket/goapi/service/query"
	"github.com/pokemarket/goapi/service/solana"
	hc_delivery "github.com/pokemarket/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/pokemarket/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/pokemarket/goapi/stores/healthcheck/usecase"
	listing_delivery "github.com/pokemarket/goapi/stores/listing/delivery/http"
	listing_repository "github.com/pokemarket/goapi/stores/listing/repository"
	listing_usecase "github.com/pokemarket/goapi/stores/listing/usecase"
	payment_delivery "github.com/pokemarket/goapi/stores/payment/delivery/http"
	payment_usecase "github.com/pokemarket/goapi/stores/payment/usecase"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient)

	listingCache := cache.New(cache.ServiceConfig{
		Ttl:    viper.GetDuration("cache.ttl"),
		Pfx:    "listings",
		SizeMB: viper.GetInt("cache.sizeMB"),
	})

	// init chain adapters
	httpTimeout := viper.GetDuration("http.timeout")
	solanaClient := solana.NewClient(&solana.ClientCfg{
		Endpoint:   viper.GetString("chains.solana.endpoint"),
		HttpClient: http.Client{},
		Timeout:    httpTimeout,
	})
	aptosClient := aptos.NewClient(&aptos.ClientCfg{
		Endpoint:   viper.GetString("chains.aptos.endpoint"),
		HttpClient: http.Client{},
		Timeout:    httpTimeout,
	})
	algorandClient := algorand.NewClient(&algorand.ClientCfg{
		Endpoint:   viper.GetString("chains.algorand.endpoint"),
		HttpClient: http.Client{},
		Timeout:    httpTimeout,
	})
	evmClient := evmchain.NewClient(context, &evmchain.ClientCfg{
		RpcUrl:  viper.GetString("chains.evm.rpcUrl"),
		Timeout: httpTimeout,
	})
	adapters := map[listing.ChainName]payment.Adapter{
		listing.ChainSolana:   solanaClient,
		listing.ChainAptos:    aptosClient,
		listing.ChainAlgorand: algorandClient,
		listing.ChainEvm:      evmClient,
	}

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient)
	listingRepo := listing_repository.NewListingRepo(q, listingCache)

	hc := hc_usecase.New(hcRepo)
	listingUsecase := listing_usecase.NewListingUseCase(listingRepo)
	paymentUsecase := payment_usecase.NewPaymentUseCase(&payment_usecase.PaymentUseCaseCfg{
		ListingRepo: listingRepo,
		Adapters:    adapters,
	})

	hc_delivery.New(e, hc)
	listing_delivery.New(e, listingUsecase)
	payment_delivery.New(e, paymentUsecase)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
