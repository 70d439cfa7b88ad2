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
	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/database/mongoclient"
	"github.com/x-xyz/auctionhouse/base/database/redisclient"
	"github.com/x-xyz/auctionhouse/base/log"
	"github.com/x-xyz/auctionhouse/base/metrics"
	bValidator "github.com/x-xyz/auctionhouse/base/validator"
	"github.com/x-xyz/auctionhouse/domain"
	mmiddleware "github.com/x-xyz/auctionhouse/middleware"
	"github.com/x-xyz/auctionhouse/service/chain"
	"github.com/x-xyz/auctionhouse/service/chain/contract"
	"github.com/x-xyz/auctionhouse/service/ens"
	"github.com/x-xyz/auctionhouse/service/notifier"
	"github.com/x-xyz/auctionhouse/service/query"
	"github.com/x-xyz/auctionhouse/service/redis"
	account_repository "github.com/x-xyz/auctionhouse/stores/account/repository"
	account_usecase "github.com/x-xyz/auctionhouse/stores/account/usecase"
	activity_repository "github.com/x-xyz/auctionhouse/stores/activity/repository"
	activity_usecase "github.com/x-xyz/auctionhouse/stores/activity/usecase"
	auction_delivery "github.com/x-xyz/auctionhouse/stores/auction/delivery/http"
	auction_repository "github.com/x-xyz/auctionhouse/stores/auction/repository"
	auction_usecase "github.com/x-xyz/auctionhouse/stores/auction/usecase"
	auth_delivery "github.com/x-xyz/auctionhouse/stores/auth/delivery/http"
	auth_middleware "github.com/x-xyz/auctionhouse/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/x-xyz/auctionhouse/stores/auth/usecase"
	hc_delivery "github.com/x-xyz/auctionhouse/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/auctionhouse/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/auctionhouse/stores/healthcheck/usecase"
	paytoken_delivery "github.com/x-xyz/auctionhouse/stores/paytoken/delivery/http"
	paytoken_repository "github.com/x-xyz/auctionhouse/stores/paytoken/repository"
	paytoken_usecase "github.com/x-xyz/auctionhouse/stores/paytoken/usecase"

	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/x-xyz/auctionhouse/app/api/docs"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("debug mode enabled")
	}
}

//	@title			Auction House API
//	@version		1.0
//	@description	API Document for the auction house.

// main
//
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
//	@description				retrieve token from #/auth/post_auth_sign_in and apply with `bearer {token}`
func main() {
	// http server
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

	// mongo
	context.Info("connecting mongo")
	mongoClient := mongoclient.MustConnectMongoClient(
		viper.GetString("mongo.uri"),
		viper.GetString("mongo.authDBName"),
		viper.GetString("mongo.dbName"),
		viper.GetBool("mongo.enableSSL"),
		true, 2)
	q := query.New(mongoClient, viper.GetBool("mongo.checkIndex"))

	// redis cache
	context.Info("connecting redis")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCachePool := redisclient.MustConnectRedis(
		viper.GetString("redis_cache.uri"),
		viper.GetString("redis_cache.password"),
		redisclient.RedisParam{
			PoolMultiplier: viper.GetFloat64("redis_cache.poolMultiplier"),
			Retry:          true,
		})
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{Src: redisCachePool})

	mmiddleware.SetupCache(redisCache)

	// chain clients and contract bindings
	networks := viper.Sub("networks")
	rpcs := make(map[int32]string)
	archiveRpcs := make(map[int32]string)
	chainIds := []domain.ChainId{}
	for k := range networks.AllSettings() {
		chainId := networks.GetInt32(k + ".chainId")
		rpcs[chainId] = networks.GetString(k + ".rpcUrl")
		archiveRpcs[chainId] = networks.GetString(k + ".archiveRpcUrl")
		chainIds = append(chainIds, domain.ChainId(chainId))
	}
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrls:        rpcs,
		ArchiveRpcUrls: archiveRpcs,
		SignerKey:      viper.GetString("custodian.signerKey"),
	})
	if chainService == nil {
		context.WithField("err", err).Panic("chainService init failed")
	} else if err != nil {
		// some rpcs failed to dial, the chains that did connect still serve
		context.WithField("err", err).Warn("chainService started degraded")
	}
	erc721Service := contract.NewErc721(chainService)
	erc1155Service := contract.NewErc1155(chainService)
	erc20Service := contract.NewErc20(chainService)
	erc1271Service := contract.NewErc1271(chainService)

	// stores: repository, usecase, delivery
	hcRepo := hc_repo.New(mongoClient, redisCache)
	accountRepo := account_repository.New(q, redisCache)
	paytokenRepo := paytoken_repository.NewPayTokenRepo(q, redisCache)
	auctionRepo := auction_repository.NewAuctionRepo(q)
	paramsRepo := auction_repository.NewParamsRepo(q)
	activityRepo := activity_repository.NewActivityRepo(q)

	hc := hc_usecase.New(hcRepo)
	account := account_usecase.New(&account_usecase.AccountUseCaseCfg{
		Repo:         accountRepo,
		SignatureMsg: viper.GetString("auth.signatureMsg"),
		Erc1271:      erc1271Service,
		ChainIds:     chainIds,
	})
	auth := auth_usecase.New(viper.GetString("auth.jwtSecret"), account)
	activity := activity_usecase.New(activityRepo)
	paytoken := paytoken_usecase.New(paytokenRepo)

	auctionNotifier := notifier.NewNoop()
	if viper.GetString("discord.botKey") != "" {
		ensService, err := ens.New(rpcs[1], redisCache)
		if err != nil {
			// aliases fall back to raw addresses
			context.WithField("err", err).Warn("ens init failed")
		}
		auctionNotifier = notifier.NewDiscord(notifier.DiscordNotifierCfg{
			BotKey:    viper.GetString("discord.botKey"),
			ChannelId: viper.GetString("discord.channelId"),
			Paytoken:  paytokenRepo,
			Account:   account,
			Ens:       ensService,
		})
	}

	auction := auction_usecase.New(&auction_usecase.AuctionUseCaseCfg{
		AuctionRepo:  auctionRepo,
		ParamsRepo:   paramsRepo,
		ActivityRepo: activityRepo,
		PaytokenRepo: paytokenRepo,
		Erc721:       erc721Service,
		Erc1155:      erc1155Service,
		Erc20:        erc20Service,
		ChainClient:  chainService,
		Notifier:     auctionNotifier,
		Mongo:        q,
	})
	params := auction_usecase.NewParamsUseCase(&auction_usecase.ParamsUseCaseCfg{
		ParamsRepo: paramsRepo,
		Notifier:   auctionNotifier,
	})

	adminAddresses := viper.GetStringSlice("admin.addresses")
	auth_middleware := auth_middleware.New(auth, adminAddresses)

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth, account, viper.GetString("auth.signatureMsg"))
	auction_delivery.New(e, auction, params, activity, auth_middleware)
	paytoken_delivery.New(e, paytoken, auth_middleware)

	e.GET("/check", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"address": c.Get("address"),
		})
	}, auth_middleware.Auth())

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("server stopped")
		}
	}()

	// Block until a shutdown signal, then give in-flight requests 10 seconds to drain.
	// signal.Notify drops signals sent to an unbuffered channel.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("graceful shutdown failed")
	} else {
		log.Log().Info("server shut down cleanly")
	}
}
