package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/x-xyz/auctionhouse/base/backoff"
	bCtx "github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/database/mongoclient"
	"github.com/x-xyz/auctionhouse/base/log"
	"github.com/x-xyz/auctionhouse/base/sweeper"
	"github.com/x-xyz/auctionhouse/domain"
	mmiddleware "github.com/x-xyz/auctionhouse/middleware"
	"github.com/x-xyz/auctionhouse/service/chain"
	"github.com/x-xyz/auctionhouse/service/chain/contract"
	"github.com/x-xyz/auctionhouse/service/notifier"
	"github.com/x-xyz/auctionhouse/service/query"
	accountRepo "github.com/x-xyz/auctionhouse/stores/account/repository"
	accountUsecase "github.com/x-xyz/auctionhouse/stores/account/usecase"
	activityRepo "github.com/x-xyz/auctionhouse/stores/activity/repository"
	auctionRepo "github.com/x-xyz/auctionhouse/stores/auction/repository"
	auctionUsecase "github.com/x-xyz/auctionhouse/stores/auction/usecase"
	paytokenRepo "github.com/x-xyz/auctionhouse/stores/paytoken/repository"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/sweeper/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	pflag.String("network", "", "override activeNetwork from config")
	pflag.Parse()
	if err := viper.BindPFlag("activeNetwork", pflag.Lookup("network")); err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("debug mode enabled")
	}
}

func main() {
	ctx, cancel := bCtx.WithCancel(bCtx.Background())

	// start server to pass cloud run health check
	startEchoServer()

	activeNetwork := viper.GetString("activeNetwork")
	networkInfo := viper.Sub(fmt.Sprintf("networks.%s", activeNetwork))
	chainId := networkInfo.GetInt64("chainId")
	rpcUrl := networkInfo.GetString("rpcUrl")
	archiveRpcUrl := networkInfo.GetString("archiveRpcUrl")
	batch := viper.GetInt("sweeper.batch")
	workers := viper.GetInt("sweeper.workers")
	backoffStart := viper.GetDuration("sweeper.backoffStart")
	backoffLimit := viper.GetDuration("sweeper.backoffLimit")

	ctx.WithFields(log.Fields{
		"network":       activeNetwork,
		"chainId":       chainId,
		"rpcUrl":        rpcUrl,
		"archiveRpcUrl": archiveRpcUrl,
		"batch":         batch,
		"workers":       workers,
	}).Info("config")

	ctx.Info("connecting mongo")
	q := initMongo()

	chainService, err := chain.NewClient(ctx, &chain.ClientCfg{
		RpcUrls: map[int32]string{
			int32(chainId): rpcUrl,
		},
		ArchiveRpcUrls: map[int32]string{
			int32(chainId): archiveRpcUrl,
		},
		SignerKey: viper.GetString("custodian.signerKey"),
	})
	if err != nil {
		ctx.WithField("err", err).Panic("chainService init failed")
	}
	erc721Service := contract.NewErc721(chainService)
	erc1155Service := contract.NewErc1155(chainService)
	erc20Service := contract.NewErc20(chainService)

	// repos
	aucRepo := auctionRepo.NewAuctionRepo(q)
	paramsRepo := auctionRepo.NewParamsRepo(q)
	actRepo := activityRepo.NewActivityRepo(q)
	ptRepo := paytokenRepo.NewPayTokenRepo(q, nil)
	accRepo := accountRepo.New(q, nil)

	// usecases
	account := accountUsecase.New(&accountUsecase.AccountUseCaseCfg{
		Repo: accRepo,
	})

	auctionNotifier := notifier.NewNoop()
	if viper.GetString("discord.botKey") != "" {
		auctionNotifier = notifier.NewDiscord(notifier.DiscordNotifierCfg{
			BotKey:    viper.GetString("discord.botKey"),
			ChannelId: viper.GetString("discord.channelId"),
			Paytoken:  ptRepo,
			Account:   account,
		})
	}

	auctionUC := auctionUsecase.New(&auctionUsecase.AuctionUseCaseCfg{
		AuctionRepo:  aucRepo,
		ParamsRepo:   paramsRepo,
		ActivityRepo: actRepo,
		PaytokenRepo: ptRepo,
		Erc721:       erc721Service,
		Erc1155:      erc1155Service,
		Erc20:        erc20Service,
		ChainClient:  chainService,
		Notifier:     auctionNotifier,
		Mongo:        q,
	})

	errCh := make(chan error, 10)
	s := sweeper.New(&sweeper.SweeperCfg{
		AuctionUC: auctionUC,
		ChainId:   domain.ChainId(chainId),
		Operator:  domain.Address(chainService.Signer().Hex()).ToLower(),
		Batch:     batch,
		Workers:   workers,
		Backoff:   backoff.NewExponential(backoffStart, backoffLimit),
		ErrorCh:   errCh,
	})

	ctx.Info("starting sweeper")
	s.Start(ctx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	select {
	case sig := <-quit:
		ctx.WithField("signal", sig).Info("received signal")
	case err := <-errCh:
		ctx.WithField("err", err).Error("sweeper error")
	}

	cancel()
	s.Wait()
	ctx.Info("sweeper stopped")
}

func startEchoServer() {
	context := bCtx.Background()

	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())

	address := viper.GetString("server.address")
	context.WithField("address", address).Info("starting server")
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			context.Error("shutting down the server")
		}
	}()
}

func initMongo() query.Mongo {
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	return query.New(mongoClient, checkIndex)
}
