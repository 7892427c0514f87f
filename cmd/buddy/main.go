package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/wjuan-mob/mobilecoind-buddy/config"
	"github.com/wjuan-mob/mobilecoind-buddy/internal/core/application"
	"github.com/wjuan-mob/mobilecoind-buddy/internal/core/domain"
	"github.com/wjuan-mob/mobilecoind-buddy/internal/core/ports"
	deqsclient "github.com/wjuan-mob/mobilecoind-buddy/internal/infrastructure/deqs"
	mobilecoindclient "github.com/wjuan-mob/mobilecoind-buddy/internal/infrastructure/mobilecoind"
	"github.com/wjuan-mob/mobilecoind-buddy/pkg/keyfile"
	"github.com/wjuan-mob/mobilecoind-buddy/pkg/stats"
)

func main() {
	app := &cli.App{
		Name:  "buddy",
		Usage: "account sync and transaction front-end for mobilecoind",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "keyfile",
				Usage: "path to the json-formatted account key-file",
			},
			&cli.StringFlag{
				Name:  "mobilecoind-rpc",
				Usage: "<host:port> of the mobilecoind gRPC interface",
			},
			&cli.StringFlag{
				Name:  "deqs-rpc",
				Usage: "<host:port> of the DEQS gRPC interface (optional)",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("buddy exited with error")
	}
}

func run(ctx *cli.Context) error {
	if err := config.InitConfig(); err != nil {
		return err
	}
	if v := ctx.String("keyfile"); v != "" {
		config.Set(config.KeyfileKey, v)
	}
	if v := ctx.String("mobilecoind-rpc"); v != "" {
		config.Set(config.MobilecoindRPCAddrKey, v)
	}
	if v := ctx.String("deqs-rpc"); v != "" {
		config.Set(config.DeqsRPCAddrKey, v)
	}
	if err := config.Validate(); err != nil {
		return err
	}
	log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))

	accountKey, err := keyfile.ReadFile(config.GetString(config.KeyfileKey))
	if err != nil {
		return err
	}

	mcdSvc, err := mobilecoindclient.NewService(mobilecoindclient.Opts{
		RPCAddress: config.GetString(config.MobilecoindRPCAddrKey),
		AccountKey: accountKey,
	})
	if err != nil {
		return err
	}
	defer mcdSvc.Close()

	var quoteSource ports.QuoteSource
	if addr := config.GetString(config.DeqsRPCAddrKey); addr != "" {
		deqsSvc, err := deqsclient.NewService(addr)
		if err != nil {
			return err
		}
		defer deqsSvc.Close()
		quoteSource = deqsSvc
	} else {
		log.Debug("no deqs address configured, swaps are disabled")
	}

	session, err := application.NewSessionController(application.SessionOpts{
		AccountKey:           accountKey,
		View:                 mcdSvc,
		Signer:               mcdSvc,
		QuoteSource:          quoteSource,
		Tokens:               domain.DefaultTokens(),
		PollInterval:         config.GetMillis(config.PollIntervalKey),
		QuoteRefreshInterval: config.GetMillis(config.QuoteRefreshIntervalKey),
		CallTimeout:          config.GetMillis(config.CallTimeoutKey),
		SubmitTimeout:        config.GetSeconds(config.SubmitTimeoutKey),
		ErrorQueueSize:       config.GetInt(config.ErrorQueueSizeKey),
	})
	if err != nil {
		return err
	}

	startCtx, cancel := context.WithTimeout(
		context.Background(), config.GetSeconds(config.StartTimeoutKey),
	)
	defer cancel()
	if err := session.Start(startCtx); err != nil {
		return err
	}
	defer session.Stop()

	statsCtx, stopStats := context.WithCancel(context.Background())
	defer stopStats()
	stats.EnableSessionStatistics(
		statsCtx, config.GetSeconds(config.StatsIntervalKey),
		func() string {
			synced, total := session.SyncProgress()
			return fmt.Sprintf(
				"session stats: state=%s synced=%d/%d balances=%v pending=%d",
				session.State(), synced, total,
				session.Balances(), len(session.PendingTransactions()),
			)
		},
	)

	log.Infof("session started, public address %s", session.PublicAddress())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	<-sigChan

	log.Debug("exiting")
	return nil
}
