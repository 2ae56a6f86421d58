package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"max.ks1230/budget-ledger/internal/clients/console"
	"max.ks1230/budget-ledger/internal/clients/tracing"
	"max.ks1230/budget-ledger/internal/config"
	"max.ks1230/budget-ledger/internal/logger"
	"max.ks1230/budget-ledger/internal/model/alert"
	"max.ks1230/budget-ledger/internal/model/command"
	"max.ks1230/budget-ledger/internal/model/ledger"
	"max.ks1230/budget-ledger/internal/model/messages"
	"max.ks1230/budget-ledger/internal/model/rates"
	"max.ks1230/budget-ledger/internal/model/tracker"
)

func main() {
	defer logger.Sync()
	logger.Info("Tracker init - start")

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	closer, err := tracing.Init(conf.Tracing())
	if err != nil {
		logger.Fatal("failed to init tracing:", zap.Error(err))
	}
	defer func() {
		if err := closer.Close(); err != nil {
			logger.Error("failed to close tracer", zap.Error(err))
		}
	}()

	if conf.Metrics().Enabled() {
		go serveMetrics(conf.Metrics().Addr())
	}

	// the one ledger of this process
	budgetLedger := ledger.New()
	budgetLedger.RegisterObserver(alert.New(alert.LogSink{}))

	client := console.New(os.Stdin, os.Stdout)
	budgetLedger.RegisterObserver(alert.New(replySink{client}))

	rateSource := rates.NewStaticSourceFromConfig(conf.Rates())
	converter := rates.NewConverter(rateSource)
	budgetTracker := tracker.New(converter, budgetLedger, command.NewHistory(budgetLedger), conf.App().BaseCurrency())
	if budget := conf.App().Budget(); budget != 0 {
		budgetTracker.SetBudget(budget)
	}

	msgService := messages.NewService(client, budgetTracker, rateSource)

	logger.Info("Tracker init - end")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err = client.ListenUpdates(ctx, msgService); err != nil {
		logger.Error("stopped listening", zap.Error(err))
	}
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	logger.Info("metrics listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("metrics server stopped", zap.Error(err))
	}
}

// replySink shows budget alerts to the user next to the command replies.
type replySink struct {
	client *console.Client
}

func (s replySink) Notify(signal alert.Signal, _, _ float64) {
	_ = s.client.SendMessage(signal.Message())
}
