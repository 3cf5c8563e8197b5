package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/codex-k8s/purchase-chain/configs"
	"github.com/codex-k8s/purchase-chain/internal/audit"
	"github.com/codex-k8s/purchase-chain/internal/config"
	"github.com/codex-k8s/purchase-chain/internal/dsl"
	"github.com/codex-k8s/purchase-chain/internal/log"
	"github.com/codex-k8s/purchase-chain/internal/purchase"
	"github.com/codex-k8s/purchase-chain/internal/runtime"
	"github.com/codex-k8s/purchase-chain/internal/templates"
)

func main() {
	embeddedConfig := flag.String("embedded-config", "", "Use embedded chain definition from configs/ (filename)")
	listEmbedded := flag.Bool("list-embedded", false, "List embedded chain definitions and exit")
	amount := flag.Float64("amount", 0, "Purchase amount to dispatch")
	number := flag.Int64("number", 0, "Purchase order number")
	purpose := flag.String("purpose", "", "Purchase purpose")
	flag.Parse()

	if *listEmbedded {
		for _, name := range configs.Names() {
			fmt.Println(name)
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := log.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	var chainCfg *dsl.Config
	if *embeddedConfig != "" {
		raw, err := configs.Load(*embeddedConfig)
		if err != nil {
			logger.Error("load embedded config failed", "error", err)
			os.Exit(1)
		}
		chainCfg, err = dsl.Load(raw)
		if err != nil {
			logger.Error("parse config failed", "error", err)
			os.Exit(1)
		}
	} else {
		chainCfg, err = dsl.LoadFile(cfg.ConfigPath)
		if err != nil {
			logger.Error("parse config failed", "path", cfg.ConfigPath, "error", err)
			os.Exit(1)
		}
	}

	templateBundle, err := templates.Load(cfg.Lang)
	if err != nil {
		logger.Error("load templates failed", "error", err)
		os.Exit(1)
	}

	head, err := runtime.Builder{Logger: logger}.Build(chainCfg)
	if err != nil {
		logger.Error("build chain failed", "error", err)
		os.Exit(1)
	}

	service := runtime.Service{
		Head:     head,
		Logger:   logger,
		Audit:    audit.New(logger),
		Reporter: audit.NewReporter(logger, templateBundle),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Warn("shutdown requested", "signal", sig.String())
		cancel()
	}()

	requests := make([]purchase.Request, 0, len(chainCfg.Requests)+1)
	if isFlagSet("amount") {
		requests = append(requests, purchase.NewRequest(*amount, *number, *purpose))
	} else {
		for _, item := range chainCfg.Requests {
			requests = append(requests, purchase.NewRequest(item.Amount, item.Number, item.Purpose))
		}
	}
	if len(requests) == 0 {
		logger.Warn("no purchase requests to dispatch")
		return
	}

	encoder := json.NewEncoder(os.Stdout)
	for _, req := range requests {
		if ctx.Err() != nil {
			logger.Warn("dispatch cancelled", "pending_number", req.Number())
			break
		}
		resp := service.Process(ctx, req)
		if err := encoder.Encode(resp); err != nil {
			logger.Error("write response failed", "error", err)
			os.Exit(1)
		}
	}
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
