package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang-netman/internal/adapter/infrastructure/dhcp"
	"golang-netman/internal/adapter/infrastructure/file"
	"golang-netman/internal/adapter/infrastructure/network"
	"golang-netman/internal/adapter/infrastructure/system"
	"golang-netman/internal/adapter/monitor"
	"golang-netman/internal/adapter/netif"
	"golang-netman/internal/adapter/store"
	"golang-netman/internal/api"
	"golang-netman/internal/netman"
	"golang-netman/internal/pkg/config"
	"golang-netman/internal/pkg/logging"

	"github.com/spf13/cobra"
)

var (
	configFlag string
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Manage the configured network interface until shutdown",
	Run: func(cmd *cobra.Command, args []string) {
		// Load and validate configuration
		cfg, err := config.Load(configFlag)
		if err != nil {
			fmt.Printf("Config error: %v\n", err)
			return
		}

		if err := cfg.Validate(); err != nil {
			fmt.Printf("Config validation error: %v\n", err)
			return
		}

		// Initialize logging
		logging.InitLogger(cfg.Logging)

		logger := logging.GetLogger()
		logger.WithField("config_file", configFlag).Info("Starting daemon")

		// Create context for graceful shutdown
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			sig := <-sigChan
			logger.WithField("signal", sig.String()).Info("Received shutdown signal")
			cancel()
		}()

		// Open the durable configuration store
		kv, err := store.Open(cfg.Store.Path)
		if err != nil {
			logger.WithField("path", cfg.Store.Path).WithError(err).Error("Failed to open configuration store")
			return
		}
		defer kv.Close()

		// Create shared infrastructure adapters
		networkMgr := network.NewManagerAdapter()
		fileMgr := file.NewManagerAdapter()
		systemMgr := system.NewManagerAdapter()
		dhcpClient := dhcp.NewClientAdapter()

		controller := netif.NewController(cfg.Interface, dhcpClient, networkMgr, fileMgr, systemMgr)
		linkMonitor := monitor.NewNetlinkMonitor(cfg.Interface)

		manager := netman.NewManager(kv, controller, linkMonitor, cfg.Events.Buffer)
		if err := manager.Init(ctx); err != nil {
			logger.WithField("interface", cfg.Interface).WithError(err).Error("Failed to initialize network manager")
			return
		}

		if cfg.Hostname != "" {
			if err := manager.SetHostname(ctx, cfg.Hostname); err != nil {
				logger.WithField("hostname", cfg.Hostname).WithError(err).Warn("Failed to apply configured hostname")
			}
		}

		// Serve the REST API alongside interface management
		var apiServer *api.Server
		if cfg.API.Enabled {
			apiServer = api.NewServer(cfg.API.Listen, manager)
			go func() {
				if err := apiServer.Start(); err != nil {
					logger.WithError(err).Error("API server failed")
					cancel()
				}
			}()
		}

		<-ctx.Done()

		if apiServer != nil {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
			if err := apiServer.Stop(shutdownCtx); err != nil {
				logger.WithError(err).Warn("API server shutdown failed")
			}
			shutdownCancel()
		}

		if err := manager.Close(); err != nil {
			logger.WithError(err).Warn("Network manager shutdown failed")
		}

		logger.Info("Daemon stopped")
	},
}

func init() {
	serveCmd.Flags().StringVarP(&configFlag, "config", "f", "", "Path to config file (YAML)")
	if err := serveCmd.MarkFlagRequired("config"); err != nil {
		panic(err) // This should never happen during initialization
	}
	rootCmd.AddCommand(serveCmd)
}
