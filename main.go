package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	config "github.com/drummonds/goOrders/config"
	engine "github.com/drummonds/goOrders/engine"
	"github.com/drummonds/goOrders/router"
	"github.com/drummonds/goOrders/webapp"
)

// Logger is global since we will need it everywhere
var Logger *slog.Logger

// injectGlobals injects all of our globals into their packages
func injectGlobals(logger *slog.Logger) {
	Logger = logger
	config.Logger = Logger
	router.Logger = Logger
	engine.Logger = Logger
	webapp.Logger = Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configFile string
	var v *viper.Viper

	rootCmd := &cobra.Command{
		Use:          "goOrders",
		Short:        "Orders web app and the server that ships it",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			v = config.NewViper(configFile)
			bindFlags(cmd, v)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default config/serverConfig.toml or ./serverConfig.toml)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the app shell for every declared route",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, v)
		},
	}
	serveCmd.Flags().String("addr", "", "address to bind, empty for all")
	serveCmd.Flags().StringP("port", "p", "", "port to listen on")

	routesCmd := &cobra.Command{
		Use:   "routes",
		Short: "Print the route table",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := webapp.NewRouter(router.MemoryHistory)
			if err != nil {
				return err
			}
			return printRoutes(cmd, rt)
		},
	}

	rootCmd.AddCommand(serveCmd, routesCmd)
	return rootCmd
}

// bindFlags lets command line flags override the config file
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	flagKeys := map[string]string{
		"addr": "serverConfig.ServerAddr",
		"port": "serverConfig.ServerPort",
	}
	for flagName, key := range flagKeys {
		if f := cmd.Flags().Lookup(flagName); f != nil && f.Changed {
			v.Set(key, f.Value.String())
		}
	}
}

func printRoutes(cmd *cobra.Command, rt *router.Router) error {
	out := cmd.OutOrStdout()
	for _, route := range rt.Routes() {
		name := route.Name
		if name == "" {
			name = "-"
		}
		target := "page"
		if route.IsRedirect() {
			target = "redirect -> " + route.Redirect
		}
		if _, err := fmt.Fprintf(out, "%-16s %-18s %s\n", route.Path, name, target); err != nil {
			return err
		}
	}
	return nil
}

func serve(ctx context.Context, v *viper.Viper) error {
	serverConfig, logger, err := config.SetupServer(v)
	if err != nil {
		return err
	}
	injectGlobals(logger) //inject the logger into all of the packages

	rt, err := webapp.NewRouter(serverConfig.HistoryMode)
	if err != nil {
		Logger.Error("Invalid route table", "error", err)
		return err
	}
	// registers the routes so the shell can prerender every page
	if _, err := webapp.Start(webapp.NewApp, rt, serverConfig.MountTarget); err != nil {
		Logger.Error("Unable to start app", "error", err)
		return err
	}

	Logger.Info("Setting up go-app WASM UI")
	appHandler := webapp.Handler(webapp.HandlerConfig{
		Name:        serverConfig.Name,
		Title:       serverConfig.Title,
		Description: serverConfig.Description,
	})

	e := engine.NewServer(serverConfig, rt, appHandler)
	Logger.Info("Starting HTTP server", "address", serverConfig.Addr())
	return engine.Run(ctx, e, serverConfig)
}
