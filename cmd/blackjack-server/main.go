package main

import (
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/blackjack-odds/internal/server"
)

type CLI struct {
	Config  string `short:"c" help:"Path to HCL config file" default:"blackjack-server.hcl"`
	Addr    string `help:"Override listen address (host:port)"`
	Verbose bool   `short:"v" help:"Verbose logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	config, err := server.LoadConfig(cli.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		ctx.Exit(1)
	}

	level := parseLevel(config.Server.LogLevel)
	if cli.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	if cli.Addr != "" {
		host, portStr, err := net.SplitHostPort(cli.Addr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid --addr %q: %v\n", cli.Addr, err)
			ctx.Exit(1)
		}
		port, err := strconv.Atoi(portStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid --addr port %q: %v\n", portStr, err)
			ctx.Exit(1)
		}
		config.Server.Address = host
		config.Server.Port = port
	}

	srv := server.New(config, logger)
	if err := srv.Start(); err != nil {
		logger.Fatal("server stopped", "error", err)
	}
}

func parseLevel(s string) log.Level {
	switch s {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
