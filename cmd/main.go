package main

import (
	"chat-client/cli"
	"chat-client/commands"
	"chat-client/domain/event"
	"chat-client/errors"
	"chat-client/handlers"
	"chat-client/infrastructure/tcp"
	"chat-client/internal"
	"chat-client/runtime"
	"chat-client/services"
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the shell.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Chat client terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run assembles one Config, one EventBus and one Session and hands them to the terminal UI.
// Keeping it separate from main lets every defer run before the process exits.
func run() (int, error) {
	// 1. Configuration & Logger
	config, err := internal.Load()
	if err != nil {
		return exitConfig, err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Event bus and its technical subscribers
	bus := runtime.NewEventBus(log)
	counter := event.NewCounter()
	countingHandler := event.NewCountingHandler(counter)
	for _, t := range commands.StatsTypes(cli.RenderedTypes) {
		bus.Subscribe(t, countingHandler)
	}
	bus.Subscribe(event.RestartedAfterPanicType, event.NewWorkerRestartedAfterPanicHandler(log, counter))
	bus.Subscribe(event.NewChatMessageType, event.NewLatencyHandler(log, config.LatencyThreshold))

	// 3. Inbound message routing
	dispatcher := runtime.NewDispatcher(log, bus)
	handlers.Register(dispatcher, log, bus)

	// 4. Session
	session := services.NewSession(
		log, bus,
		tcp.NewTransport(log, config.DialTimeout, config.MaxFrameSize),
		dispatcher,
		services.NewFileUploader(log, config.ChunkSize),
		services.SessionConfig{
			Host:            config.ServerHost,
			Port:            config.ServerPort,
			ShutdownTimeout: config.ShutdownTimeout,
			RestartDelay:    config.RestartDelay,
		},
	)

	// 5. Terminal UI
	renderer := cli.NewRenderer(os.Stdout, config.DebugMode, config.Colours)
	for _, t := range cli.RenderedTypes {
		bus.Subscribe(t, renderer)
	}
	router := commands.NewDefaultRouter(log, bus, counter)
	app := cli.NewApp(log, bus, session, router, renderer, os.Stdin, cli.AppConfig{
		ConnectTimeout:   config.ConnectTimeout,
		LoginTimeout:     config.LoginTimeout,
		MaxLoginAttempts: config.MaxLoginAttempts,
		Nickname:         config.Nickname,
	})

	// 6. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Debug("Starting chat client", "address", config.Address(), "debug", config.DebugMode)
	if err := app.Run(ctx); err != nil {
		// The renderer already told the user what happened.
		if stderrors.Is(err, errors.ErrConnectionFailed) || stderrors.Is(err, errors.ErrLoginFailed) {
			return exitRuntime, nil
		}
		return exitRuntime, err
	}
	return exitOK, nil
}
