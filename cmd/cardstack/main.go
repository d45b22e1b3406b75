package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cardstack/internal/config"
	"cardstack/internal/domain"
	"cardstack/internal/handler"
	"cardstack/internal/lifecycle"
	"cardstack/internal/repository"
	"cardstack/internal/scheduler"
	"cardstack/internal/service"
	"cardstack/internal/storage"
	"cardstack/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	headless := flag.Bool("headless", false, "run the countdown and bot without the terminal UI")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// The terminal UI owns stdout, so logs go to a file unless headless
	logger, err := newLogger(cfg, !*headless)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting cardstack",
		zap.String("store", cfg.StoreDriver),
		zap.Bool("headless", *headless),
	)

	store, err := storage.Open(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to open store", zap.Error(err))
	}
	defer store.Close()

	// Initialize services
	session := service.NewSessionController(service.NewCardStore(store.KV, logger), cfg.TimeBudget, logger)
	editor := service.NewEditService(store.KV, logger)
	bridge := service.NewEditBridge(session, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Lifecycle signals from the terminal, the bot and the OS all reach the session through the bus
	bus := lifecycle.NewBus(logger)
	defer session.Listen(bus)()
	go lifecycle.WatchOS(ctx, bus)

	ticker := scheduler.New(cfg.TickInterval, session.Tick, logger)
	if err := ticker.Start(); err != nil {
		logger.Fatal("Failed to start tick source", zap.Error(err))
	}
	defer ticker.Stop()

	if cfg.BotEnabled() {
		bot, err := startBot(cfg, store.KV, session, editor, bridge, bus, logger)
		if err != nil {
			logger.Fatal("Failed to start bot", zap.Error(err))
		}
		defer bot.Stop()
	}

	if *headless {
		waitForShutdown(logger)
		return
	}

	if err := runTUI(cfg, session, editor, bridge, bus, logger); err != nil {
		logger.Error("Terminal UI exited with error", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
	}

	logger.Info("cardstack stopped")
}

// newLogger builds a production logger at the configured level
func newLogger(cfg *config.Config, toFile bool) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	zc.Level = level
	if toFile {
		zc.OutputPaths = []string{cfg.LogFile}
		zc.ErrorOutputPaths = []string{cfg.LogFile}
	}
	return zc.Build()
}

// startBot creates the Telegram surface and starts polling in the background
func startBot(
	cfg *config.Config,
	kv repository.KVStore,
	session *service.SessionController,
	editor *service.EditService,
	bridge *service.EditBridge,
	bus *lifecycle.Bus,
	logger *zap.Logger,
) (*tele.Bot, error) {
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	authService := service.NewAuthService(kv, cfg.BotPassword)
	h := handler.NewHandler(bot, authService, session, editor, bridge, bus, logger)
	h.RegisterHandlers()

	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	return bot, nil
}

// runTUI blocks until the terminal UI quits
func runTUI(
	cfg *config.Config,
	session *service.SessionController,
	editor *service.EditService,
	bridge *service.EditBridge,
	bus *lifecycle.Bus,
	logger *zap.Logger,
) error {
	model := tui.NewModel(session, editor, bridge, bus, tui.Options{
		DifferentiateWithoutColor: cfg.Accessibility.DifferentiateWithoutColor,
		AccessibilityEnabled:      cfg.Accessibility.Enabled,
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)

	// Observers must not block: Send waits for the program loop
	unsubscribe := session.Subscribe(func(domain.SessionState) {
		go p.Send(tui.StateChangedMsg{})
	})
	defer unsubscribe()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGTERM)
		defer signal.Stop(sigChan)
		<-sigChan
		logger.Info("Shutdown signal received, quitting UI")
		p.Quit()
	}()

	_, err := p.Run()
	return err
}

// waitForShutdown blocks until SIGINT or SIGTERM
func waitForShutdown(logger *zap.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping...")
}
