package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"tienda-live/client"
	"tienda-live/domain"
	"tienda-live/domain/event"
	"time"

	"github.com/Netflix/go-env"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes for the listener.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

type Config struct {
	ServerURL string `env:"TIENDA_WS_URL,default=ws://localhost:3001/ws"`
	StoreID   string `env:"TIENDA_ID,required=true"`
	Order     string `env:"TIENDA_ORDER"`
	Customer  bool   `env:"TIENDA_CUSTOMER,default=false"`
	Admin     bool   `env:"TIENDA_ADMIN,default=true"`
	LogLevel  string `env:"LOG_LEVEL,default=INFO"`
}

var (
	statusStyle = map[client.State]color.Style{
		client.Connected:    color.New(color.FgGreen, color.OpBold),
		client.Connecting:   color.New(color.FgYellow),
		client.Disconnected: color.New(color.FgGray),
		client.Failed:       color.New(color.FgRed, color.OpBold),
	}
	eventStyle = color.New(color.FgCyan, color.OpBold)
)

var listened = []string{
	event.NewOrder,
	event.OrderUpdated,
	event.ConfigUpdated,
	event.PromotionCreated,
	event.PromotionUpdated,
	event.PromotionDeleted,
	event.CustomNotification,
	event.DiscountCodeUsed,
	event.ReviewSubmitted,
	event.SubscriptionConfirmed,
	event.Error,
}

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Listener error: %v\n", err)
	}
	os.Exit(code)
}

// run keeps one store joined and prints every notification until Ctrl+C or a terminal failure.
func run() (int, error) {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	failed := make(chan error, 1)
	render := func(state client.State, err error) {
		line := fmt.Sprintf("● %s", state)
		if err != nil {
			line += fmt.Sprintf(" (%v)", err)
		}
		statusStyle[state].Println(line)
		if state == client.Failed {
			select {
			case failed <- err:
			default:
			}
		}
	}

	manager := client.NewManager(log,
		client.NewWebsocketDialer(config.ServerURL, nil, 5*time.Second),
		client.DefaultOptions(), render)

	for _, name := range listened {
		manager.On(name, func(data json.RawMessage) {
			fmt.Printf("%s %s %s\n", time.Now().Format(time.TimeOnly), eventStyle.Render(name), string(data))
		})
	}

	storeID := domain.StoreID(config.StoreID)
	if config.Customer {
		manager.On(event.ConnectionStatus, func(json.RawMessage) {
			if err := manager.Emit(event.JoinStoreCustomers, config.StoreID); err != nil {
				log.Warn("Customer subscription failed", "error", err)
			}
		})
	} else if config.Admin {
		if err := manager.JoinStoreAdmin(storeID); err != nil {
			return exitRuntime, err
		}
	} else if err := manager.JoinStore(storeID); err != nil {
		return exitRuntime, err
	}
	if config.Order != "" {
		if err := manager.JoinOrder(config.Order); err != nil {
			return exitRuntime, err
		}
	}

	manager.Connect(ctx)
	defer manager.Disconnect()

	select {
	case <-ctx.Done():
		log.Info("Stopping listener...")
		return exitOK, nil
	case err := <-failed:
		return exitRuntime, err
	}
}
