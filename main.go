package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	dispatcherx "github.com/suriyasingaravel/BotDesk/agent/agents/dispatcher"
	handlerx "github.com/suriyasingaravel/BotDesk/agent/agents/handler"
	contractx "github.com/suriyasingaravel/BotDesk/agent/contract"
	llmx "github.com/suriyasingaravel/BotDesk/agent/llm"
	orderx "github.com/suriyasingaravel/BotDesk/agent/order"
	sessionx "github.com/suriyasingaravel/BotDesk/agent/session"
	configx "github.com/suriyasingaravel/BotDesk/pkg/config"
	_ "github.com/suriyasingaravel/BotDesk/pkg/logger/autoload"
)

type AppConfig struct {
	// OrderStoreDSN switches the order book to Postgres when set; the demo
	// defaults to the built-in in-memory order book.
	OrderStoreDSN string `envconfig:"ORDER_STORE_DSN" split_words:"true"`
	DefaultEmail  string `envconfig:"DEFAULT_EMAIL" split_words:"true" default:"john@example.com"`
}

func main() {
	appCfg := configx.MustNew[AppConfig]("BOTDESK")
	llmCfg := configx.MustNew[llmx.Config]("OPENAI")

	stdin := bufio.NewScanner(os.Stdin)

	// The credential is acquired exactly once: from the environment, or one
	// interactive prompt. Without it nothing runs.
	if strings.TrimSpace(llmCfg.APIKey) == "" {
		fmt.Print("Enter your OpenAI API key: ")
		llmCfg.APIKey = readSecret(stdin)
	}
	if strings.TrimSpace(llmCfg.APIKey) == "" {
		log.Fatal().Msg("an OpenAI API key is required")
	}

	store, cleanup := buildOrderStore(*appCfg)
	defer cleanup()

	registry, err := handlerx.NewRegistry(*llmCfg, store)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build handler registry")
	}

	disp, err := dispatcherx.New(registry, sessionx.NewLog())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build dispatcher")
	}

	runChat(stdin, disp, appCfg.DefaultEmail)
}

// readSecret reads one line without echoing it when stdin is a terminal, so
// the credential never lands on screen. Piped input falls back to a plain
// line read.
func readSecret(stdin *bufio.Scanner) string {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return ""
		}
		return strings.TrimSpace(string(raw))
	}
	if stdin.Scan() {
		return strings.TrimSpace(stdin.Text())
	}
	return ""
}

func buildOrderStore(cfg AppConfig) (orderx.Store, func()) {
	dsn := strings.TrimSpace(cfg.OrderStoreDSN)
	if dsn == "" {
		return orderx.NewMemoryStore(), func() {}
	}

	store, err := orderx.NewPostgresStore(orderx.PostgresConfig{DSN: dsn})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open postgres order store")
	}
	if err := store.Seed(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("failed to seed postgres order store")
	}
	return store, func() {
		if err := store.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close postgres order store")
		}
	}
}

func runChat(stdin *bufio.Scanner, disp *dispatcherx.Dispatcher, email string) {
	fmt.Println("BotDesk AI Support")
	fmt.Println("Ask about your order, refunds, or returns.")
	fmt.Println("Sample emails: john@example.com, alice@example.com, bob@example.com, sara@example.com")
	fmt.Println("Commands: /email <address>, /reset, /quit")
	fmt.Println()

	for {
		fmt.Printf("[%s] > ", email)
		if !stdin.Scan() {
			return
		}
		line := strings.TrimSpace(stdin.Text())
		if line == "" {
			continue
		}

		switch {
		case line == "/quit":
			return
		case line == "/reset":
			disp.Log().Reset()
			fmt.Println("Chat cleared.")
			continue
		case strings.HasPrefix(line, "/email"):
			next := strings.TrimSpace(strings.TrimPrefix(line, "/email"))
			if next == "" {
				fmt.Println("Usage: /email <address>")
				continue
			}
			email = next
			continue
		}

		category, reply, err := disp.Process(context.Background(), email, line)
		if err != nil {
			if errors.Is(err, contractx.ErrGeneration) {
				fmt.Println("The support assistant is temporarily unavailable. Please try again in a moment.")
			} else {
				fmt.Printf("Could not handle that request: %v\n", err)
			}
			continue
		}

		fmt.Printf("Assigned to: %s\n", category.Display())
		fmt.Printf("%s: %s\n\n", category.Display(), reply)
	}
}
