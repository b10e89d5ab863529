package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ShariqueMemon11/Ai-chatbot/internal/app"
	"github.com/ShariqueMemon11/Ai-chatbot/internal/chat"
	"github.com/ShariqueMemon11/Ai-chatbot/internal/infra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("❌ Fatal error", slog.Any("error", err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "chatbot",
		Short: "A learning chatbot with live cryptocurrency data",
		Long: `An interactive chatbot that answers questions from a persisted knowledge
base, learns new answers when it cannot match, and fetches live coin data
with a cached fallback when the market API is unreachable.`,
		SilenceUsage: true,
		RunE:         runChat,
	}

	root.AddCommand(newAskCmd())
	root.AddCommand(newCoinCmd())
	return root
}

// withBootstrap initializes the system, runs fn, and releases resources.
func withBootstrap(fn func(ctx context.Context, b *app.Bootstrap) error) error {
	b := app.NewBootstrap()
	if err := b.Initialize(); err != nil {
		return err
	}
	defer b.Shutdown()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return fn(ctx, b)
}

func runChat(cmd *cobra.Command, args []string) error {
	return withBootstrap(func(ctx context.Context, b *app.Bootstrap) error {
		infra.PrintBanner(b.Config, b.Store.Path())

		session := chat.NewSession(b.Document, b.Store, b.Market,
			b.Config.Matching.Cutoff, os.Stdin, os.Stdout)
		err := session.Run(ctx)
		if errors.Is(err, context.Canceled) {
			fmt.Println()
			return nil
		}
		return err
	})
}

func newAskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question>",
		Short: "Answer a single question from the knowledge base",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBootstrap(func(ctx context.Context, b *app.Bootstrap) error {
				question := strings.Join(args, " ")
				session := chat.NewSession(b.Document, b.Store, b.Market,
					b.Config.Matching.Cutoff, os.Stdin, os.Stdout)

				if answer, ok := session.AnswerTo(question); ok {
					fmt.Printf("Bot: %s\n", answer)
				} else {
					fmt.Println("Bot: I don't know the answer to that yet.")
				}
				return nil
			})
		},
	}
}

func newCoinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "coin <name>",
		Short: "Fetch one coin's market data, falling back to the cache",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBootstrap(func(ctx context.Context, b *app.Bootstrap) error {
				name := strings.Join(args, " ")
				session := chat.NewSession(b.Document, b.Store, b.Market,
					b.Config.Matching.Cutoff, os.Stdin, os.Stdout)
				session.HandleAsset(ctx, name)
				return nil
			})
		},
	}
}
