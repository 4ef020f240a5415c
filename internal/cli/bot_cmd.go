package cli

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newBotCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Run the Discord bot until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.NewBot == nil {
				return errors.New("discord bot is not configured")
			}

			bot, err := app.NewBot()
			if err != nil {
				return fmt.Errorf("failed to create Discord bot: %w", err)
			}

			if err := bot.Start(); err != nil {
				return fmt.Errorf("failed to start Discord bot: %w", err)
			}

			// Wait for interrupt signal to gracefully shutdown
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			<-ctx.Done()

			if err := bot.Stop(); err != nil {
				log.Printf("Error stopping bot: %v", err)
			}

			log.Println("Bot has been shut down")
			return nil
		},
	}
}
