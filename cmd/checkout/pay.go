package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pix_checkout/internal/adapter/http/client"
	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/usecase"

	"github.com/spf13/cobra"
)

func payCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pay",
		Short: "Create a PIX charge for a plan and wait for payment",
		RunE:  runPay,
	}

	cmd.Flags().String("plan", "", "Plan id (see `checkout plans`)")
	cmd.Flags().StringSlice("bump", nil, "Order bump ids to add")
	cmd.Flags().Duration("poll-interval", defaultPollInterval, "Status poll interval (CHECKOUT_POLL_INTERVAL)")
	cmd.Flags().Duration("redirect-delay", defaultRedirectDelay, "Pause between payment and redirect (CHECKOUT_REDIRECT_DELAY)")
	cmd.Flags().String("success-url", "", "Page shown after payment (CHECKOUT_SUCCESS_URL)")
	cmd.Flags().String("name", "", "Customer name")
	cmd.Flags().String("email", "", "Customer e-mail")
	cmd.Flags().String("document", "", "Customer CPF")
	cmd.Flags().String("phone", "", "Customer phone")
	_ = cmd.MarkFlagRequired("plan")

	return cmd
}

func runPay(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	planID, _ := cmd.Flags().GetString("plan")
	bumpIDs, _ := cmd.Flags().GetStringSlice("bump")

	var customer entities.Customer
	customer.Name, _ = cmd.Flags().GetString("name")
	customer.Email, _ = cmd.Flags().GetString("email")
	customer.Document, _ = cmd.Flags().GetString("document")
	customer.Phone, _ = cmd.Flags().GetString("phone")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	checkout := usecase.NewCheckoutUseCase(client.NewCheckoutAPIClient(s.APIURL, s.Timeout), s.PollInterval, s.RedirectDelay)
	order, err := checkout.BuildOrder(ctx, planID, bumpIDs)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: R$ %s\n", order.Description(), order.Total().StringFixed(2))

	res, err := checkout.Checkout(ctx, order, customer, newTerminalRenderer(out, s.SuccessURL))
	if err != nil {
		return err
	}
	return payOutcome(ctx, res)
}

func payOutcome(ctx context.Context, res usecase.PollResult) error {
	switch res.State {
	case usecase.PollStatePaid:
		return nil
	case usecase.PollStateNotPaid:
		return fmt.Errorf("payment not completed: %s", res.Record.Status)
	case usecase.PollStateClosed:
		if ctx.Err() != nil {
			return fmt.Errorf("checkout cancelled")
		}
	}
	return fmt.Errorf("checkout ended in state %s", res.State)
}
