package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/teamup-uiuc/teamup-cli/internal/client/controllers"
)

// Notifications lists the pending join requests received on the user's
// posts, plus the user's own outgoing requests.
func (a *App) Notifications(ctx context.Context) error {
	if err := a.ensureSession(ctx); err != nil {
		printlnFn("Please sign in first.")
		return err
	}

	page := controllers.NewNotifications(a.api, a.log, a.user)
	page.Load(ctx)

	if msg := page.Err(); msg != "" {
		printlnFn(msg)
		return nil
	}

	printlnFn(fmt.Sprintf("Pending requests (%d):", len(page.Pending())))
	for _, r := range page.Pending() {
		printlnFn(fmt.Sprintf("  [%d] %s wants to join %q: %s", r.RequestID, orDash(r.SenderName), r.PostTitle, r.Message))
	}
	if len(page.Pending()) == 0 {
		printlnFn("  (none)")
	}

	if out := page.Outgoing(); len(out) > 0 {
		printlnFn("Your requests:")
		for _, r := range out {
			printlnFn(fmt.Sprintf("  [%d] %q: %s", r.RequestID, r.PostTitle, r.Status))
		}
	}
	return nil
}

// Accept accepts a received join request by id.
func (a *App) Accept(ctx context.Context, arg string) error {
	requestID, err := parseID(arg)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	if err := a.ensureSession(ctx); err != nil {
		printlnFn("Please sign in first.")
		return err
	}

	page := controllers.NewNotifications(a.api, a.log, a.user)
	if err := page.Accept(ctx, requestID); err != nil {
		printlnFn("Failed to accept request:", err.Error())
		return err
	}
	printlnFn("Request accepted.")
	return nil
}

// Reject rejects a received join request by id, with an optional reason.
func (a *App) Reject(ctx context.Context, arg string) error {
	requestID, err := parseID(arg)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	if err := a.ensureSession(ctx); err != nil {
		printlnFn("Please sign in first.")
		return err
	}

	reason, err := getSimpleText(a.reader, "Reason (optional)", os.Stdout)
	if err != nil {
		return err
	}

	page := controllers.NewNotifications(a.api, a.log, a.user)
	if err := page.Reject(ctx, requestID, reason); err != nil {
		printlnFn("Failed to reject request:", err.Error())
		return err
	}
	printlnFn("Request rejected.")
	return nil
}
