// Command mbus-demo wires a few subscribers to a messenger and publishes
// envelope messages through it, logging each delivery.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/glimte/mbus-go/contracts"
	"github.com/glimte/mbus-go/messaging"
)

type orderPlaced struct {
	ID     int
	Amount float64
}

type inventoryView struct {
	seen int
}

type billingView struct {
	total float64
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	m := messaging.NewMessenger(messaging.WithLogger(logger))

	inventory := &inventoryView{}
	billing := &billingView{}

	err := messaging.Subscribe(m, inventory, func(v *inventoryView, msg orderPlaced) {
		v.seen++
		logger.Info("inventory saw order", "id", msg.ID, "seen", v.seen)
	})
	if err != nil {
		logger.Error("subscribe failed", "error", err)
		os.Exit(1)
	}

	err = messaging.Subscribe(m, billing, func(v *billingView, msg orderPlaced) {
		v.total += msg.Amount
		logger.Info("billing accumulated order", "id", msg.ID, "total", v.total)
	})
	if err != nil {
		logger.Error("subscribe failed", "error", err)
		os.Exit(1)
	}

	messaging.Publish(m, orderPlaced{ID: 1, Amount: 19.90})
	messaging.Publish(m, orderPlaced{ID: 2, Amount: 5.00})

	// Target only the billing view.
	messaging.Publish(m, orderPlaced{ID: 3, Amount: 12.50}, messaging.WithTarget[*billingView]())

	// Carry a reply callback inside the message payload; the subscriber
	// decides when to execute it.
	confirmations := &confirmationHandler{logger: logger}
	err = messaging.Subscribe(m, confirmations, func(h *confirmationHandler, msg *contracts.CallbackMessage) {
		h.handle(msg)
	})
	if err != nil {
		logger.Error("subscribe failed", "error", err)
		os.Exit(1)
	}

	msg, err := contracts.NewCallbackMessage(nil, "order 3 confirmed?", func(ok bool) {
		logger.Info("publisher got reply", "ok", ok)
	})
	if err != nil {
		logger.Error("building callback message failed", "error", err)
		os.Exit(1)
	}
	messaging.Publish(m, msg)

	stats := m.Stats()
	fmt.Printf("published=%d delivered=%d live=%d\n",
		stats.Published, stats.Delivered, stats.Subscriptions)
}

type confirmationHandler struct {
	logger *slog.Logger
}

func (h *confirmationHandler) handle(msg *contracts.CallbackMessage) {
	h.logger.Info("handling notification", "notification", msg.Notification)
	if _, err := msg.Execute(true); err != nil {
		h.logger.Error("reply failed", "error", err)
	}
}
