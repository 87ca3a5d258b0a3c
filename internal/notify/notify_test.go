package notify

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func sampleRequest() RestockRequest {
	return RestockRequest{
		SupplierEmail: "orders@supplier.test",
		ProductName:   "Paracetamol",
		Brand:         "Panadol",
		Quantity:      50,
		UnitPrice:     decimal.RequireFromString("5"),
		RequestedBy:   "Mr. Boss",
	}
}

func TestSMTPNotifier_SendsMail(t *testing.T) {
	var (
		gotAddr string
		gotTo   []string
		gotMsg  string
		gotAuth smtp.Auth
	)
	n := NewSMTPNotifier(SMTPConfig{Server: "smtp.test", Port: "587", User: "u", Password: "p", From: "pharmacy@test"}, zap.NewNop())
	n.sendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotAuth, gotTo, gotMsg = addr, a, to, string(msg)
		return nil
	}

	msg, err := n.NotifyRestock(context.Background(), sampleRequest())
	if err != nil {
		t.Fatalf("NotifyRestock failed: %v", err)
	}
	if msg != "Email sent to orders@supplier.test" {
		t.Errorf("unexpected message %q", msg)
	}
	if gotAddr != "smtp.test:587" {
		t.Errorf("unexpected addr %q", gotAddr)
	}
	if gotAuth == nil {
		t.Error("expected plain auth")
	}
	if len(gotTo) != 1 || gotTo[0] != "orders@supplier.test" {
		t.Errorf("unexpected recipients %v", gotTo)
	}
	for _, want := range []string{"Subject: Order Request: Paracetamol", "Quantity: 50", "Target unit price: 5.00", "Mr. Boss"} {
		if !strings.Contains(gotMsg, want) {
			t.Errorf("message missing %q:\n%s", want, gotMsg)
		}
	}
}

func TestSMTPNotifier_Failure(t *testing.T) {
	n := NewSMTPNotifier(SMTPConfig{Server: "smtp.test", Port: "25", From: "pharmacy@test", AuthDisabled: true}, zap.NewNop())
	relayErr := errors.New("relay refused")
	n.sendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		if a != nil {
			t.Error("expected no auth when disabled")
		}
		return relayErr
	}

	if _, err := n.NotifyRestock(context.Background(), sampleRequest()); !errors.Is(err, relayErr) {
		t.Fatalf("expected relay error, got %v", err)
	}
}

func TestNotifiers_RequireRecipient(t *testing.T) {
	req := sampleRequest()
	req.SupplierEmail = " "

	for name, n := range map[string]SupplierNotifier{
		"smtp": NewSMTPNotifier(SMTPConfig{Server: "smtp.test", Port: "25", From: "a@b"}, zap.NewNop()),
		"mock": NewMockNotifier(zap.NewNop()),
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := n.NotifyRestock(context.Background(), req); !errors.Is(err, ErrMissingRecipient) {
				t.Errorf("expected ErrMissingRecipient, got %v", err)
			}
		})
	}
}

func TestNew_FallsBackToMock(t *testing.T) {
	if _, ok := New(SMTPConfig{}, zap.NewNop()).(*MockNotifier); !ok {
		t.Error("expected mock notifier without SMTP settings")
	}
	if _, ok := New(SMTPConfig{Server: "smtp.test", From: "a@b"}, zap.NewNop()).(*SMTPNotifier); !ok {
		t.Error("expected SMTP notifier with SMTP settings")
	}

	msg, err := NewMockNotifier(zap.NewNop()).NotifyRestock(context.Background(), sampleRequest())
	if err != nil || !strings.Contains(msg, "mock") {
		t.Errorf("unexpected mock result %q, %v", msg, err)
	}
}
