package notify

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrMissingRecipient = errors.New("supplier email is required")

// RestockRequest is an order sent to a supplier.
type RestockRequest struct {
	SupplierEmail string
	ProductName   string
	Brand         string
	Quantity      int
	UnitPrice     decimal.Decimal
	RequestedBy   string
}

func (r RestockRequest) Subject() string {
	return "Order Request: " + r.ProductName
}

func (r RestockRequest) Body() string {
	product := r.ProductName
	if r.Brand != "" {
		product += " (" + r.Brand + ")"
	}
	var sb strings.Builder
	sb.WriteString("Dear Supplier,\n\n")
	sb.WriteString("We would like to place an order for the following:\n\n")
	fmt.Fprintf(&sb, "Product: %s\nQuantity: %d\n", product, r.Quantity)
	if r.UnitPrice.IsPositive() {
		fmt.Fprintf(&sb, "Target unit price: %s\n", r.UnitPrice.StringFixed(2))
	}
	sb.WriteString("\nPlease confirm availability and delivery date.\n\n")
	fmt.Fprintf(&sb, "Best regards,\n%s\n", r.RequestedBy)
	return sb.String()
}

type SupplierNotifier interface {
	// NotifyRestock sends the request and returns a message for the user.
	NotifyRestock(ctx context.Context, req RestockRequest) (string, error)
}

type SMTPConfig struct {
	Server       string
	Port         string
	User         string
	Password     string
	From         string
	AuthDisabled bool
}

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPNotifier mails restock requests through an SMTP relay.
type SMTPNotifier struct {
	cfg      SMTPConfig
	logger   *zap.Logger
	sendMail sendMailFunc
}

func NewSMTPNotifier(cfg SMTPConfig, logger *zap.Logger) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg, logger: logger, sendMail: smtp.SendMail}
}

func (n *SMTPNotifier) NotifyRestock(ctx context.Context, req RestockRequest) (string, error) {
	if strings.TrimSpace(req.SupplierEmail) == "" {
		return "", ErrMissingRecipient
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", n.cfg.From, req.SupplierEmail, req.Subject(), req.Body())
	addr := net.JoinHostPort(n.cfg.Server, n.cfg.Port)

	var auth smtp.Auth
	if !n.cfg.AuthDisabled {
		auth = smtp.PlainAuth("", n.cfg.User, n.cfg.Password, n.cfg.Server)
	}

	if err := n.sendMail(addr, auth, n.cfg.From, []string{req.SupplierEmail}, []byte(msg)); err != nil {
		n.logger.Error("Failed to send restock email", zap.String("to", req.SupplierEmail), zap.Error(err))
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	n.logger.Info("Restock email sent",
		zap.String("to", req.SupplierEmail),
		zap.String("product", req.ProductName),
		zap.Int("quantity", req.Quantity),
	)
	return "Email sent to " + req.SupplierEmail, nil
}

// MockNotifier logs the email instead of sending it. Used when no SMTP
// relay is configured.
type MockNotifier struct {
	logger *zap.Logger
}

func NewMockNotifier(logger *zap.Logger) *MockNotifier {
	return &MockNotifier{logger: logger}
}

func (n *MockNotifier) NotifyRestock(ctx context.Context, req RestockRequest) (string, error) {
	if strings.TrimSpace(req.SupplierEmail) == "" {
		return "", ErrMissingRecipient
	}
	n.logger.Info("Mock restock email",
		zap.String("to", req.SupplierEmail),
		zap.String("subject", req.Subject()),
		zap.String("body", req.Body()),
	)
	return "Email sent successfully (mock mode, configure SMTP for real email)", nil
}

// New picks the SMTP notifier when a relay is configured, the mock otherwise.
func New(cfg SMTPConfig, logger *zap.Logger) SupplierNotifier {
	if cfg.Server == "" || cfg.From == "" {
		return NewMockNotifier(logger)
	}
	return NewSMTPNotifier(cfg, logger)
}
