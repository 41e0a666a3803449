// Package notifier emails a receipt after an order is created.
package notifier

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"go.uber.org/zap"

	config "github.com/Keoroanthony/go-cornerstore/configs"
	"github.com/Keoroanthony/go-cornerstore/internal/dto"
	"github.com/Keoroanthony/go-cornerstore/internal/logger"
)

// ReceiptSender delivers a receipt for a created order.
type ReceiptSender interface {
	SendReceipt(ctx context.Context, order dto.OrderDTO) error
}

// Noop drops every receipt. It is used when no addresses are configured.
type Noop struct{}

func (Noop) SendReceipt(context.Context, dto.OrderDTO) error { return nil }

var (
	mu      sync.RWMutex
	current ReceiptSender = Noop{}
)

// Set replaces the process-wide receipt sender.
func Set(sender ReceiptSender) {
	mu.Lock()
	defer mu.Unlock()
	if sender == nil {
		sender = Noop{}
	}
	current = sender
}

// Current returns the process-wide receipt sender.
func Current() ReceiptSender {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Init installs an SES sender when cfg is enabled and a Noop otherwise.
func Init(ctx context.Context, cfg config.ReceiptConfig) error {
	if !cfg.Enabled() {
		logger.Log.Info("Order receipts disabled")
		Set(Noop{})
		return nil
	}

	sender, err := NewSESNotifier(ctx, cfg)
	if err != nil {
		return err
	}
	Set(sender)
	logger.Log.Info("Order receipts enabled", zap.String("region", cfg.AWSRegion))
	return nil
}

type sesAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SESNotifier struct {
	client    sesAPI
	sender    string
	recipient string
}

func NewSESNotifier(ctx context.Context, cfg config.ReceiptConfig) (*SESNotifier, error) {

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.AWSRegion)}
	if cfg.AWSAccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS SDK config: %w", err)
	}

	return &SESNotifier{
		client:    ses.NewFromConfig(awsCfg),
		sender:    cfg.SenderEmail,
		recipient: cfg.RecipientEmail,
	}, nil
}

func (n *SESNotifier) SendReceipt(ctx context.Context, order dto.OrderDTO) error {

	if n.sender == "" || n.recipient == "" {
		return fmt.Errorf("receipt sender and recipient addresses are required")
	}

	if _, err := n.client.SendEmail(ctx, BuildReceiptEmail(n.sender, n.recipient, order)); err != nil {
		return fmt.Errorf("failed to send receipt for order %d: %w", order.ID, err)
	}

	logger.Log.Info("Order receipt sent", zap.Uint("order_id", order.ID), zap.String("to", n.recipient))
	return nil
}

// BuildReceiptEmail renders the receipt as an SES message with HTML and
// plain-text bodies.
func BuildReceiptEmail(sender, recipient string, order dto.OrderDTO) *ses.SendEmailInput {

	subject := fmt.Sprintf("CornerStore receipt for order #%d", order.ID)

	var html, text strings.Builder
	html.WriteString("<html><body>")
	fmt.Fprintf(&html, "<p>Order #%d</p><ul>", order.ID)
	fmt.Fprintf(&text, "Order #%d\n\n", order.ID)

	for _, item := range order.OrderProducts {
		name := fmt.Sprintf("product %d", item.ProductID)
		if item.Product != nil {
			name = item.Product.ProductName
		}
		fmt.Fprintf(&html, "<li>%d x %s</li>", item.Quantity, name)
		fmt.Fprintf(&text, "%d x %s\n", item.Quantity, name)
	}

	total := order.Total.StringFixed(2)
	fmt.Fprintf(&html, "</ul><p><strong>Total: %s</strong></p>", total)
	html.WriteString("</body></html>")
	fmt.Fprintf(&text, "\nTotal: %s\n", total)

	return &ses.SendEmailInput{
		Source: aws.String(sender),
		Destination: &types.Destination{
			ToAddresses: []string{recipient},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Charset: aws.String("UTF-8"),
				Data:    aws.String(subject),
			},
			Body: &types.Body{
				Html: &types.Content{
					Charset: aws.String("UTF-8"),
					Data:    aws.String(html.String()),
				},
				Text: &types.Content{
					Charset: aws.String("UTF-8"),
					Data:    aws.String(text.String()),
				},
			},
		},
	}
}
