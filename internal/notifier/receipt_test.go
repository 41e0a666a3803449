package notifier

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "github.com/Keoroanthony/go-cornerstore/configs"
	"github.com/Keoroanthony/go-cornerstore/internal/dto"
)

type fakeSES struct {
	sent []*ses.SendEmailInput
	err  error
}

func (f *fakeSES) SendEmail(_ context.Context, params *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, params)
	return &ses.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func sampleOrder() dto.OrderDTO {
	return dto.OrderDTO{
		ID:    12,
		Total: decimal.RequireFromString("7.5"),
		OrderProducts: []dto.OrderProductDTO{
			{ProductID: 1, Quantity: 2, Product: &dto.ProductDTO{ProductName: "Supa Energy Drink"}},
			{ProductID: 9, Quantity: 1},
		},
	}
}

func TestBuildReceiptEmail(t *testing.T) {
	input := BuildReceiptEmail("till@example.com", "owner@example.com", sampleOrder())

	assert.Equal(t, "till@example.com", aws.ToString(input.Source))
	assert.Equal(t, []string{"owner@example.com"}, input.Destination.ToAddresses)
	assert.Equal(t, "CornerStore receipt for order #12", aws.ToString(input.Message.Subject.Data))

	text := aws.ToString(input.Message.Body.Text.Data)
	assert.Contains(t, text, "2 x Supa Energy Drink")
	assert.Contains(t, text, "1 x product 9")
	assert.Contains(t, text, "Total: 7.50")
	assert.Contains(t, aws.ToString(input.Message.Body.Html.Data), "<li>2 x Supa Energy Drink</li>")
}

func TestSESNotifierSendReceipt(t *testing.T) {
	t.Run("Successfully sends receipt", func(t *testing.T) {
		client := &fakeSES{}
		n := &SESNotifier{client: client, sender: "till@example.com", recipient: "owner@example.com"}

		require.NoError(t, n.SendReceipt(context.Background(), sampleOrder()))
		assert.Len(t, client.sent, 1)
	})

	t.Run("Fails when SES rejects the message", func(t *testing.T) {
		n := &SESNotifier{client: &fakeSES{err: errors.New("throttled")}, sender: "a@b.c", recipient: "d@e.f"}

		err := n.SendReceipt(context.Background(), sampleOrder())
		assert.ErrorContains(t, err, "order 12")
	})

	t.Run("Fails without addresses", func(t *testing.T) {
		client := &fakeSES{}
		n := &SESNotifier{client: client}

		assert.Error(t, n.SendReceipt(context.Background(), sampleOrder()))
		assert.Empty(t, client.sent)
	})
}

func TestInitWithoutAddressesInstallsNoop(t *testing.T) {
	t.Cleanup(func() { Set(nil) })

	require.NoError(t, Init(context.Background(), config.ReceiptConfig{AWSRegion: "us-east-1"}))
	assert.IsType(t, Noop{}, Current())
}
