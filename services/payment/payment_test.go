package payment

import (
	"context"
	"errors"
	"testing"

	"deltaclinic/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	amount   int64
	currency string
	err      error
}

func (f *fakeGateway) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	f.amount = amount
	f.currency = currency
	if f.err != nil {
		return "", f.err
	}
	return "pi_secret_123", nil
}

type fakePayments struct {
	saved []models.Payment
}

func (f *fakePayments) Create(ctx context.Context, p *models.Payment) error {
	f.saved = append(f.saved, *p)
	return nil
}

type fakeMarker struct {
	bookingID, transactionID string
	err                      error
}

func (f *fakeMarker) MarkPaid(ctx context.Context, id, transactionID string) (*models.WriteResult, error) {
	f.bookingID, f.transactionID = id, transactionID
	if f.err != nil {
		return nil, f.err
	}
	return &models.WriteResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func TestAmountInCents(t *testing.T) {
	assert.EqualValues(t, 5000, AmountInCents(50))
	assert.EqualValues(t, 1999, AmountInCents(19.99))
	assert.EqualValues(t, 0, AmountInCents(0))
}

func TestCreateIntent(t *testing.T) {
	gw := &fakeGateway{}
	svc := &DefaultPaymentService{Gateway: gw}

	res, err := svc.CreateIntent(context.Background(), 19.99)

	require.NoError(t, err)
	assert.Equal(t, "pi_secret_123", res.ClientSecret)
	assert.EqualValues(t, 1999, gw.amount)
	assert.Equal(t, "usd", gw.currency)
}

func TestCreateIntentRejectsNonPositivePrice(t *testing.T) {
	svc := &DefaultPaymentService{Gateway: &fakeGateway{}}

	_, err := svc.CreateIntent(context.Background(), -1)

	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestCreateIntentGatewayError(t *testing.T) {
	svc := &DefaultPaymentService{Gateway: &fakeGateway{err: errors.New("card declined")}}

	_, err := svc.CreateIntent(context.Background(), 10)

	assert.Error(t, err)
}

func TestRecordMarksBookingPaid(t *testing.T) {
	payments := &fakePayments{}
	marker := &fakeMarker{}
	svc := &DefaultPaymentService{Repo: payments, Bookings: marker}

	res, err := svc.Record(context.Background(), models.Payment{BookingID: "b1", TransactionID: "pi_1", Price: 50, Email: "a@clinic.test"})

	require.NoError(t, err)
	assert.True(t, res.Acknowledged)
	require.Len(t, payments.saved, 1)
	assert.Equal(t, res.InsertedID, payments.saved[0].ID)
	assert.Equal(t, "b1", marker.bookingID)
	assert.Equal(t, "pi_1", marker.transactionID)
}

func TestRecordRequiresBookingAndTransaction(t *testing.T) {
	svc := &DefaultPaymentService{Repo: &fakePayments{}, Bookings: &fakeMarker{}}

	_, err := svc.Record(context.Background(), models.Payment{BookingID: "b1"})

	assert.ErrorIs(t, err, ErrInvalidPayment)
}
