package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"llc_backend/internals/features/payments/model"
	helper "llc_backend/internals/helpers"
)

type fakePaymentStore struct {
	payments []model.PaymentModel
}

func (f *fakePaymentStore) Create(_ context.Context, p *model.PaymentModel) error {
	p.ID = uuid.New()
	f.payments = append(f.payments, *p)
	return nil
}

func (f *fakePaymentStore) ListByEmail(_ context.Context, email string) ([]model.PaymentModel, error) {
	var out []model.PaymentModel
	for _, p := range f.payments {
		if p.Email == email {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func newPaymentTestApp(store *fakePaymentStore, intent IntentCreator, email string) *fiber.App {
	ctrl := &PaymentController{Store: store, CreateIntent: intent, Validate: validator.New()}
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(helper.LocUserEmail, email)
		return c.Next()
	})
	app.Post("/create-payment-intent", ctrl.CreatePaymentIntent)
	app.Post("/payments", ctrl.RecordPayment)
	app.Get("/payments", ctrl.ListForUser)
	return app
}

func paymentRequest(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestCreatePaymentIntent_ReturnsClientSecret(t *testing.T) {
	var gotPrice float64
	var gotEmail string
	intent := func(orderID string, price float64, email string) (string, error) {
		gotPrice = price
		gotEmail = email
		return "snap-token-123", nil
	}
	app := newPaymentTestApp(&fakePaymentStore{}, intent, "me@example.com")

	resp := paymentRequest(t, app, http.MethodPost, "/create-payment-intent", map[string]float64{"price": 49.99})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var got map[string]string
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "snap-token-123", got["clientSecret"])
	assert.Equal(t, 49.99, gotPrice)
	assert.Equal(t, "me@example.com", gotEmail)
}

func TestCreatePaymentIntent_ProcessorFailureIsOpaque502(t *testing.T) {
	intent := func(string, float64, string) (string, error) {
		return "", errors.New("midtrans: 401 invalid server key")
	}
	app := newPaymentTestApp(&fakePaymentStore{}, intent, "me@example.com")

	resp := paymentRequest(t, app, http.MethodPost, "/create-payment-intent", map[string]float64{"price": 10})
	require.Equal(t, http.StatusBadGateway, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	assert.NotContains(t, string(raw), "server key", "processor detail must stay out of the response")
}

func TestRecordPayment_ForeignEmailForbidden(t *testing.T) {
	store := &fakePaymentStore{}
	app := newPaymentTestApp(store, nil, "me@example.com")

	resp := paymentRequest(t, app, http.MethodPost, "/payments", map[string]interface{}{
		"email":          "victim@example.com",
		"transaction_id": "tx-1",
		"amount":         10.0,
		"date":           time.Now().Format(time.RFC3339),
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Empty(t, store.payments)
}

func TestListForUser_NewestFirstPerEmail(t *testing.T) {
	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	store := &fakePaymentStore{payments: []model.PaymentModel{
		{ID: uuid.New(), Email: "e@example.com", Date: jan},
		{ID: uuid.New(), Email: "e@example.com", Date: mar},
		{ID: uuid.New(), Email: "e@example.com", Date: feb},
		{ID: uuid.New(), Email: "other@example.com", Date: mar},
	}}
	app := newPaymentTestApp(store, nil, "e@example.com")

	resp := paymentRequest(t, app, http.MethodGet, "/payments?email=e@example.com", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var got []model.PaymentModel
	require.NoError(t, json.Unmarshal(raw, &got))
	require.Len(t, got, 3)
	assert.Equal(t, mar, got[0].Date.UTC())
	assert.Equal(t, feb, got[1].Date.UTC())
	assert.Equal(t, jan, got[2].Date.UTC())
}
