package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/clubedepontos/loyaltyhook/config"
	"github.com/clubedepontos/loyaltyhook/internal/handler/http/mocks"
	"github.com/clubedepontos/loyaltyhook/internal/models"
	"github.com/clubedepontos/loyaltyhook/internal/signature"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func testConfig() *config.Config {
	return &config.Config{
		AdminGraphQLEndpoint: "https://shop.example.com/admin/api/graphql.json",
		AdminAPIToken:        "shpat_test",
		WebhookSecret:        testSecret,
	}
}

const signedOrderBody = `{
  "id": 123456,
  "name": "#1001",
  "email": "cliente@example.com",
  "total_price": "100.00",
  "customer": {"id": 42, "email": "cliente@example.com"},
  "note_attributes": [],
  "discount_applications": [],
  "total_discounts": "0.00",
  "line_items": []
}`

const guestOrderBody = `{
  "id": 123457,
  "name": "#1002",
  "total_price": "50.00",
  "customer": null
}`

func TestWebhookHandler_OrderCreated(t *testing.T) {
	verifier := signature.NewVerifier(testSecret)
	sign := func(body string) string {
		return verifier.Sign([]byte(body))
	}

	tests := []struct {
		name           string
		method         string
		cfg            *config.Config
		body           string
		hmac           string
		setup          func(t *testing.T) *mocks.MockWebhookService
		wantStatusCode int
		wantBody       map[string]any
	}{
		{
			name:   "non_post_return_405",
			method: http.MethodGet,
			cfg:    testConfig(),
			setup: func(t *testing.T) *mocks.MockWebhookService {
				ctrl := gomock.NewController(t)
				return mocks.NewMockWebhookService(ctrl)
			},
			wantStatusCode: http.StatusMethodNotAllowed,
			wantBody:       map[string]any{"error": "Method not allowed"},
		},
		{
			name:   "missing_config_return_500",
			method: http.MethodPost,
			cfg:    &config.Config{WebhookSecret: testSecret},
			body:   signedOrderBody,
			hmac:   sign(signedOrderBody),
			setup: func(t *testing.T) *mocks.MockWebhookService {
				ctrl := gomock.NewController(t)
				svcMock := mocks.NewMockWebhookService(ctrl)
				svcMock.EXPECT().ProcessOrder(gomock.Any(), gomock.Any()).Times(0)
				return svcMock
			},
			wantStatusCode: http.StatusInternalServerError,
			wantBody:       map[string]any{"error": "Server configuration error"},
		},
		{
			name:   "missing_hmac_header_return_401",
			method: http.MethodPost,
			cfg:    testConfig(),
			body:   signedOrderBody,
			setup: func(t *testing.T) *mocks.MockWebhookService {
				ctrl := gomock.NewController(t)
				svcMock := mocks.NewMockWebhookService(ctrl)
				svcMock.EXPECT().ProcessOrder(gomock.Any(), gomock.Any()).Times(0)
				return svcMock
			},
			wantStatusCode: http.StatusUnauthorized,
			wantBody:       map[string]any{"error": "Missing HMAC header"},
		},
		{
			name:   "wrong_hmac_return_401",
			method: http.MethodPost,
			cfg:    testConfig(),
			body:   signedOrderBody,
			hmac:   sign(signedOrderBody + " "),
			setup: func(t *testing.T) *mocks.MockWebhookService {
				ctrl := gomock.NewController(t)
				svcMock := mocks.NewMockWebhookService(ctrl)
				svcMock.EXPECT().ProcessOrder(gomock.Any(), gomock.Any()).Times(0)
				return svcMock
			},
			wantStatusCode: http.StatusUnauthorized,
			wantBody:       map[string]any{"error": "Invalid HMAC"},
		},
		{
			name:   "signed_invalid_json_return_400",
			method: http.MethodPost,
			cfg:    testConfig(),
			body:   "not json at all",
			hmac:   sign("not json at all"),
			setup: func(t *testing.T) *mocks.MockWebhookService {
				ctrl := gomock.NewController(t)
				svcMock := mocks.NewMockWebhookService(ctrl)
				svcMock.EXPECT().ProcessOrder(gomock.Any(), gomock.Any()).Times(0)
				return svcMock
			},
			wantStatusCode: http.StatusBadRequest,
			wantBody:       map[string]any{"error": "Invalid JSON"},
		},
		{
			name:   "guest_order_short_circuits_return_200",
			method: http.MethodPost,
			cfg:    testConfig(),
			body:   guestOrderBody,
			hmac:   sign(guestOrderBody),
			setup: func(t *testing.T) *mocks.MockWebhookService {
				ctrl := gomock.NewController(t)
				svcMock := mocks.NewMockWebhookService(ctrl)
				svcMock.EXPECT().ProcessOrder(gomock.Any(), gomock.Any()).Times(0)
				return svcMock
			},
			wantStatusCode: http.StatusOK,
			wantBody:       map[string]any{"message": "No customer associated with order"},
		},
		{
			name:   "valid_order_return_200",
			method: http.MethodPost,
			cfg:    testConfig(),
			body:   signedOrderBody,
			hmac:   sign(signedOrderBody),
			setup: func(t *testing.T) *mocks.MockWebhookService {
				ctrl := gomock.NewController(t)
				svcMock := mocks.NewMockWebhookService(ctrl)
				svcMock.EXPECT().ProcessOrder(gomock.Any(), gomock.Any()).Return(&models.OrderSummary{
					Order:           "#1001",
					Customer:        42,
					PointsDebited:   decimal.Zero,
					PointsAdded:     decimal.NewFromInt(100),
					PreviousBalance: decimal.NewFromInt(20),
					NewBalance:      decimal.NewFromInt(120),
				}, nil).Times(1)
				return svcMock
			},
			wantStatusCode: http.StatusOK,
			wantBody: map[string]any{
				"success":         true,
				"order":           "#1001",
				"customer":        float64(42),
				"pointsDebited":   float64(0),
				"pointsAdded":     float64(100),
				"previousBalance": float64(20),
				"newBalance":      float64(120),
			},
		},
		{
			name:   "points_write_failure_return_500",
			method: http.MethodPost,
			cfg:    testConfig(),
			body:   signedOrderBody,
			hmac:   sign(signedOrderBody),
			setup: func(t *testing.T) *mocks.MockWebhookService {
				ctrl := gomock.NewController(t)
				svcMock := mocks.NewMockWebhookService(ctrl)
				svcMock.EXPECT().ProcessOrder(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("points update failed: write failed")).Times(1)
				return svcMock
			},
			wantStatusCode: http.StatusInternalServerError,
			wantBody:       map[string]any{"error": "Failed to update customer points"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, "/api/shopify/webhooks/orders/created", strings.NewReader(tt.body))
			require.NoError(t, err)
			if tt.hmac != "" {
				req.Header.Set(SignatureHeader, tt.hmac)
			}

			w := httptest.NewRecorder()
			st := tt.setup(t)

			wh := NewWebhookHandler(st, verifier, tt.cfg, zap.NewNop())
			h := wh.OrderCreated()
			h(w, req)

			res := w.Result()
			defer res.Body.Close()
			assert.Equal(t, tt.wantStatusCode, res.StatusCode)
			assert.Equal(t, "application/json", res.Header.Get("Content-Type"))

			resBody, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			var got map[string]any
			require.NoError(t, json.Unmarshal(resBody, &got))

			if diff := cmp.Diff(tt.wantBody, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWebhookHandler_PassesRawBytesToVerifier(t *testing.T) {
	// re-serialized JSON would not be byte-identical; the handler must verify
	// the body exactly as transmitted
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcMock := mocks.NewMockWebhookService(ctrl)
	svcMock.EXPECT().ProcessOrder(gomock.Any(), gomock.Any()).Return(&models.OrderSummary{}, nil).Times(1)

	verifier := signature.NewVerifier(testSecret)
	body := "{\"id\": 1,\t\"name\":\"#1\",  \"total_price\":\"1.00\",\"customer\":{\"id\":2}}"

	req, err := http.NewRequest(http.MethodPost, "/api/shopify/webhooks/orders/created", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set(SignatureHeader, verifier.Sign([]byte(body)))

	w := httptest.NewRecorder()
	wh := NewWebhookHandler(svcMock, verifier, testConfig(), zap.NewNop())
	wh.OrderCreated()(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
}
