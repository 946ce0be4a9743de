// internal/handlers/checkout_test.go
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hautevault/boutique-backend/internal/payments"
	"github.com/hautevault/boutique-backend/internal/utils"
)

type recordingProvider struct {
	origin string
	lines  []payments.Line
}

func (p *recordingProvider) Configured() bool { return true }

func (p *recordingProvider) CreateSession(_ context.Context, origin string, lines []payments.Line) (*payments.Session, error) {
	p.origin = origin
	p.lines = lines
	return &payments.Session{Configured: true, URL: "https://checkout.test/session", ID: "cs_test_123"}, nil
}

func checkoutRouter(provider payments.Provider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/checkout", NewCheckoutHandler(provider).Create)
	return r
}

func postCheckout(router *gin.Engine, payload interface{}, headers map[string]string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", "/checkout", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCheckoutEmptyBag(t *testing.T) {
	router := checkoutRouter(payments.Unconfigured{})

	w := postCheckout(router, map[string]interface{}{"lines": []payments.Line{}}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, utils.CodeNoLines, response["error"])
}

func TestCheckoutUnconfiguredProvider(t *testing.T) {
	router := checkoutRouter(payments.Unconfigured{})

	payload := map[string]interface{}{
		"lines": []payments.Line{{ID: "abc", Title: "Rolex GMT-Master II", PriceGBP: 12500, Qty: 1}},
	}
	w := postCheckout(router, payload, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["ok"])
	assert.Equal(t, false, response["configured"])
}

func TestCheckoutForwardsLinesAndOrigin(t *testing.T) {
	provider := &recordingProvider{}
	router := checkoutRouter(provider)

	payload := map[string]interface{}{
		"lines": []payments.Line{{ID: "abc", Title: "Cartier Tank", PriceGBP: 4200, Qty: 2}},
	}
	headers := map[string]string{
		"X-Forwarded-Proto": "https",
		"X-Forwarded-Host":  "shop.example.com",
	}
	w := postCheckout(router, payload, headers)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://shop.example.com", provider.origin)
	require.Len(t, provider.lines, 1)
	assert.Equal(t, 2, provider.lines[0].Qty)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["configured"])
	assert.Equal(t, "https://checkout.test/session", response["url"])
	assert.Equal(t, "cs_test_123", response["id"])
}
