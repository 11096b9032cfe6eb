package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(serverURL string) *SSLCommerzClient {
	return &SSLCommerzClient{
		StoreID:     "teststore",
		StorePasswd: "testpasswd",
		SessionURL:  serverURL,
		HTTPClient:  &http.Client{Timeout: 2 * time.Second},
	}
}

func baseRequest() SessionRequest {
	return SessionRequest{
		TranID:      "PAW-1700000000000-ab12",
		Amount:      decimal.NewFromFloat(249.50),
		Currency:    "BDT",
		ProductName: "Premium Dog Food",
		CusName:     "Rahim Uddin",
		CusEmail:    "rahim@example.com",
		SuccessURL:  "https://api.example.com/api/payments/success",
		FailURL:     "https://api.example.com/api/payments/fail",
		CancelURL:   "https://api.example.com/api/payments/cancel",
		IPNURL:      "https://api.example.com/api/payments/ipn",
	}
}

func TestCreateSessionSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "teststore", r.PostFormValue("store_id"))
		assert.Equal(t, "testpasswd", r.PostFormValue("store_passwd"))
		assert.Equal(t, "249.50", r.PostFormValue("total_amount"))
		assert.Equal(t, "BDT", r.PostFormValue("currency"))
		assert.Equal(t, "PAW-1700000000000-ab12", r.PostFormValue("tran_id"))
		assert.Equal(t, "https://api.example.com/api/payments/ipn", r.PostFormValue("ipn_url"))
		// blank optionals get gateway-safe defaults
		assert.Equal(t, "N/A", r.PostFormValue("cus_phone"))
		assert.Equal(t, "Dhaka", r.PostFormValue("cus_city"))
		assert.Equal(t, "1000", r.PostFormValue("cus_postcode"))
		assert.Equal(t, "Bangladesh", r.PostFormValue("cus_country"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"SUCCESS","sessionkey":"SK1","GatewayPageURL":"https://sandbox.sslcommerz.com/EasyCheckOut/abc"}`))
	}))
	defer srv.Close()

	resp, err := testClient(srv.URL).CreateSession(context.Background(), baseRequest())
	require.NoError(t, err)
	assert.True(t, resp.OK())
	assert.Equal(t, "SK1", resp.SessionKey)
	assert.NotEmpty(t, resp.Raw)
}

func TestCreateSessionRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"FAILED","failedreason":"store credential invalid"}`))
	}))
	defer srv.Close()

	resp, err := testClient(srv.URL).CreateSession(context.Background(), baseRequest())
	require.NoError(t, err)
	assert.False(t, resp.OK())
	assert.Equal(t, "store credential invalid", resp.FailedReason)
}

func TestCreateSessionMissingPageURL(t *testing.T) {
	// SUCCESS without a page URL is still not a usable session
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"SUCCESS","sessionkey":"SK2"}`))
	}))
	defer srv.Close()

	resp, err := testClient(srv.URL).CreateSession(context.Background(), baseRequest())
	require.NoError(t, err)
	assert.False(t, resp.OK())
}

func TestCreateSessionHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).CreateSession(context.Background(), baseRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 502")
}

func TestCreateSessionBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).CreateSession(context.Background(), baseRequest())
	require.Error(t, err)
}

func TestCreateSessionTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.CreateSession(ctx, baseRequest())
	require.Error(t, err)
}

func TestInitSSLCommerzPicksURL(t *testing.T) {
	InitSSLCommerz("s", "p", true, time.Second)
	assert.Equal(t, sandboxSessionURL, SSLCz.SessionURL)

	InitSSLCommerz("s", "p", false, time.Second)
	assert.Equal(t, liveSessionURL, SSLCz.SessionURL)
}
