package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/shopspring/decimal"
)

const (
	sandboxSessionURL = "https://sandbox.sslcommerz.com/gwprocess/v4/api.php"
	liveSessionURL    = "https://securepay.sslcommerz.com/gwprocess/v4/api.php"
)

// SSLCommerzClient creates hosted-checkout sessions. One synchronous
// form-encoded POST per initiation, no retries; the explicit timeout is
// the only thing keeping a slow gateway from pinning connections.
type SSLCommerzClient struct {
	StoreID     string
	StorePasswd string
	SessionURL  string
	HTTPClient  *http.Client
}

var SSLCz *SSLCommerzClient

// InitSSLCommerz is called once at bootstrap.
func InitSSLCommerz(storeID, storePasswd string, sandbox bool, timeout time.Duration) {
	sessionURL := liveSessionURL
	if sandbox {
		sessionURL = sandboxSessionURL
	}
	SSLCz = &SSLCommerzClient{
		StoreID:     storeID,
		StorePasswd: storePasswd,
		SessionURL:  sessionURL,
		HTTPClient:  &http.Client{Timeout: timeout},
	}
}

// SessionRequest carries everything the session-create call needs. The
// four callback URLs embed the tran_id so the gateway can correlate.
type SessionRequest struct {
	TranID      string
	Amount      decimal.Decimal
	Currency    string
	ProductName string
	CusName     string
	CusEmail    string
	CusPhone    string
	CusAddress  string
	CusCity     string
	CusPostcode string
	CusCountry  string
	SuccessURL  string
	FailURL     string
	CancelURL   string
	IPNURL      string
}

// SessionResponse is the subset of the gateway reply we act on.
type SessionResponse struct {
	Status         string `json:"status"`
	SessionKey     string `json:"sessionkey"`
	GatewayPageURL string `json:"GatewayPageURL"`
	FailedReason   string `json:"failedreason"`
	Raw            []byte `json:"-"`
}

// OK reports whether the gateway accepted the session.
func (r *SessionResponse) OK() bool {
	return strings.EqualFold(r.Status, "SUCCESS") && r.GatewayPageURL != ""
}

// CreateSession posts the form-encoded session request and decodes the
// JSON reply. A non-SUCCESS reply is returned as a value, not an error;
// transport and decode problems are errors.
func (g *SSLCommerzClient) CreateSession(ctx context.Context, req SessionRequest) (*SessionResponse, error) {
	form := url.Values{}
	form.Set("store_id", g.StoreID)
	form.Set("store_passwd", g.StorePasswd)
	form.Set("total_amount", req.Amount.StringFixed(2))
	form.Set("currency", req.Currency)
	form.Set("tran_id", req.TranID)
	form.Set("success_url", req.SuccessURL)
	form.Set("fail_url", req.FailURL)
	form.Set("cancel_url", req.CancelURL)
	form.Set("ipn_url", req.IPNURL)
	form.Set("shipping_method", "NO")
	form.Set("product_name", req.ProductName)
	form.Set("product_category", "pet-services")
	form.Set("product_profile", "general")
	form.Set("emi_option", "0")
	form.Set("cus_name", req.CusName)
	form.Set("cus_email", req.CusEmail)
	form.Set("cus_phone", orDefault(req.CusPhone, "N/A"))
	form.Set("cus_add1", orDefault(req.CusAddress, "N/A"))
	form.Set("cus_city", orDefault(req.CusCity, "Dhaka"))
	form.Set("cus_postcode", orDefault(req.CusPostcode, "1000"))
	form.Set("cus_country", orDefault(req.CusCountry, "Bangladesh"))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.SessionURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build session request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gateway session call: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read gateway response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gateway returned HTTP %d", resp.StatusCode)
	}

	var out SessionResponse
	if err := sonic.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode gateway response: %w", err)
	}
	out.Raw = body
	return &out, nil
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
