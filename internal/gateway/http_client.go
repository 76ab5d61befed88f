package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/vetrivel962969-dotcom/Paperid/internal/model"
	"go.uber.org/zap"
)

// envelope mirrors the backend's response.APIResponse.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// HTTPClient talks to the /api/v1 backend. It carries the bearer token
// issued at login.
type HTTPClient struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger

	mu    sync.RWMutex
	token string
}

var _ Gateway = (*HTTPClient)(nil)

type HTTPOption func(*HTTPClient)

func WithHTTPClient(c *http.Client) HTTPOption {
	return func(h *HTTPClient) { h.client = c }
}

func WithLogger(l *zap.Logger) HTTPOption {
	return func(h *HTTPClient) { h.logger = l }
}

// NewHTTPClient targets baseURL, e.g. "http://localhost:3000/api/v1".
func NewHTTPClient(baseURL string, opts ...HTTPOption) *HTTPClient {
	h := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  http.DefaultClient,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.logger = h.logger.Named("gateway.http")
	return h
}

func (h *HTTPClient) setToken(tok string) {
	h.mu.Lock()
	h.token = tok
	h.mu.Unlock()
}

func (h *HTTPClient) bearer() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

type request struct {
	op          string
	method      string
	path        string
	body        io.Reader
	contentType string
	header      http.Header
}

func jsonBody(v any) (io.Reader, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(raw), nil
}

// do sends r and decodes the envelope's data into out when out is not nil.
func (h *HTTPClient) do(ctx context.Context, r request, out any) error {
	req, err := http.NewRequestWithContext(ctx, r.method, h.baseURL+r.path, r.body)
	if err != nil {
		return &Error{Op: r.op, Message: "build request", Err: err}
	}
	for k, vs := range r.header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	if r.body != nil {
		ct := r.contentType
		if ct == "" {
			ct = "application/json"
		}
		req.Header.Set("Content-Type", ct)
	}
	if tok := h.bearer(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	res, err := h.client.Do(req)
	if err != nil {
		if ctxErr := contextError(r.op, err); ctxErr != nil {
			return ctxErr
		}
		h.logger.Warn("request failed", zap.String("op", r.op), zap.Error(err))
		return &Error{Op: r.op, Message: "transport", Err: fmt.Errorf("%w: %v", ErrRemote, err)}
	}
	defer res.Body.Close()

	var env envelope
	decodeErr := json.NewDecoder(res.Body).Decode(&env)

	if res.StatusCode >= http.StatusBadRequest {
		code, msg := "", http.StatusText(res.StatusCode)
		if decodeErr == nil && env.Error != nil {
			code, msg = env.Error.Code, env.Error.Message
		}
		h.logger.Debug("backend rejected call",
			zap.String("op", r.op),
			zap.Int("status", res.StatusCode),
			zap.String("code", code),
		)
		return classify(r.op, res.StatusCode, code, msg)
	}
	if decodeErr != nil {
		return &Error{Op: r.op, Status: res.StatusCode, Message: "decode response", Err: fmt.Errorf("%w: %v", ErrRemote, decodeErr)}
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &Error{Op: r.op, Status: res.StatusCode, Message: "decode data", Err: fmt.Errorf("%w: %v", ErrRemote, err)}
	}
	return nil
}

func (h *HTTPClient) ListProducts(ctx context.Context, filter *model.ProductFilter) ([]model.Product, error) {
	path := "/products"
	if filter != nil && filter.Category != "" {
		path += "?" + url.Values{"category": {string(filter.Category)}}.Encode()
	}
	out := []model.Product{}
	if err := h.do(ctx, request{op: opListProducts, method: http.MethodGet, path: path}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (h *HTTPClient) GetProduct(ctx context.Context, id string) (model.Product, bool, error) {
	var out model.Product
	err := h.do(ctx, request{op: opGetProduct, method: http.MethodGet, path: "/products/" + url.PathEscape(id)}, &out)
	if IsNotFound(err) {
		return model.Product{}, false, nil
	}
	if err != nil {
		return model.Product{}, false, err
	}
	return out, true, nil
}

func (h *HTTPClient) ListCategories(ctx context.Context) ([]model.CategoryInfo, error) {
	out := []model.CategoryInfo{}
	if err := h.do(ctx, request{op: opListCategories, method: http.MethodGet, path: "/categories"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (h *HTTPClient) Login(ctx context.Context, email string) (model.User, error) {
	body, err := jsonBody(map[string]string{"email": email})
	if err != nil {
		return model.User{}, &Error{Op: opLogin, Err: err}
	}
	var out struct {
		User        model.User `json:"user"`
		AccessToken string     `json:"access_token"`
	}
	if err := h.do(ctx, request{op: opLogin, method: http.MethodPost, path: "/auth/login", body: body}, &out); err != nil {
		return model.User{}, err
	}
	h.setToken(out.AccessToken)
	return out.User, nil
}

// Logout forgets the token even if the backend call fails.
func (h *HTTPClient) Logout(ctx context.Context) error {
	defer h.setToken("")
	return h.do(ctx, request{op: opLogout, method: http.MethodPost, path: "/auth/logout"}, nil)
}

func (h *HTTPClient) GetProfile(ctx context.Context) (model.User, error) {
	var out model.User
	if err := h.do(ctx, request{op: opGetProfile, method: http.MethodGet, path: "/profile"}, &out); err != nil {
		return model.User{}, err
	}
	return out, nil
}

func (h *HTTPClient) UpdateProfile(ctx context.Context, update model.ProfileUpdate) (model.User, error) {
	body, err := jsonBody(update)
	if err != nil {
		return model.User{}, &Error{Op: opUpdateProfile, Err: err}
	}
	var out model.User
	if err := h.do(ctx, request{op: opUpdateProfile, method: http.MethodPatch, path: "/profile", body: body}, &out); err != nil {
		return model.User{}, err
	}
	return out, nil
}

func (h *HTTPClient) ListAddresses(ctx context.Context) ([]model.Address, error) {
	out := []model.Address{}
	if err := h.do(ctx, request{op: opListAddresses, method: http.MethodGet, path: "/addresses"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (h *HTTPClient) AddAddress(ctx context.Context, addr model.Address) (model.Address, error) {
	body, err := jsonBody(addr)
	if err != nil {
		return model.Address{}, &Error{Op: opAddAddress, Err: err}
	}
	var out model.Address
	if err := h.do(ctx, request{op: opAddAddress, method: http.MethodPost, path: "/addresses", body: body}, &out); err != nil {
		return model.Address{}, err
	}
	return out, nil
}

func (h *HTTPClient) RemoveAddress(ctx context.Context, id string) error {
	return h.do(ctx, request{op: opRemoveAddress, method: http.MethodDelete, path: "/addresses/" + url.PathEscape(id)}, nil)
}

func (h *HTTPClient) ListPayments(ctx context.Context) ([]model.PaymentMethod, error) {
	out := []model.PaymentMethod{}
	if err := h.do(ctx, request{op: opListPayments, method: http.MethodGet, path: "/payments"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (h *HTTPClient) AddPayment(ctx context.Context, pm model.PaymentMethod) (model.PaymentMethod, error) {
	body, err := jsonBody(pm)
	if err != nil {
		return model.PaymentMethod{}, &Error{Op: opAddPayment, Err: err}
	}
	var out model.PaymentMethod
	if err := h.do(ctx, request{op: opAddPayment, method: http.MethodPost, path: "/payments", body: body}, &out); err != nil {
		return model.PaymentMethod{}, err
	}
	return out, nil
}

func (h *HTTPClient) RemovePayment(ctx context.Context, id string) error {
	return h.do(ctx, request{op: opRemovePayment, method: http.MethodDelete, path: "/payments/" + url.PathEscape(id)}, nil)
}

// CreateOrder sends the Idempotency-Key attached to ctx, or a fresh one when
// the caller did not attach any. A replayed key fails with ErrConflict.
func (h *HTTPClient) CreateOrder(ctx context.Context, items []model.CartItem) (model.OrderReceipt, error) {
	key, ok := IdempotencyKey(ctx)
	if !ok {
		key = uuid.NewString()
	}
	body, err := jsonBody(map[string][]model.CartItem{"items": items})
	if err != nil {
		return model.OrderReceipt{}, &Error{Op: opCreateOrder, Err: err}
	}
	var out model.OrderReceipt
	err = h.do(ctx, request{
		op:     opCreateOrder,
		method: http.MethodPost,
		path:   "/orders",
		body:   body,
		header: http.Header{"Idempotency-Key": {key}},
	}, &out)
	if err != nil {
		return model.OrderReceipt{}, err
	}
	return out, nil
}

func (h *HTTPClient) TrackOrder(ctx context.Context, ref string) (model.TrackingInfo, error) {
	var out model.TrackingInfo
	if err := h.do(ctx, request{op: opTrackOrder, method: http.MethodGet, path: "/orders/" + url.PathEscape(ref) + "/track"}, &out); err != nil {
		return model.TrackingInfo{}, err
	}
	return out, nil
}

func (h *HTTPClient) UploadArtwork(ctx context.Context, filename string, data []byte) (model.Artwork, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err == nil {
		_, err = fw.Write(data)
	}
	if err == nil {
		err = mw.Close()
	}
	if err != nil {
		return model.Artwork{}, &Error{Op: opUploadArtwork, Message: "encode upload", Err: err}
	}

	var out model.Artwork
	err = h.do(ctx, request{
		op:          opUploadArtwork,
		method:      http.MethodPost,
		path:        "/artwork",
		body:        &buf,
		contentType: mw.FormDataContentType(),
	}, &out)
	if err != nil {
		return model.Artwork{}, err
	}
	return out, nil
}
