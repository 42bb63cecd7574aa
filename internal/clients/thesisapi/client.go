package thesisapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/SundayYogurt/thesis_service/internal/domain"
	"github.com/SundayYogurt/thesis_service/internal/dto"
	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// APIError is a non-2xx answer from the thesis service.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("thesis api http error (%d)", e.Status)
	}
	return fmt.Sprintf("thesis api error (%d): %s", e.Status, e.Message)
}

type envelope[T any] struct {
	Data T `json:"data"`
}

type errorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Client talks to the thesis service over HTTP and satisfies
// portal.RecordStore.
type Client struct {
	http          *resty.Client
	adminUser     string
	adminPassword string
}

type Option func(*Client)

// WithAdminAuth sends basic auth on the admin routes.
func WithAdminAuth(username, password string) Option {
	return func(c *Client) {
		c.adminUser = username
		c.adminPassword = password
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.SetTimeout(d)
	}
}

func New(baseURL string, opts ...Option) *Client {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(20*time.Second).
		SetHeader("Accept", "application/json").
		SetJSONMarshaler(sonic.Marshal).
		SetJSONUnmarshaler(sonic.Unmarshal)

	c := &Client{http: rc}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Insert posts one submission. A 400 carrying field messages comes back
// as *dto.ValidationError; any other failure is a domain.StoreError.
func (c *Client) Insert(ctx context.Context, in dto.SubmitThesisRequest) (*dto.ThesisResponse, error) {
	var out envelope[dto.ThesisResponse]
	var failure errorBody

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(in).
		SetResult(&out).
		SetError(&failure).
		Post("/api/theses")
	if err != nil {
		return nil, domain.NewStoreError("insert", err)
	}

	if resp.IsError() {
		if resp.StatusCode() == http.StatusBadRequest && len(failure.Fields) > 0 {
			return nil, &dto.ValidationError{Fields: failure.Fields}
		}
		return nil, domain.NewStoreError("insert", &APIError{Status: resp.StatusCode(), Message: failure.Error})
	}

	return &out.Data, nil
}

// SelectAll returns every submission, newest first.
func (c *Client) SelectAll(ctx context.Context) ([]dto.ThesisResponse, error) {
	var out envelope[[]dto.ThesisResponse]
	var failure errorBody

	resp, err := c.admin(ctx).
		SetResult(&out).
		SetError(&failure).
		Get("/api/admin/theses")
	if err != nil {
		return nil, domain.NewStoreError("select", err)
	}
	if resp.IsError() {
		return nil, domain.NewStoreError("select", &APIError{Status: resp.StatusCode(), Message: failure.Error})
	}

	if out.Data == nil {
		return []dto.ThesisResponse{}, nil
	}
	return out.Data, nil
}

func (c *Client) DeleteByID(ctx context.Context, id uuid.UUID) error {
	var failure errorBody

	resp, err := c.admin(ctx).
		SetError(&failure).
		SetPathParam("id", id.String()).
		Delete("/api/admin/theses/{id}")
	if err != nil {
		return domain.NewStoreError("delete", err)
	}
	if resp.IsError() {
		return domain.NewStoreError("delete", &APIError{Status: resp.StatusCode(), Message: failure.Error})
	}
	return nil
}

func (c *Client) admin(ctx context.Context) *resty.Request {
	req := c.http.R().SetContext(ctx)
	if c.adminUser != "" {
		req.SetBasicAuth(c.adminUser, c.adminPassword)
	}
	return req
}
