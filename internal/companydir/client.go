package companydir

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/devmoodys/cls-node-final/internal/common"
	"github.com/devmoodys/cls-node-final/internal/logging"
	"github.com/devmoodys/cls-node-final/internal/models"
)

// Client is the HTTP implementation of Directory. The http.Client is
// injected so callers own timeouts and tests can point it anywhere; there is
// no package-level client instance.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     logging.Logger
}

func NewClient(baseURL, apiKey string, httpClient *http.Client, log logging.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    httpClient,
		log:     log,
	}
}

// companyPayload is the directory's wire shape for a company.
type companyPayload struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	NoticeDate time.Time `json:"notice_date"`
	MaxUsers   int       `json:"max_users"`
}

func (p *companyPayload) toModel() *models.Company {
	return &models.Company{
		ID:         p.ID,
		Name:       p.Name,
		StartDate:  p.StartDate,
		EndDate:    p.EndDate,
		NoticeDate: p.NoticeDate,
		MaxUsers:   p.MaxUsers,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	return c.http.Do(req)
}

func decodeCompany(r io.Reader) (*models.Company, error) {
	var payload companyPayload
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", common.ErrCompanyLookup, err)
	}
	return payload.toModel(), nil
}

func (c *Client) GetByID(ctx context.Context, id string) (*models.Company, error) {
	// A tenant-less account carries a blank company id; that is not a lookup.
	if strings.TrimSpace(id) == "" {
		return nil, nil
	}

	resp, err := c.do(ctx, http.MethodGet, "/companies/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrCompanyLookup, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return decodeCompany(resp.Body)
	case http.StatusNotFound:
		return nil, nil
	default:
		c.log.Error(ctx, "company lookup failed", "company_id", id, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", common.ErrCompanyLookup, resp.StatusCode)
	}
}

func (c *Client) GetByName(ctx context.Context, name string) (*models.Company, error) {
	resp, err := c.do(ctx, http.MethodGet, "/companies/by-name/"+url.PathEscape(name), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrCompanyLookup, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return decodeCompany(resp.Body)
	case http.StatusNotFound:
		return nil, common.ErrCompanyNotFound
	default:
		c.log.Error(ctx, "company lookup failed", "name", name, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", common.ErrCompanyLookup, resp.StatusCode)
	}
}

func (c *Client) Create(ctx context.Context, in CompanyInput) (*models.Company, error) {
	resp, err := c.do(ctx, http.MethodPost, "/companies", in)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrCompanyLookup, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		c.log.Error(ctx, "company create failed", "name", in.Name, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", common.ErrCompanyLookup, resp.StatusCode)
	}
	return decodeCompany(resp.Body)
}

func (c *Client) Update(ctx context.Context, id string, in CompanyUpdate) (*models.Company, error) {
	resp, err := c.do(ctx, http.MethodPatch, "/companies/"+url.PathEscape(id), in)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrCompanyLookup, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return decodeCompany(resp.Body)
	case http.StatusNotFound:
		return nil, common.ErrCompanyNotFound
	default:
		c.log.Error(ctx, "company update failed", "company_id", id, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", common.ErrCompanyLookup, resp.StatusCode)
	}
}
