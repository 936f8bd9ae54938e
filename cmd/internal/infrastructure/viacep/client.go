package viacep

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"agrodog/cmd/internal/domain/entity"
	"agrodog/cmd/internal/utils"
)

const DefaultBaseURL = "https://viacep.com.br"

var (
	ErrNotFound          = errors.New("postal code not found")
	ErrInvalidPostalCode = errors.New("postal code must contain 8 digits")
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FindByCEP resolves a postal code, formatted or not, into an address.
func (c *Client) FindByCEP(ctx context.Context, cep string) (*entity.PostalAddress, error) {
	cleaned := utils.CleanCEP(cep)
	if cleaned == "" {
		return nil, ErrInvalidPostalCode
	}

	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, cleaned)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("viacep request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("viacep failed with status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return nil, ErrNotFound
	}

	var address addressResponse
	if err = json.Unmarshal(body, &address); err != nil {
		return nil, fmt.Errorf("viacep returned an invalid body: %w", err)
	}

	if address.Error || address.CEP == "" {
		return nil, ErrNotFound
	}
	return address.ToDomain(), nil
}
