package c2c

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/c2ccombos/internal/config"
	"github.com/c2ccombos/internal/domain"
	"github.com/c2ccombos/internal/domain/repository"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *zap.Logger
}

// NewCatalogClient создает новый клиент для API каталога camptocamp
func NewCatalogClient(cfg *config.CatalogConfig, logger *zap.Logger) repository.CatalogRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		logger:    logger,
	}
}

// List возвращает одну страницу документов listing-ресурса.
// Не-2xx ответ каталога - это отказ транспорта, без повторов.
func (c *client) List(
	ctx context.Context,
	resource string,
	params map[string]string,
) (*domain.Page, error) {
	if resource == "" {
		return nil, fmt.Errorf("resource cannot be empty")
	}

	query := url.Values{}
	for k, v := range params {
		query.Set(k, v)
	}

	reqURL := fmt.Sprintf("%s/%s", c.baseURL, strings.TrimLeft(resource, "/"))
	if encoded := query.Encode(); encoded != "" {
		reqURL = reqURL + "?" + encoded
	}

	c.logger.Debug("Calling catalog API",
		zap.String("resource", resource),
		zap.String("url", reqURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Catalog API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("catalog API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var page domain.Page
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("Catalog API call successful",
		zap.String("resource", resource),
		zap.Int("documents", len(page.Documents)),
		zap.Int("total", page.Total))

	return &page, nil
}
