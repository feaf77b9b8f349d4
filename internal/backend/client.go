// Package backend - HTTP-клиент внешнего бэкенда данных о пожарах.
package backend

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

	"github.com/shenikar/wildfire_dashboard/internal/models"
)

const (
	hotspotsPath = "/dados-queimadas"
	listingPath  = "/listar-arquivos"
	analysisPath = "/analisar-cicatrizes"

	// maxErrorBody ограничивает текст ошибки, попадающий в логи
	maxErrorBody = 4 << 10
)

type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// analysisRequest - тело POST /analisar-cicatrizes
type analysisRequest struct {
	Geometry models.Geometry `json:"geometry"`
	File     string          `json:"arquivo"`
}

type analysisErrorBody struct {
	Error string `json:"error"`
}

// FetchHotspots загружает CSV-ленту фокусов для режима и файла
func (c *Client) FetchHotspots(ctx context.Context, mode models.PeriodMode, file string) (string, error) {
	q := url.Values{}
	q.Set("periodo", string(mode))
	q.Set("arquivo", file)

	body, err := c.get(ctx, "fetch hotspots", hotspotsPath+"?"+q.Encode())
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// ListFiles возвращает список файлов для mensal или anual
func (c *Client) ListFiles(ctx context.Context, mode models.PeriodMode) ([]string, error) {
	q := url.Values{}
	q.Set("periodo", string(mode))

	body, err := c.get(ctx, "list files", listingPath+"?"+q.Encode())
	if err != nil {
		return nil, err
	}

	var files []string
	if err := json.Unmarshal(body, &files); err != nil {
		return nil, fmt.Errorf("failed to decode file listing: %w", err)
	}
	return files, nil
}

// AnalyzeScar запрашивает анализ гари для области и файла
func (c *Client) AnalyzeScar(ctx context.Context, geometry models.Geometry, file string) (*models.ScarResult, error) {
	const op = "analyze scar"

	payload, err := json.Marshal(analysisRequest{Geometry: geometry, File: file})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal analysis request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+analysisPath, bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create analysis request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusServiceUnavailable:
		var errBody analysisErrorBody
		if err := json.Unmarshal(body, &errBody); err == nil && errBody.Error != "" {
			return nil, &AnalysisError{StatusCode: resp.StatusCode, Message: errBody.Error}
		}
		return nil, &StatusError{Op: op, StatusCode: resp.StatusCode, Body: truncate(body)}
	default:
		return nil, &StatusError{Op: op, StatusCode: resp.StatusCode, Body: truncate(body)}
	}

	var result models.ScarResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode analysis response: %w", err)
	}
	return &result, nil
}

func (c *Client) get(ctx context.Context, op, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Op: op, StatusCode: resp.StatusCode, Body: truncate(body)}
	}
	return body, nil
}

func truncate(body []byte) string {
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	return strings.TrimSpace(string(body))
}
