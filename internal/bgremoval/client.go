// Package bgremoval calls the remote background removal service. The service
// is metered; quota failures are surfaced as domain.ErrQuotaExceeded so the
// request layer can answer with 402 instead of a generic failure.
package bgremoval

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/NitinV84/couch-matcher/internal/domain"
)

var ErrBadResponse = errors.New("invalid response code from background removal api")

type Client struct {
	baseURL string
	http    *http.Client

	log *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log.WithGroup("BGREMOVAL"),
	}
}

type removeReq struct {
	Image string `json:"image"`
}

type removeResp struct {
	Image string `json:"image"`
}

// Remove returns the input image with background pixels made transparent
// (PNG with an alpha channel).
func (c *Client) Remove(ctx context.Context, img []byte) ([]byte, error) {
	reqBody, err := json.Marshal(removeReq{Image: base64.StdEncoding.EncodeToString(img)})
	if err != nil {
		return nil, fmt.Errorf("encoding removal request, %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/remove", bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("creating removal request, %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("removal request failed, %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusPaymentRequired || resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("removal rejected with code %d, %w", resp.StatusCode, domain.ErrQuotaExceeded)
	}
	if resp.StatusCode != http.StatusOK {
		logResp, _ := httputil.DumpResponse(resp, true)
		c.log.Error("background removal api response", slog.String("resp", string(logResp)))

		return nil, fmt.Errorf("calling background removal, code %d, %w", resp.StatusCode, ErrBadResponse)
	}

	var jsonResp removeResp
	err = json.NewDecoder(resp.Body).Decode(&jsonResp)
	if err != nil {
		return nil, fmt.Errorf("decoding removal response, %w", err)
	}

	out, err := base64.StdEncoding.DecodeString(jsonResp.Image)
	if err != nil {
		return nil, fmt.Errorf("decoding removal payload, %w", err)
	}

	return out, nil
}

// Passthrough skips background removal entirely and hands the original image
// back. Used on the ingest path, where the near-white heuristic masks the
// background instead.
type Passthrough struct{}

func (Passthrough) Remove(_ context.Context, img []byte) ([]byte, error) {
	return img, nil
}
