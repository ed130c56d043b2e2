// Package classifier talks to the pretrained image classification service.
// The model itself is a black box: it receives the canonical 224x224 RGB
// image and answers with the highest-probability class and its confidence.
package classifier

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
)

var ErrBadResponse = errors.New("invalid response code from classifier api")

type Prediction struct {
	Label      string
	Confidence float64
}

type Client struct {
	baseURL string
	http    *http.Client

	log *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log.WithGroup("CLASSIFIER"),
	}
}

type classifyReq struct {
	Image string `json:"image"`
}

type classifyResp struct {
	ClassName  string  `json:"class_name"`
	Confidence float64 `json:"confidence"`
}

func (c *Client) Classify(ctx context.Context, img []byte) (Prediction, error) {
	reqBody, err := json.Marshal(classifyReq{Image: base64.StdEncoding.EncodeToString(img)})
	if err != nil {
		return Prediction{}, fmt.Errorf("encoding classify request, %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/classify", bytes.NewBuffer(reqBody))
	if err != nil {
		return Prediction{}, fmt.Errorf("creating classify request, %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Prediction{}, fmt.Errorf("classify request failed, %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logResp, _ := httputil.DumpResponse(resp, true)
		c.log.Error("classifier api response", slog.String("resp", string(logResp)))

		return Prediction{}, fmt.Errorf("calling classifier, code %d, %w", resp.StatusCode, ErrBadResponse)
	}

	var jsonResp classifyResp
	err = json.NewDecoder(resp.Body).Decode(&jsonResp)
	if err != nil {
		return Prediction{}, fmt.Errorf("decoding classify response, %w", err)
	}

	c.log.Info("image classified",
		slog.String("class", jsonResp.ClassName),
		slog.Float64("confidence", jsonResp.Confidence),
	)

	return Prediction{Label: jsonResp.ClassName, Confidence: jsonResp.Confidence}, nil
}
