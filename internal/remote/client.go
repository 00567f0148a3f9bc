// Package remote is a thin client for the symbolic computation service that
// owns expression parsing and convolution sampling. The core never computes
// these itself; results arrive once and are treated as immutable inputs.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/san-kum/roclab/internal/system"
)

// Collaborator failures are distinct error kinds so callers can tell a
// rejected expression from a sampler that never answered.
var (
	// ErrParserRejected indicates the service could not parse an expression.
	ErrParserRejected = errors.New("roclab: transfer function rejected by parser")

	// ErrSampler indicates the convolution sampler failed or timed out.
	ErrSampler = errors.New("roclab: convolution sampler failed")
)

const defaultTimeout = 30 * time.Second

// Client talks to the computation service over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// ParseTransferFunction asks the service to decompose a rational expression
// like (s+1)/(s^2+2*s+1) into poles and zeros. variable is "s" or "z".
func (c *Client) ParseTransferFunction(ctx context.Context, expression, variable string) (poles, zeros []system.ComplexPoint, err error) {
	req := struct {
		Expression string `json:"expression"`
		Variable   string `json:"variable"`
	}{expression, variable}

	var res ParseResult
	if err := c.post(ctx, "/parse_transfer_function", req, &res); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrParserRejected, err)
	}
	if res.Err != "" {
		return nil, nil, fmt.Errorf("%w: %s", ErrParserRejected, res.Err)
	}

	return fromWire(res.Poles), fromWire(res.Zeros), nil
}

// Convolve samples y = x * h and the per-frame animation data.
func (c *Client) Convolve(ctx context.Context, xExpr, hExpr string, domain system.Domain) (*ConvolutionResult, error) {
	wireDomain := "continuous"
	if domain == system.ZTransform {
		wireDomain = "discrete"
	}
	req := struct {
		XExpr  string `json:"x_expr"`
		HExpr  string `json:"h_expr"`
		Domain string `json:"domain"`
	}{xExpr, hExpr, wireDomain}

	var res ConvolutionResult
	if err := c.post(ctx, "/convolution", req, &res); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSampler, err)
	}
	if len(res.Frames) == 0 {
		return nil, fmt.Errorf("%w: empty frame set", ErrSampler)
	}
	return &res, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("status %d: %s", resp.StatusCode, detail)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func fromWire(pts []WirePoint) []system.ComplexPoint {
	if len(pts) == 0 {
		return nil
	}
	out := make([]system.ComplexPoint, len(pts))
	for i, p := range pts {
		out[i] = system.ComplexPoint{Re: p.R, Im: p.I}
	}
	return out
}
