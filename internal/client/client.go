package client

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

	"github.com/saulo-duarte/netconv/internal/bintodec"
)

var (
	ErrNetwork           = errors.New("network failure")
	ErrMalformedResponse = errors.New("malformed response")
)

// Client talks to the problem and answer-check endpoints.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    hc,
	}
}

type problemPayload struct {
	RandomBinary  *string `json:"random_binary"`
	RandomDecimal *int    `json:"random_decimal"`
}

type resultPayload struct {
	Result         *string `json:"result"`
	CorrectDecimal *int    `json:"correctDecimal"`
}

func (c *Client) FetchProblem(ctx context.Context) (*bintodec.Problem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/bin-to-dec", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	var payload problemPayload
	if err := c.do(req, &payload); err != nil {
		return nil, err
	}
	if payload.RandomBinary == nil || payload.RandomDecimal == nil {
		return nil, fmt.Errorf("%w: missing problem fields", ErrMalformedResponse)
	}

	n, err := bintodec.Decode(*payload.RandomBinary)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if n != *payload.RandomDecimal {
		return nil, fmt.Errorf("%w: %s does not decode to %d", ErrMalformedResponse, *payload.RandomBinary, *payload.RandomDecimal)
	}

	return &bintodec.Problem{
		RandomBinary:  *payload.RandomBinary,
		RandomDecimal: *payload.RandomDecimal,
	}, nil
}

func (c *Client) CheckAnswer(ctx context.Context, in bintodec.CheckAnswerRequest) (*bintodec.CheckAnswerResult, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/check-answer", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	req.Header.Set("Content-Type", "application/json")

	var payload resultPayload
	if err := c.do(req, &payload); err != nil {
		return nil, err
	}
	if payload.Result == nil || payload.CorrectDecimal == nil {
		return nil, fmt.Errorf("%w: missing result fields", ErrMalformedResponse)
	}

	return &bintodec.CheckAnswerResult{
		Result:         bintodec.Verdict(*payload.Result),
		CorrectDecimal: *payload.CorrectDecimal,
	}, nil
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: %s %s returned %d", ErrNetwork, req.Method, req.URL.Path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}
