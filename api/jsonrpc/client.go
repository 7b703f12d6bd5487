// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package jsonrpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
	"resty.dev/v3"

	"github.com/optakt/sui-rosetta/models/sui"
	"github.com/optakt/sui-rosetta/rosetta/failure"
)

var errUnexpectedStatus = errors.New("unexpected response status")

// Client is a JSON-RPC client for a Sui full node. Read requests are retried
// on transient failures; transaction execution is sent exactly once.
type Client struct {
	log     zerolog.Logger
	http    *resty.Client
	limiter *rate.Limiter
	cfg     Config
	counter uint64

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New creates a new client for the full node at the given URL.
func New(log zerolog.Logger, url string, options ...func(*Config)) *Client {

	cfg := DefaultConfig
	for _, option := range options {
		option(&cfg)
	}

	limiter := rate.NewLimiter(rate.Limit(cfg.Rate), cfg.Burst)

	client := resty.New().
		SetBaseURL(url).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetRetryCount(cfg.Retries).
		SetRetryWaitTime(100 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		SetAllowNonIdempotentRetry(true).
		AddRetryConditions(retryTransient).
		AddRequestMiddleware(func(_ *resty.Client, req *resty.Request) error {
			return limiter.Wait(req.Context())
		})

	c := Client{
		log:      log.With().Str("component", "jsonrpc_client").Logger(),
		http:     client,
		limiter:  limiter,
		cfg:      cfg,
		requests: requestCounter,
		duration: requestDuration,
	}

	return &c
}

// Close releases the resources of the underlying HTTP client.
func (c *Client) Close() error {
	return c.http.Close()
}

// read sends a read request, which may be retried.
func (c *Client) read(ctx context.Context, method string, result interface{}, params ...interface{}) error {
	return c.call(ctx, method, true, result, params...)
}

// write sends a request with side effects, which is never retried.
func (c *Client) write(ctx context.Context, method string, result interface{}, params ...interface{}) error {
	return c.call(ctx, method, false, result, params...)
}

func (c *Client) call(ctx context.Context, method string, retry bool, result interface{}, params ...interface{}) error {

	if params == nil {
		params = []interface{}{}
	}
	body := request{
		JSONRPC: "2.0",
		ID:      atomic.AddUint64(&c.counter, 1),
		Method:  method,
		Params:  params,
	}

	req := c.http.R().
		SetContext(ctx).
		SetBody(body)
	if !retry {
		req = req.SetRetryCount(0).SetAllowNonIdempotentRetry(false)
	}

	start := time.Now()
	res, err := req.Post("")
	c.duration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		c.requests.WithLabelValues(method, outcomeTransport).Inc()
		return failure.RetriableRPC{
			Method:      method,
			Description: failure.NewDescription("could not reach ledger node", failure.WithErr(err)),
		}
	}
	if res.StatusCode() == http.StatusTooManyRequests || res.StatusCode() >= http.StatusInternalServerError {
		c.requests.WithLabelValues(method, outcomeTransport).Inc()
		return failure.RetriableRPC{
			Method:      method,
			Description: failure.NewDescription("ledger node unavailable", failure.WithInt("status", res.StatusCode())),
		}
	}
	if res.IsError() {
		c.requests.WithLabelValues(method, outcomeRejected).Inc()
		return fmt.Errorf("%w (method: %s, status: %d)", errUnexpectedStatus, method, res.StatusCode())
	}

	var envelope response
	err = json.Unmarshal(res.Bytes(), &envelope)
	if err != nil {
		c.requests.WithLabelValues(method, outcomeRejected).Inc()
		return fmt.Errorf("could not decode response envelope (method: %s): %w", method, err)
	}
	if envelope.Error != nil {
		c.requests.WithLabelValues(method, outcomeRejected).Inc()
		if isNotFound(envelope.Error) {
			return fmt.Errorf("%w: %w", envelope.Error, sui.ErrNotFound)
		}
		return envelope.Error
	}

	c.requests.WithLabelValues(method, outcomeSuccess).Inc()

	if result == nil {
		return nil
	}
	if len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		return fmt.Errorf("empty result (method: %s): %w", method, sui.ErrNotFound)
	}
	err = json.Unmarshal(envelope.Result, result)
	if err != nil {
		return fmt.Errorf("could not decode result (method: %s): %w", method, err)
	}

	c.log.Trace().Str("method", method).Dur("duration", time.Since(start)).Msg("ledger request completed")

	return nil
}

func retryTransient(res *resty.Response, err error) bool {
	if err != nil {
		return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
	}
	return res.StatusCode() == http.StatusTooManyRequests || res.StatusCode() >= http.StatusInternalServerError
}

func isNotFound(err *RPCError) bool {
	msg := strings.ToLower(err.Message)
	return strings.Contains(msg, "not found") ||
		strings.Contains(msg, "could not find") ||
		strings.Contains(msg, "does not exist")
}
