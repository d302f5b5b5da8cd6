// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package emailjs is a client for the EmailJS REST API. It sends one
// templated email per call and implements contact.Sender.
package emailjs

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

	"github.com/noldarim/portfolio/internal/config"
	"github.com/noldarim/portfolio/internal/contact"
	"github.com/noldarim/portfolio/internal/telemetry"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const sendPath = "/api/v1.0/email/send"

// maxErrorBody caps how much of a rejection body is kept on APIError.
const maxErrorBody = 4 << 10

// ErrNotConfigured is returned by New when a credential is missing.
var ErrNotConfigured = errors.New("emailjs credentials not configured")

// APIError is a non-200 response from the service.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("emailjs: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("emailjs: HTTP %d: %s", e.StatusCode, e.Body)
}

type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

// Client sends contact messages through a single EmailJS service and
// template.
type Client struct {
	baseURL    string
	serviceID  string
	templateID string
	publicKey  string
	privateKey string
	httpClient *http.Client
	tracer     trace.Tracer
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the instrumented default client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New builds a client from configuration.
func New(cfg config.EmailJSConfig, opts ...Option) (*Client, error) {
	if !cfg.Configured() {
		return nil, ErrNotConfigured
	}
	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		serviceID:  cfg.ServiceID,
		templateID: cfg.TemplateID,
		publicKey:  cfg.PublicKey,
		privateKey: cfg.PrivateKey,
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   cfg.Timeout,
		},
		tracer: telemetry.Tracer("github.com/noldarim/portfolio/internal/emailjs"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Send posts the form as template parameters. Any status other than 200 is
// an *APIError. There is no retry.
func (c *Client) Send(ctx context.Context, form contact.Form) (err error) {
	ctx, span := c.tracer.Start(ctx, "emailjs.send", trace.WithAttributes(
		attribute.String("emailjs.service_id", c.serviceID),
		attribute.String("emailjs.template_id", c.templateID),
	))
	start := time.Now()
	defer func() {
		span.SetAttributes(attribute.Int64("emailjs.duration_ms", time.Since(start).Milliseconds()))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "delivery rejected")
		} else {
			span.SetStatus(codes.Ok, "")
		}
		span.End()
	}()

	body, err := json.Marshal(sendRequest{
		ServiceID:      c.serviceID,
		TemplateID:     c.templateID,
		UserID:         c.publicKey,
		AccessToken:    c.privateKey,
		TemplateParams: form.Params(),
	})
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+sendPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("emailjs request failed: %w", err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

var _ contact.Sender = (*Client)(nil)
