// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package gateway implements a thin client for the hosted backend's
// row-oriented table API. It speaks the PostgREST dialect: rows are
// selected with nested-embed syntax, writes filter by primary key, and
// stored procedures are invoked through the rpc endpoint. The client
// returns raw row shapes; mapping to domain entities happens in the
// transform package.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// ErrNotConfigured is returned by every operation when the gateway
// credentials are absent or still set to the shipped placeholders.
// Callers must not see fabricated data from this layer; the only fallback
// path lives in the blog store's fetch orchestration.
var ErrNotConfigured = errors.New("gateway not configured")

// APIError is a non-2xx response from the backend, decoded from the
// PostgREST error body where possible.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gateway: status %d: %s", e.StatusCode, e.Message)
}

// Filter restricts a read or write to rows matching column op value,
// e.g. {Column: "id", Op: "eq", Value: articleID}.
type Filter struct {
	Column string
	Op     string
	Value  string
}

// Eq builds the common equality filter.
func Eq(column, value string) Filter {
	return Filter{Column: column, Op: "eq", Value: value}
}

// Query describes a row selection. Select uses the backend's nested-embed
// syntax to pull related rows in one request. Or carries a raw or=()
// disjunction for search queries. Single requests exactly one object
// instead of an array.
type Query struct {
	Select  string
	Filters []Filter
	Or      string
	Order   string // e.g. "created_at.desc"
	Limit   int
	Single  bool
}

// Client talks to one hosted backend project identified by its base URL
// and anonymous API key. The zero credentials make an unconfigured client
// whose every call fails fast with ErrNotConfigured.
type Client struct {
	baseURL string
	anonKey string
	http    *http.Client
}

// New creates a gateway client. Pass empty credentials to get an
// explicitly unconfigured client.
func New(baseURL, anonKey string) *Client {
	return &Client{
		baseURL: baseURL,
		anonKey: anonKey,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Configured reports whether the client has credentials to talk to the
// backend.
func (c *Client) Configured() bool {
	return c.baseURL != "" && c.anonKey != ""
}

// Select reads rows from table into out, which must be a pointer to a
// slice of row structs, or to a single row struct when q.Single is set.
func (c *Client) Select(ctx context.Context, table string, q Query, out any) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	params := url.Values{}
	if q.Select != "" {
		params.Set("select", q.Select)
	}
	for _, f := range q.Filters {
		params.Set(f.Column, f.Op+"."+f.Value)
	}
	if q.Or != "" {
		params.Set("or", q.Or)
	}
	if q.Order != "" {
		params.Set("order", q.Order)
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}

	return c.do(ctx, http.MethodGet, c.tableURL(table, params), nil, out, q.Single)
}

// Insert writes one row (or a slice of rows) into table. When out is
// non-nil the backend is asked to return the inserted representation and
// the single created row is decoded into it.
func (c *Client) Insert(ctx context.Context, table string, payload, out any) error {
	if !c.Configured() {
		return ErrNotConfigured
	}
	return c.do(ctx, http.MethodPost, c.tableURL(table, nil), payload, out, out != nil)
}

// Update patches all rows matching the filters with the given payload.
func (c *Client) Update(ctx context.Context, table string, payload any, filters ...Filter) error {
	if !c.Configured() {
		return ErrNotConfigured
	}
	return c.do(ctx, http.MethodPatch, c.tableURL(table, filterParams(filters)), payload, nil, false)
}

// Delete removes all rows matching the filters.
func (c *Client) Delete(ctx context.Context, table string, filters ...Filter) error {
	if !c.Configured() {
		return ErrNotConfigured
	}
	return c.do(ctx, http.MethodDelete, c.tableURL(table, filterParams(filters)), nil, nil, false)
}

// RPC invokes a stored procedure by name with the given argument struct.
func (c *Client) RPC(ctx context.Context, name string, args any) error {
	if !c.Configured() {
		return ErrNotConfigured
	}
	u := c.baseURL + "/rest/v1/rpc/" + name
	return c.do(ctx, http.MethodPost, u, args, nil, false)
}

// tableURL builds the REST endpoint for a table with optional query params.
func (c *Client) tableURL(table string, params url.Values) string {
	u := c.baseURL + "/rest/v1/" + table
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

func filterParams(filters []Filter) url.Values {
	params := url.Values{}
	for _, f := range filters {
		params.Set(f.Column, f.Op+"."+f.Value)
	}
	return params
}

// do performs the HTTP round trip: encode payload, set auth headers,
// check status, decode response. single switches the Accept header so the
// backend returns one object instead of an array.
func (c *Client) do(ctx context.Context, method, rawURL string, payload, out any, single bool) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("gateway marshal: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return fmt.Errorf("gateway request: %w", err)
	}

	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+c.anonKey)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if single {
		req.Header.Set("Accept", "application/vnd.pgrst.object+json")
	}
	if method == http.MethodPost && out != nil {
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("gateway http: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("gateway read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(respBody)}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("gateway unmarshal: %w", err)
		}
	}
	return nil
}

// errorMessage pulls the message field out of a PostgREST error body,
// falling back to the raw body.
func errorMessage(body []byte) string {
	var e struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Message != "" {
		return e.Message
	}
	const max = 200
	if len(body) > max {
		body = body[:max]
	}
	return string(body)
}
