package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const preferencesPath = "/api/preferencias/"

type preferencesBody struct {
	Categorias []string `json:"categorias"`
}

type preferencesResponse struct {
	Categorias *[]string `json:"categorias"`
}

type writeResponse struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
}

// FetchPreferences reads the reader's categories from the server. A body
// without a categorias field is an error.
func (c *Client) FetchPreferences(ctx context.Context) ([]string, error) {
	req, err := c.newRequest(ctx, http.MethodGet, preferencesPath, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var result preferencesResponse
	if err := decodeJSON(resp, &result); err != nil {
		return nil, fmt.Errorf("fetching preferences: %w", err)
	}
	if result.Categorias == nil {
		return nil, fmt.Errorf("fetching preferences: %w: missing categorias", ErrUnexpectedResponse)
	}
	return *result.Categorias, nil
}

// SetPreferences replaces the reader's categories on the server. A 2xx body
// with success false is reported as ErrServerRejected.
func (c *Client) SetPreferences(ctx context.Context, categories []string) error {
	if categories == nil {
		categories = []string{}
	}

	body, err := json.Marshal(preferencesBody{Categorias: categories})
	if err != nil {
		return fmt.Errorf("marshaling preferences: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, preferencesPath, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	c.withCSRF(req)

	resp, err := c.do(req)
	if err != nil {
		return err
	}

	var result writeResponse
	if err := decodeJSON(resp, &result); err != nil {
		return fmt.Errorf("saving preferences: %w", err)
	}
	if result.Success != nil && !*result.Success {
		return fmt.Errorf("saving preferences: %w: %s", ErrServerRejected, result.Message)
	}
	return nil
}
