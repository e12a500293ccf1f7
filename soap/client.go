// Package soap is the transport half of the Store API binding: one
// authenticated http POST per call, soap 1.1 envelopes, faults as errors.
package soap

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
)

func NewClient(config ...Config) (*Client, error) {
	// Set default config
	cfg := configDefault(config...)

	if cfg.URL == "" {
		return nil, errors.New("soap: service url is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		tlsConfig := &tls.Config{
			InsecureSkipVerify: cfg.Insecure,
		}
		if cfg.RootCAs != "" {
			pem, err := os.ReadFile(cfg.RootCAs)
			if err != nil {
				return nil, fmt.Errorf("soap: read ca bundle: %w", err)
			}
			pool := x509.NewCertPool()
			if !pool.AppendCertsFromPEM(pem) {
				return nil, fmt.Errorf("soap: no certificates in %s", cfg.RootCAs)
			}
			tlsConfig.RootCAs = pool
		}
		httpClient = &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				TLSClientConfig: tlsConfig,
			},
		}
	}

	return &Client{
		cfg:        cfg,
		httpClient: httpClient,
	}, nil
}

type Client struct {
	cfg        Config
	httpClient *http.Client
}

// Call performs one request/response exchange. payload is marshaled into the
// envelope body; the response body's inner xml is unmarshaled into result
// when result is non nil. A fault in the response wins over the http status
// since stores answer faults with 500.
func (c *Client) Call(ctx context.Context, action string, payload, result interface{}) error {
	body, err := xml.Marshal(requestEnvelope{
		NS:   envelopeNS,
		Body: requestBody{Payload: payload},
	})
	if err != nil {
		return fmt.Errorf("soap: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL,
		bytes.NewReader(append([]byte(xml.Header), body...)))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header.Set("SOAPAction", `"`+action+`"`)
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	if c.cfg.Username != "" || c.cfg.Password != "" {
		req.SetBasicAuth(c.cfg.Username, c.cfg.Password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("soap: read response: %w", err)
	}

	var env responseEnvelope
	if err := xml.Unmarshal(data, &env); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return fmt.Errorf("soap: http status %s", resp.Status)
		}
		return fmt.Errorf("soap: decode response: %w", err)
	}

	if env.Body.Fault != nil {
		return env.Body.Fault
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("soap: http status %s", resp.Status)
	}

	if result == nil {
		return nil
	}
	if err := xml.Unmarshal(env.Body.Inner, result); err != nil {
		return fmt.Errorf("soap: decode response body: %w", err)
	}
	return nil
}
