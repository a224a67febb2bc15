// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package tui

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"

	"grimm.is/flywatch/internal/config"
	"grimm.is/flywatch/internal/errors"
	"grimm.is/flywatch/internal/page"
)

// RemoteBackend implements Backend against a flywatch HTTP API, so an
// operator can attach a terminal to a headless instance.
type RemoteBackend struct {
	BaseURL string
	Client  *http.Client
}

// NewRemoteBackend creates a new remote backend
func NewRemoteBackend(baseURL string, insecure bool) *RemoteBackend {
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: insecure},
	}

	return &RemoteBackend{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client: &http.Client{
			Timeout:   10 * time.Second,
			Transport: transport,
		},
	}
}

func (b *RemoteBackend) do(method, path string, body any, lang string) (*http.Response, error) {
	url := b.BaseURL + path
	start := time.Now()

	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, errors.KindInternal, "encode request")
		}
		rd = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, rd)
	if err != nil {
		return nil, errors.Wrap(err, errors.KindInternal, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if lang != "" {
		req.Header.Set("Accept-Language", lang)
	}

	resp, err := b.Client.Do(req)
	if err != nil {
		DebugLog("request failed", "method", method, "url", url, "duration", time.Since(start), "error", err)
		return nil, errors.Wrapf(err, errors.KindUnavailable, "%s %s", method, path)
	}
	DebugLog("request", "method", method, "url", url, "status", resp.StatusCode, "duration", time.Since(start))
	return resp, nil
}

// expect closes resp and returns an error unless it has the wanted status.
// On success the body is decoded into out when out is non-nil.
func expect(resp *http.Response, status int, out any) error {
	defer resp.Body.Close()
	if resp.StatusCode != status {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		kind := errors.KindUnavailable
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			kind = errors.KindValidation
		}
		msg := resp.Status
		if apiErr.Error != "" {
			msg += ": " + apiErr.Error
		}
		return errors.New(kind, "api error: "+msg)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, errors.KindInternal, "decode response")
	}
	return nil
}

func (b *RemoteBackend) GetPage(lang language.Tag) (*page.Page, error) {
	resp, err := b.do(http.MethodGet, "/api/notifications", nil, lang.String())
	if err != nil {
		return nil, err
	}
	var pg page.Page
	if err := expect(resp, http.StatusOK, &pg); err != nil {
		return nil, err
	}
	return &pg, nil
}

func (b *RemoteBackend) ClearAll() error {
	resp, err := b.do(http.MethodDelete, "/api/notifications", nil, "")
	if err != nil {
		return err
	}
	return expect(resp, http.StatusNoContent, nil)
}

func (b *RemoteBackend) MarkRead() error {
	resp, err := b.do(http.MethodPost, "/api/notifications/read", nil, "")
	if err != nil {
		return err
	}
	return expect(resp, http.StatusNoContent, nil)
}

func (b *RemoteBackend) GetSettings() (*config.NotificationsConfig, error) {
	resp, err := b.do(http.MethodGet, "/api/settings/notifications", nil, "")
	if err != nil {
		return nil, err
	}
	var n config.NotificationsConfig
	if err := expect(resp, http.StatusOK, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

func (b *RemoteBackend) ApplySettings(n *config.NotificationsConfig) error {
	resp, err := b.do(http.MethodPut, "/api/settings/notifications", n, "")
	if err != nil {
		return err
	}
	return expect(resp, http.StatusOK, nil)
}
