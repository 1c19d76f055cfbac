// Package salesforce is the HTTP client for the external CRM sync service.
// The service performs the actual record synchronization and owns the
// authoritative connection state; this adapter only speaks its JSON API.
package salesforce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"maildeck/internal/core/domain"
	"maildeck/internal/core/port"
)

// Client implements port.CRMGateway against the sync service's REST API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a gateway for the sync service reachable at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type statusResponse struct {
	Connected       bool       `json:"connected"`
	InstanceURL     string     `json:"instance_url"`
	ConnectedAt     *time.Time `json:"connected_at"`
	LastSync        *time.Time `json:"last_sync"`
	SyncStatus      string     `json:"sync_status"`
	LastSyncMessage string     `json:"last_sync_message"`
	LastSyncRecords int        `json:"last_sync_records"`
}

type connectRequest struct {
	ClientID    int64  `json:"clientId"`
	InstanceURL string `json:"instanceUrl"`
	AppID       string `json:"appId"`
	AppSecret   string `json:"appSecret"`
}

type syncRequest struct {
	ClientID      int64  `json:"clientId"`
	FullSync      bool   `json:"fullSync"`
	CorrelationID string `json:"correlationId,omitempty"`
}

type syncResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Records int    `json:"records"`
	Error   string `json:"error"`
}

type fieldsResponse struct {
	Groups []struct {
		ObjectType string `json:"object_type"`
		Fields     []struct {
			Label   string `json:"label"`
			APIName string `json:"api_name"`
			Custom  bool   `json:"custom"`
		} `json:"fields"`
	} `json:"groups"`
}

// Status fetches the connection and sync-status snapshot for a client.
func (c *Client) Status(ctx context.Context, clientID int64) (*domain.Connection, error) {
	var resp statusResponse
	if err := c.get(ctx, "/api/salesforce/status", clientID, &resp); err != nil {
		return nil, err
	}
	return connectionFrom(resp), nil
}

// Connect exchanges credentials for a connection. The service reports
// failures either as non-2xx or as success=false with an error message.
func (c *Client) Connect(ctx context.Context, req port.ConnectRequest) (*domain.Connection, error) {
	body := connectRequest{
		ClientID:    req.ClientID,
		InstanceURL: req.InstanceURL,
		AppID:       req.AppID,
		AppSecret:   req.AppSecret,
	}
	var resp struct {
		statusResponse
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := c.post(ctx, "/api/salesforce/connect", body, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("sync service rejected connect: %s", resp.Error)
	}
	return connectionFrom(resp.statusResponse), nil
}

// Disconnect tears down the connection. Already-synced contacts are kept
// by the service.
func (c *Client) Disconnect(ctx context.Context, clientID int64) error {
	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	body := struct {
		ClientID int64 `json:"clientId"`
	}{ClientID: clientID}
	if err := c.post(ctx, "/api/salesforce/disconnect", body, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("sync service rejected disconnect: %s", resp.Error)
	}
	return nil
}

// Sync runs one import on the service and returns its report.
func (c *Client) Sync(ctx context.Context, req port.SyncRequest) (*port.SyncResult, error) {
	body := syncRequest{
		ClientID:      req.ClientID,
		FullSync:      req.FullSync,
		CorrelationID: req.CorrelationID,
	}
	var resp syncResponse
	if err := c.post(ctx, "/api/salesforce/sync", body, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("sync service reported failure: %s", resp.Error)
	}
	return &port.SyncResult{Message: resp.Message, Records: resp.Records}, nil
}

// Fields fetches the remote schema's field list grouped by object type.
func (c *Client) Fields(ctx context.Context, clientID int64) ([]domain.FieldGroup, error) {
	var resp fieldsResponse
	if err := c.get(ctx, "/api/salesforce/fields", clientID, &resp); err != nil {
		return nil, err
	}
	groups := make([]domain.FieldGroup, 0, len(resp.Groups))
	for _, g := range resp.Groups {
		fg := domain.FieldGroup{ObjectType: g.ObjectType}
		for _, f := range g.Fields {
			fg.Fields = append(fg.Fields, domain.Field{
				Label:   f.Label,
				APIName: f.APIName,
				Custom:  f.Custom,
			})
		}
		groups = append(groups, fg)
	}
	return groups, nil
}

func (c *Client) get(ctx context.Context, path string, clientID int64, out any) error {
	u := c.baseURL + path + "?clientId=" + url.QueryEscape(strconv.FormatInt(clientID, 10))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	buf, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(buf))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("sync service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// keep the body short; the service returns terse error strings
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("sync service returned %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	if out == nil {
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode sync service response: %w", err)
	}
	return nil
}

func connectionFrom(r statusResponse) *domain.Connection {
	status := domain.SyncStatus(r.SyncStatus)
	switch status {
	case domain.SyncIdle, domain.SyncSyncing, domain.SyncSuccess, domain.SyncError:
	default:
		status = domain.SyncIdle
	}
	return &domain.Connection{
		Connected:       r.Connected,
		InstanceURL:     r.InstanceURL,
		ConnectedAt:     r.ConnectedAt,
		LastSync:        r.LastSync,
		SyncStatus:      status,
		LastSyncMessage: r.LastSyncMessage,
		LastSyncRecords: r.LastSyncRecords,
	}
}

var _ port.CRMGateway = (*Client)(nil)
