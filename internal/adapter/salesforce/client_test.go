package salesforce

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"maildeck/internal/core/domain"
	"maildeck/internal/core/port"
)

func TestStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/salesforce/status" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.URL.Query().Get("clientId") != "7" {
			t.Fatalf("unexpected clientId %q", r.URL.Query().Get("clientId"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"connected": true,
			"instance_url": "https://acme.my.salesforce.com",
			"sync_status": "success",
			"last_sync_message": "Imported 240 contacts.",
			"last_sync_records": 240
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)

	conn, err := c.Status(context.Background(), 7)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if !conn.Connected || conn.SyncStatus != domain.SyncSuccess {
		t.Fatalf("unexpected connection %+v", conn)
	}
	if conn.LastSyncRecords != 240 {
		t.Fatalf("expected 240 records, got %d", conn.LastSyncRecords)
	}
}

func TestStatusNormalizesUnknownSyncStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"connected": true, "sync_status": "exploded"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)

	conn, err := c.Status(context.Background(), 7)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if conn.SyncStatus != domain.SyncIdle {
		t.Fatalf("unknown sync_status must fall back to idle, got %s", conn.SyncStatus)
	}
}

func TestConnect(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/salesforce/connect" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["instanceUrl"] != "https://acme.my.salesforce.com" || body["appId"] != "id" {
			t.Fatalf("unexpected body %v", body)
		}
		_, _ = w.Write([]byte(`{
			"success": true,
			"connected": true,
			"instance_url": "https://acme.my.salesforce.com",
			"sync_status": "idle"
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)

	conn, err := c.Connect(context.Background(), port.ConnectRequest{
		ClientID:    7,
		InstanceURL: "https://acme.my.salesforce.com",
		AppID:       "id",
		AppSecret:   "secret",
	})
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if !conn.Connected {
		t.Fatal("expected connected")
	}
}

func TestConnectRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": false, "error": "invalid credentials"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)

	_, err := c.Connect(context.Background(), port.ConnectRequest{
		ClientID: 7, InstanceURL: "u", AppID: "a", AppSecret: "s",
	})
	if err == nil || !strings.Contains(err.Error(), "invalid credentials") {
		t.Fatalf("expected rejection with service error, got %v", err)
	}
}

func TestSync(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/salesforce/sync" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["correlationId"] != "abc-123" {
			t.Fatalf("expected correlation id, got %v", body["correlationId"])
		}
		if body["fullSync"] != true {
			t.Fatalf("expected fullSync true, got %v", body["fullSync"])
		}
		_, _ = w.Write([]byte(`{"success": true, "message": "Imported 12 contacts.", "records": 12}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)

	res, err := c.Sync(context.Background(), port.SyncRequest{
		ClientID: 7, FullSync: true, CorrelationID: "abc-123",
	})
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if res.Records != 12 || res.Message != "Imported 12 contacts." {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestSyncServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": false, "error": "rate limited"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)

	_, err := c.Sync(context.Background(), port.SyncRequest{ClientID: 7})
	if err == nil || !strings.Contains(err.Error(), "rate limited") {
		t.Fatalf("expected service failure, got %v", err)
	}
}

func TestNon2xxStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)

	_, err := c.Status(context.Background(), 7)
	if err == nil || !strings.Contains(err.Error(), "502") {
		t.Fatalf("expected 502 error, got %v", err)
	}
}

func TestBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)

	_, err := c.Status(context.Background(), 7)
	if err == nil || !strings.Contains(err.Error(), "decode") {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestUnreachable(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", 200*time.Millisecond)

	_, err := c.Status(context.Background(), 7)
	if err == nil || !strings.Contains(err.Error(), "unreachable") {
		t.Fatalf("expected unreachable error, got %v", err)
	}
}

func TestFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/salesforce/fields" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"groups": [
			{"object_type": "Contact", "fields": [
				{"label": "Email", "api_name": "Email", "custom": false},
				{"label": "Region", "api_name": "Region__c", "custom": true}
			]}
		]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)

	groups, err := c.Fields(context.Background(), 7)
	if err != nil {
		t.Fatalf("Fields: %v", err)
	}
	if len(groups) != 1 || groups[0].ObjectType != "Contact" {
		t.Fatalf("unexpected groups %+v", groups)
	}
	if len(groups[0].Fields) != 2 || !groups[0].Fields[1].Custom {
		t.Fatalf("unexpected fields %+v", groups[0].Fields)
	}
}
