package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/rcakit/ishikawa/pkg/cache"
)

const thaiPayload = `{
	"effect": "ผู้ป่วยได้รับยาผิด",
	"categories": [
		{"label": "คน", "items": ["พยาบาลเร่งรีบ", "สื่อสารคลาดเคลื่อน"]},
		{"label": "วิธีการ", "items": ["ไม่ตรวจสอบซ้ำ"]}
	]
}`

func newTestServer(t *testing.T, c cache.Cache) *httptest.Server {
	t.Helper()
	logger := log.New(io.Discard)
	srv := httptest.NewServer(NewServer(c, logger).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestCreateDiagramSVG(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, err := http.Post(srv.URL+"/v1/diagrams", "application/json", strings.NewReader(thaiPayload))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q", ct)
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}

	body, _ := io.ReadAll(resp.Body)
	svg := string(body)
	if got := strings.Count(svg, `class="bone"`); got != 2 {
		t.Errorf("got %d bones, want 2", got)
	}
	if got := strings.Count(svg, `class="rib"`); got != 3 {
		t.Errorf("got %d ribs, want 3", got)
	}
}

func TestCreateDiagramJSON(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, err := http.Post(srv.URL+"/v1/diagrams?format=json&profile=executive", "application/json", strings.NewReader(thaiPayload))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var doc struct {
		Profile string  `json:"profile"`
		Width   float64 `json:"width"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if doc.Profile != "executive" {
		t.Errorf("profile = %q, want executive", doc.Profile)
	}
}

func TestCreateDiagramDOT(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, err := http.Post(srv.URL+"/v1/diagrams?format=dot", "application/json", strings.NewReader(thaiPayload))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if !strings.HasPrefix(string(body), "digraph causes {") {
		t.Errorf("dot output = %.40q", body)
	}
}

func TestCreateDiagramBadJSON(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, err := http.Post(srv.URL+"/v1/diagrams", "application/json", strings.NewReader(`{"effect": `))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	var e errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&e); err != nil {
		t.Fatal(err)
	}
	if e.Error.Code != "INVALID_INPUT" {
		t.Errorf("error code = %q, want INVALID_INPUT", e.Error.Code)
	}
}

func TestCreateDiagramUnknownFormat(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, err := http.Post(srv.URL+"/v1/diagrams?format=gif", "application/json", strings.NewReader(thaiPayload))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestCreateDiagramUnknownProfile(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, err := http.Post(srv.URL+"/v1/diagrams?profile=gigantic", "application/json", strings.NewReader(thaiPayload))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	var e errorResponse
	_ = json.NewDecoder(resp.Body).Decode(&e)
	if e.Error.Code != "INVALID_PROFILE" {
		t.Errorf("error code = %q, want INVALID_PROFILE", e.Error.Code)
	}
}

func TestCreateDiagramCaching(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	srv := newTestServer(t, c)

	post := func() *http.Response {
		t.Helper()
		resp, err := http.Post(srv.URL+"/v1/diagrams", "application/json", strings.NewReader(thaiPayload))
		if err != nil {
			t.Fatal(err)
		}
		return resp
	}

	first := post()
	firstBody, _ := io.ReadAll(first.Body)
	first.Body.Close()
	if got := first.Header.Get("X-Cache"); got != "miss" {
		t.Errorf("first X-Cache = %q, want miss", got)
	}

	second := post()
	secondBody, _ := io.ReadAll(second.Body)
	second.Body.Close()
	if got := second.Header.Get("X-Cache"); got != "hit" {
		t.Errorf("second X-Cache = %q, want hit", got)
	}
	if string(firstBody) != string(secondBody) {
		t.Error("cached artifact differs from rendered artifact")
	}
}
