package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandleSolve(t *testing.T) {
	solvedCode := "wwwwwwwwwyyyyyyyyyrrrrrrrrrooooooooobbbbbbbbbggggggggg"

	tests := []struct {
		name       string
		body       string
		wantCode   int
		wantStatus string
	}{
		{
			name:       "missing cube",
			body:       `{"op":"solve","cube":""}`,
			wantCode:   http.StatusBadRequest,
			wantStatus: "ERROR_MISSING_CUBE",
		},
		{
			name:       "malformed cube",
			body:       `{"op":"solve","cube":"bryogw"}`,
			wantCode:   http.StatusBadRequest,
			wantStatus: "ERROR_INVALID_CUBE",
		},
		{
			name:       "unknown stage",
			body:       `{"op":"solve","cube":"` + solvedCode + `","stage":"NOT_A_STAGE"}`,
			wantCode:   http.StatusBadRequest,
			wantStatus: "ERROR_INVALID_CUBE",
		},
		{
			name:       "already-solved cube at the default stage",
			body:       `{"op":"solve","cube":"` + solvedCode + `"}`,
			wantCode:   http.StatusOK,
			wantStatus: "ok",
		},
	}

	s := NewServer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/solve", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			s.router.ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Fatalf("status code = %d, want %d (body %s)", rec.Code, tt.wantCode, rec.Body.String())
			}
			var resp SolveResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decoding response: %v", err)
			}
			if resp.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", resp.Status, tt.wantStatus)
			}
		})
	}
}

func TestHandleHealth(t *testing.T) {
	s := NewServer()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status code = %d, want 200", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf(`status = %q, want "ok"`, body["status"])
	}
}
