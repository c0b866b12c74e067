package sfvhttp

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sfv-go/sfv"
)

func TestServerCanonicalizesItem(t *testing.T) {
	s := NewServer(sfv.ParseOptions{})
	req := httptest.NewRequest("POST", "/canonicalize/item", strings.NewReader("gzip;q=0.8"))
	rr := httptest.NewRecorder()

	s.Router().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status code is %d, body %s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), `"gzip;q=0.8"`) {
		t.Fatalf("body is %s", rr.Body.String())
	}
}

func TestServerRejectsBadValue(t *testing.T) {
	s := NewServer(sfv.ParseOptions{})
	req := httptest.NewRequest("POST", "/canonicalize/item", strings.NewReader("42 43"))
	rr := httptest.NewRecorder()

	s.Router().ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status code is %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestServerRejectsUnsupportedShape(t *testing.T) {
	s := NewServer(sfv.ParseOptions{})
	req := httptest.NewRequest("POST", "/canonicalize/set", strings.NewReader("1"))
	rr := httptest.NewRecorder()

	s.Router().ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status code is %d, want %d", rr.Code, http.StatusBadRequest)
	}
}
