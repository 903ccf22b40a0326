package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gavv/httpexpect/v2"
	"github.com/vadimbarashkov/tinyurl/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Env: config.EnvDev,
		Log: config.Log{Level: "error"},
	}
}

func TestNewLogger(t *testing.T) {
	logger := NewLogger(testConfig())

	if logger == nil || logger.Logger == nil {
		t.Fatal("expected logger to be created")
	}
}

// TestNewHandler exercises the wired application end to end.
func TestNewHandler(t *testing.T) {
	cfg := testConfig()

	server := httptest.NewServer(NewHandler(cfg, NewLogger(cfg)))
	t.Cleanup(server.Close)

	e := httpexpect.Default(t, server.URL)

	created := e.POST("/api/v1/shorten").
		WithJSON(map[string]string{"original_url": "https://example.com"}).
		Expect().
		Status(http.StatusCreated).
		JSON().Object()

	created.Value("short_code").String().Match(`^[0-9a-f]{4}$`)
	code := created.Value("short_code").String().Raw()

	e.GET("/api/v1/shorten/" + code).
		Expect().
		Status(http.StatusOK).
		JSON().Object().
		Value("stats").Object().
		HasValue("access_count", 1)

	e.GET("/api/v1/shorten/" + code + "/stats").
		Expect().
		Status(http.StatusOK).
		JSON().Object().
		Value("stats").Object().
		HasValue("access_count", 1)

	e.DELETE("/api/v1/shorten/" + code).
		Expect().
		Status(http.StatusNoContent)

	e.GET("/api/v1/shorten/" + code).
		Expect().
		Status(http.StatusNotFound)

	e.POST("/api/v1/shorten").
		WithJSON(map[string]string{"original_url": "https://example.com", "custom_code": "again"}).
		Expect().
		Status(http.StatusCreated)

	e.GET("/api/v1/shorten/again").
		Expect().
		Status(http.StatusOK).
		JSON().Object().
		Value("stats").Object().
		HasValue("access_count", 2)

	e.POST("/api/v1/shorten").
		WithJSON(map[string]string{"original_url": "https://other.example.com", "custom_code": "again"}).
		Expect().
		Status(http.StatusConflict)

	list := e.GET("/api/v1/shorten").
		Expect().
		Status(http.StatusOK).
		JSON().Array()

	list.Length().IsEqual(1)
	list.Value(0).Object().HasValue("original_url", "https://example.com")
}
