//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/ucdapi/UnicodeGoServer/internal/lnch"
)

func TestMain(m *testing.M) {
	lnch.Config = lnch.BuildDefaultConfig()
	os.Exit(m.Run())
}

func gatedctx(t *testing.T, path string, hdr map[string]string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = "203.0.113.9:4711"
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	return e.NewContext(req, httptest.NewRecorder())
}

func TestGatedCoversOnlyDataRoutes(t *testing.T) {
	assert.True(t, gated(gatedctx(t, "/v1/characters", nil)))
	assert.True(t, gated(gatedctx(t, "/v1/blocks/search?name=latin", nil)))
	assert.True(t, gated(gatedctx(t, "/v1/codepoints/0x2211", nil)))
	assert.True(t, gated(gatedctx(t, "/v1/planes/0", nil)))

	assert.False(t, gated(gatedctx(t, "/", nil)))
	assert.False(t, gated(gatedctx(t, "/healthz", nil)))
}

func TestGatedExemptions(t *testing.T) {
	// our own front end announces itself
	c := gatedctx(t, "/v1/characters", map[string]string{"Sec-Fetch-Site": "same-site"})
	assert.False(t, gated(c))

	// loopback and bridge traffic is infrastructure, not a client
	c = gatedctx(t, "/v1/characters", map[string]string{"X-Forwarded-For": "127.0.0.1"})
	assert.False(t, gated(c))
	c = gatedctx(t, "/v1/characters", map[string]string{"X-Forwarded-For": "172.17.0.3"})
	assert.False(t, gated(c))
}

func TestLocalIP(t *testing.T) {
	for _, ip := range []string{"127.0.0.1", "127.8.8.8", "::1", "10.0.4.2", "172.17.0.2", "192.168.1.50"} {
		assert.True(t, localip(ip), ip)
	}

	// real parsing, not string prefixes: "::1f00:1" is not loopback,
	// 172.18/16 is outside the docker bridge, and garbage never matches
	for _, ip := range []string{"203.0.113.9", "8.8.8.8", "172.18.0.2", "::1f00:1", "2001:db8::1", "10.wat", ""} {
		assert.False(t, localip(ip), ip)
	}
}
