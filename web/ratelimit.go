//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ucdapi/UnicodeGoServer/internal/lnch"
	"github.com/ucdapi/UnicodeGoServer/internal/str"
	"github.com/ucdapi/UnicodeGoServer/internal/vlt"
	"github.com/ucdapi/UnicodeGoServer/internal/vv"
)

//
// GCRA GATE
//

// GCRAGate - the per-ip limiter in front of the data routes; browser-local
// traffic and the non-data routes pass freely
func GCRAGate(limiter *vlt.RateLimiter) echo.MiddlewareFunc {
	const (
		DENIED  = "rate limit exceeded; retry in %v"
		ALLOWED = "rate limit: %s allowed (%d left)"
		REFUSED = "rate limit: %s denied (retry in %v)"
	)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !gated(c) {
				return next(c)
			}

			ip := c.RealIP()
			decision, ae := limiter.Allow(c.Request().Context(), ip)
			if ae != nil {
				return apifail(c, ae)
			}

			if !decision.Allowed {
				retry := decision.RetryIn.Round(time.Millisecond)
				msg.PEEK(fmt.Sprintf(REFUSED, ip, retry))
				return apifail(c, str.NewAPIError(str.ErrRateLimited, fmt.Sprintf(DENIED, retry)))
			}

			msg.TMI(fmt.Sprintf(ALLOWED, ip, decision.Remaining))
			return next(c)
		}
	}
}

// gated - whether this request counts against the client's budget
func gated(c echo.Context) bool {
	// the test suite can force inclusion regardless of the exemptions
	if lnch.Config.Env == vv.ENVTEST && c.Request().Header.Get(vv.TESTRATELIMITHEADER) != "" {
		return true
	}

	path := c.Request().URL.Path
	data := false
	for _, prefix := range []string{"/v1/blocks", "/v1/characters", "/v1/codepoints", "/v1/planes"} {
		if strings.HasPrefix(path, prefix) {
			data = true
			break
		}
	}
	if !data {
		return false
	}

	if localip(c.RealIP()) {
		return false
	}
	if c.Request().Header.Get("Sec-Fetch-Site") == "same-site" {
		return false
	}
	return true
}

// exemptnets - 10/8 and 192.168/16 LAN clients plus the default docker
// bridge; NOT all of RFC1918, so 172.18.0.0/16 and friends stay gated
var exemptnets = func() []*net.IPNet {
	var nets []*net.IPNet
	for _, cidr := range []string{"10.0.0.0/8", "172.17.0.0/16", "192.168.0.0/16"} {
		_, n, e := net.ParseCIDR(cidr)
		msg.EC(e)
		nets = append(nets, n)
	}
	return nets
}()

// localip - loopback, LAN and docker-bridge clients are our own infrastructure
func localip(ip string) bool {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return false
	}
	if parsed.IsLoopback() {
		return true
	}
	for _, n := range exemptnets {
		if n.Contains(parsed) {
			return true
		}
	}
	return false
}
