//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/ucdapi/UnicodeGoServer/internal/lnch"
	"github.com/ucdapi/UnicodeGoServer/internal/vlt"
	"github.com/ucdapi/UnicodeGoServer/internal/vv"
)

var (
	msg = lnch.Msg
)

// StartEchoServer - start serving; this blocks and does not return while the
// program remains alive
func StartEchoServer() {
	const (
		LLOGFMT = "r: ${status}\tt: ${latency_human}\tu: ${uri}\n"
		RLOGFMT = "${remote_ip}\t${status}\t${bytes_out}\t${uri}\n"
	)

	//
	// SETUP
	//

	e := echo.New()
	e.HideBanner = true

	e.Server.ReadTimeout = vv.TIMEOUTRD
	e.Server.WriteTimeout = vv.TIMEOUTWR

	switch lnch.Config.EchoLog {
	case 3:
		e.Use(middleware.Logger())
	case 2:
		e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{Format: RLOGFMT}))
	case 1:
		e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{Format: LLOGFMT}))
	default:
		// do nothing
	}

	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(vv.MAXECHOREQPERSECONDPERIP)))

	e.Use(middleware.Recover())

	if lnch.Config.Gzip {
		e.Use(middleware.GzipWithConfig(middleware.GzipConfig{Level: 5}))
	}

	// the GCRA limiter over the shared KV store is the real gate
	e.Use(GCRAGate(vlt.NewRateLimiter(vlt.NewKVStore())))

	//
	// ROUTES
	//

	//
	// [a] frontpage ("rt-frontpage.go")
	//

	e.GET("/", RtFrontpage)

	//
	// [b] planes ("rt-planes.go")
	//

	e.GET("/v1/planes", RtPlanes)
	e.GET("/v1/planes/:number", RtPlaneByNumber)

	//
	// [c] blocks ("rt-blocks.go")
	//

	e.GET("/v1/blocks", RtBlocks)
	e.GET("/v1/blocks/search", RtBlocksSearch)
	e.GET("/v1/blocks/:name", RtBlockByName)

	//
	// [d] characters ("rt-characters.go")
	//

	e.GET("/v1/characters", RtCharacters)
	e.GET("/v1/characters/search", RtCharactersSearch)
	e.GET("/v1/characters/filter", RtCharactersFilter)
	e.GET("/v1/characters/:string", RtCharactersString)

	//
	// [e] codepoints ("rt-codepoints.go")
	//

	e.GET("/v1/codepoints/:hex", RtCodepointByHex)

	//
	// GO
	//

	e.HidePort = true
	msg.MAND(fmt.Sprintf("%s (v%s) is ready to serve on http://%s:%d",
		vv.MYNAME, vv.VERSION, lnch.Config.HostIP, lnch.Config.HostPort))
	msg.EC(e.Start(fmt.Sprintf("%s:%d", lnch.Config.HostIP, lnch.Config.HostPort)))
}
