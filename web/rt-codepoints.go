//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RtCodepointByHex - the strict single-codepoint lookup: "U+2211", "0x2211",
// or "2211"
func RtCodepointByHex(c echo.Context) error {
	cp, ae := parsecodepoint(c.Param("hex"))
	if ae != nil {
		return apifail(c, ae)
	}

	pm, ae := assembleone(cp, csvparam(c, "show_props"), boolparam(c, "verbose"))
	if ae != nil {
		return apifail(c, ae)
	}
	return c.JSON(http.StatusOK, pm)
}
