//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ucdapi/UnicodeGoServer/internal/mps"
	"github.com/ucdapi/UnicodeGoServer/internal/str"
)

// RtPlanes - the seventeen planes, in order
func RtPlanes(c echo.Context) error {
	uc := mps.UC
	return c.JSON(http.StatusOK, str.ListResponse[str.UnicodePlane]{
		URL:          c.Request().RequestURI,
		TotalResults: len(uc.Planes),
		HasMore:      false,
		Data:         uc.Planes,
	})
}

// RtPlaneByNumber - one plane by its 0-16 number
func RtPlaneByNumber(c echo.Context) error {
	const (
		BAD = `'%s' is not a plane number; planes run 0 through 16`
	)

	raw := c.Param("number")
	n, e := strconv.Atoi(raw)
	if e != nil {
		return apifail(c, str.NewAPIError(str.ErrBadEnumValue, fmt.Sprintf(BAD, raw)))
	}
	p := mps.UC.PlaneByNumber(n)
	if p == nil {
		return apifail(c, str.NewAPIError(str.ErrBadEnumValue, fmt.Sprintf(BAD, raw)))
	}
	return c.JSON(http.StatusOK, p)
}
