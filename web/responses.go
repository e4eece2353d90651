//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"github.com/labstack/echo/v4"

	"github.com/ucdapi/UnicodeGoServer/internal/str"
)

//
// THE ERROR BOUNDARY
//
// every handler funnels its domain errors through apifail; nothing else in
// the service writes an error response
//

type errorpayload struct {
	URL     string   `json:"url"`
	Status  int      `json:"status"`
	Message string   `json:"message"`
	Detail  []string `json:"detail,omitempty"`
}

func apifail(c echo.Context, ae *str.APIError) error {
	return c.JSON(ae.Status(), errorpayload{
		URL:     c.Request().RequestURI,
		Status:  ae.Status(),
		Message: ae.Message,
		Detail:  ae.Detail,
	})
}
