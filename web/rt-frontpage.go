//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ucdapi/UnicodeGoServer/internal/lnch"
	"github.com/ucdapi/UnicodeGoServer/internal/vv"
)

// RtFrontpage - who we are and where the data lives
func RtFrontpage(c echo.Context) error {
	type frontpage struct {
		Name           string   `json:"name"`
		Version        string   `json:"version"`
		UnicodeVersion string   `json:"unicodeVersion"`
		Project        string   `json:"project"`
		Routes         []string `json:"routes"`
	}

	return c.JSON(http.StatusOK, frontpage{
		Name:           vv.MYNAME,
		Version:        vv.VERSION,
		UnicodeVersion: lnch.Config.UnicodeVersion,
		Project:        vv.PROJURL,
		Routes: []string{
			"/v1/planes",
			"/v1/planes/{number}",
			"/v1/blocks",
			"/v1/blocks/{name}",
			"/v1/blocks/search",
			"/v1/characters",
			"/v1/characters/{string}",
			"/v1/characters/search",
			"/v1/characters/filter",
			"/v1/codepoints/{hex}",
		},
	})
}
