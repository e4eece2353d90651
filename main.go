//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/ucdapi/UnicodeGoServer/internal/db"
	"github.com/ucdapi/UnicodeGoServer/internal/ingest"
	"github.com/ucdapi/UnicodeGoServer/internal/lnch"
	"github.com/ucdapi/UnicodeGoServer/internal/mps"
	"github.com/ucdapi/UnicodeGoServer/internal/vv"
	"github.com/ucdapi/UnicodeGoServer/web"
)

func main() {
	lnch.ConfigAtLaunch()
	msg := lnch.Msg

	versioninfo := fmt.Sprintf("%s (v.%s) serving UCD %s", vv.MYNAME, vv.VERSION, lnch.Config.UnicodeVersion)
	versioninfo += fmt.Sprintf(" [loglevel=%d]", lnch.Config.LogLevel)
	msg.MAND(versioninfo)

	if lnch.Config.IngestMode {
		ingest.Run()
		return
	}

	// concurrent launching
	var awaiting sync.WaitGroup

	awaiting.Add(1)
	go func(awaiting *sync.WaitGroup) {
		defer awaiting.Done()

		start := time.Now()
		previous := time.Now()

		mps.UC = mps.BuildCache()
		msg.Timer("A1", fmt.Sprintf("cache built: %d planes, %d blocks, %d character names",
			len(mps.UC.Planes), len(mps.UC.Blocks), len(mps.UC.CharNames)), start, previous)
	}(&awaiting)

	awaiting.Add(1)
	go func(awaiting *sync.WaitGroup) {
		defer awaiting.Done()

		start := time.Now()
		previous := time.Now()

		db.OpenReadOnly(lnch.DBFile())
		msg.Timer("B1", "store opened read-only", start, previous)
	}(&awaiting)

	awaiting.Wait()

	web.StartEchoServer()
}
