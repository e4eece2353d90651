//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/ucdapi/UnicodeGoServer/internal/lnch"
)

var (
	msg = lnch.Msg

	// SQLPool - the serving connection pool; opened read-only and exclusive
	// because nothing mutates the store after ingestion
	SQLPool *sql.DB
)

// OpenReadOnly - open the store for serving: read-only, exclusive-lock mode
func OpenReadOnly(path string) {
	const (
		FAIL1 = "OpenReadOnly() could not open '%s'"
		FAIL2 = `No database at '%s'. Run '%s -ing' first, or fetch a published bundle.`
		DSN   = "file:%s?mode=ro&_pragma=query_only(1)&_pragma=locking_mode(exclusive)"
	)

	pool, e := sql.Open("sqlite", fmt.Sprintf(DSN, path))
	if e != nil {
		msg.CRIT(fmt.Sprintf(FAIL1, path))
		msg.EC(e)
	}

	if e = pool.Ping(); e != nil {
		msg.CRIT(fmt.Sprintf(FAIL2, path, "UnicodeGoServer"))
		msg.EC(e)
	}

	SQLPool = pool
}

// OpenReadWrite - open (or create) the store for ingestion; WAL off and
// synchronous off because a bulk load that dies is simply rerun
func OpenReadWrite(path string) *sql.DB {
	const (
		DSN = "file:%s?_pragma=journal_mode(off)&_pragma=synchronous(off)"
	)

	pool, e := sql.Open("sqlite", fmt.Sprintf(DSN, path))
	msg.EC(e)
	return pool
}
