//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

// RedisLogin - connection info for the shared key-value store backing the
// rate limiter
type RedisLogin struct {
	Host string
	Port int
	DB   int
	Pass string
}

type CurrentConfiguration struct {
	BlackAndWhite  bool
	BucketURL      string
	DataRoot       string
	EchoLog        int // 0: "none", 1: "terse", 2: "prolix", 3: "prolix+remoteip"
	Env            string
	Gzip           bool
	HostIP         string
	IngestMode     bool
	HostPort       int
	LogLevel       int
	QuietStart     bool
	RateBurst      int
	RatePerPeriod  int
	RatePeriodSec  int
	RDLogin        RedisLogin
	UnicodeVersion string
	ZipBundles     bool
}
