//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

import "time"

const (
	MYNAME    = "UnicodeGoServer"
	SHORTNAME = "UGS"
	VERSION   = "1.4.2"
	PROJURL   = "https://github.com/ucdapi/UnicodeGoServer"

	ENVDEV  = "DEV"
	ENVPROD = "PROD"
	ENVTEST = "TEST"

	MAXCODEPOINT    = 0x10FFFF
	PLANESIZE       = 0x10000
	NUMBEROFPLANES  = 17
	SURROGATESTART  = 0xD800
	SURROGATEFINISH = 0xDFFF

	CONFIGLOCATION = "."
	CONFIGNAME     = "ugs-conf.json"
	CONFIGALTAPTH  = "%s/.config/" // %s = os.UserHomeDir()

	DEFAULTHOSTIP         = "127.0.0.1"
	DEFAULTHOSTPORT       = 3507
	DEFAULTECHOLOGLEVEL   = 0
	DEFAULTGOLOGLEVEL     = 0
	DEFAULTUNICODEVERSION = "15.0.0"
	DEFAULTDATAROOT       = "ucd-data" // holds "<version>/json" and "<version>/db"
	DEFAULTBUCKETURL      = "https://unicode-api.us-southeast-1.linodeobjects.com"

	DEFAULTRATEPERPERIOD = 50
	DEFAULTRATEPERIODSEC = 60
	DEFAULTRATEBURST     = 10

	DEFAULTREDISHOST = "127.0.0.1"
	DEFAULTREDISPORT = 6379
	DEFAULTREDISDB   = 0

	// rt-* parameter bounds

	MINPAGESIZE     = 1
	MAXPAGESIZE     = 100
	DEFAULTPAGESIZE = 10
	DEFAULTPERPAGE  = 10
	MINFUZZYSCORE   = 70
	SUGGESTIONSCORE = 72
	MAXSUGGESTIONS  = 5

	TIMEOUTRD   = 15 * time.Second
	TIMEOUTWR   = 120 * time.Second
	LOCKTIMEOUT = 5 * time.Second

	MAXECHOREQPERSECONDPERIP = 60 // echo's own memory limiter; the GCRA limiter in vlt is the real gate

	JSONINDENT = "  "

	// database & side-file layout: "<dataroot>/<version>/db/ucd.db" etc.

	DBFILENAME        = "ucd.db"
	DBFOLDER          = "db"
	JSONFOLDER        = "json"
	PLANESJSON        = "planes.json"
	BLOCKSJSON        = "blocks.json"
	CHARNAMEMAPJSON   = "char_name_map.json"
	UNIHANCHARSJSON   = "unihan_chars.json"
	TANGUTCHARSJSON   = "tangut_chars.json"
	PROPVALUESJSON    = "prop_values.json"
	UCDXMLFILENAME    = "ucd.all.flat.xml"
	PROPALIASFILENAME = "PropertyValueAliases.txt"

	// the reserved id the catalog hands back when a property group is not in
	// this UCD version's PropertyValueAliases.txt

	INVALIDPROPVALUEID = -1
	NOTAVAILABLE       = "N/A"

	INGESTBATCHSIZE = 500

	TESTRATELIMITHEADER = "X-Verify-Rate-Limiting"
)
