//    UnicodeGoServer
//    Copyright: UGS Project 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"text/template"

	"github.com/ucdapi/UnicodeGoServer/internal/mm"
	"github.com/ucdapi/UnicodeGoServer/internal/str"
	"github.com/ucdapi/UnicodeGoServer/internal/vv"
)

var (
	Config *str.CurrentConfiguration
	Msg    = mm.NewMessageMaker()
)

// BuildDefaultConfig - the configuration you get if no file, env, or flag says otherwise
func BuildDefaultConfig() *str.CurrentConfiguration {
	return &str.CurrentConfiguration{
		BlackAndWhite:  false,
		BucketURL:      vv.DEFAULTBUCKETURL,
		DataRoot:       vv.DEFAULTDATAROOT,
		EchoLog:        vv.DEFAULTECHOLOGLEVEL,
		Env:            vv.ENVDEV,
		Gzip:           true,
		HostIP:         vv.DEFAULTHOSTIP,
		HostPort:       vv.DEFAULTHOSTPORT,
		IngestMode:     false,
		LogLevel:       vv.DEFAULTGOLOGLEVEL,
		QuietStart:     false,
		RateBurst:      vv.DEFAULTRATEBURST,
		RatePerPeriod:  vv.DEFAULTRATEPERPERIOD,
		RatePeriodSec:  vv.DEFAULTRATEPERIODSEC,
		RDLogin:        str.RedisLogin{Host: vv.DEFAULTREDISHOST, Port: vv.DEFAULTREDISPORT, DB: vv.DEFAULTREDISDB},
		UnicodeVersion: vv.DEFAULTUNICODEVERSION,
		ZipBundles:     false,
	}
}

// ConfigAtLaunch - defaults, then the JSON config file, then the environment, then the command line
func ConfigAtLaunch() {
	const (
		FAILRD = `Could not parse the information in '%s'. Skipping and attempting to use built-in defaults instead.`
	)

	Config = BuildDefaultConfig()

	cf := fmt.Sprintf("%s/%s", vv.CONFIGLOCATION, vv.CONFIGNAME)
	if _, e := os.Stat(cf); e != nil {
		uh, _ := os.UserHomeDir()
		cf = fmt.Sprintf(vv.CONFIGALTAPTH, uh) + vv.CONFIGNAME
	}

	if loaded, e := os.Open(cf); e == nil {
		decoder := json.NewDecoder(loaded)
		conf := str.CurrentConfiguration{}
		if errc := decoder.Decode(&conf); errc == nil {
			Config = &conf
		} else {
			Msg.CRIT(fmt.Sprintf(FAILRD, cf))
		}
		_ = loaded.Close()
	}

	configfromenvironment()
	configfromcommandline()

	Msg.LLvl = Config.LogLevel
	Msg.BW = Config.BlackAndWhite
}

// configfromenvironment - the enumerated environment variables trump the config file
func configfromenvironment() {
	strvar := func(name string, target *string) {
		if v, ok := os.LookupEnv(name); ok {
			*target = v
		}
	}
	intvar := func(name string, target *int) {
		if v, ok := os.LookupEnv(name); ok {
			n, e := strconv.Atoi(v)
			if e == nil {
				*target = n
			} else {
				Msg.WARN(fmt.Sprintf("'%s' is not a number: %s", name, v))
			}
		}
	}

	strvar("ENV", &Config.Env)
	strvar("UNICODE_VERSION", &Config.UnicodeVersion)
	strvar("UGS_DATA_ROOT", &Config.DataRoot)
	strvar("BUCKET_URL", &Config.BucketURL)
	strvar("REDIS_HOST", &Config.RDLogin.Host)
	strvar("REDIS_PW", &Config.RDLogin.Pass)
	intvar("REDIS_PORT", &Config.RDLogin.Port)
	intvar("REDIS_DB", &Config.RDLogin.DB)
	intvar("RATE_LIMIT_PER_PERIOD", &Config.RatePerPeriod)
	intvar("RATE_LIMIT_PERIOD_SECONDS", &Config.RatePeriodSec)
	intvar("RATE_LIMIT_BURST", &Config.RateBurst)
}

// configfromcommandline - flags trump the file and the environment
func configfromcommandline() {
	args := os.Args[1:]

	atoi := func(s string) int {
		n, e := strconv.Atoi(s)
		Msg.EC(e)
		return n
	}

	for i, a := range args {
		switch a {
		case "-v":
			fmt.Println(versionstring())
			os.Exit(1)
		case "-h":
			printhelp()
			os.Exit(0)
		case "-gl":
			Config.LogLevel = atoi(args[i+1])
		case "-el":
			Config.EchoLog = atoi(args[i+1])
		case "-a":
			Config.HostIP = args[i+1]
		case "-p":
			Config.HostPort = atoi(args[i+1])
		case "-u":
			Config.UnicodeVersion = args[i+1]
		case "-q":
			Config.QuietStart = true
		case "-bw":
			Config.BlackAndWhite = true
		case "-ing":
			Config.IngestMode = true
		case "-zip":
			Config.ZipBundles = true
		}
	}
}

func versionstring() string {
	return fmt.Sprintf("%s (v.%s)", vv.MYNAME, vv.VERSION)
}

// printhelp - build and print the help text
func printhelp() {
	const (
		HELP = `{{.name}}
an HTTP query service over the Unicode Character Database

command line options:
   -a    <address> listen on this address [default: {{.host}}]
   -p    <port>    listen on this port [default: {{.port}}]
   -u    <version> serve this UCD version [default: {{.ucd}}]
   -ing            ingest "{{.xml}}" + "{{.pva}}" into a fresh store, then exit
   -zip            also bundle the db and json output as zip archives when ingesting
   -gl   <0-5>     log level
   -el   <0-3>     echo request log level
   -q              quiet start
   -bw             disable color in terminal output
   -v              print version and exit
   -h              print this help

environment: ENV, UNICODE_VERSION, UGS_DATA_ROOT, BUCKET_URL,
   RATE_LIMIT_PER_PERIOD, RATE_LIMIT_PERIOD_SECONDS, RATE_LIMIT_BURST,
   REDIS_HOST, REDIS_PORT, REDIS_DB, REDIS_PW

project: {{.url}}`
	)

	m := map[string]any{
		"name": versionstring(),
		"host": vv.DEFAULTHOSTIP,
		"port": vv.DEFAULTHOSTPORT,
		"ucd":  vv.DEFAULTUNICODEVERSION,
		"xml":  vv.UCDXMLFILENAME,
		"pva":  vv.PROPALIASFILENAME,
		"url":  vv.PROJURL,
	}

	t := template.Must(template.New("").Parse(HELP))
	var b bytes.Buffer
	Msg.EC(t.Execute(&b, m))
	fmt.Println(b.String())
}

//
// DATA LAYOUT
//

// VersionRoot - "<dataroot>/<version>"
func VersionRoot() string {
	return filepath.Join(Config.DataRoot, Config.UnicodeVersion)
}

// JSONDir - where the side-files live for the active UCD version
func JSONDir() string {
	return filepath.Join(VersionRoot(), vv.JSONFOLDER)
}

// DBDir - where the sqlite file lives for the active UCD version
func DBDir() string {
	return filepath.Join(VersionRoot(), vv.DBFOLDER)
}

func DBFile() string {
	return filepath.Join(DBDir(), vv.DBFILENAME)
}
