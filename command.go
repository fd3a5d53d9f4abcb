package main

import (
	"flag"
	"fmt"
	htmltemplate "html/template"
	"log"
	"os"
	"runtime"
	"strings"
	"text/template"

	"github.com/BurntSushi/cinedex/tpl"
)

var (
	flagCpuProfile = ""
	flagCpu        = runtime.NumCPU()
	flagQuiet      = false
	flagDb         = ""
	flagConfig     = ""
)

func init() {
	log.SetFlags(0)
}

type command struct {
	name            string
	positionalUsage string
	shortHelp       string
	help            string
	flags           *flag.FlagSet
	addFlags        func(*command)
	run             func(*command) bool
	tpls            *template.Template
	conf            *config
}

func (c *command) showUsage() {
	log.Printf("Usage: cinedex %s [flags] %s\n", c.name, c.positionalUsage)
	c.showFlags()
	os.Exit(1)
}

func (c *command) showHelp() {
	log.Printf("Usage: cinedex %s [flags] %s\n\n", c.name, c.positionalUsage)
	log.Println(strings.TrimSpace(c.help))
	log.Printf("\nThe flags are:\n\n")
	c.showFlags()
	log.Println("")
	os.Exit(1)
}

func (c *command) showFlags() {
	c.flags.VisitAll(func(fl *flag.Flag) {
		if fl.Name == "cpu-prof" { // don't show this to users
			return
		}
		var def string
		if len(fl.DefValue) > 0 {
			def = fmt.Sprintf(" (default: %s)", fl.DefValue)
		} else {
			def = " (default: \"\")"
		}
		usage := strings.Replace(fl.Usage, "\n", "\n    ", -1)
		log.Printf("-%s%s\n", fl.Name, def)
		log.Printf("    %s\n", usage)
	})
}

func (c *command) setCommonFlags() {
	c.flags.StringVar(&flagDb, "db", flagDb,
		"Overrides the database to be used. It should be a string of the "+
			"form 'driver:dsn'.\nSee the config file for more details.")
	c.flags.StringVar(&flagConfig, "config", flagConfig,
		"If set, the configuration is loaded from the file given.")
	c.flags.StringVar(&flagCpuProfile, "cpu-prof", flagCpuProfile,
		"When set, a CPU profile will be written to the file path provided.")
	c.flags.IntVar(&flagCpu, "cpu", flagCpu,
		"Sets the maximum number of CPUs that can be executing simultaneously.")
	c.flags.BoolVar(&flagQuiet, "quiet", flagQuiet,
		"When set, status messages about the progress of a command will be "+
			"omitted.\n"+
			"For example, this will hide warnings about skipped records\n"+
			"while loading.")
}

func (c *command) dbinfo() (driver, dsn string) {
	if len(flagDb) > 0 {
		dbInfo := strings.SplitN(flagDb, ":", 2)
		if len(dbInfo) != 2 {
			fatalf("The '-db' flag must look like 'driver:dsn', but got '%s'.",
				flagDb)
		}
		return dbInfo[0], dbInfo[1]
	}
	conf := c.config()
	return conf.Driver, conf.DataSource
}

// config returns the configuration given with '-config', or the one in the
// configuration directory. If neither exists, the defaults are used.
func (c *command) config() config {
	if c.conf != nil {
		return *c.conf
	}
	fpath := flagConfig
	if len(fpath) == 0 {
		var err error
		if fpath, err = configFile("config.toml"); err != nil {
			logf("No configuration found. Using defaults. "+
				"(Run 'cinedex write-config' to create one.)")
			conf := defaultConf()
			c.conf = &conf
			return conf
		}
	}
	conf, err := readConfig(fpath)
	if err != nil {
		fatalf("%s", err)
	}
	c.conf = &conf
	return conf
}

func (c *command) tplExec(template *template.Template, data interface{}) {
	if err := tpl.ExecText(template, os.Stdout, data); err != nil {
		fatalf(err.Error())
	}
}

// tpl returns the text template with the given name. Templates are read from
// 'format.tpl' in the configuration directory if it exists.
func (c *command) tpl(name string) *template.Template {
	if c.tpls == nil {
		fpath, _ := configFile("format.tpl")
		tpls, err := tpl.ParseText(fpath)
		if err != nil {
			fatalf("%s", err)
		}
		c.tpls = tpls
	}
	t := c.tpls.Lookup(name)
	if t == nil {
		fatalf("Could not find template with name '%s'.", name)
	}
	return t
}

// htmlTpls returns the templates of the web server, read from 'search.html'
// in the configuration directory if it exists.
func (c *command) htmlTpls() *htmltemplate.Template {
	fpath, _ := configFile("search.html")
	tpls, err := tpl.ParseHTML(fpath)
	if err != nil {
		fatalf("%s", err)
	}
	return tpls
}

func (c *command) assertNArg(n int) {
	if c.flags.NArg() != n {
		c.showUsage()
	}
}

func (c *command) assertLeastNArg(n int) {
	if c.flags.NArg() < n {
		c.showUsage()
	}
}
