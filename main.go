package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"sort"
	"strings"
	"text/tabwriter"
)

var commands = []*command{
	cmdServe,
	cmdSearch,
	cmdShow,
	cmdLoad,
	cmdFacets,
	cmdSize,
	cmdClean,
	cmdWriteConfig,
}

func usage() {
	pef("cinedex is a tool for searching a catalog of movies.\n")
	pef("Usage:\n\n    cinedex {command} [flags] [arguments]\n")
	pef("Use 'cinedex help {command}' for more details on {command}.\n")

	sort.Slice(commands, func(i, j int) bool {
		return commands[i].name < commands[j].name
	})

	pef("A list of commands:\n")
	tabw := tabwriter.NewWriter(os.Stderr, 0, 0, 4, ' ', 0)
	for _, c := range commands {
		fmt.Fprintf(tabw, "    %s\t%s\n", c.name, c.shortHelp)
	}
	tabw.Flush()
	pef("")
	os.Exit(1)
}

func main() {
	var cmd string
	var help bool
	if len(os.Args) < 2 {
		usage()
	} else if strings.TrimLeft(os.Args[1], "-") == "help" {
		if len(os.Args) < 3 {
			usage()
		} else {
			cmd = os.Args[2]
			help = true
		}
	} else {
		cmd = os.Args[1]
	}

	for _, c := range commands {
		if c.name == cmd {
			c.setCommonFlags()
			if c.addFlags != nil {
				c.addFlags(c)
			}
			if help {
				c.showHelp()
			} else {
				c.flags.Usage = c.showUsage
				c.flags.Parse(os.Args[2:])

				if flagCpu < 1 {
					flagCpu = 1
				}
				runtime.GOMAXPROCS(flagCpu)

				if len(flagCpuProfile) > 0 {
					f := createFile(flagCpuProfile)
					pprof.StartCPUProfile(f)
					defer f.Close()
					defer pprof.StopCPUProfile()
				}

				if !c.run(c) {
					os.Exit(1)
				}
				return
			}
		}
	}
	pef("Unknown command '%s'. Run 'cinedex help' for a list of "+
		"available commands.", cmd)
	os.Exit(1)
}
