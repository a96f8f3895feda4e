package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"strconv"
	"strings"

	traffic "github.com/xoolive/traffic-rs"
	"github.com/xoolive/traffic-rs/interval"
	"github.com/xoolive/traffic-rs/table"
)

var version string
var commit string
var date string

var cpuprofile = flag.String("cpuprofile", "", "write cpu profile `file`")
var memprofile = flag.String("memprofile", "", "write memory profile to `file`")
var verbose = flag.Bool("v", false, "print verbose output")

func usage() {
	fmt.Println("Usage: traffic [OPTIONS] <operation> <left> <right>")
	fmt.Println()
	fmt.Println("Computes a set operation over two interval collections.")
	fmt.Println()
	fmt.Println("The operation is one of: union, intersection, difference.")
	fmt.Println("Each operand is either an inline list of start:stop pairs")
	fmt.Println("in Unix seconds, e.g. 1647861000:1647861120,1647861240:1647861300,")
	fmt.Println("or a path to a JSON file prefixed with an '@'.")
	fmt.Println()
	fmt.Println("Options:")

	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	// Start cpuprofile
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	args := flag.Args()
	if len(args) != 3 {
		usage()
		os.Exit(1)
	}

	left, err := readOperand(args[1])
	if err != nil {
		log.Fatalf("failed to read left operand: %v", err)
	}
	right, err := readOperand(args[2])
	if err != nil {
		log.Fatalf("failed to read right operand: %v", err)
	}

	res, ok, err := traffic.Apply(traffic.Op(args[0]), left, right)
	if err != nil {
		log.Fatalf("failed to apply operation: %v", err)
	}
	if !ok {
		fmt.Println("empty result")
	} else {
		fmt.Printf("%v", table.Formatted(table.FromCollection(res)))
		if *verbose {
			fmt.Println("total duration:", res.TotalDuration())
		}
	}

	// Write memprofile
	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal("could not create memory profile: ", err)
		}
		defer f.Close()
		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal("could not write memory profile: ", err)
		}
	}
}

func readOperand(arg string) (interval.Collection, error) {
	if strings.HasPrefix(arg, "@") {
		data, err := os.ReadFile(arg[1:])
		if err != nil {
			return interval.Collection{}, err
		}
		var set traffic.Set
		if err := json.Unmarshal(data, &set); err != nil {
			return interval.Collection{}, err
		}
		return set.Collection()
	}
	var set traffic.Set
	for _, pair := range strings.Split(arg, ",") {
		bounds := strings.SplitN(pair, ":", 2)
		if len(bounds) != 2 {
			return interval.Collection{}, fmt.Errorf("malformed pair %q", pair)
		}
		start, err := strconv.ParseInt(bounds[0], 10, 64)
		if err != nil {
			return interval.Collection{}, fmt.Errorf("malformed start in %q", pair)
		}
		stop, err := strconv.ParseInt(bounds[1], 10, 64)
		if err != nil {
			return interval.Collection{}, fmt.Errorf("malformed stop in %q", pair)
		}
		set.Start = append(set.Start, start)
		set.Stop = append(set.Stop, stop)
	}
	return set.Collection()
}
