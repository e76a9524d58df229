// Command discover broadcasts a scan head discovery request on every
// active interface and prints the heads that answer.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/millvision/scanhead"
)

func main() {
	units := flag.String("units", "inches", "scan system units (inches or millimeters)")
	flag.Parse()

	var u scanhead.Units
	switch *units {
	case "inches":
		u = scanhead.UnitsInches
	case "millimeters", "mm":
		u = scanhead.UnitsMillimeter
	default:
		log.Fatalf("unknown units %q", *units)
	}

	sys, err := scanhead.NewSystem(u)
	if err != nil {
		log.Fatalf("create scan system: %v", err)
	}

	heads := sys.DiscoveredHeads()
	if len(heads) == 0 {
		fmt.Println("no scan heads discovered")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SERIAL\tIP\tTYPE\tFIRMWARE")
	for _, d := range heads {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d.%d.%d\n",
			d.SerialNumber, d.IPAddr, d.TypeStr,
			d.FirmwareMajor, d.FirmwareMinor, d.FirmwarePatch)
	}
	w.Flush()
}
