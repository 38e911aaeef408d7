// This file is part of RVSim.
//
// RVSim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// RVSim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with RVSim.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"rvsim/digest"
	"rvsim/hardware"
	"rvsim/hardware/core"
	"rvsim/imageloader"
	"rvsim/logger"
	"rvsim/modalflag"
	"rvsim/performance"
	"rvsim/signature"
	"rvsim/statsview"
	"rvsim/version"
	"rvsim/video"
	"rvsim/video/sdldisplay"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "PERFORMANCE")
	ver := md.AddBool("version", false, "print version information")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	if *ver {
		v, rev, release := version.Version()
		fmt.Printf("%s %s\n", version.ApplicationName, v)
		if !release {
			fmt.Println(rev)
		}
		os.Exit(0)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md.String(), err)
		os.Exit(20)
	}

	os.Exit(0)
}

// parseAddress converts a numeric string to a 32-bit address. The 0x prefix
// selects hexadecimal, as with the Go language itself.
func parseAddress(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid address (%s)", s)
	}
	return uint32(v), nil
}

// assemble a simulation from the mode's common flag values. The returned
// loader has already been copied into the simulation's memory.
func assemble(md *modalflag.Modes, memoryWords int, sink video.FrameSink, loadAddress string) (*hardware.Sim, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("program image required for %s mode", md)
	case 1:
		// continue below
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	addr, err := parseAddress(loadAddress)
	if err != nil {
		return nil, err
	}

	sim, err := hardware.NewSim(&core.Null{}, memoryWords, os.Stdout, sink)
	if err != nil {
		return nil, err
	}

	ld := imageloader.NewLoader(md.GetArg(0), addr)
	err = ld.CopyInto(sim.Mem)
	if err != nil {
		return nil, err
	}

	return sim, nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	memoryWords := md.AddInt("memory", hardware.DefaultMemoryWords, "memory capacity in words")
	ticks := md.AddUint64("ticks", hardware.DefaultTickBudget, "maximum number of ticks to run")
	loadAddress := md.AddString("loadaddr", fmt.Sprintf("%#x", imageloader.DefaultAddress), "address to load program image at")
	halt := md.AddString("halt", "", "address to watch for the halt sentinel")
	vcd := md.AddString("vcd", "", "record signal waveforms to file")
	sigFile := md.AddString("signature", "", "write compliance signature to file")
	sigBegin := md.AddString("sigbegin", "", "first address of signature window")
	sigEnd := md.AddString("sigend", "", "end address of signature window (exclusive)")
	display := md.AddBool("display", false, "display video output in a window")
	frameDigest := md.AddBool("digest", false, "print hash of video output instead of displaying it")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	profile := md.AddString("profile", "none", "run through profiler: CPU, MEM, TRACE, ALL")
	stats := md.AddBool("statsview", false, "run stats server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	prof, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	// the display and the digest sink both want exclusive use of the frame
	// stream
	if *display && *frameDigest {
		return fmt.Errorf("the display and digest flags cannot be combined")
	}

	var sink video.FrameSink
	var dig *digest.Video

	switch {
	case *display:
		sink, err = sdldisplay.NewDisplay()
		if err != nil {
			return err
		}
	case *frameDigest:
		dig = digest.NewVideo()
		sink = dig
	default:
		sink = video.NewDummySink()
	}

	sim, err := assemble(md, *memoryWords, sink, *loadAddress)
	if err != nil {
		return err
	}
	defer sim.End()

	sim.TickBudget = *ticks

	if *halt != "" {
		sim.HaltAddress, err = parseAddress(*halt)
		if err != nil {
			return err
		}
	}

	if *vcd != "" {
		err = sim.EnableTrace(*vcd)
		if err != nil {
			return err
		}
	}

	// log output would mangle the progress indicator
	if !*log {
		sim.Output = md.Output
	}

	// a ctrl-c ends the run cooperatively, leaving teardown to happen as
	// normal
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	err = performance.RunProfiler(prof, "run", func() error {
		return sim.Run(func() (bool, error) {
			select {
			case <-intChan:
				return false, nil
			default:
			}
			return true, nil
		})
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "simulation ended after %d ticks\n", sim.Tick())

	if dig != nil {
		fmt.Fprintf(md.Output, "video digest: %s (%d frames)\n", dig.Hash(), dig.FrameCount())
	}

	// the signature is taken from memory after the run has ended
	if *sigFile != "" {
		if *sigBegin == "" || *sigEnd == "" {
			return fmt.Errorf("signature window required (sigbegin and sigend flags)")
		}

		win := signature.Window{Filename: *sigFile}

		win.Begin, err = parseAddress(*sigBegin)
		if err != nil {
			return err
		}
		win.End, err = parseAddress(*sigEnd)
		if err != nil {
			return err
		}

		err = win.Write(sim.Mem)
		if err != nil {
			return err
		}
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	memoryWords := md.AddInt("memory", hardware.DefaultMemoryWords, "memory capacity in words")
	loadAddress := md.AddString("loadaddr", fmt.Sprintf("%#x", imageloader.DefaultAddress), "address to load program image at")
	display := md.AddBool("display", false, "display video output in a window")
	duration := md.AddString("duration", "5s", "run duration (note: there is a 1s overhead)")
	profile := md.AddString("profile", "none", "run through profiler: CPU, MEM, TRACE, ALL")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	prof, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	var sink video.FrameSink
	if *display {
		sink, err = sdldisplay.NewDisplay()
		if err != nil {
			return err
		}
	} else {
		sink = video.NewDummySink()
	}

	sim, err := assemble(md, *memoryWords, sink, *loadAddress)
	if err != nil {
		return err
	}
	defer sim.End()

	return performance.Check(md.Output, prof, sim, *duration)
}
