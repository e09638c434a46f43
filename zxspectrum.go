// This file is part of ZX-Spectrum-Emu.
//
// ZX-Spectrum-Emu is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ZX-Spectrum-Emu is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ZX-Spectrum-Emu.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/OhhJordy/ZX-Spectrum-Emu/curated"
	"github.com/OhhJordy/ZX-Spectrum-Emu/digest"
	"github.com/OhhJordy/ZX-Spectrum-Emu/disassembly"
	"github.com/OhhJordy/ZX-Spectrum-Emu/gui/sdlplay"
	"github.com/OhhJordy/ZX-Spectrum-Emu/hardware"
	"github.com/OhhJordy/ZX-Spectrum-Emu/logger"
	"github.com/OhhJordy/ZX-Spectrum-Emu/modalflag"
	"github.com/OhhJordy/ZX-Spectrum-Emu/paths"
	"github.com/OhhJordy/ZX-Spectrum-Emu/performance"
	"github.com/OhhJordy/ZX-Spectrum-Emu/prefs"
	"github.com/OhhJordy/ZX-Spectrum-Emu/statsview"
	"github.com/OhhJordy/ZX-Spectrum-Emu/wavwriter"
)

// SDL requires that window events are handled on the thread that created the
// window. the main goroutine is locked to the main thread and all modes run
// on it.
func init() {
	runtime.LockOSThread()
}

// #mainthread
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(exitVal)
}

// launch the mode selected by the arguments. returns the exit value of the
// program.
func launch(ctx context.Context, args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "HEADLESS", "DISASM", "PERFORMANCE")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md, output)

	case "HEADLESS":
		err = headless(ctx, md, output)

	case "DISASM":
		err = disasm(md, output)

	case "PERFORMANCE":
		err = perform(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

// flags common to all modes.
type commonFlags struct {
	rom       *string
	sna       *string
	log       *bool
	prefs     *string
	statsview *bool
}

func addCommonFlags(md *modalflag.Modes) commonFlags {
	return commonFlags{
		rom:       md.AddString("rom", "", "16K ROM image"),
		sna:       md.AddString("sna", "", "SNA snapshot to load after the ROM"),
		log:       md.AddBool("log", false, "echo debugging log to stdout"),
		prefs:     md.AddString("prefs", "", "preferences to override. eg. \"hardware.interrupt::nmi; hardware.flashperiod::8\""),
		statsview: md.AddBool("statsview", false, fmt.Sprintf("run stats server on %s", statsview.DefaultAddress)),
	}
}

// create the Spectrum from the common flags. a snapshot can also be given as
// the only remaining argument.
func (f commonFlags) create(md *modalflag.Modes, output io.Writer) (*hardware.Spectrum, error) {
	if *f.log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	if *f.statsview {
		if err := statsview.Launch(output, ""); err != nil {
			return nil, err
		}
	}

	sna := *f.sna
	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		if sna != "" {
			return nil, curated.Errorf("snapshot specified twice")
		}
		sna = md.GetArg(0)
	default:
		return nil, curated.Errorf("too many arguments for %s mode", md)
	}

	if *f.rom == "" {
		return nil, curated.Errorf("ROM image required for %s mode", md)
	}

	if *f.prefs != "" {
		prefs.PushCommandLineStack(*f.prefs)
	}

	s, err := hardware.NewSpectrum(nil)

	if *f.prefs != "" {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			fmt.Fprintf(output, "* unused preferences: %s\n", unused)
		}
	}

	if err != nil {
		return nil, err
	}

	rom, err := os.ReadFile(*f.rom)
	if err != nil {
		return nil, curated.Errorf("%v", err)
	}

	err = s.LoadROM(rom)
	if err != nil {
		return nil, err
	}

	if sna != "" {
		data, err := os.ReadFile(sna)
		if err != nil {
			return nil, curated.Errorf("%v", err)
		}
		err = s.LoadSnapshot(data)
		if err != nil {
			return nil, err
		}
	}

	return s, nil
}

// autoFilename is the value of a filename flag that asks for a generated
// filename.
const autoFilename = "auto"

// the name of an output file. the autoFilename value is replaced with a
// unique filename based on the name of the ROM.
func outputFilename(filename string, prepend string, rom string, ext string) string {
	if filename != autoFilename {
		return filename
	}
	name := strings.TrimSuffix(filepath.Base(rom), filepath.Ext(rom))
	return paths.UniqueFilename(prepend, name) + ext
}

// capture the beeper to a WAV file. the returned function should be called
// when the emulation has finished.
func addWav(filename string) (func(hardware.FrameResult) error, func() error, error) {
	if filename == "" {
		return nil, func() error { return nil }, nil
	}

	aw, err := wavwriter.New(filename, wavwriter.SampleRate)
	if err != nil {
		return nil, nil, err
	}

	onFrame := func(r hardware.FrameResult) error {
		return aw.SetAudio(r.BeeperLevel, r.Beeper, r.Cycles)
	}

	return onFrame, aw.EndMixing, nil
}

func run(ctx context.Context, md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	common := addCommonFlags(md)
	scale := md.AddFloat64("scale", sdlplay.DefaultScale, "window scaling")
	fpsCap := md.AddBool("fpscap", true, "cap fps to 50Hz")
	wav := md.AddString("wav", "", fmt.Sprintf("record beeper to wav file (%q for a generated filename)", autoFilename))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	s, err := common.create(md, output)
	if err != nil {
		return err
	}

	onFrame, endWav, err := addWav(outputFilename(*wav, "beeper", *common.rom, ".wav"))
	if err != nil {
		return err
	}

	scr, err := sdlplay.NewSdlPlay(s, float32(*scale), *fpsCap)
	if err != nil {
		return err
	}
	defer scr.Destroy()

	err = scr.Run(ctx, onFrame)
	if err != nil {
		return err
	}

	return endWav()
}

func headless(ctx context.Context, md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	common := addCommonFlags(md)
	frames := md.AddInt("frames", 50, "number of frames to run")
	wav := md.AddString("wav", "", fmt.Sprintf("record beeper to wav file (%q for a generated filename)", autoFilename))
	showDigest := md.AddBool("digest", false, "print video and audio digests of the run")
	save := md.AddString("save", "", fmt.Sprintf("save SNA snapshot when finished (%q for a generated filename)", autoFilename))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *frames < 0 {
		return curated.Errorf("number of frames must not be negative (%d)", *frames)
	}

	s, err := common.create(md, output)
	if err != nil {
		return err
	}

	onWav, endWav, err := addWav(outputFilename(*wav, "beeper", *common.rom, ".wav"))
	if err != nil {
		return err
	}

	vdig := digest.NewVideo()
	adig := digest.NewAudio()

	var instructions int
	var dropped int
	err = s.RunForFrameCount(ctx, *frames, func(r hardware.FrameResult) error {
		instructions += r.Instructions
		dropped += r.DroppedInterrupts
		if *showDigest {
			vdig.AddFrame(s.DecodeVideo(), s.ULA.Border())
			adig.AddFrame(r.BeeperLevel, r.Beeper)
		}
		if onWav != nil {
			return onWav(r)
		}
		return nil
	})

	// the machine state is shown even if the emulation has failed
	fmt.Fprintf(output, "%d frames, %d instructions", s.FrameNum(), instructions)
	if dropped > 0 {
		fmt.Fprintf(output, ", %d dropped interrupts", dropped)
	}
	fmt.Fprintln(output)
	fmt.Fprintln(output, strings.TrimSpace(s.CPU.String()))
	if *showDigest {
		fmt.Fprintf(output, "video: %s\naudio: %s\n", vdig.Hash(), adig.Hash())
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	if *save != "" {
		err = saveSnapshot(s, outputFilename(*save, "snapshot", *common.rom, ".sna"))
		if err != nil {
			return err
		}
	}

	return endWav()
}

func saveSnapshot(s *hardware.Spectrum, filename string) error {
	snap, err := s.SaveSnapshot()
	if err != nil {
		return err
	}

	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("%v", err)
	}

	err = snap.Write(f)
	if err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return curated.Errorf("%v", err)
	}

	logger.Logf(logger.Allow, "snapshot", "saved to %s", filename)

	return nil
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	common := addCommonFlags(md)
	fpsCap := md.AddBool("fpscap", false, "cap fps to 50Hz")
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "run performance check with profiling: cpu, mem, all (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	s, err := common.create(md, output)
	if err != nil {
		return err
	}

	return performance.Check(output, prf, s, !*fpsCap, *duration)
}

func disasm(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	common := addCommonFlags(md)
	origin := md.AddInt("origin", 0, "address of the first instruction")
	count := md.AddInt("count", 32, "number of instructions")
	bytecode := md.AddBool("bytecode", true, "include bytecode in disassembly")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *origin < 0 || *origin > 0xffff {
		return curated.Errorf("origin out of range (%d)", *origin)
	}

	s, err := common.create(md, output)
	if err != nil {
		return err
	}

	dsm, err := disassembly.NewDisassembly(s.Mem)
	if err != nil {
		return err
	}

	return disassembly.Write(output, disassembly.WriteAttr{ByteCode: *bytecode}, dsm.Linear(uint16(*origin), *count))
}
