// Command emulator runs a Game Boy ROM in an SDL2 window.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ernesto27/gbcore/internal/cartridge"
	"github.com/ernesto27/gbcore/internal/display"
	"github.com/ernesto27/gbcore/internal/emulator"
	"github.com/ernesto27/gbcore/internal/input"
)

const (
	version     = "0.1.0"
	projectName = "gbcore"
)

func main() {
	var (
		romPath    = flag.String("rom", "", "path to a Game Boy ROM file (.gb/.gbc/.rom)")
		scale      = flag.Int("scale", 3, "integer window scale factor")
		gbColors   = flag.Bool("gbcolors", true, "use the authentic greenish DMG palette instead of grayscale")
		showInfo   = flag.Bool("info", false, "print cartridge header info and exit")
		realTime   = flag.Bool("realtime", true, "pace emulation to ~60 FPS instead of running flat out")
	)
	flag.Parse()

	if *romPath == "" {
		fmt.Fprintln(os.Stderr, "usage: emulator -rom path/to/game.gb")
		os.Exit(1)
	}

	cart, err := cartridge.LoadFromFile(*romPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", projectName, err)
		os.Exit(1)
	}
	fmt.Println(cart.String())
	if *showInfo {
		return
	}

	emu := emulator.New(cart)
	emu.RealTime = *realTime
	emu.SetTrace(os.Stderr)

	win, err := display.NewWindow(fmt.Sprintf("%s - %s", projectName, cart.Title), *scale)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", projectName, err)
		os.Exit(1)
	}
	defer win.Close()

	inputManager := input.NewManager(emu.Bus.Joypad)

	for {
		if inputManager.PollAndApply() {
			return
		}

		if emu.StepFrame() {
			var frame []byte
			if *gbColors {
				frame = emu.Framebuffer()
			} else {
				frame = emu.FramebufferGrayscale()
			}
			if err := win.Present(frame); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", projectName, err)
				return
			}
		}

		if out := emu.DrainSerial(); len(out) > 0 {
			os.Stdout.Write(out)
		}
	}
}
