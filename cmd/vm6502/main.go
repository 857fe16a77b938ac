// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ezrec/vm6502/config"
	"github.com/ezrec/vm6502/emulator"
	"github.com/ezrec/vm6502/video"
)

// parseAddress parses $hex, 0xhex or decimal addresses.
func parseAddress(text string) (addr uint16, err error) {
	if strings.HasPrefix(text, "$") {
		text = "0x" + text[1:]
	}

	value, err := strconv.ParseUint(text, 0, 16)
	if err != nil {
		return
	}

	addr = uint16(value)
	return
}

// overrideAddresses applies the -load and -reset flags to cfg. The reset
// address follows -load only when the configuration did not move it away
// from the load address.
func overrideAddresses(cfg *config.Config, load, reset string) (err error) {
	if len(load) != 0 {
		var addr uint16
		addr, err = parseAddress(load)
		if err != nil {
			err = fmt.Errorf("-load %v: %w", load, err)
			return
		}
		if cfg.ResetAddress == cfg.LoadAddress {
			cfg.ResetAddress = addr
		}
		cfg.LoadAddress = addr
	}

	if len(reset) != 0 {
		var addr uint16
		addr, err = parseAddress(reset)
		if err != nil {
			err = fmt.Errorf("-reset %v: %w", reset, err)
			return
		}
		cfg.ResetAddress = addr
	}

	return
}

// screenshot writes video memory as a PNG. The CPU must be stopped.
func screenshot(emu *emulator.Emulator, path string, zoom int) (err error) {
	ouf, err := os.Create(path)
	if err != nil {
		return
	}
	defer func() {
		err = errors.Join(err, ouf.Close())
	}()

	err = video.WritePNG(ouf, emu.Memory.Video(), zoom)
	return
}

func main() {
	var compile string
	var configFile string
	var load string
	var reset string
	var headless bool
	var maxTicks int
	var screenshotFile string
	var verbose bool

	flag.StringVar(&compile, "c", "", ".asm file to assemble and run")
	flag.StringVar(&configFile, "config", "", ".star machine configuration")
	flag.StringVar(&load, "load", "", "Load address, overrides configuration")
	flag.StringVar(&reset, "reset", "", "Reset address, overrides configuration")
	flag.BoolVar(&headless, "headless", false, "Run without a window")
	flag.IntVar(&maxTicks, "n", 0, "Maximum instructions to run headless (0 for no limit)")
	flag.StringVar(&screenshotFile, "screenshot", "", "Write the final video frame to a .png")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(compile) == 0 {
		log.Fatalf("%v: -c file.asm is required", os.Args[0])
	}

	cfg := config.Default()
	if len(configFile) != 0 {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			log.Fatalf("%v: %v", configFile, err)
		}
	}

	err := overrideAddresses(&cfg, load, reset)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	emu := emulator.NewEmulator(cfg)
	emu.Verbose = verbose

	inf, err := os.Open(compile)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}
	err = emu.Load(inf)
	inf.Close()
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	if headless {
		for done, err := emu.Tick(); !done; done, err = emu.Tick() {
			if err != nil {
				log.Fatalf("%v: %v", compile, err)
			}
			if maxTicks > 0 && emu.Ticks >= maxTicks {
				break
			}
		}
		fmt.Print(emu.String())
	} else {
		ctx, cancel := context.WithCancel(context.Background())

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := emu.Run(ctx)
			if err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("%v: %v", compile, err)
			}
		}()

		ebiten.SetWindowSize(video.WIDTH*cfg.Zoom, video.HEIGHT*cfg.Zoom)
		ebiten.SetWindowTitle(cfg.Title)

		err = ebiten.RunGame(&Game{emu: emu, zoom: cfg.Zoom})

		cancel()
		wg.Wait()

		if err != nil {
			log.Fatal(err)
		}
	}

	if len(screenshotFile) != 0 {
		err = screenshot(emu, screenshotFile, cfg.Zoom)
		if err != nil {
			log.Fatalf("%v: %v", screenshotFile, err)
		}
	}
}
