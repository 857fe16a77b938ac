// Package config loads machine configuration from Starlark scripts.
//
// A configuration script assigns any of these globals:
//
//	load_address  = 0x0600    # Where programs are assembled.
//	reset_address = 0x0600    # Program counter after reset.
//	clock_hz      = 60000     # Instructions per second.
//	zoom          = 16        # Window pixels per video pixel.
//	title         = "vm6502"  # Window title.
//
// The machine constants MEMORY_SIZE, STACK_BASE, VIDEO_BASE, VIDEO_WIDTH,
// VIDEO_HEIGHT and VIDEO_SIZE are predeclared. Unassigned globals keep
// their defaults, and reset_address defaults to load_address.
package config

import (
	"errors"
	"log"
	"os"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/vm6502/memory"
	"github.com/ezrec/vm6502/translate"
)

var f = translate.From

var ErrConfigValue = errors.New(f("invalid configuration value"))

// ErrConfig locates a configuration error.
type ErrConfig struct {
	Name string // Script name.
	Key  string // Global name, if any.
	Err  error
}

func (err *ErrConfig) Error() string {
	if len(err.Key) == 0 {
		return f("%v: %v", err.Name, err.Err)
	}
	return f("%v: %v: %v", err.Name, err.Key, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}

const (
	DEFAULT_LOAD_ADDRESS = 0x0600
	DEFAULT_CLOCK_HZ     = 60000
	DEFAULT_ZOOM         = 16
	DEFAULT_TITLE        = "vm6502"

	MAX_CLOCK_HZ = 100_000_000
	MAX_ZOOM     = 64
)

// Config is the machine configuration.
type Config struct {
	LoadAddress  uint16 // Assembly load address.
	ResetAddress uint16 // Program counter after reset.
	ClockHz      int    // Instructions per second.
	Zoom         int    // Window pixels per video pixel.
	Title        string // Window title.
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		LoadAddress:  DEFAULT_LOAD_ADDRESS,
		ResetAddress: DEFAULT_LOAD_ADDRESS,
		ClockHz:      DEFAULT_CLOCK_HZ,
		Zoom:         DEFAULT_ZOOM,
		Title:        DEFAULT_TITLE,
	}
}

var predeclared = starlark.StringDict{
	"MEMORY_SIZE":  starlark.MakeInt(memory.SIZE),
	"STACK_BASE":   starlark.MakeInt(memory.STACK_BASE),
	"VIDEO_BASE":   starlark.MakeInt(memory.VIDEO_BASE),
	"VIDEO_WIDTH":  starlark.MakeInt(memory.VIDEO_WIDTH),
	"VIDEO_HEIGHT": starlark.MakeInt(memory.VIDEO_HEIGHT),
	"VIDEO_SIZE":   starlark.MakeInt(memory.VIDEO_SIZE),
}

// intGlobal reads an integer global within [lo, hi].
func intGlobal(globals starlark.StringDict, key string, lo, hi int64) (value int64, ok bool, err error) {
	st_value, ok := globals[key]
	if !ok {
		return
	}

	st_int, is_int := st_value.(starlark.Int)
	if !is_int {
		err = ErrConfigValue
		return
	}

	value, is_int64 := st_int.Int64()
	if !is_int64 || value < lo || value > hi {
		err = ErrConfigValue
		return
	}

	return
}

// Parse evaluates a configuration script. src may be a string, []byte or
// io.Reader.
func Parse(name string, src any) (cfg Config, err error) {
	cfg = Default()

	var key string
	defer func() {
		if err != nil {
			err = &ErrConfig{Name: name, Key: key, Err: err}
		}
	}()

	thread := starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("%v: %v", name, msg)
		},
	}
	opts := syntax.FileOptions{}
	globals, err := starlark.ExecFileOptions(&opts, &thread, name, src, predeclared)
	if err != nil {
		return
	}

	ints := []struct {
		key    string
		lo, hi int64
		set    func(value int64)
	}{
		{"load_address", 0, 0xffff, func(v int64) {
			cfg.LoadAddress = uint16(v)
			cfg.ResetAddress = uint16(v)
		}},
		{"reset_address", 0, 0xffff, func(v int64) { cfg.ResetAddress = uint16(v) }},
		{"clock_hz", 1, MAX_CLOCK_HZ, func(v int64) { cfg.ClockHz = int(v) }},
		{"zoom", 1, MAX_ZOOM, func(v int64) { cfg.Zoom = int(v) }},
	}

	for _, entry := range ints {
		var value int64
		var ok bool
		key = entry.key
		value, ok, err = intGlobal(globals, entry.key, entry.lo, entry.hi)
		if err != nil {
			return
		}
		if ok {
			entry.set(value)
		}
	}

	key = "title"
	st_title, ok := globals[key]
	if ok {
		title, is_string := starlark.AsString(st_title)
		if !is_string {
			err = ErrConfigValue
			return
		}
		cfg.Title = title
	}
	key = ""

	return
}

// Load reads and evaluates a configuration script from a file.
func Load(path string) (cfg Config, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	return Parse(path, data)
}
