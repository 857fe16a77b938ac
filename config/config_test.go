package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Parse("empty.star", "")
	assert.NoError(err)
	assert.Equal(Default(), cfg)
	assert.Equal(uint16(0x0600), cfg.LoadAddress)
	assert.Equal(cfg.LoadAddress, cfg.ResetAddress)
}

func TestParse(t *testing.T) {
	assert := assert.New(t)

	script := []string{
		"load_address = VIDEO_BASE + VIDEO_SIZE + 0x100",
		"clock_hz = 1000 * 10",
		"zoom = 8",
		`title = "demo"`,
	}

	cfg, err := Parse("demo.star", strings.Join(script, "\n"))
	assert.NoError(err)
	assert.Equal(Config{
		LoadAddress:  0x0700,
		ResetAddress: 0x0700,
		ClockHz:      10000,
		Zoom:         8,
		Title:        "demo",
	}, cfg)

	cfg, err = Parse("reset.star", "load_address = 0x1000\nreset_address = 0x1010\n")
	assert.NoError(err)
	assert.Equal(uint16(0x1000), cfg.LoadAddress)
	assert.Equal(uint16(0x1010), cfg.ResetAddress)
}

func TestParseError(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		script string
		key    string
		value  bool
	}{
		{"load_address = -1", "load_address", true},
		{"load_address = 0x10000", "load_address", true},
		{`reset_address = "0x600"`, "reset_address", true},
		{"clock_hz = 0", "clock_hz", true},
		{"zoom = 1.5", "zoom", true},
		{"zoom = 65", "zoom", true},
		{"title = 3", "title", true},
		{"load_address = ", "", false},
		{"load_address = undefined_name", "", false},
	}

	for _, entry := range table {
		_, err := Parse("bad.star", entry.script)
		assert.Error(err, entry.script)

		var cfgErr *ErrConfig
		if assert.True(errors.As(err, &cfgErr), entry.script) {
			assert.Equal("bad.star", cfgErr.Name, entry.script)
			assert.Equal(entry.key, cfgErr.Key, entry.script)
		}
		assert.Equal(entry.value, errors.Is(err, ErrConfigValue), entry.script)
	}
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "machine.star")
	assert.NoError(os.WriteFile(path, []byte("zoom = 4\n"), 0o644))

	cfg, err := Load(path)
	assert.NoError(err)
	assert.Equal(4, cfg.Zoom)

	_, err = Load(filepath.Join(t.TempDir(), "missing.star"))
	assert.ErrorIs(err, os.ErrNotExist)
}
