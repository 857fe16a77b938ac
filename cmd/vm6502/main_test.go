package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/vm6502/config"
)

func TestParseAddress(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		text string
		addr uint16
	}{
		{"$0600", 0x0600},
		{"0x1000", 0x1000},
		{"1536", 0x0600},
		{"$ffff", 0xffff},
	}

	for _, entry := range table {
		addr, err := parseAddress(entry.text)
		assert.NoError(err, entry.text)
		assert.Equal(entry.addr, addr, entry.text)
	}

	for _, text := range []string{"", "$", "0x10000", "nope"} {
		_, err := parseAddress(text)
		assert.Error(err, text)
	}
}

func TestOverrideAddresses(t *testing.T) {
	assert := assert.New(t)

	// Reset follows -load when the configuration left it alone.
	cfg := config.Default()
	assert.NoError(overrideAddresses(&cfg, "$1000", ""))
	assert.Equal(uint16(0x1000), cfg.LoadAddress)
	assert.Equal(uint16(0x1000), cfg.ResetAddress)

	// A configured reset address is kept.
	cfg, err := config.Parse("machine.star", "load_address = 0x0800\nreset_address = 0x0803\n")
	assert.NoError(err)
	assert.NoError(overrideAddresses(&cfg, "$1000", ""))
	assert.Equal(uint16(0x1000), cfg.LoadAddress)
	assert.Equal(uint16(0x0803), cfg.ResetAddress)

	// -reset always wins.
	assert.NoError(overrideAddresses(&cfg, "$2000", "$2010"))
	assert.Equal(uint16(0x2000), cfg.LoadAddress)
	assert.Equal(uint16(0x2010), cfg.ResetAddress)

	cfg = config.Default()
	assert.Error(overrideAddresses(&cfg, "bogus", ""))
	assert.Error(overrideAddresses(&cfg, "", "$10000"))
	assert.Equal(config.Default(), cfg)
}
