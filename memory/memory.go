// Package memory provides the flat 64 KiB address space shared by the
// assembler, which writes program bytes into it, and the CPU.
package memory

import (
	"errors"

	"github.com/ezrec/vm6502/translate"
)

var f = translate.From

const (
	SIZE = 0x10000 // Addressable bytes.

	ZERO_PAGE  = 0x0000 // Zero page base.
	STACK_BASE = 0x0100 // Hardware stack page.

	VIDEO_BASE   = 0x0200                     // First byte of video memory.
	VIDEO_WIDTH  = 32                         // Pixels per row.
	VIDEO_HEIGHT = 32                         // Rows.
	VIDEO_SIZE   = VIDEO_WIDTH * VIDEO_HEIGHT // One palette index per pixel.
	VIDEO_END    = VIDEO_BASE + VIDEO_SIZE    // First byte past video memory.

	BRK_VECTOR = 0xfffe // BRK handler address, little-endian.
)

var ErrLoadRange = errors.New(f("load past end of memory"))

// Memory is the machine's address space.
type Memory [SIZE]byte

// New returns a zeroed address space.
func New() *Memory {
	return &Memory{}
}

// Read returns the byte at addr.
func (m *Memory) Read(addr uint16) byte {
	return m[addr]
}

// Write stores a byte at addr.
func (m *Memory) Write(addr uint16, value byte) {
	m[addr] = value
}

// ReadWord returns the little-endian word at addr. The high byte address
// wraps at the top of memory.
func (m *Memory) ReadWord(addr uint16) uint16 {
	return uint16(m[addr]) | uint16(m[addr+1])<<8
}

// ReadWordZeroPage returns the little-endian word at a zero-page address,
// wrapping within page zero.
func (m *Memory) ReadWordZeroPage(addr byte) uint16 {
	return uint16(m[addr]) | uint16(m[byte(addr+1)])<<8
}

// WriteWord stores a little-endian word at addr.
func (m *Memory) WriteWord(addr uint16, value uint16) {
	m[addr] = byte(value)
	m[addr+1] = byte(value >> 8)
}

// Load copies data into memory starting at addr.
func (m *Memory) Load(addr uint16, data []byte) (err error) {
	if int(addr)+len(data) > SIZE {
		err = ErrLoadRange
		return
	}
	copy(m[addr:], data)
	return
}

// Video returns the video memory region. The slice aliases memory.
func (m *Memory) Video() []byte {
	return m[VIDEO_BASE:VIDEO_END]
}

// Reset zeroes the address space.
func (m *Memory) Reset() {
	clear(m[:])
}
