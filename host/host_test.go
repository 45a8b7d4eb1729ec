package host

import (
	"testing"

	"github.com/sixfiveohtwo/core/cpu"
)

func TestRAMLoadAndRead(t *testing.T) {
	ram, err := NewRAM(1 << 16)
	if err != nil {
		t.Fatalf("NewRAM: %v", err)
	}
	ram.Load(0x8000, []uint8{0xA9, 0x42})
	if got := ram.Read(0x8000); got != 0xA9 {
		t.Errorf("Read(0x8000) = %#02x, want 0xa9", got)
	}
	if got := ram.Read(0x8001); got != 0x42 {
		t.Errorf("Read(0x8001) = %#02x, want 0x42", got)
	}
}

func TestRAMTickServicesCPU(t *testing.T) {
	ram, err := NewRAM(1 << 16)
	if err != nil {
		t.Fatalf("NewRAM: %v", err)
	}
	ram.Load(0xFFFC, []uint8{0x00, 0x80}) // reset vector -> 0x8000
	ram.Load(0x8000, []uint8{0xA9, 0x00}) // LDA #$00

	c := cpu.New(ram)
	c.Step() // service power-on reset
	if c.PC != 0x8000 {
		t.Fatalf("PC after reset = %#04x, want 0x8000", c.PC)
	}
	c.Step() // LDA #$00
	if c.A != 0 {
		t.Errorf("A = %#02x, want 0", c.A)
	}
}

func TestRAMLevelAndEdgeLines(t *testing.T) {
	ram, err := NewRAM(1 << 16)
	if err != nil {
		t.Fatalf("NewRAM: %v", err)
	}
	ram.Load(0xFFFC, []uint8{0x00, 0x80})
	ram.Load(0xFFFE, []uint8{0x00, 0x90}) // IRQ/BRK vector -> 0x9000
	ram.Load(0xFFFA, []uint8{0x00, 0xA0}) // NMI vector -> 0xA000
	ram.Load(0x8000, []uint8{0xEA, 0xEA, 0xEA})

	var irqLine Line
	var nmiPulse Pulse
	ram.WithIRQ(&irqLine).WithNMI(&nmiPulse)

	c := cpu.New(ram)
	c.Step() // reset

	c.P &^= 0x04 // clear I so IRQ is unmasked
	irqLine.Set()
	c.Step() // NOP observes the level
	c.Step() // IRQ entry
	if c.PC != 0x9000 {
		t.Errorf("PC after IRQ = %#04x, want 0x9000", c.PC)
	}

	irqLine.Clear()
	c.PC = 0x8000
	nmiPulse.Fire()
	c.Step() // NOP observes the edge
	c.Step() // NMI entry
	if c.PC != 0xA000 {
		t.Errorf("PC after NMI = %#04x, want 0xa000", c.PC)
	}
}

func TestRAMDump(t *testing.T) {
	ram, err := NewRAM(256)
	if err != nil {
		t.Fatalf("NewRAM: %v", err)
	}
	ram.Load(0x10, []uint8{0x01, 0x02, 0x03})
	if s := ram.Dump(); s == "" {
		t.Error("Dump() returned empty string")
	}
}

func TestNewRAMRejectsOversize(t *testing.T) {
	if _, err := NewRAM(1 << 17); err == nil {
		t.Error("NewRAM with size > 64KiB should error")
	}
}
