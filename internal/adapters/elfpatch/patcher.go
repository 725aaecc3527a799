// Package elfpatch rewrites GNU_STACK program headers in place, without
// shelling out to an external tool.
package elfpatch

import (
	"encoding/binary"
	"os"

	"go.trai.ch/qtdeploy/internal/core/domain"
	"go.trai.ch/qtdeploy/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	ptGnuStack = 0x6474e551

	pfX = 0x1
	pfW = 0x2
	pfR = 0x4

	rwx = pfR | pfW | pfX
	rw  = pfR | pfW

	elfClass64 = 2
	elfDataLSB = 1

	// p_flags offsets within a program header entry.
	flagsOffset64 = 4
	flagsOffset32 = 24
)

var elfMagic = []byte{0x7f, 'E', 'L', 'F'}

// Patcher implements ports.StackPatcher by editing the four p_flags bytes of
// the GNU_STACK program header directly.
type Patcher struct {
	logger ports.Logger
}

// NewPatcher creates a new Patcher.
func NewPatcher(logger ports.Logger) *Patcher {
	return &Patcher{logger: logger}
}

// FixExecutableStack clears the execute bit of every RWX GNU_STACK segment of
// the file. It reports whether any byte was written. Running it twice on the
// same file is a no-op the second time.
func (p *Patcher) FixExecutableStack(path string) (bool, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "open for patching"), "file", path)
	}
	defer f.Close()

	ident := make([]byte, 6)
	if _, err := f.ReadAt(ident, 0); err != nil {
		return false, zerr.With(domain.ErrTruncatedELF, "file", path)
	}
	if string(ident[:4]) != string(elfMagic) {
		return false, zerr.With(domain.ErrNotELF, "file", path)
	}

	is64 := ident[4] == elfClass64
	var order binary.ByteOrder = binary.BigEndian
	if ident[5] == elfDataLSB {
		order = binary.LittleEndian
	}

	phoff, phentsize, phnum, err := readHeaderTable(f, is64, order)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "read elf header"), "file", path)
	}

	patched := false
	found := false
	entry := make([]byte, 4)
	for i := 0; i < int(phnum); i++ {
		base := int64(phoff) + int64(i)*int64(phentsize)

		if _, err := f.ReadAt(entry, base); err != nil {
			return patched, zerr.With(domain.ErrTruncatedELF, "file", path)
		}
		if order.Uint32(entry) != ptGnuStack {
			continue
		}
		found = true

		flagsOff := base + flagsOffset64
		if !is64 {
			flagsOff = base + flagsOffset32
		}
		if _, err := f.ReadAt(entry, flagsOff); err != nil {
			return patched, zerr.With(domain.ErrTruncatedELF, "file", path)
		}

		flags := order.Uint32(entry)
		if flags&rwx != rwx {
			p.logger.Debug("stack already non-executable: " + path)
			continue
		}

		order.PutUint32(entry, rw)
		if _, err := f.WriteAt(entry, flagsOff); err != nil {
			return patched, zerr.With(zerr.Wrap(err, "write p_flags"), "file", path)
		}
		p.logger.Info("patched executable stack: " + path)
		patched = true
	}

	if !found {
		p.logger.Debug("no GNU_STACK segment: " + path)
	}

	return patched, nil
}

// readHeaderTable extracts the program header table location from the ELF
// header: e_phoff, e_phentsize and e_phnum.
func readHeaderTable(f *os.File, is64 bool, order binary.ByteOrder) (uint64, uint16, uint16, error) {
	var (
		phoffOffset     int64 = 28
		phoffSize             = 4
		phentsizeOffset int64 = 42
		phnumOffset     int64 = 44
	)
	if is64 {
		phoffOffset = 32
		phoffSize = 8
		phentsizeOffset = 54
		phnumOffset = 56
	}

	buf := make([]byte, 8)
	if _, err := f.ReadAt(buf[:phoffSize], phoffOffset); err != nil {
		return 0, 0, 0, err
	}
	var phoff uint64
	if is64 {
		phoff = order.Uint64(buf)
	} else {
		phoff = uint64(order.Uint32(buf))
	}

	if _, err := f.ReadAt(buf[:2], phentsizeOffset); err != nil {
		return 0, 0, 0, err
	}
	phentsize := order.Uint16(buf)

	if _, err := f.ReadAt(buf[:2], phnumOffset); err != nil {
		return 0, 0, 0, err
	}
	phnum := order.Uint16(buf)

	return phoff, phentsize, phnum, nil
}
