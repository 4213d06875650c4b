package jsonrepair

import "unicode/utf16"

// RepairUnits is the UTF-16-code-unit-oriented counterpart to [Repair],
// for callers whose input arrived as UTF-16 (e.g. decoded from a
// JavaScript source or a Windows API) rather than as a UTF-8 string. It
// transcodes to runes, repairs with the same engine Repair uses, and
// transcodes the result back — the grammar has no case that depends on
// the literal in-memory width of a code unit, so this wrapper is the
// entire unit-16 surface; there is no second parser to keep in sync.
func RepairUnits(units []uint16, opts ...Option) ([]uint16, error) {
	text := string(utf16.Decode(units))

	repaired, err := Repair(text, opts...)
	if err != nil {
		return nil, err
	}

	return utf16.Encode([]rune(repaired)), nil
}
