package world

import "math/bits"

// KeySet is the set of keys collected so far, packed into a bitmask.
// Bit i corresponds to key 'a'+i, so six bits cover the whole alphabet.
// Values are immutable; Collect returns a new set rather than mutating,
// which keeps sets safe to use as part of composite map keys. Keys are
// never lost: a bit only ever transitions from unset to set.
type KeySet uint8

// Collect returns the set with the given tile's key added. Non-key tiles
// leave the set unchanged, and collecting an already-held key is a no-op.
func (s KeySet) Collect(t Tile) KeySet {
	if !t.IsKey() {
		return s
	}
	return s | 1<<uint(t-firstKey)
}

// CanOpen returns true if the set holds the key for the given tile.
// Non-door tiles are trivially open.
func (s KeySet) CanOpen(t Tile) bool {
	if !t.IsDoor() {
		return true
	}
	return s&(1<<uint(t.Key()-firstKey)) != 0
}

// Count returns the number of distinct keys held.
func (s KeySet) Count() int {
	return bits.OnesCount8(uint8(s))
}

// String lists the held key letters, or "none". Intended for logs and
// trace attributes.
func (s KeySet) String() string {
	if s == 0 {
		return "none"
	}
	held := make([]byte, 0, NumKeys)
	for i := 0; i < NumKeys; i++ {
		if s&(1<<uint(i)) != 0 {
			held = append(held, byte(firstKey)+byte(i))
		}
	}
	return string(held)
}
