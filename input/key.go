package input

// Key names a physical key the game queries
type Key uint8

const (
	KeyNone Key = iota
	KeyEscape
	KeyW
	KeyS
	KeyUp
	KeyDown

	keyCount
)

var keyNames = [keyCount]string{
	KeyNone:   "none",
	KeyEscape: "escape",
	KeyW:      "w",
	KeyS:      "s",
	KeyUp:     "up",
	KeyDown:   "down",
}

func (k Key) String() string {
	if k >= keyCount {
		return "unknown"
	}
	return keyNames[k]
}

// Keys lists every named key, excluding KeyNone
func Keys() []Key {
	keys := make([]Key, 0, keyCount-1)
	for k := KeyEscape; k < keyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}
