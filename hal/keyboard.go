package hal

// KeySet is a fixed set of pressed keys. It is the headless and test keyboard.
type KeySet struct {
	down [keyCount]bool
}

// NewKeySet returns a keyboard holding the given keys down.
func NewKeySet(codes ...KeyCode) *KeySet {
	k := &KeySet{}
	for _, c := range codes {
		k.Press(c)
	}
	return k
}

func (k *KeySet) Pressed(code KeyCode) bool {
	if code >= keyCount {
		return false
	}
	return k.down[code]
}

func (k *KeySet) Press(code KeyCode) {
	if code < keyCount {
		k.down[code] = true
	}
}

func (k *KeySet) Release(code KeyCode) {
	if code < keyCount {
		k.down[code] = false
	}
}

// Reset releases every key.
func (k *KeySet) Reset() {
	k.down = [keyCount]bool{}
}
