package yesparser

// KeyVal is one element argument: either a named `key=value` pair or a
// nameless bare value. The constructors record whether the key or value
// contained whitespace when read, so String can requote only the sides
// that need it.
type KeyVal struct {
	Key string
	Val string

	nameless    bool
	keyHasSpace bool
	valHasSpace bool
}

// NewKeyVal builds a named pair.
func NewKeyVal(key, val string) KeyVal {
	return KeyVal{
		Key:         key,
		Val:         val,
		keyHasSpace: containsSpace(key),
		valHasSpace: containsSpace(val),
	}
}

// NewNamelessKeyVal builds a bare value.
func NewNamelessKeyVal(val string) KeyVal {
	return KeyVal{
		Val:         val,
		nameless:    true,
		valHasSpace: containsSpace(val),
	}
}

// Nameless reports whether the pair has no key.
func (kv KeyVal) Nameless() bool {
	return kv.nameless
}

func (kv KeyVal) String() string {
	v := kv.Val
	if kv.valHasSpace {
		v = Quote(v)
	}
	if kv.nameless {
		return v
	}
	k := kv.Key
	if kv.keyHasSpace {
		k = Quote(k)
	}
	return k + "=" + v
}

func containsSpace(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == GlyphSpace {
			return true
		}
	}
	return false
}
