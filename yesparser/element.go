package yesparser

import "strconv"

// Element is one parsed line's structured form: a name plus an ordered
// list of arguments. For comment elements, Text holds the comment body
// instead of a name.
type Element struct {
	Text string
	Args []KeyVal
}

// NewElement builds an element with no arguments.
func NewElement(text string) Element {
	return Element{Text: text}
}

// Clone copies the element and its argument list.
func (e *Element) Clone() Element {
	args := make([]KeyVal, len(e.Args))
	copy(args, e.Args)
	return Element{Text: e.Text, Args: args}
}

// Upsert inserts kv, keeping insertion order. A named pair whose key
// matches an existing argument overwrites that argument's value in place;
// nameless pairs never match and always append.
func (e *Element) Upsert(kv KeyVal) {
	if kv.Nameless() {
		e.Args = append(e.Args, kv)
		return
	}
	for i := range e.Args {
		if !e.Args[i].Nameless() && e.Args[i].Key == kv.Key {
			e.Args[i].Val = kv.Val
			e.Args[i].valHasSpace = kv.valHasSpace
			return
		}
	}
	e.Args = append(e.Args, kv)
}

// HasKey reports whether a named argument with the given key exists.
func (e *Element) HasKey(key string) bool {
	_, ok := e.KeyValue(key)
	return ok
}

// HasKeys reports whether all of the given keys exist.
func (e *Element) HasKeys(keys []string) bool {
	for _, k := range keys {
		if !e.HasKey(k) {
			return false
		}
	}
	return true
}

// KeyValue returns the value of the first argument named key.
func (e *Element) KeyValue(key string) (string, bool) {
	for i := range e.Args {
		if !e.Args[i].Nameless() && e.Args[i].Key == key {
			return e.Args[i].Val, true
		}
	}
	return "", false
}

// KeyValueInt parses the value of key as an integer. The second return is
// false when the key is absent or the value does not parse.
func (e *Element) KeyValueInt(key string) (int64, bool) {
	raw, ok := e.KeyValue(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// KeyValueFloat parses the value of key as a float.
func (e *Element) KeyValueFloat(key string) (float64, bool) {
	raw, ok := e.KeyValue(key)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// KeyValueBool parses the value of key as a bool ("true", "1", ...).
func (e *Element) KeyValueBool(key string) (bool, bool) {
	raw, ok := e.KeyValue(key)
	if !ok {
		return false, false
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return b, true
}

// KeyValueOr returns the value of key, or def when absent.
func (e *Element) KeyValueOr(key, def string) string {
	if v, ok := e.KeyValue(key); ok {
		return v
	}
	return def
}

// KeyValueIntOr returns the integer value of key, or def when absent or
// unparseable.
func (e *Element) KeyValueIntOr(key string, def int64) int64 {
	if n, ok := e.KeyValueInt(key); ok {
		return n
	}
	return def
}

// KeyValueFloatOr returns the float value of key, or def when absent or
// unparseable.
func (e *Element) KeyValueFloatOr(key string, def float64) float64 {
	if f, ok := e.KeyValueFloat(key); ok {
		return f
	}
	return def
}

// KeyValueBoolOr returns the bool value of key, or def when absent or
// unparseable.
func (e *Element) KeyValueBoolOr(key string, def bool) bool {
	if b, ok := e.KeyValueBool(key); ok {
		return b
	}
	return def
}
