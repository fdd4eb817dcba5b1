package sshconf

import "fmt"

// KeywordSet is an ordered collection of configuration keyword/value pairs.
// Keys are case-insensitive on access, stored in their canonical spelling and
// iterated in insertion order. The zero value is ready to use.
//
// Set overwrites an existing value. The first-occurrence-wins rule of the
// dialect is not enforced here; callers that want it either guard with
// Contains (as the parser does) or fold sets together with MergeMissing.
type KeywordSet struct {
	order  []string
	values map[string]string
}

// Set stores value under the canonical spelling of name, overwriting any
// existing value. Storing Host or Match fails with [ErrInvalidKeyword].
func (ks *KeywordSet) Set(name, value string) error {
	key, err := Normalize(name)
	if err != nil {
		return err
	}
	ks.put(key, value)
	return nil
}

// put stores a value under an already canonical key.
func (ks *KeywordSet) put(key, value string) {
	if ks.values == nil {
		ks.values = make(map[string]string)
	}
	if _, ok := ks.values[key]; !ok {
		ks.order = append(ks.order, key)
	}
	ks.values[key] = value
}

// Get returns the value stored for name. Looking up a name that has no value
// fails with [ErrKeyNotFound]; guard with Contains when absence is expected.
func (ks *KeywordSet) Get(name string) (string, error) {
	key, err := Normalize(name)
	if err != nil {
		return "", err
	}
	value, ok := ks.values[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return value, nil
}

// Contains reports whether a value is stored for name.
func (ks *KeywordSet) Contains(name string) bool {
	key, err := Normalize(name)
	if err != nil {
		return false
	}
	_, ok := ks.values[key]
	return ok
}

// Len returns the number of stored keywords.
func (ks *KeywordSet) Len() int {
	return len(ks.order)
}

// Keys returns the canonical keyword names in insertion order.
func (ks *KeywordSet) Keys() []string {
	keys := make([]string, len(ks.order))
	copy(keys, ks.order)
	return keys
}

// MergeMissing copies the pairs of other into the set, in other's iteration
// order, skipping keys that already have a value. Existing values are never
// overwritten. This is the single primitive behind the first-wins rule, used
// both when folding matching blocks during a host query and when callers
// combine keyword sets themselves.
func (ks *KeywordSet) MergeMissing(other *KeywordSet) {
	if other == nil {
		return
	}
	for _, key := range other.order {
		if _, ok := ks.values[key]; ok {
			continue
		}
		ks.put(key, other.values[key])
	}
}
