package types

import (
	"iter"
	"slices"
)

// FieldMap is an immutable bidirectional mapping between canonical tag
// names ("title", "artist", ...) and raw format-specific frame ids
// ("TIT2", "TP1", ...). Each tag format version carries its own map.
type FieldMap struct {
	toRaw       map[string]string
	toCanonical map[string]string
}

// NewFieldMap builds a FieldMap from a canonical-name -> raw-id mapping.
// The mapping must be injective; both directions are derived from it.
func NewFieldMap(canonicalToRaw map[string]string) FieldMap {
	toRaw := make(map[string]string, len(canonicalToRaw))
	toCanonical := make(map[string]string, len(canonicalToRaw))
	for canonical, raw := range canonicalToRaw {
		toRaw[canonical] = raw
		toCanonical[raw] = canonical
	}
	return FieldMap{toRaw: toRaw, toCanonical: toCanonical}
}

// Raw returns the raw frame id for a canonical name.
func (m FieldMap) Raw(canonical string) (string, bool) {
	raw, ok := m.toRaw[canonical]
	return raw, ok
}

// Canonical returns the canonical name for a raw frame id.
func (m FieldMap) Canonical(raw string) (string, bool) {
	canonical, ok := m.toCanonical[raw]
	return canonical, ok
}

// Len returns the number of entries in the map.
func (m FieldMap) Len() int {
	return len(m.toRaw)
}

// Canonicals returns an iterator over all canonical names in the map.
func (m FieldMap) Canonicals() iter.Seq[string] {
	return func(yield func(string) bool) {
		for canonical := range m.toRaw {
			if !yield(canonical) {
				return
			}
		}
	}
}

// EncapsulatedObject is the decoded payload of a generic binary object
// frame (GEOB).
type EncapsulatedObject struct {
	Description string
	Filename    string
	MIMEType    string
	Data        []byte
}

// Tags is the aggregated tag mapping decoded from one file.
//
// Values are stored under raw frame ids (or composite keys such as
// "COMM:description:eng" for repeatable frame categories). Lookups accept
// either the canonical name or the raw id; canonical names are resolved
// through the format's FieldMap.
//
// Tags is produced once by a decode operation and not mutated afterwards.
type Tags struct {
	fields  FieldMap
	raw     map[string][]string
	objects map[string][]EncapsulatedObject
	private map[string][][]byte
}

// NewTags creates an empty tag set resolving canonical names through fields.
func NewTags(fields FieldMap) *Tags {
	return &Tags{
		fields:  fields,
		raw:     make(map[string][]string),
		objects: make(map[string][]EncapsulatedObject),
		private: make(map[string][][]byte),
	}
}

// resolve maps a canonical name to its raw key; unknown keys pass through.
func (t *Tags) resolve(key string) string {
	if raw, ok := t.fields.Raw(key); ok {
		return raw
	}
	return key
}

// Get retrieves all values for a tag key. The key may be a canonical name,
// a raw frame id, or a composite key. Returns nil if the key is absent.
func (t *Tags) Get(key string) []string {
	values := t.raw[t.resolve(key)]
	if values == nil {
		return nil
	}
	return slices.Clone(values)
}

// GetFirst retrieves the first value for a tag key, or "" if absent.
func (t *Tags) GetFirst(key string) string {
	values := t.raw[t.resolve(key)]
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// Has reports whether the key holds at least one value.
func (t *Tags) Has(key string) bool {
	return len(t.raw[t.resolve(key)]) > 0
}

// Replace sets the values for a key, discarding any prior value.
// Used for frame categories where the last write wins.
func (t *Tags) Replace(key string, values ...string) {
	t.raw[t.resolve(key)] = slices.Clone(values)
}

// Append appends values to a key's list.
func (t *Tags) Append(key string, values ...string) {
	k := t.resolve(key)
	t.raw[k] = append(t.raw[k], values...)
}

// Delete removes a key and returns its values.
func (t *Tags) Delete(key string) []string {
	k := t.resolve(key)
	values := t.raw[k]
	delete(t.raw, k)
	return values
}

// AppendObject appends an encapsulated object under its composite key.
func (t *Tags) AppendObject(key string, obj EncapsulatedObject) {
	t.objects[key] = append(t.objects[key], obj)
}

// Objects returns the encapsulated objects stored under a composite key.
func (t *Tags) Objects(key string) []EncapsulatedObject {
	return slices.Clone(t.objects[key])
}

// AppendPrivate appends a private frame payload under its composite key.
func (t *Tags) AppendPrivate(key string, data []byte) {
	t.private[key] = append(t.private[key], data)
}

// Private returns the private payloads stored under a composite key.
func (t *Tags) Private(key string) [][]byte {
	return slices.Clone(t.private[key])
}

// All returns an iterator over all string-valued tags, keyed by raw frame
// id or composite key.
//
//	for key, values := range file.Tags.All() {
//		fmt.Printf("%s: %v\n", key, values)
//	}
func (t *Tags) All() iter.Seq2[string, []string] {
	return func(yield func(string, []string) bool) {
		if t == nil {
			return
		}
		for key, values := range t.raw {
			if !yield(key, values) {
				return
			}
		}
	}
}

// AllObjects returns an iterator over all encapsulated objects.
func (t *Tags) AllObjects() iter.Seq2[string, []EncapsulatedObject] {
	return func(yield func(string, []EncapsulatedObject) bool) {
		if t == nil {
			return
		}
		for key, objs := range t.objects {
			if !yield(key, objs) {
				return
			}
		}
	}
}

// AllPrivate returns an iterator over all private frame payloads.
func (t *Tags) AllPrivate() iter.Seq2[string, [][]byte] {
	return func(yield func(string, [][]byte) bool) {
		if t == nil {
			return
		}
		for key, payloads := range t.private {
			if !yield(key, payloads) {
				return
			}
		}
	}
}

// Len returns the number of string-valued keys.
func (t *Tags) Len() int {
	if t == nil {
		return 0
	}
	return len(t.raw)
}

// Convenience accessors for the common canonical fields.

// Title returns the canonical "title" value.
func (t *Tags) Title() string { return t.GetFirst("title") }

// Artist returns the canonical "artist" value.
func (t *Tags) Artist() string { return t.GetFirst("artist") }

// Album returns the canonical "album" value.
func (t *Tags) Album() string { return t.GetFirst("album") }

// AlbumArtist returns the canonical "albumartist" value.
func (t *Tags) AlbumArtist() string { return t.GetFirst("albumartist") }

// Genre returns the canonical "genre" value.
func (t *Tags) Genre() string { return t.GetFirst("genre") }

// Date returns the canonical "date" value.
func (t *Tags) Date() string { return t.GetFirst("date") }

// TrackNumber returns the canonical "tracknumber" value, which may be in
// "N" or "N/Total" form.
func (t *Tags) TrackNumber() string { return t.GetFirst("tracknumber") }
