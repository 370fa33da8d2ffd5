package model

// Roster maps player keys to records and remembers insertion order, which is
// the order players appear in the roster document and in every output.
type Roster struct {
	keys  []PlayerKey
	byKey map[PlayerKey]*PlayerRecord
}

func NewRoster() *Roster {
	return &Roster{byKey: make(map[PlayerKey]*PlayerRecord)}
}

// Put stores rec under its key. A record already stored under the same key is
// replaced but keeps its original position.
func (r *Roster) Put(rec *PlayerRecord) {
	k := rec.Key()
	if _, ok := r.byKey[k]; !ok {
		r.keys = append(r.keys, k)
	}
	r.byKey[k] = rec
}

func (r *Roster) Get(k PlayerKey) (*PlayerRecord, bool) {
	rec, ok := r.byKey[k]
	return rec, ok
}

func (r *Roster) Len() int {
	return len(r.keys)
}

// Keys returns the player keys in insertion order.
func (r *Roster) Keys() []PlayerKey {
	out := make([]PlayerKey, len(r.keys))
	copy(out, r.keys)
	return out
}

// Records returns the records in insertion order.
func (r *Roster) Records() []*PlayerRecord {
	out := make([]*PlayerRecord, 0, len(r.keys))
	for _, k := range r.keys {
		out = append(out, r.byKey[k])
	}
	return out
}
