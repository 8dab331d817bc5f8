package flight

import (
	"encoding/json"
	"strings"
)

// CompositeKey pairs an outbound offer with the return offers the supplier
// sells together with it.
type CompositeKey struct {
	ProviderKey string `json:"provider_key"`
	PackageKey  string `json:"package_key"`
}

func (k CompositeKey) String() string {
	return k.ProviderKey + ":" + k.PackageKey
}

// ParseCompositeKey splits on the first colon; provider keys never contain one.
func ParseCompositeKey(s string) CompositeKey {
	provider, pkg, _ := strings.Cut(s, ":")
	return CompositeKey{ProviderKey: provider, PackageKey: pkg}
}

func KeyOf(d Direction) CompositeKey {
	return CompositeKey{ProviderKey: d.ProviderKey, PackageKey: d.PackageInfo.PackageKey}
}

// ReturnIndex buckets return flights by composite key. Build it once per
// return set; it is never updated in place.
type ReturnIndex struct {
	buckets map[CompositeKey][]Direction
	size    int
}

func BuildReturnIndex(returns []Direction) ReturnIndex {
	idx := ReturnIndex{
		buckets: make(map[CompositeKey][]Direction),
		size:    len(returns),
	}
	for _, r := range returns {
		k := KeyOf(r)
		idx.buckets[k] = append(idx.buckets[k], r)
	}
	return idx
}

// Lookup returns the bucket for key, or an empty slice.
func (idx ReturnIndex) Lookup(key CompositeKey) []Direction {
	bucket, ok := idx.buckets[key]
	if !ok {
		return []Direction{}
	}
	return bucket
}

// LookupFor is Lookup keyed by an outbound offer.
func (idx ReturnIndex) LookupFor(outbound Direction) []Direction {
	return idx.Lookup(KeyOf(outbound))
}

// Len is the number of distinct keys.
func (idx ReturnIndex) Len() int {
	return len(idx.buckets)
}

// Size is the number of return flights indexed.
func (idx ReturnIndex) Size() int {
	return idx.size
}

func (idx ReturnIndex) MarshalJSON() ([]byte, error) {
	out := make(map[string][]Direction, len(idx.buckets))
	for k, v := range idx.buckets {
		out[k.String()] = v
	}
	return json.Marshal(out)
}

func (idx *ReturnIndex) UnmarshalJSON(data []byte) error {
	var in map[string][]Direction
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	idx.buckets = make(map[CompositeKey][]Direction, len(in))
	idx.size = 0
	for k, v := range in {
		idx.buckets[ParseCompositeKey(k)] = v
		idx.size += len(v)
	}
	return nil
}
