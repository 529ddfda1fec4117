package collections

// Subset returns a new map holding the entries of m whose key is listed in
// keys. Keys missing from m are skipped. m is not modified and values are
// copied as is, not cloned. The result is never nil.
func Subset[M ~map[K]V, K comparable, V any](m M, keys []K) M {
	out := make(M, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}

	return out
}
