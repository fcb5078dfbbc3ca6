package style

// Merge combines style property maps with explicit precedence: later
// arguments win. The intended call is Merge(caller, child, computed),
// so computed placement always overrides anything the caller or an
// intermediate component supplied. Nil maps are skipped; the inputs
// are never mutated.
func Merge(layers ...map[string]string) map[string]string {
	out := make(map[string]string)
	for _, layer := range layers {
		for k, v := range layer {
			out[k] = v
		}
	}
	return out
}
