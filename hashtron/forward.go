package hashtron

// Forward classifies a key, negate flips the answer
func (h Hashtron) Forward(command uint32, negate bool) bool {
	return h.quaternary.GetUint32(h.bucket(command)) != negate
}
