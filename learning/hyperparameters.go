package learning

import "log/slog"

// SetLogger sets the logger receiving the progress of the modulo reduction
func (h *HyperParameters) SetLogger(l *slog.Logger) {
	h.l = l
}

func (h *HyperParameters) logger() *slog.Logger {
	if h.l == nil {
		return slog.New(slog.DiscardHandler)
	}
	return h.l
}

type HyperParameters struct {
	Threads int // number of threads searching salts, 0 means 1

	Seed bool // start the salt search at a random salt

	SaltLimit     uint32 // salts tried per modulo, 0 means 4096
	DeadlineRetry int    // how many times the initial modulo may grow when no salt separates the sets

	Factor uint32 // initial modulo is about keys*keys/Factor, 0 means 1

	// how fast is the modulo reduced, by Numerator/Denominator and then by -Subtractor
	// 0 for both means 1/2
	Numerator   uint32
	Denominator uint32
	Subtractor  uint32

	l *slog.Logger
}
