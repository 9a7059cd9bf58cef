package profile

// Kind tags the outcome of a provider fetch.
type Kind int

const (
	// KindOk carries a live snapshot.
	KindOk Kind = iota

	// KindFallback carries a fallback snapshot and the reason it was used.
	KindFallback

	// KindFailed carries only a reason; no usable snapshot exists.
	KindFailed
)

func (k Kind) String() string {
	switch k {
	case KindOk:
		return "ok"
	case KindFallback:
		return "fallback"
	case KindFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the tagged outcome returned by every provider client.
type Result struct {
	Kind     Kind
	Snapshot *Snapshot
	Reason   error
}

// Ok wraps a live snapshot.
func Ok(s *Snapshot) Result {
	return Result{Kind: KindOk, Snapshot: s}
}

// Fallback wraps a fallback snapshot together with the failure that caused it.
func Fallback(s *Snapshot, reason error) Result {
	return Result{Kind: KindFallback, Snapshot: s, Reason: reason}
}

// Failed reports that no snapshot could be produced.
func Failed(reason error) Result {
	return Result{Kind: KindFailed, Reason: reason}
}
