package models

import "time"

// Timestamp is a record time that is either resolved or still pending.
//
// A pending timestamp belongs to a record whose server-assigned time has not
// been written yet. Pending timestamps sort after every resolved one.
type Timestamp struct {
	t        time.Time
	resolved bool
}

// PendingTimestamp returns a timestamp awaiting resolution.
func PendingTimestamp() Timestamp {
	return Timestamp{}
}

// ResolvedAt returns a resolved timestamp.
func ResolvedAt(t time.Time) Timestamp {
	return Timestamp{t: t.UTC(), resolved: true}
}

// FromUnix returns a resolved timestamp for a Unix second count,
// or a pending one for 0.
func FromUnix(sec int64) Timestamp {
	if sec == 0 {
		return PendingTimestamp()
	}
	return ResolvedAt(time.Unix(sec, 0))
}

// IsPending reports whether the timestamp has not been resolved yet.
func (ts Timestamp) IsPending() bool {
	return !ts.resolved
}

// Time returns the resolved time. ok is false for pending timestamps.
func (ts Timestamp) Time() (t time.Time, ok bool) {
	return ts.t, ts.resolved
}

// Unix returns Unix seconds, or 0 while pending.
func (ts Timestamp) Unix() int64 {
	if !ts.resolved {
		return 0
	}
	return ts.t.Unix()
}

// Resolve returns ts unchanged when already resolved, otherwise now.
func (ts Timestamp) Resolve(now time.Time) Timestamp {
	if ts.resolved {
		return ts
	}
	return ResolvedAt(now)
}

// Before orders timestamps; pending sorts after resolved.
func (ts Timestamp) Before(other Timestamp) bool {
	switch {
	case !ts.resolved:
		return false
	case !other.resolved:
		return true
	default:
		return ts.t.Before(other.t)
	}
}
