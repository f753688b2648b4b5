package rpc

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"
)

// Timestamp converts t for the wire. The zero time travels as nil.
func Timestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

// TimestampPtr is Timestamp for optional times.
func TimestampPtr(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return Timestamp(*t)
}

// Time converts a wire timestamp to UTC. Nil and out-of-range values
// become the zero time.
func Time(ts *timestamppb.Timestamp) time.Time {
	if ts == nil || ts.CheckValid() != nil {
		return time.Time{}
	}
	return ts.AsTime()
}

// TimePtr is Time for optional times; absent or zero values become nil.
func TimePtr(ts *timestamppb.Timestamp) *time.Time {
	t := Time(ts)
	if t.IsZero() {
		return nil
	}
	return &t
}
