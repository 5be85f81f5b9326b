// SPDX-License-Identifier: Unlicense OR MIT

package core

import (
	"encoding/json"
	"math"
)

// Duration is a non-negative span of time in seconds. It is only ever
// constructed through NewDuration, which rejects non-finite or
// negative values, so a Duration can never carry a NaN that would
// panic a keyframe sort.
type Duration struct {
	seconds float64
}

// Timestamp is a point in time, measured in seconds from a project's
// start. Same construction guarantee as Duration.
type Timestamp struct {
	seconds float64
}

// NewDuration validates and constructs a Duration.
func NewDuration(seconds float64) (Duration, error) {
	if err := checkFiniteNonNegative(seconds); err != nil {
		return Duration{}, err
	}
	return Duration{seconds: seconds}, nil
}

// NewTimestamp validates and constructs a Timestamp.
func NewTimestamp(seconds float64) (Timestamp, error) {
	if err := checkFiniteNonNegative(seconds); err != nil {
		return Timestamp{}, err
	}
	return Timestamp{seconds: seconds}, nil
}

func checkFiniteNonNegative(v float64) error {
	if math.IsNaN(v) {
		return NewError(KindValidation, Node{}, "value is NaN")
	}
	if math.IsInf(v, 0) {
		return NewError(KindValidation, Node{}, "value is infinite")
	}
	if v < 0 {
		return NewError(KindValidation, Node{}, "value must be non-negative")
	}
	return nil
}

// Seconds returns the duration in seconds.
func (d Duration) Seconds() float64 { return d.seconds }

// Seconds returns the timestamp in seconds.
func (t Timestamp) Seconds() float64 { return t.seconds }

// FrameCount returns ceil(seconds * fps), the number of frames that
// span this duration at the given frame rate.
func (d Duration) FrameCount(fps float64) int {
	return int(math.Ceil(d.seconds * fps))
}

// ToFrame returns floor(seconds * fps), the frame index a timestamp
// falls in at the given frame rate.
func (t Timestamp) ToFrame(fps float64) int {
	return int(math.Floor(t.seconds * fps))
}

// Sub returns t - u as a Duration; the caller guarantees t >= u.
func (t Timestamp) Sub(u Timestamp) Duration {
	d := t.seconds - u.seconds
	if d < 0 {
		d = 0
	}
	return Duration{seconds: d}
}

// Add returns t + d as a Timestamp.
func (t Timestamp) Add(d Duration) Timestamp {
	return Timestamp{seconds: t.seconds + d.seconds}
}

// MarshalJSON encodes d as a plain seconds number.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.seconds)
}

// UnmarshalJSON decodes d from a plain seconds number, re-running the
// same finiteness/non-negativity validation NewDuration does.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var seconds float64
	if err := json.Unmarshal(data, &seconds); err != nil {
		return err
	}
	v, err := NewDuration(seconds)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalJSON encodes t as a plain seconds number.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.seconds)
}

// UnmarshalJSON decodes t from a plain seconds number, re-running the
// same finiteness/non-negativity validation NewTimestamp does.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var seconds float64
	if err := json.Unmarshal(data, &seconds); err != nil {
		return err
	}
	v, err := NewTimestamp(seconds)
	if err != nil {
		return err
	}
	*t = v
	return nil
}
