// SPDX-License-Identifier: Unlicense OR MIT

package core

import (
	"encoding/json"
	"fmt"
)

// Easing names a pure [0,1] -> [0,1] timing function. Every variant
// satisfies apply(0)=0 and apply(1)=1.
type Easing uint8

const (
	EaseLinear Easing = iota
	EaseIn
	EaseOut
	EaseInOut
	EaseCubicIn
	EaseCubicOut
	EaseCubicInOut
)

// Apply evaluates the easing function at t, clamped to [0,1].
func (e Easing) Apply(t float64) float64 {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	switch e {
	case EaseLinear:
		return t
	case EaseIn:
		return t * t
	case EaseOut:
		return t * (2 - t)
	case EaseInOut:
		if t < 0.5 {
			return 2 * t * t
		}
		return -1 + (4-2*t)*t
	case EaseCubicIn:
		return t * t * t
	case EaseCubicOut:
		u := t - 1
		return u*u*u + 1
	case EaseCubicInOut:
		if t < 0.5 {
			return 4 * t * t * t
		}
		u := -2*t + 2
		return 1 - (u*u*u)/2
	default:
		return t
	}
}

func (e Easing) String() string {
	switch e {
	case EaseLinear:
		return "linear"
	case EaseIn:
		return "ease-in"
	case EaseOut:
		return "ease-out"
	case EaseInOut:
		return "ease-in-out"
	case EaseCubicIn:
		return "cubic-in"
	case EaseCubicOut:
		return "cubic-out"
	case EaseCubicInOut:
		return "cubic-in-out"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes e as its string name.
func (e Easing) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.String())
}

// UnmarshalJSON decodes e from its string name.
func (e *Easing) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "linear":
		*e = EaseLinear
	case "ease-in":
		*e = EaseIn
	case "ease-out":
		*e = EaseOut
	case "ease-in-out":
		*e = EaseInOut
	case "cubic-in":
		*e = EaseCubicIn
	case "cubic-out":
		*e = EaseCubicOut
	case "cubic-in-out":
		*e = EaseCubicInOut
	default:
		return fmt.Errorf("unknown easing %q", s)
	}
	return nil
}
