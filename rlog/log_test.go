// SPDX-License-Identifier: Unlicense OR MIT

package rlog

import (
	"testing"
	"time"
)

func TestLevelFiltersBelowThreshold(t *testing.T) {
	l := NewLogger(LevelWarning)
	feed, cancel := l.Subscribe()
	defer cancel()

	l.Info().Msg("should be dropped")
	l.Warn().Msg("should pass")

	select {
	case e := <-feed:
		if e.Msg != "should pass" {
			t.Fatalf("got entry %q, want the warning entry", e.Msg)
		}
	case <-time.After(time.Second):
		t.Fatal("expected one entry on the feed")
	}

	select {
	case e := <-feed:
		t.Fatalf("unexpected second entry: %+v", e)
	default:
	}
}

func TestEventBuilderFieldsPropagate(t *testing.T) {
	l := NewLogger(LevelDebug)
	feed, cancel := l.Subscribe()
	defer cancel()

	l.Info().Src("pipeline").Scene("s0").Layer("bg").Frame(12).Msgf("rendered %d", 12)

	select {
	case e := <-feed:
		if e.Src != "pipeline" || e.Scene != "s0" || e.Layer != "bg" {
			t.Fatalf("fields not propagated: %+v", e)
		}
		if !e.HasFrame || e.Frame != 12 {
			t.Fatalf("frame not propagated: %+v", e)
		}
		if e.Msg != "rendered 12" {
			t.Fatalf("Msgf did not format: got %q", e.Msg)
		}
		if e.Level != LevelInfo {
			t.Fatalf("got level %v, want Info", e.Level)
		}
	case <-time.After(time.Second):
		t.Fatal("expected one entry on the feed")
	}
}

func TestSubscribeCancelStopsDelivery(t *testing.T) {
	l := NewLogger(LevelDebug)
	feed, cancel := l.Subscribe()
	cancel()

	l.Error().Msg("after cancel")

	if _, ok := <-feed; ok {
		t.Fatal("expected feed channel to be closed after cancel")
	}
}

func TestLevelStringNames(t *testing.T) {
	cases := map[Level]string{
		LevelDebug:   "DEBUG",
		LevelInfo:    "INFO",
		LevelWarning: "WARNING",
		LevelError:   "ERROR",
	}
	for level, want := range cases {
		if got := level.String(); got != want {
			t.Errorf("Level(%d).String() = %q, want %q", level, got, want)
		}
	}
}

func TestMultipleSubscribersEachReceive(t *testing.T) {
	l := NewLogger(LevelDebug)
	feedA, cancelA := l.Subscribe()
	defer cancelA()
	feedB, cancelB := l.Subscribe()
	defer cancelB()

	l.Debug().Msg("fan out")

	for name, feed := range map[string]Feed{"A": feedA, "B": feedB} {
		select {
		case e := <-feed:
			if e.Msg != "fan out" {
				t.Fatalf("subscriber %s got %q", name, e.Msg)
			}
		case <-time.After(time.Second):
			t.Fatalf("subscriber %s got no entry", name)
		}
	}
}
