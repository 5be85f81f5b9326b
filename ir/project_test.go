// SPDX-License-Identifier: Unlicense OR MIT

package ir

import "testing"

func TestNewProjectGeneratesUniqueIDs(t *testing.T) {
	a := NewProject(HD30())
	b := NewProject(HD30())
	if a.ID == "" || b.ID == "" {
		t.Fatal("expected non-empty project ids")
	}
	if a.ID == b.ID {
		t.Fatal("expected distinct project ids")
	}
}

func TestPresetSettings(t *testing.T) {
	hd30, hd60, uhd30 := HD30(), HD60(), UHD30()
	if hd30.Width != 1920 || hd30.Height != 1080 || hd30.FPS != 30 {
		t.Errorf("HD30 = %+v", hd30)
	}
	if hd60.FPS != 60 {
		t.Errorf("HD60 fps = %v, want 60", hd60.FPS)
	}
	if uhd30.Width != 3840 || uhd30.Height != 2160 {
		t.Errorf("UHD30 = %+v", uhd30)
	}
	if DefaultSettings() != HD30() {
		t.Errorf("DefaultSettings should be HD30")
	}
}

func TestTotalDurationAndFrames(t *testing.T) {
	p := NewProject(HD30())
	p.AddScene(NewScene("s1", mustDuration(t, 2)))
	p.AddScene(NewScene("s2", mustDuration(t, 3)))

	if got := p.TotalDuration(); got != 5 {
		t.Errorf("TotalDuration = %v, want 5", got)
	}
	if got := p.TotalFrames(); got != 150 {
		t.Errorf("TotalFrames = %v, want 150", got)
	}
}

func TestGetScene(t *testing.T) {
	p := NewProject(HD30())
	s := NewScene("s1", mustDuration(t, 1))
	p.AddScene(s)

	got, ok := p.GetScene("s1")
	if !ok || got != s {
		t.Fatal("expected to find scene s1")
	}
	if _, ok := p.GetScene("missing"); ok {
		t.Fatal("expected missing scene to not be found")
	}
}
