// SPDX-License-Identifier: Unlicense OR MIT

package ir

import (
	"testing"

	"github.com/Sansa-Organisation/vidra-sub001/anim"
)

func TestNewLayerDefaults(t *testing.T) {
	l := NewLayer("l1", LayerContent{Kind: ContentSolid})
	if !l.Visible {
		t.Error("expected new layer to be visible")
	}
	if l.Transform.Opacity != 1 {
		t.Errorf("expected identity opacity 1, got %v", l.Transform.Opacity)
	}
	if l.Mask != nil {
		t.Error("expected no mask by default")
	}
}

func TestLayerTypeMapping(t *testing.T) {
	cases := []struct {
		kind ContentKind
		want LayerType
	}{
		{ContentText, LayerText},
		{ContentImage, LayerImage},
		{ContentVideo, LayerVideo},
		{ContentAudio, LayerAudio},
		{ContentShape, LayerShape},
		{ContentSolid, LayerSolid},
		{ContentTTS, LayerTTS},
		{ContentAutoCaption, LayerAutoCaption},
		{ContentEmpty, LayerComponent},
	}
	for _, c := range cases {
		l := NewLayer("l", LayerContent{Kind: c.kind})
		if got := l.Type(); got != c.want {
			t.Errorf("content kind %v: Type() = %v, want %v", c.kind, got, c.want)
		}
	}
}

func TestLayerChainedBuilders(t *testing.T) {
	l := NewLayer("l1", LayerContent{Kind: ContentSolid}).
		WithPosition(10, 20).
		WithScale(2, 2).
		WithOpacity(0.5).
		WithAnimation(anim.Track{Property: anim.PropOpacity})

	if l.Transform.Position.X != 10 || l.Transform.Position.Y != 20 {
		t.Errorf("position = %+v", l.Transform.Position)
	}
	if l.Transform.Scale.X != 2 {
		t.Errorf("scale = %+v", l.Transform.Scale)
	}
	if l.Transform.Opacity != 0.5 {
		t.Errorf("opacity = %v", l.Transform.Opacity)
	}
	if len(l.Animations) != 1 {
		t.Errorf("expected 1 animation track, got %d", len(l.Animations))
	}
}

func TestLayerAddChild(t *testing.T) {
	parent := NewLayer("parent", LayerContent{Kind: ContentSolid})
	child := NewLayer("child", LayerContent{Kind: ContentSolid})
	parent.AddChild(child)

	if len(parent.Children) != 1 || parent.Children[0] != child {
		t.Fatal("expected child to be appended")
	}
}
