package texture

import (
	"image/color"
	"testing"
)

func testPalette() map[string]color.Color {
	return map[string]color.Color{
		"Red":        color.NRGBA{R: 232, G: 32, B: 42, A: 255},
		"Warm White": color.NRGBA{R: 255, G: 233, B: 194, A: 255},
	}
}

func TestColorIDRoundTrip(t *testing.T) {
	id := ColorID("Warm White", KindBulbOn)
	if id != "warm_white_bulb_on" {
		t.Fatalf("unexpected id %q", id)
	}
	c, kind, ok := SplitID(id)
	if !ok || c != "warm_white" || kind != KindBulbOn {
		t.Fatalf("SplitID(%q) = %q, %q, %v", id, c, kind, ok)
	}
	for _, base := range []string{KindBulbOff, KindBulbOn, KindFlare, SocketID} {
		if _, _, ok := SplitID(base); ok {
			t.Fatalf("expected base name %q not to split", base)
		}
	}
}

func TestSpriteStoreLoadsKnownColors(t *testing.T) {
	s := NewSpriteStore(testPalette())
	tests := []struct {
		id   string
		size [2]int
	}{
		{"red_bulb_off", [2]int{BulbSize.X, BulbSize.Y}},
		{"red_bulb_on", [2]int{BulbSize.X, BulbSize.Y}},
		{"warm_white_flare", [2]int{FlareSize.X, FlareSize.Y}},
		{SocketID, [2]int{SocketSize.X, SocketSize.Y}},
		{KindBulbOn, [2]int{BulbSize.X, BulbSize.Y}},
	}
	for _, tt := range tests {
		tex := s.Load(tt.id)
		if tex.Empty() {
			t.Fatalf("expected %q to load", tt.id)
		}
		if got := tex.Size(); got.X != tt.size[0] || got.Y != tt.size[1] {
			t.Fatalf("%q: expected size %v, got %v", tt.id, tt.size, got)
		}
		if tex.ID() != tt.id {
			t.Fatalf("expected id %q, got %q", tt.id, tex.ID())
		}
	}
}

func TestSpriteStoreMissReturnsEmpty(t *testing.T) {
	s := NewSpriteStore(testPalette())
	for _, id := range []string{"plaid_bulb_on", "red_bulb_sideways", "", "wire"} {
		if tex := s.Load(id); !tex.Empty() {
			t.Fatalf("expected %q to miss, got %v", id, tex.Size())
		}
	}
}

func TestSpriteStoreMemoizes(t *testing.T) {
	s := NewSpriteStore(testPalette())
	a := s.Load("red_bulb_on")
	b := s.Load("red_bulb_on")
	if a.Image() != b.Image() {
		t.Fatal("expected the same image for repeated loads")
	}
}

func TestLitBulbIsBrighterThanUnlit(t *testing.T) {
	s := NewSpriteStore(testPalette())
	on := s.Load("red_bulb_on").Image()
	off := s.Load("red_bulb_off").Image()
	var sumOn, sumOff int
	for i := 0; i < len(on.Pix); i += 4 {
		sumOn += int(on.Pix[i]) + int(on.Pix[i+1]) + int(on.Pix[i+2])
		sumOff += int(off.Pix[i]) + int(off.Pix[i+1]) + int(off.Pix[i+2])
	}
	if sumOn <= sumOff {
		t.Fatalf("expected lit bulb brighter, got on=%d off=%d", sumOn, sumOff)
	}
}

func TestEmptyTexture(t *testing.T) {
	var tex Texture
	if !tex.Empty() || tex.Image() != nil {
		t.Fatal("expected zero texture to be empty")
	}
}
