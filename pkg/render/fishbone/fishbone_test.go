package fishbone

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rcakit/ishikawa/pkg/diagram"
	"github.com/rcakit/ishikawa/pkg/profile"
)

func TestBuildThaiScenario(t *testing.T) {
	// The canonical producer output: 2 categories under a 6-slot profile
	// must render exactly 2 bones with 2 and 1 ribs.
	out := Build("ผู้ป่วยได้รับยาผิด", []diagram.Category{
		{Label: "คน", Items: []string{"พยาบาลเร่งรีบ", "สื่อสารคลาดเคลื่อน"}},
		{Label: "วิธีการ", Items: []string{"ไม่ตรวจสอบซ้ำ"}},
	})

	p := profile.Detailed()
	if out.Width != p.CanvasWidth || out.Height != p.CanvasHeight {
		t.Errorf("size = %gx%g, want %gx%g", out.Width, out.Height, p.CanvasWidth, p.CanvasHeight)
	}
	svg := string(out.SVG)
	if got := strings.Count(svg, `class="bone"`); got != 2 {
		t.Errorf("got %d bones, want 2", got)
	}
	if got := strings.Count(svg, `class="rib"`); got != 3 {
		t.Errorf("got %d ribs, want 3", got)
	}
	if !strings.Contains(svg, "ผู้ป่วยได้รับยาผิด") {
		t.Error("head box missing the effect text")
	}
}

func TestBuildEmptyInput(t *testing.T) {
	out := Build("", nil)

	svg := string(out.SVG)
	if !strings.Contains(svg, PlaceholderEffect) {
		t.Error("blank effect must render the placeholder")
	}
	if got := strings.Count(svg, `class="bone"`); got != 1 {
		t.Errorf("got %d bones, want exactly 1 placeholder bone", got)
	}
	if !strings.Contains(svg, PlaceholderCategory) {
		t.Error("missing placeholder category label")
	}
	if got := strings.Count(svg, `class="rib"`); got != 0 {
		t.Errorf("placeholder category must have no ribs, got %d", got)
	}
}

func TestBuildItemCapacity(t *testing.T) {
	// 10 items under a 2-item profile: exactly 2 ribs, the rest dropped
	// silently.
	items := make([]string, 10)
	for i := range items {
		items[i] = "cause"
	}
	out := Build("e", []diagram.Category{{Label: "c", Items: items}}, WithProfile(profile.Executive()))

	if got := strings.Count(string(out.SVG), `class="rib"`); got != 2 {
		t.Errorf("got %d ribs, want 2", got)
	}
}

func TestBuildDeterministic(t *testing.T) {
	cats := []diagram.Category{{Label: "c", Items: []string{"a", "b"}}}

	first := Build("effect", cats)
	second := Build("effect", cats)
	if !bytes.Equal(first.SVG, second.SVG) {
		t.Error("identical arguments must yield byte-identical output")
	}
}

func TestBuildNeverPanics(t *testing.T) {
	long := strings.Repeat("ยาว", 4000)
	manyCats := make([]diagram.Category, 100)
	for i := range manyCats {
		items := make([]string, 50)
		for j := range items {
			items[j] = long
		}
		manyCats[i] = diagram.Category{Label: long, Items: items}
	}

	tests := []struct {
		name   string
		effect string
		cats   []diagram.Category
	}{
		{"empty everything", "", nil},
		{"huge strings and lists", long, manyCats},
		{"empty strings in lists", "e", []diagram.Category{{Label: "", Items: []string{"", ""}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, p := range []profile.Profile{profile.Detailed(), profile.Executive()} {
				out := Build(tt.effect, tt.cats, WithProfile(p))
				if len(out.SVG) == 0 {
					t.Error("empty output")
				}
				if out.Width != p.CanvasWidth || out.Height != p.CanvasHeight {
					t.Errorf("size = %gx%g, want canvas size", out.Width, out.Height)
				}
			}
		})
	}
}

func TestBuildCategoryCapacity(t *testing.T) {
	cats := make([]diagram.Category, 30)
	for i := range cats {
		cats[i] = diagram.Category{Label: "c", Items: []string{"x"}}
	}

	out := Build("e", cats)
	if got := strings.Count(string(out.SVG), `class="bone"`); got != profile.Detailed().MaxCategories {
		t.Errorf("got %d bones, want %d", got, profile.Detailed().MaxCategories)
	}
}

func TestBuildDocument(t *testing.T) {
	data, err := BuildDocument("", nil)
	if err != nil {
		t.Fatalf("BuildDocument error: %v", err)
	}
	s := string(data)
	if !strings.Contains(s, PlaceholderEffect) || !strings.Contains(s, PlaceholderCategory) {
		t.Error("document missing normalized placeholders")
	}
}

func TestNormalize(t *testing.T) {
	in := Normalize("  ", nil)
	if in.Effect != PlaceholderEffect {
		t.Errorf("Effect = %q", in.Effect)
	}
	if len(in.Categories) != 1 || in.Categories[0].Label != PlaceholderCategory {
		t.Errorf("Categories = %+v", in.Categories)
	}
	if len(in.Categories[0].Items) != 0 {
		t.Error("placeholder category must have no items")
	}

	real := Normalize("e", []diagram.Category{{Label: "a"}})
	if real.Categories[0].Label != "a" {
		t.Error("non-empty categories must pass through unchanged")
	}
}
