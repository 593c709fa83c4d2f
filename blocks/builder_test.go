package blocks

import (
	"testing"

	"github.com/tsawler/strata/model"
	"github.com/tsawler/strata/reader"
)

func makeFragment(text string, x, top, width, fontSize float64) reader.Fragment {
	return reader.Fragment{
		Text:     text,
		X:        x,
		Top:      top,
		Width:    width,
		Height:   fontSize,
		FontSize: fontSize,
		FontName: "Helvetica",
	}
}

func makePage(num int, frags ...reader.Fragment) reader.PageData {
	return reader.PageData{
		Number:    num,
		Width:     612,
		Height:    792,
		Fragments: frags,
	}
}

func TestBuildGroupsFragmentsIntoLines(t *testing.T) {
	builder := NewBuilder()

	page := makePage(1,
		makeFragment("Hello", 72, 100, 40, 12),
		makeFragment("world", 120, 100.5, 40, 12), // same line, slight jitter
		makeFragment("Below", 72, 140, 40, 12),
	)

	blocks := builder.Build([]reader.PageData{page})

	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	if blocks[0].Text != "Hello world" {
		t.Errorf("first block = %q, want %q", blocks[0].Text, "Hello world")
	}
	if blocks[1].Text != "Below" {
		t.Errorf("second block = %q, want %q", blocks[1].Text, "Below")
	}
}

func TestBuildMixedSizeLine(t *testing.T) {
	builder := NewBuilder()

	// A large run and a small inline run share a baseline: their tops
	// differ by more than the small run's half-height, but their vertical
	// ranges overlap almost completely.
	page := makePage(1,
		makeFragment("Results", 72, 95, 100, 24),
		makeFragment("(continued)", 180, 103, 80, 12),
	)

	blocks := builder.Build([]reader.PageData{page})
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	if blocks[0].Text != "Results (continued)" {
		t.Errorf("text = %q, want %q", blocks[0].Text, "Results (continued)")
	}
	if blocks[0].FontSize != 24 {
		t.Errorf("FontSize = %v, want the dominant 24", blocks[0].FontSize)
	}
}

func TestBuildSpacingFromGaps(t *testing.T) {
	builder := NewBuilder()

	// Two runs with no gap between them: no space inserted.
	page := makePage(1,
		makeFragment("Head", 72, 100, 30, 12),
		makeFragment("ing", 102, 100, 20, 12),
	)

	blocks := builder.Build([]reader.PageData{page})
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	if blocks[0].Text != "Heading" {
		t.Errorf("text = %q, want %q", blocks[0].Text, "Heading")
	}
}

func TestBuildDropsEmptyAndDegenerate(t *testing.T) {
	builder := NewBuilder()

	page := makePage(1,
		makeFragment("   ", 72, 100, 20, 12),
		reader.Fragment{Text: "ghost", X: 10, Top: 200, Width: 50, Height: 0, FontSize: 0},
		makeFragment("real", 72, 300, 30, 12),
	)

	blocks := builder.Build([]reader.PageData{page})
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	if blocks[0].Text != "real" {
		t.Errorf("text = %q, want %q", blocks[0].Text, "real")
	}
}

func TestBuildEmptyPages(t *testing.T) {
	builder := NewBuilder()

	blocks := builder.Build([]reader.PageData{
		makePage(1),
		makePage(2),
	})
	if len(blocks) != 0 {
		t.Fatalf("got %d blocks from empty pages, want 0", len(blocks))
	}
}

func TestBuildOrdering(t *testing.T) {
	builder := NewBuilder()

	pages := []reader.PageData{
		makePage(2, makeFragment("second page", 72, 100, 80, 12)),
		makePage(1,
			makeFragment("lower", 72, 500, 50, 12),
			makeFragment("upper", 72, 100, 50, 12),
		),
	}

	blocks := builder.Build(pages)
	if len(blocks) != 3 {
		t.Fatalf("got %d blocks, want 3", len(blocks))
	}

	for i := 1; i < len(blocks); i++ {
		prev, cur := blocks[i-1], blocks[i]
		if cur.Page < prev.Page {
			t.Errorf("block %d: page %d before page %d", i, prev.Page, cur.Page)
		}
		if cur.Page == prev.Page && cur.BBox.Top < prev.BBox.Top {
			t.Errorf("block %d: top %v before %v on same page", i, prev.BBox.Top, cur.BBox.Top)
		}
	}
	if blocks[0].Text != "upper" || blocks[1].Text != "lower" || blocks[2].Text != "second page" {
		t.Errorf("unexpected order: %q, %q, %q", blocks[0].Text, blocks[1].Text, blocks[2].Text)
	}
}

func TestBuildBoldFromFontName(t *testing.T) {
	builder := NewBuilder()

	frag := makeFragment("Important", 72, 100, 80, 18)
	frag.FontName = "Helvetica-Bold"

	blocks := builder.Build([]reader.PageData{makePage(1, frag)})
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	if !blocks[0].Bold {
		t.Error("block from bold font should have Bold set")
	}
}

func TestMergeHyphenWrap(t *testing.T) {
	builder := NewBuilder()

	page := makePage(1,
		makeFragment("Intro-", 72, 100, 50, 14),
		makeFragment("duction", 72, 116, 60, 14),
	)

	blocks := builder.Build([]reader.PageData{page})
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1 merged", len(blocks))
	}
	if blocks[0].Text != "Introduction" {
		t.Errorf("merged text = %q, want %q", blocks[0].Text, "Introduction")
	}
	if blocks[0].BBox.Bottom <= blocks[0].BBox.Top+14 {
		t.Errorf("merged bbox should span both lines, got %+v", blocks[0].BBox)
	}
}

func TestMergeUnclosedBracket(t *testing.T) {
	builder := NewBuilder()

	tests := []struct {
		name  string
		first string
		want  string
	}{
		{"paren", "Results (see", "Results (see below)"},
		{"cjk corner", "概要「この", "概要「この below)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := makePage(1,
				makeFragment(tt.first, 72, 100, 80, 12),
				makeFragment("below)", 72, 114, 50, 12),
			)
			blocks := builder.Build([]reader.PageData{page})
			if len(blocks) != 1 {
				t.Fatalf("got %d blocks, want 1 merged", len(blocks))
			}
			if blocks[0].Text != tt.want {
				t.Errorf("merged text = %q, want %q", blocks[0].Text, tt.want)
			}
		})
	}
}

func TestNoMergeAcrossLargeGap(t *testing.T) {
	builder := NewBuilder()

	// Dangling hyphen, but the next line is far below.
	page := makePage(1,
		makeFragment("Intro-", 72, 100, 50, 14),
		makeFragment("duction", 72, 300, 60, 14),
	)

	blocks := builder.Build([]reader.PageData{page})
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2 unmerged", len(blocks))
	}
}

func TestNoMergeBulletDash(t *testing.T) {
	// A line that is just a dash is a bullet, not a word wrap.
	if endsWithHyphenWrap("-") {
		t.Error("lone dash must not read as hyphen wrap")
	}
	if endsWithHyphenWrap("item one -") {
		t.Error("dash after space must not read as hyphen wrap")
	}
	if !endsWithHyphenWrap("hyphen-") {
		t.Error("dash after letter should read as hyphen wrap")
	}
}

func TestHeaderFooterMarking(t *testing.T) {
	dims := map[int]model.PageDims{}
	var all []*model.TextBlock

	// Five pages with an identical footer, a varying page number, and
	// distinct body text.
	for p := 1; p <= 5; p++ {
		dims[p] = model.PageDims{Width: 612, Height: 792}
		all = append(all,
			&model.TextBlock{Text: "ACME Annual Report", Page: p, BBox: model.NewBBox(72, 770, 200, 10)},
			&model.TextBlock{Text: pageNumText(p), Page: p, BBox: model.NewBBox(300, 770, 20, 10)},
			&model.TextBlock{Text: bodyText(p), Page: p, BBox: model.NewBBox(72, 400, 300, 12)},
		)
	}

	NewHeaderFooterDetector().Mark(all, dims)

	for _, b := range all {
		switch {
		case b.Text == "ACME Annual Report" && !b.Boilerplate:
			t.Errorf("repeating footer not marked on page %d", b.Page)
		case b.BBox.Top == 400 && b.Boilerplate:
			t.Errorf("body text wrongly marked on page %d: %q", b.Page, b.Text)
		}
	}

	for _, b := range all {
		if b.BBox.X0 == 300 && !b.Boilerplate {
			t.Errorf("page number not marked on page %d", b.Page)
		}
	}
}

func TestHeaderFooterSkipsShortDocuments(t *testing.T) {
	dims := map[int]model.PageDims{
		1: {Width: 612, Height: 792},
		2: {Width: 612, Height: 792},
	}
	blocks := []*model.TextBlock{
		{Text: "Title", Page: 1, BBox: model.NewBBox(72, 30, 200, 20)},
		{Text: "Title", Page: 2, BBox: model.NewBBox(72, 30, 200, 20)},
	}

	NewHeaderFooterDetector().Mark(blocks, dims)

	for _, b := range blocks {
		if b.Boilerplate {
			t.Error("two-page document should not trigger boilerplate marking")
		}
	}
}

func pageNumText(p int) string {
	return map[int]string{1: "1", 2: "2", 3: "3", 4: "4", 5: "5"}[p]
}

func bodyText(p int) string {
	return map[int]string{
		1: "The first section discusses scope.",
		2: "Methods are described in detail here.",
		3: "Findings vary across the sample.",
		4: "Discussion of the implications follows.",
		5: "Concluding remarks and future work.",
	}[p]
}
