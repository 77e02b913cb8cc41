// Mawja - Bilingual Series Streaming Recommendations
// Copyright 2026 Mawja Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mawja-tv/mawja

package recommend

import (
	"testing"

	"github.com/google/uuid"
)

func TestBuildPopularSection(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Sections.PopularSize = 2

	a := Item{ID: uuid.MustParse("00000000-0000-0000-0000-00000000000a"), TotalViews: 50}
	b := Item{ID: uuid.MustParse("00000000-0000-0000-0000-00000000000b"), TotalViews: 200}
	c := Item{ID: uuid.MustParse("00000000-0000-0000-0000-00000000000c"), TotalViews: 100}

	sec := BuildPopularSection(cfg, []Item{a, b, c})
	if sec.Reason != ReasonPopular {
		t.Fatalf("reason = %q, want %q", sec.Reason, ReasonPopular)
	}
	if len(sec.Series) != 2 {
		t.Fatalf("got %d items, want 2", len(sec.Series))
	}
	if sec.Series[0].ID != b.ID || sec.Series[1].ID != c.ID {
		t.Errorf("order = [%s %s], want [%s %s]", sec.Series[0].ID, sec.Series[1].ID, b.ID, c.ID)
	}
}

func TestBuildPopularSectionTieBreaksByID(t *testing.T) {
	t.Parallel()

	a := Item{ID: uuid.MustParse("00000000-0000-0000-0000-00000000000a"), TotalViews: 10}
	b := Item{ID: uuid.MustParse("00000000-0000-0000-0000-00000000000b"), TotalViews: 10}

	sec := BuildPopularSection(DefaultConfig(), []Item{b, a})
	if sec.Series[0].ID != a.ID {
		t.Errorf("tied views should order by ascending ID, got %s first", sec.Series[0].ID)
	}
}

func TestBuildSectionsSourceSection(t *testing.T) {
	t.Parallel()

	src := Item{
		ID:      uuid.MustParse("00000000-0000-0000-0000-000000000001"),
		TitleAr: "المصدر",
		TitleEn: "The Source",
		Slug:    "the-source",
		Genres:  []string{"drama"},
		Tags:    []string{"family"},
	}
	// Both candidates overlap the source; the double match must rank first.
	full := testItem("00000000-0000-0000-0000-000000000002", []string{"drama"}, []string{"family"})
	half := testItem("00000000-0000-0000-0000-000000000003", []string{"drama"}, nil)

	scored := []ScoredItem{
		{Item: half, Score: 1.0},
		{Item: full, Score: 1.0},
	}

	sections := BuildSections(DefaultConfig(), []Item{src}, scored)
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
	sec := sections[0]
	if sec.Reason != ReasonBecauseYouWatched {
		t.Fatalf("reason = %q, want %q", sec.Reason, ReasonBecauseYouWatched)
	}
	if sec.SourceTitleAr != src.TitleAr || sec.SourceTitleEn != src.TitleEn || sec.SourceSlug != src.Slug {
		t.Errorf("source reference = (%q, %q, %q), want (%q, %q, %q)",
			sec.SourceTitleAr, sec.SourceTitleEn, sec.SourceSlug,
			src.TitleAr, src.TitleEn, src.Slug)
	}
	if len(sec.Series) != 2 {
		t.Fatalf("got %d items, want 2", len(sec.Series))
	}
	if sec.Series[0].ID != full.ID {
		t.Errorf("genre+tag match should rank above genre-only match")
	}
}

func TestBuildSectionsDropsThinSourceSection(t *testing.T) {
	t.Parallel()

	src := testItem("00000000-0000-0000-0000-000000000001", []string{"drama"}, nil)
	only := testItem("00000000-0000-0000-0000-000000000002", []string{"drama"}, nil)

	scored := []ScoredItem{{Item: only, Score: 3.0}}

	sections := BuildSections(DefaultConfig(), []Item{src}, scored)
	// One qualifying candidate is below the minimum, so the source section
	// is dropped and its candidate falls through to recommended.
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
	if sections[0].Reason != ReasonRecommended {
		t.Fatalf("reason = %q, want %q", sections[0].Reason, ReasonRecommended)
	}
	if len(sections[0].Series) != 1 || sections[0].Series[0].ID != only.ID {
		t.Errorf("recommended should hold the dropped section's candidate")
	}
}

func TestBuildSectionsMutualExclusivity(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Sections.SourceSectionSize = 2

	srcA := testItem("00000000-0000-0000-0000-0000000000a1", []string{"drama"}, nil)
	srcB := testItem("00000000-0000-0000-0000-0000000000b1", []string{"drama"}, nil)

	var scored []ScoredItem
	ids := []string{
		"00000000-0000-0000-0000-000000000001",
		"00000000-0000-0000-0000-000000000002",
		"00000000-0000-0000-0000-000000000003",
		"00000000-0000-0000-0000-000000000004",
		"00000000-0000-0000-0000-000000000005",
	}
	for i, id := range ids {
		scored = append(scored, ScoredItem{
			Item:  testItem(id, []string{"drama"}, nil),
			Score: float64(10 - i),
		})
	}

	sections := BuildSections(cfg, []Item{srcA, srcB}, scored)

	seen := make(map[uuid.UUID]bool)
	for _, sec := range sections {
		for _, it := range sec.Series {
			if seen[it.ID] {
				t.Fatalf("item %s appears in more than one section", it.ID)
			}
			seen[it.ID] = true
		}
	}
	// Every candidate overlaps every source, so both source sections fill
	// to capacity and the last candidate lands in recommended.
	if len(sections) != 3 {
		t.Fatalf("got %d sections, want 3", len(sections))
	}
	if sections[2].Reason != ReasonRecommended || len(sections[2].Series) != 1 {
		t.Errorf("final section should be recommended with the one leftover item")
	}
}

func TestBuildSectionsLimitsSources(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Sections.SourceCount = 1
	cfg.Sections.SourceSectionMin = 1

	srcA := testItem("00000000-0000-0000-0000-0000000000a1", []string{"drama"}, nil)
	srcB := testItem("00000000-0000-0000-0000-0000000000b1", []string{"comedy"}, nil)

	scored := []ScoredItem{
		{Item: testItem("00000000-0000-0000-0000-000000000001", []string{"drama"}, nil), Score: 1.0},
		{Item: testItem("00000000-0000-0000-0000-000000000002", []string{"comedy"}, nil), Score: 1.0},
	}

	sections := BuildSections(cfg, []Item{srcA, srcB}, scored)
	var sourceSections int
	for _, sec := range sections {
		if sec.Reason == ReasonBecauseYouWatched {
			sourceSections++
			if sec.SourceSlug != srcA.Slug || sec.SourceTitleEn != srcA.TitleEn || sec.SourceTitleAr != srcA.TitleAr {
				t.Errorf("section keyed off the wrong source")
			}
		}
	}
	if sourceSections != 1 {
		t.Errorf("got %d source sections, want 1", sourceSections)
	}
}

func TestBuildSectionsRecommendedCap(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Sections.RecommendedSize = 3

	var scored []ScoredItem
	for i := 0; i < 6; i++ {
		id := uuid.MustParse("00000000-0000-0000-0000-00000000010" + string(rune('0'+i)))
		scored = append(scored, ScoredItem{Item: Item{ID: id}, Score: float64(i)})
	}

	sections := BuildSections(cfg, nil, scored)
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
	if len(sections[0].Series) != 3 {
		t.Fatalf("recommended holds %d items, want 3", len(sections[0].Series))
	}
	// Highest global score first.
	if got := sections[0].Series[0].ID; got != scored[5].Item.ID {
		t.Errorf("top recommended item = %s, want %s", got, scored[5].Item.ID)
	}
}

func TestBuildSectionsEmptyCandidates(t *testing.T) {
	t.Parallel()

	sections := BuildSections(DefaultConfig(), nil, nil)
	if sections == nil {
		t.Fatal("sections must never be nil")
	}
	if len(sections) != 0 {
		t.Fatalf("got %d sections, want 0", len(sections))
	}
}

func TestSortByScoreDeterministicTies(t *testing.T) {
	t.Parallel()

	a := ScoredItem{Item: Item{ID: uuid.MustParse("00000000-0000-0000-0000-00000000000a")}, Score: 5}
	b := ScoredItem{Item: Item{ID: uuid.MustParse("00000000-0000-0000-0000-00000000000b")}, Score: 5}

	items := []ScoredItem{b, a}
	sortByScore(items)
	if items[0].Item.ID != a.Item.ID {
		t.Errorf("tied scores should order by ascending ID")
	}
}
