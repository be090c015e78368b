package rules

import (
	"path/filepath"
	"testing"
)

func TestSeverity(t *testing.T) {
	t.Run("BaseScore", func(t *testing.T) {
		cases := map[Severity]int{
			SeverityLow:      10,
			SeverityMedium:   25,
			SeverityHigh:     40,
			SeverityCritical: 60,
			Severity("bogus"): 0,
		}
		for severity, want := range cases {
			if got := severity.BaseScore(); got != want {
				t.Errorf("BaseScore(%s) = %d, want %d", severity, got, want)
			}
		}
	})

	t.Run("Rank ordering", func(t *testing.T) {
		if !(SeverityLow.Rank() < SeverityMedium.Rank() &&
			SeverityMedium.Rank() < SeverityHigh.Rank() &&
			SeverityHigh.Rank() < SeverityCritical.Rank()) {
			t.Error("severity ranks are not strictly increasing")
		}
	})
}

func TestDetectionRuleValidate(t *testing.T) {
	valid := DetectionRule{
		ID:       "kw-test",
		Name:     "Test keyword",
		Type:     TypeKeyword,
		Severity: SeverityHigh,
		Enabled:  true,
		Keyword:  &KeywordParams{Keywords: []string{"ignore previous"}},
	}

	t.Run("valid rule passes", func(t *testing.T) {
		if err := valid.Validate(); err != nil {
			t.Fatalf("Validate() = %v, want nil", err)
		}
	})

	t.Run("missing payload rejected", func(t *testing.T) {
		r := valid
		r.Keyword = nil
		if err := r.Validate(); err == nil {
			t.Error("rule without payload passed validation")
		}
	})

	t.Run("two payloads rejected", func(t *testing.T) {
		r := valid
		r.Regex = &RegexParams{Pattern: "x"}
		if err := r.Validate(); err == nil {
			t.Error("rule with two payloads passed validation")
		}
	})

	t.Run("payload type mismatch rejected", func(t *testing.T) {
		r := valid
		r.Keyword = nil
		r.Regex = &RegexParams{Pattern: "x"}
		if err := r.Validate(); err == nil {
			t.Error("keyword rule with regex payload passed validation")
		}
	})

	t.Run("bad regex rejected at validation", func(t *testing.T) {
		r := DetectionRule{
			ID:       "re-bad",
			Name:     "Broken",
			Type:     TypeRegex,
			Severity: SeverityLow,
			Regex:    &RegexParams{Pattern: "("},
		}
		if err := r.Validate(); err == nil {
			t.Error("unparseable regex passed validation")
		}
	})

	t.Run("unsupported regex flag rejected", func(t *testing.T) {
		r := DetectionRule{
			ID:       "re-flag",
			Name:     "Flagged",
			Type:     TypeRegex,
			Severity: SeverityLow,
			Regex:    &RegexParams{Pattern: "x", Flags: "gx"},
		}
		if err := r.Validate(); err == nil {
			t.Error("unsupported flag passed validation")
		}
	})

	t.Run("invalid severity rejected", func(t *testing.T) {
		r := valid
		r.Severity = "extreme"
		if err := r.Validate(); err == nil {
			t.Error("invalid severity passed validation")
		}
	})
}

func TestBaseScoreWeightOverride(t *testing.T) {
	r := DetectionRule{Severity: SeverityMedium, Weight: 33}
	if got := r.BaseScore(); got != 33 {
		t.Errorf("BaseScore() = %d, want weight override 33", got)
	}
	r.Weight = 0
	if got := r.BaseScore(); got != 25 {
		t.Errorf("BaseScore() = %d, want severity default 25", got)
	}
}

func TestNewPosition(t *testing.T) {
	source := "first line\nsecond LINE here"

	t.Run("line and column are 1-based", func(t *testing.T) {
		// "LINE" starts at offset 18, line 2, column 8.
		pos := NewPosition(source, 18, 22)
		if pos.Line != 2 || pos.Column != 8 {
			t.Errorf("position = line %d col %d, want line 2 col 8", pos.Line, pos.Column)
		}
		if pos.Text != "LINE" {
			t.Errorf("Text = %q, want %q (original casing preserved)", pos.Text, "LINE")
		}
	})

	t.Run("start of text", func(t *testing.T) {
		pos := NewPosition(source, 0, 5)
		if pos.Line != 1 || pos.Column != 1 {
			t.Errorf("position = line %d col %d, want line 1 col 1", pos.Line, pos.Column)
		}
	})
}

func TestDefaultRules(t *testing.T) {
	set := DefaultRules()
	if len(set) == 0 {
		t.Fatal("DefaultRules() is empty")
	}

	t.Run("all default rules validate", func(t *testing.T) {
		for i := range set {
			if err := set[i].Validate(); err != nil {
				t.Errorf("default rule %s: %v", set[i].ID, err)
			}
		}
	})

	t.Run("ids are unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := range set {
			if seen[set[i].ID] {
				t.Errorf("duplicate rule id %s", set[i].ID)
			}
			seen[set[i].ID] = true
		}
	})

	t.Run("categories reference existing rules", func(t *testing.T) {
		ids := make(map[string]bool)
		for i := range set {
			ids[set[i].ID] = true
		}
		for _, cat := range DefaultCategories() {
			for _, id := range cat.RuleIDs {
				if !ids[id] {
					t.Errorf("category %s references unknown rule %s", cat.ID, id)
				}
			}
		}
	})
}

func TestFingerprint(t *testing.T) {
	set := DefaultRules()

	t.Run("stable across calls", func(t *testing.T) {
		if Fingerprint(set) != Fingerprint(DefaultRules()) {
			t.Error("fingerprint differs for identical rule sets")
		}
	})

	t.Run("changes when a rule is disabled", func(t *testing.T) {
		modified := DefaultRules()
		modified[0].Enabled = !modified[0].Enabled
		if Fingerprint(set) == Fingerprint(modified) {
			t.Error("fingerprint unchanged after toggling a rule")
		}
	})

	t.Run("changes when a weight changes", func(t *testing.T) {
		modified := DefaultRules()
		modified[0].Weight = 77
		if Fingerprint(set) == Fingerprint(modified) {
			t.Error("fingerprint unchanged after weight edit")
		}
	})
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")

	original := &File{
		Version:    1,
		Rules:      DefaultRules(),
		Categories: DefaultCategories(),
	}
	if err := SaveFile(path, original); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(loaded.Rules) != len(original.Rules) {
		t.Fatalf("loaded %d rules, want %d", len(loaded.Rules), len(original.Rules))
	}
	if Fingerprint(loaded.Rules) != Fingerprint(original.Rules) {
		t.Error("fingerprint changed across save/load")
	}
}

func TestLoadFileRejectsDuplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")

	set := DefaultRules()[:2]
	set[1].ID = set[0].ID
	if err := SaveFile(path, &File{Version: 1, Rules: set}); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("file with duplicate rule ids loaded without error")
	}
}
