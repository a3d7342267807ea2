// Meal Explorer - Recipe Discovery and Collection Tracking
// Copyright 2026 Anand (anand880441-source)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/anand880441-source/meal-explorer

package badges

import "testing"

func TestCatalog_FindKnownKey(t *testing.T) {
	def, ok := Find(KeyGlobetrotter)
	if !ok {
		t.Fatal("expected globetrotter definition")
	}
	if def.Key != KeyGlobetrotter || def.Label == "" || def.Description == "" {
		t.Errorf("incomplete definition: %+v", def)
	}
}

func TestCatalog_FindUnknownKey(t *testing.T) {
	if _, ok := Find("no_such_badge"); ok {
		t.Error("expected unknown key to miss")
	}
}

func TestCatalog_ThresholdRulesHaveDefinitions(t *testing.T) {
	for _, rule := range thresholdRules {
		if _, ok := Find(rule.key); !ok {
			t.Errorf("rule %s has no catalog definition", rule.key)
		}
	}
}
