package align

import (
	"reflect"
	"testing"
)

func refineOne(accepted []Accepted, p Profile) []Accepted {
	return Refine(map[string][]Accepted{"conn": accepted}, p)["conn"]
}

func targetsOf(entries []Accepted) []string {
	var targets []string
	for _, a := range entries {
		targets = append(targets, a.Target)
	}
	return targets
}

func TestRefineDropsSuspectEndings(t *testing.T) {
	p := Profile{SuspectWords: map[string]bool{"sie": true, "es": true}}
	got := refineOne([]Accepted{
		{Target: "doch sie", Count: 2, Share: 0.4},
		{Target: "doch", Count: 2, Share: 0.4},
		{Target: "es", Count: 1, Share: 0.2},
	}, p)
	if want := []string{"doch"}; !reflect.DeepEqual(targetsOf(got), want) {
		t.Errorf("targets = %v, want %v", targetsOf(got), want)
	}
}

func TestRefineDropsWeakEchoedSingle(t *testing.T) {
	// "quand" only echoes "quand même" and has too little support of
	// its own.
	got := refineOne([]Accepted{
		{Target: "quand même", Count: 9, Share: 0.9},
		{Target: "quand", Count: 1, Share: 0.1},
	}, Profile{})
	if want := []string{"quand même"}; !reflect.DeepEqual(targetsOf(got), want) {
		t.Errorf("targets = %v, want %v", targetsOf(got), want)
	}

	// With enough support of its own the single survives.
	got = refineOne([]Accepted{
		{Target: "quand même", Count: 8, Share: 0.8},
		{Target: "quand", Count: 2, Share: 0.2},
	}, Profile{})
	if want := []string{"quand même", "quand"}; !reflect.DeepEqual(targetsOf(got), want) {
		t.Errorf("targets = %v, want %v", targetsOf(got), want)
	}
}

func TestRefineDropsContainedPhrases(t *testing.T) {
	// "bien même" sits inside "quand bien même" with a tenth of its
	// support.
	got := refineOne([]Accepted{
		{Target: "quand bien même", Count: 50, Share: 0.5},
		{Target: "bien même", Count: 5, Share: 0.05},
	}, Profile{})
	if want := []string{"quand bien même"}; !reflect.DeepEqual(targetsOf(got), want) {
		t.Errorf("targets = %v, want %v", targetsOf(got), want)
	}

	// A contained phrase dominating its container stays.
	got = refineOne([]Accepted{
		{Target: "bien même", Count: 15, Share: 0.15},
		{Target: "quand bien même", Count: 4, Share: 0.04},
	}, Profile{})
	if want := []string{"bien même", "quand bien même"}; !reflect.DeepEqual(targetsOf(got), want) {
		t.Errorf("targets = %v, want %v", targetsOf(got), want)
	}
}

func TestRefineDropsJunkSinglesAndPronouns(t *testing.T) {
	p := Profile{
		JunkWords: map[string]bool{"avec": true},
		Pronouns:  map[string]bool{"er": true},
	}
	got := refineOne([]Accepted{
		{Target: "avec", Count: 3, Share: 0.3},
		{Target: "avec plaisir", Count: 3, Share: 0.3},
		{Target: "ob er", Count: 2, Share: 0.2},
		{Target: "doch", Count: 2, Share: 0.2},
	}, p)
	if want := []string{"avec plaisir", "doch"}; !reflect.DeepEqual(targetsOf(got), want) {
		t.Errorf("targets = %v, want %v", targetsOf(got), want)
	}
}

func TestRefineCompletesGappedSpans(t *testing.T) {
	p := Profile{FullLexicon: []string{"quand bien même", "même si"}}
	got := refineOne([]Accepted{
		{Target: "quand ... même", Count: 4, Share: 0.4},
	}, p)
	want := []Accepted{{Target: "quand bien même", Count: 4, Share: 0.4}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("refined = %v, want %v", got, want)
	}
}

func TestRefineDropsGappedSpanNextToRealization(t *testing.T) {
	got := refineOne([]Accepted{
		{Target: "quand bien même", Count: 6, Share: 0.6},
		{Target: "quand ... même", Count: 2, Share: 0.2},
	}, Profile{})
	if want := []string{"quand bien même"}; !reflect.DeepEqual(targetsOf(got), want) {
		t.Errorf("targets = %v, want %v", targetsOf(got), want)
	}
}

func TestRefinePrunesEmptiedSources(t *testing.T) {
	p := Profile{JunkWords: map[string]bool{"avec": true}}
	refined := Refine(map[string][]Accepted{
		"conn": {{Target: "avec", Count: 1, Share: 1}},
	}, p)
	if len(refined) != 0 {
		t.Errorf("refined = %v, want empty map", refined)
	}
}
