package lexicon

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/corpusling/connalign/align"
)

const dimlexXML = `<?xml version="1.0" encoding="UTF-8"?>
<dimlex>
  <entry id="k1" word="aber">
    <orths>
      <orth type="cont" canonical="1" onr="k1o1">
        <part type="single">Aber</part>
      </orth>
    </orths>
    <syn>
      <cat>konnadv</cat>
      <sem>
        <pdtb3_relation sense="Comparison.Contrast" anno_N="14"/>
        <pdtb3_relation sense="Comparison.Concession.Arg1-as-denier" anno_N="3"/>
      </sem>
    </syn>
  </entry>
  <entry id="k2" word="wenn auch">
    <orths>
      <orth type="cont" canonical="1" onr="k2o1">
        <part type="phrasal">wenn auch</part>
      </orth>
      <orth type="discont" canonical="0" onr="k2o2">
        <part type="single">wenn</part>
        <part type="single">auch</part>
      </orth>
    </orths>
    <syn>
      <cat>subj</cat>
      <sem>
        <pdtb3_relation sense="Comparison.Concession.Arg2-as-denier" anno_N="5"/>
      </sem>
    </syn>
  </entry>
  <entry id="k3" word="z.B.">
    <orths>
      <orth type="cont" canonical="1" onr="k3o1">
        <part type="single">z.B.</part>
      </orth>
    </orths>
    <syn>
      <cat>konnadv</cat>
      <sem>
        <pdtb3_relation sense="Expansion.Instantiation.Arg2-as-instance" anno_N="8"/>
      </sem>
    </syn>
  </entry>
</dimlex>`

const lexconnXML = `<?xml version="1.0" encoding="UTF-8"?>
<lexconn>
  <entry id="fr1" type="conn">
    <orths>
      <orth type="cont"><part>Bien que</part></orth>
      <orth type="cont"><part>bien qu'</part></orth>
    </orths>
  </entry>
  <entry id="fr2" type="conn">
    <orths>
      <orth type="cont"><part>d'abord</part></orth>
      <orth type="discont">
        <part>plus</part>
        <part>plus</part>
      </orth>
    </orths>
  </entry>
</lexconn>`

func TestReadDimLex(t *testing.T) {
	lex, err := ReadDimLex(strings.NewReader(dimlexXML))
	if err != nil {
		t.Fatal(err)
	}
	if lex.Lang != "de" {
		t.Errorf("Lang = %q, want de", lex.Lang)
	}
	// Forms are lowercased, the discontinuous variant keeps its gap
	// marker, and the abbreviation period stays attached.
	want := []string{"aber", "wenn ... auch", "wenn auch", "z.b."}
	if !reflect.DeepEqual(lex.Forms, want) {
		t.Errorf("Forms = %v, want %v", lex.Forms, want)
	}
}

func TestReadDimLexSenses(t *testing.T) {
	senses, err := ReadDimLexSenses(strings.NewReader(dimlexXML))
	if err != nil {
		t.Fatal(err)
	}
	// Dotted senses come out in colon form, and both realizations of a
	// discontinuous entry share the entry's annotation.
	want := SenseMap{
		"aber":          {"COMPARISON:Contrast", "COMPARISON:Concession:Arg1-as-denier"},
		"wenn auch":     {"COMPARISON:Concession:Arg2-as-denier"},
		"wenn ... auch": {"COMPARISON:Concession:Arg2-as-denier"},
		"z.b.":          {"EXPANSION:Instantiation:Arg2-as-instance"},
	}
	if !reflect.DeepEqual(senses, want) {
		t.Errorf("senses = %v, want %v", senses, want)
	}
}

func TestReadLexConn(t *testing.T) {
	lex, err := ReadLexConn(strings.NewReader(lexconnXML))
	if err != nil {
		t.Fatal(err)
	}
	// "d'abord" splits after the elision, like the corpus tokens do.
	want := []string{"bien qu'", "bien que", "d' abord", "plus ... plus"}
	if !reflect.DeepEqual(lex.Forms, want) {
		t.Errorf("Forms = %v, want %v", lex.Forms, want)
	}
}

func TestNewDropsDuplicates(t *testing.T) {
	lex := New("fr", "mais", "", "donc", "mais")
	want := []string{"donc", "mais"}
	if !reflect.DeepEqual(lex.Forms, want) {
		t.Errorf("Forms = %v, want %v", lex.Forms, want)
	}
	if !lex.Set().Has("donc") {
		t.Error("Set misses donc")
	}
}

func TestForRelation(t *testing.T) {
	lex := New("de", "aber", "obwohl", "und", "weil")
	senses := SenseMap{
		"obwohl": {"COMPARISON:Concession:Arg2-as-denier"},
		"aber":   {"COMPARISON:Contrast", "COMPARISON:Concession:Arg1-as-denier"},
		"weil":   {"CONTINGENCY:Cause:Reason"},
		// "und" carries no annotation at all
	}
	groups := DefaultGroups()

	got, err := lex.ForRelation(senses, groups, "concession")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"aber", "obwohl"}; !reflect.DeepEqual(got, want) {
		t.Errorf("concession forms = %v, want %v", got, want)
	}

	got, err = lex.ForRelation(senses, groups, "cause")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"weil"}; !reflect.DeepEqual(got, want) {
		t.Errorf("cause forms = %v, want %v", got, want)
	}

	_, err = lex.ForRelation(senses, groups, "reinforcement")
	var unknown *align.UnknownRelationError
	if !errors.As(err, &unknown) {
		t.Fatalf("err = %v, want UnknownRelationError", err)
	}
}

func TestDefaultGroupsNames(t *testing.T) {
	names := DefaultGroups().Names()
	if len(names) != 17 {
		t.Fatalf("got %d relations, want 17", len(names))
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("names not sorted: %v", names)
	}
	for _, must := range []string{"concession", "contrast", "cause", "condition", "synchronous"} {
		found := false
		for _, n := range names {
			if n == must {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing relation %q", must)
		}
	}
}

func TestReadSensesAndGroups(t *testing.T) {
	dir := t.TempDir()
	sensesPath := filepath.Join(dir, "de_relations.json")
	sensesJSON := `{"obwohl": ["COMPARISON:Concession:Arg2-as-denier"]}`
	if err := os.WriteFile(sensesPath, []byte(sensesJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	senses, err := ReadSenses(sensesPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(senses["obwohl"]) != 1 {
		t.Errorf("senses = %v", senses)
	}

	groupsPath := filepath.Join(dir, "relations.json")
	groupsJSON := `{"concession": ["COMPARISON:Concession:Arg2-as-denier"]}`
	if err := os.WriteFile(groupsPath, []byte(groupsJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	groups, err := ReadGroups(groupsPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(groups["concession"]) != 1 {
		t.Errorf("groups = %v", groups)
	}

	if _, err := ReadSenses(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestProfiles(t *testing.T) {
	fr := New("fr", "bien que", "mais")
	de := New("de", "obwohl", "aber")
	profiles := DefaultProfiles(fr, de)

	frp, ok := profiles["fr"]
	if !ok {
		t.Fatal("missing fr profile")
	}
	if frp.Contractions["du"] != "de" || frp.Contractions["aux"] != "à" {
		t.Errorf("fr contractions = %v", frp.Contractions)
	}
	if !frp.ExcludedSeeds["si"] {
		t.Error("fr profile should exclude the seed \"si\"")
	}

	dep := profiles["de"]
	if !dep.ExcludedSeeds["wenn ... auch"] {
		t.Error("de profile should exclude the seed \"wenn ... auch\"")
	}
	if !dep.SuspectWords["ich"] || !dep.JunkWords["dass"] {
		t.Errorf("de word lists incomplete")
	}
	if !reflect.DeepEqual(dep.FullLexicon, de.Forms) {
		t.Errorf("de full lexicon = %v, want %v", dep.FullLexicon, de.Forms)
	}
}
