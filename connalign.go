// Package connalign bootstraps bilingual discourse connective lexicons
// from word-aligned parallel text.
//
// Starting from the connective inventory of one language, it matches
// those seeds in the corpus, collects the aligned spans on the other
// side, keeps the frequent ones, and feeds them back as seeds for the
// next iteration in the opposite direction.
//
//	cfg := connalign.DefaultRunConfig()
//	cfg.Alignment = "de-fr.align"
//	cfg.SourceCorpus = "europarl.de"
//	cfg.TargetCorpus = "europarl.fr"
//	report, _ := connalign.Run(cfg)
//	fmt.Println(report.Files) // tables and diagrams in cfg.OutDir
package connalign

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/corpusling/connalign/align"
	"github.com/corpusling/connalign/corpus"
	"github.com/corpusling/connalign/lexicon"
)

// Lexicon directory layout. The XML lexicons are required; the JSON
// files override the senses extracted from DimLex and the built-in
// relation groups.
const (
	DimLexFile   = "dimlex.xml"
	LexConnFile  = "lexconn.xml"
	GermanSenses = "de_relations.json"
	FrenchSenses = "fr_relations.json"
	GroupsFile   = "relations.json"
)

// Report summarizes a finished run.
type Report struct {
	Result *align.Result
	// Files lists everything written to OutDir.
	Files []string
}

// Run loads the corpora, bootstraps the connective alignment and saves
// the resulting tables.
func Run(cfg RunConfig) (*Report, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	pair, links, err := loadPair(cfg)
	if err != nil {
		return nil, err
	}
	index, err := align.NewIndex(pair, links)
	if err != nil {
		return nil, fmt.Errorf("connalign: %w", err)
	}
	inv, err := loadInventories(cfg.LexiconDir)
	if err != nil {
		return nil, err
	}
	seeds, relation, err := inv.seeds(cfg.Relation)
	if err != nil {
		return nil, fmt.Errorf("connalign: %w", err)
	}

	engCfg, err := cfg.engineConfig(lexicon.DefaultProfiles(inv.fr, inv.de))
	if err != nil {
		return nil, fmt.Errorf("connalign: %w", err)
	}
	engine, err := align.NewEngine(pair, index, engCfg)
	if err != nil {
		return nil, fmt.Errorf("connalign: %w", err)
	}
	result, err := engine.Run(seeds, relation)
	if err != nil {
		return nil, fmt.Errorf("connalign: %w", err)
	}

	files, err := export(cfg, result, inv)
	if err != nil {
		return nil, err
	}
	return &Report{Result: result, Files: files}, nil
}

func loadPair(cfg RunConfig) (*corpus.Pair, []corpus.Link, error) {
	opts := corpus.DefaultReadOptions()
	source, err := corpus.ReadCorpus(cfg.SourceCorpus, cfg.SourceLang, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("connalign: %w", err)
	}
	target, err := corpus.ReadCorpus(cfg.TargetCorpus, cfg.TargetLang, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("connalign: %w", err)
	}
	pair, err := corpus.NewPair(source, target)
	if err != nil {
		return nil, nil, fmt.Errorf("connalign: %w", err)
	}
	links, err := corpus.ReadPharaoh(cfg.Alignment)
	if err != nil {
		return nil, nil, fmt.Errorf("connalign: %w", err)
	}
	return pair, links, nil
}

// inventories bundles the lexicons and annotations of one run.
type inventories struct {
	fr, de   *lexicon.Lexicon
	frSenses lexicon.SenseMap
	deSenses lexicon.SenseMap
	groups   lexicon.Groups
}

func loadInventories(dir string) (*inventories, error) {
	inv := &inventories{}
	var err error
	if inv.de, err = lexicon.ReadDimLexFile(filepath.Join(dir, DimLexFile)); err != nil {
		return nil, fmt.Errorf("connalign: %w", err)
	}
	if inv.fr, err = lexicon.ReadLexConnFile(filepath.Join(dir, LexConnFile)); err != nil {
		return nil, fmt.Errorf("connalign: %w", err)
	}

	if inv.deSenses, err = readOptionalSenses(filepath.Join(dir, GermanSenses)); err != nil {
		return nil, err
	}
	if inv.deSenses == nil {
		// DimLex annotates senses inline, so the JSON file is only an
		// override for German.
		if inv.deSenses, err = lexicon.ReadDimLexSensesFile(filepath.Join(dir, DimLexFile)); err != nil {
			return nil, fmt.Errorf("connalign: %w", err)
		}
	}
	if inv.frSenses, err = readOptionalSenses(filepath.Join(dir, FrenchSenses)); err != nil {
		return nil, err
	}

	groupsPath := filepath.Join(dir, GroupsFile)
	if _, statErr := os.Stat(groupsPath); statErr == nil {
		if inv.groups, err = lexicon.ReadGroups(groupsPath); err != nil {
			return nil, fmt.Errorf("connalign: %w", err)
		}
	} else {
		inv.groups = lexicon.DefaultGroups()
	}
	return inv, nil
}

func readOptionalSenses(path string) (lexicon.SenseMap, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, nil
	}
	senses, err := lexicon.ReadSenses(path)
	if err != nil {
		return nil, fmt.Errorf("connalign: %w", err)
	}
	return senses, nil
}

// seeds returns the per-language seed sets for relation, or the full
// inventories when relation is empty.
func (inv *inventories) seeds(relation string) (map[corpus.Language]*align.Set, string, error) {
	if relation == "" {
		return map[corpus.Language]*align.Set{
			inv.fr.Lang: inv.fr.Set(),
			inv.de.Lang: inv.de.Set(),
		}, "all", nil
	}
	frForms, err := inv.fr.ForRelation(inv.frSenses, inv.groups, relation)
	if err != nil {
		return nil, "", err
	}
	deForms, err := inv.de.ForRelation(inv.deSenses, inv.groups, relation)
	if err != nil {
		return nil, "", err
	}
	return map[corpus.Language]*align.Set{
		inv.fr.Lang: align.NewSet(frForms...),
		inv.de.Lang: align.NewSet(deForms...),
	}, relation, nil
}

func (inv *inventories) senses(lang corpus.Language) lexicon.SenseMap {
	switch lang {
	case inv.fr.Lang:
		return inv.frSenses
	case inv.de.Lang:
		return inv.deSenses
	}
	return nil
}
