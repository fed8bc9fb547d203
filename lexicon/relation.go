package lexicon

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Groups maps a discourse relation name to the lexicon senses that
// express it.
type Groups map[string][]string

// Names returns the relation names in lexical order.
func (g Groups) Names() []string {
	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultGroups covers the PDTB 3.0 sense hierarchy as DimLex and
// LexConn annotate it.
func DefaultGroups() Groups {
	return Groups{
		"concession": {
			"COMPARISON:Concession:Arg1-as-denier",
			"COMPARISON:Concession:Arg2-as-denier",
		},
		"contrast":   {"COMPARISON:Contrast"},
		"similarity": {"COMPARISON:Similarity"},
		"cause": {
			"CONTINGENCY:Cause:Reason",
			"CONTINGENCY:Cause:Result",
		},
		"condition": {
			"CONTINGENCY:Condition:Arg1-as-cond",
			"CONTINGENCY:Condition:Arg2-as-cond",
		},
		"negative-condition": {
			"CONTINGENCY:Negative-condition:Arg1-as-negCond",
			"CONTINGENCY:Negative-condition:Arg2-as-negCond",
		},
		"purpose": {
			"CONTINGENCY:Purpose:Arg1-as-goal",
			"CONTINGENCY:Purpose:Arg2-as-goal",
		},
		"conjunction": {"EXPANSION:Conjunction"},
		"disjunction": {"EXPANSION:Disjunction"},
		"equivalence": {"EXPANSION:Equivalence"},
		"exception": {
			"EXPANSION:Exception:Arg1-as-excpt",
			"EXPANSION:Exception:Arg2-as-excpt",
		},
		"instantiation": {
			"EXPANSION:Instantiation:Arg1-as-instance",
			"EXPANSION:Instantiation:Arg2-as-instance",
		},
		"level-of-detail": {
			"EXPANSION:Level-of-detail:Arg1-as-detail",
			"EXPANSION:Level-of-detail:Arg2-as-detail",
		},
		"manner": {
			"EXPANSION:Manner:Arg1-as-manner",
			"EXPANSION:Manner:Arg2-as-manner",
		},
		"substitution": {
			"EXPANSION:Substitution:Arg1-as-subst",
			"EXPANSION:Substitution:Arg2-as-subst",
		},
		"synchronous": {"TEMPORAL:Synchronous"},
		"asynchronous": {
			"TEMPORAL:Asynchronous:Precedence",
			"TEMPORAL:Asynchronous:Succession",
		},
	}
}

// ReadGroups loads a relation grouping from JSON, replacing the
// built-in table.
func ReadGroups(path string) (Groups, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read relation groups: %w", err)
	}
	var groups Groups
	if err := json.Unmarshal(data, &groups); err != nil {
		return nil, fmt.Errorf("parse relation groups %s: %w", path, err)
	}
	return groups, nil
}
