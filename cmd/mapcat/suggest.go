package mapcat

import (
	"github.com/agnivade/levenshtein"
	"github.com/arthur-debert/mapcat/pkg/errors"
	"github.com/arthur-debert/mapcat/pkg/types"
)

// suggest returns the candidate closest to name, or "" when none is close
// enough to be a plausible typo
func suggest(name string, candidates []string) string {
	best, bestDist := "", -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(name, c)
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}

	limit := len(name) / 3
	if limit < 2 {
		limit = 2
	}
	if bestDist < 0 || bestDist > limit {
		return ""
	}
	return best
}

func unknownKindError(lang types.LanguageProvider, name string) error {
	vars := map[string]string{"KIND": name}
	key := "unknownKind"
	if s := suggest(name, kindNames()); s != "" {
		vars["SUGGESTION"] = s
		key = "unknownKindSuggestion"
	}

	err := errors.New(errors.ErrUnknownKind, lang.Text(key, vars)).
		WithDetail("kind", name)
	if s, ok := vars["SUGGESTION"]; ok {
		err = err.WithDetail("suggestion", s)
	}
	return err
}
