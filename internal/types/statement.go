package types

import (
	"database/sql"
	"sort"
	"strconv"
	"strings"
)

// Statement is a rendered SQL statement plus its out-of-band bind values.
// Bind keys follow the pattern <prefix><n> with n assigned in strict
// left-to-right order of appearance in the SQL text.
type Statement struct {
	SQL  string
	Bind map[string]any
}

// NamedArgs returns the bind values as sql.Named arguments ordered by bind
// number, ready to pass to database/sql Exec or Query.
func (s *Statement) NamedArgs() []any {
	names := make([]string, 0, len(s.Bind))
	for name := range s.Bind {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return bindOrdinal(names[i]) < bindOrdinal(names[j])
	})

	args := make([]any, 0, len(names))
	for _, name := range names {
		args = append(args, sql.Named(name, s.Bind[name]))
	}
	return args
}

func bindOrdinal(name string) int {
	i := strings.LastIndexByte(name, '_')
	if i < 0 {
		return 0
	}
	n, err := strconv.Atoi(name[i+1:])
	if err != nil {
		return 0
	}
	return n
}
