package postgres

import (
	"fmt"
	"strings"
)

// patchBuilder accumulates SET clauses for partial updates. Only the fields
// present in the patch are written; absent fields stay untouched.
type patchBuilder struct {
	sets []string
	args []any
}

func (b *patchBuilder) set(col string, v any) {
	b.args = append(b.args, v)
	b.sets = append(b.sets, fmt.Sprintf("%s = $%d", col, len(b.args)))
}

func (b *patchBuilder) empty() bool { return len(b.sets) == 0 }

// arg appends a bare argument (id / user_id) and returns its placeholder
// position.
func (b *patchBuilder) arg(v any) int {
	b.args = append(b.args, v)
	return len(b.args)
}

func (b *patchBuilder) setClause() string { return strings.Join(b.sets, ", ") }
