package vmwriter

import "strconv"

// LabelGen mints unique control-flow labels. A single counter is shared
// across every subroutine in a class — it is deliberately not reset at
// subroutine entry, since that monotonicity is what guarantees
// uniqueness without the generator needing to track which subroutine
// it's currently inside.
type LabelGen struct {
	next int
}

// Generate returns "<prefix><k>" and advances the counter.
func (g *LabelGen) Generate(prefix string) string {
	label := prefix + strconv.Itoa(g.next)
	g.next++
	return label
}
