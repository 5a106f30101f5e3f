/*
Package posy is a deterministic-yet-random prompt generation engine for
image-generation tools.

A preset is an ordered tree of weighted configuration nodes. Each node is
either a leaf (a pool of literal tag strings) or a group (a pool of child
nodes), and carries a selection mode that decides how many pool entries one
generation picks: one at random, one in rotation, one with a probability,
a fixed count, an independent probability per entry, or all of them. The
chosen entries are joined with ", " and the node's output is wrapped in a
randomly drawn number of {weight brackets} before bubbling up to its parent.

# Usage

	eng := posy.New()

	preset := dsl.NewPreset("portrait").
		Add(dsl.Leaf("base", "1girl", "smile").All().Build()).
		Build()

	if err := eng.Validate(preset); err != nil {
		log.Fatal(err)
	}

	session := posy.NewSession(domain.WithSeed(42))
	prompt := eng.Generate(preset, session)

# Sessions

All mutable generation state (the random source and the rotation cursors of
sequential nodes) lives in a Session owned by the caller. Keep one session
across repeated Generate calls and sequential nodes visibly rotate; create a
fresh one and rotation restarts. Seeded sessions replay bit-for-bit, which
is how the test suite pins down otherwise random behavior. The preset tree
itself is never mutated, so independent sessions can generate from the same
tree concurrently.

# Degradation over failure

Generation never returns an error: empty pools, counts beyond the pool size
and disabled subtrees all degrade to empty output, because "nothing was
generated" is a legitimate, user-visible result. The only hard failures are
configuration errors (duplicate node IDs, out-of-range parameters) reported
by Validate before generation is attempted.
*/
package posy
