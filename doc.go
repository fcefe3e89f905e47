/*
Package curvedit is an editor core for curve tables: text files that hold named
keyframe curves used to drive values over time.

It combines the table grammar (internal/compiler), the document model and
evaluator (pkg/curve) and a TableStore (pkg/ports) behind a single Editor.
The Editor keeps every open table in memory, resolves curve names across all
of them and the builtin easing curves, and tracks which tables have unsaved
edits.

# Usage

	store := file.New("./tables")
	ed := curvedit.New(curvedit.WithStore(store))

	if _, err := ed.Open(ctx, "curves.tbl"); err != nil {
		log.Fatal(err)
	}

	y, _ := ed.Evaluate("Fade", 0.25)

	// Edits mark the owning tables dirty.
	if _, err := ed.Rename("Fade", "FadeIn"); err != nil {
		log.Fatal(err)
	}
	if err := ed.SaveAll(ctx); err != nil {
		log.Fatal(err)
	}

Builtin curves are read-only. Edits that target them return ErrBuiltin.
*/
package curvedit
