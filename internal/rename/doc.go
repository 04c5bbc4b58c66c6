// Package rename plans and applies metadata-driven file renames.
//
// The Planner compiles the filename template once, reads each input
// file's metadata, and renders the new name, preserving the original
// extension:
//
//	planner := rename.NewPlanner(settings, metadata.NewID3Source(), nil)
//	plans, err := planner.PlanAll(ctx, "%artist - %title", paths)
//	for _, plan := range plans {
//	    fmt.Println(plan.NewPath)
//	}
//
// Planning is read-only; nothing on disk changes until Apply is called
// with the accepted plans. Metadata reads fan out across a bounded
// number of goroutines since each file's evaluation is independent of
// the others.
//
// Any error aborts the batch: an unknown template field, a file whose
// metadata lacks a referenced field, or an unreadable file. The typed
// errors from the format and metadata packages pass through untouched
// so callers can tell the cases apart.
package rename
