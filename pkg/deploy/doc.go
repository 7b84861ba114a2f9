// Package deploy implements the link-state reconciliation engine. A plan
// classifies each immediate child of a source deployment-target directory
// against its resolved destination; applying the plan creates the missing
// symlinks, skips the correct ones and displaces conflicting entries into
// the trash before linking. Planning never mutates the filesystem, and
// both planning and execution are idempotent so an interrupted run is
// safe to repeat.
package deploy
