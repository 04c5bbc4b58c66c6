// Package ioutils provides small file system helpers for the rename
// pipeline.
//
// SanitizeFileName makes a rendered template result safe to use as a
// filename across operating systems; FileExists backs the planner's
// collision checks before it applies a rename.
package ioutils
