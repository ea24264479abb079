// Package tui provides the interactive project picker.
//
// The picker lists the projects under the root and lets the operator choose
// one to open, jump to the root, or delete a project:
//
//	result, err := tui.RunPicker(projects, os.Stdin, os.Stderr)
//	switch result.Action {
//	case tui.ActionOpen:
//	    // Navigate to result.Project
//	case tui.ActionHome:
//	    // Navigate to the projects root
//	case tui.ActionDelete:
//	    // Delete result.Project after confirmation
//	case tui.ActionQuit:
//	    // Exit
//	}
//
// The picker renders on the given writer so stdout stays free for the
// navigation markers.
package tui
