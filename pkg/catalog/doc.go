// Package catalog holds named enums for the CLI and the API server.
//
// Names are matched case-insensitively (Unicode case folding), so "State" and
// "state" refer to the same entry. A catalog is typically filled at startup,
// either by Register or concurrently from preset sources with LoadPresets,
// then sealed:
//
//	c := catalog.New()
//	if err := c.LoadPresets(ctx, "presets/state.yaml", "cm://ui/colors"); err != nil {
//	    return err
//	}
//	c.Seal()
//
//	item, err := c.Lookup("state")
//
// All methods are safe for concurrent use.
package catalog
