// Package anatloc describes anatomical coordinate systems and brain-region
// annotations for neurophysiology data files.
//
// It provides:
//
//   - Space and the fixed AllenCCFv3Space, with orientation ("RAS", "ASL", ...)
//     and extent validation
//   - AnatomicalCoordinatesTable: one (x, y, z, brain_region) row per entity of
//     a target table
//   - AnatomicalCoordinatesImage: an (x, y, z) coordinate per pixel of an
//     image or imaging plane
//   - Localization, which groups the above for one file
//   - a stable error model via Issues (JSON Pointer, code, message)
//
// Every constructor validates its input and returns either a complete object
// or Issues; a partially built object is never returned.
//
// Design policy:
//   - Keep the entity types and their validation in the root package.
//   - The generic table and image records live under table/ and imaging/,
//     wire codecs under codec/, file I/O under store/ and the CLI under
//     cmd/anatloc.
//
// Typical usage:
//
//	space := anatloc.AllenCCFv3Space("")
//	tbl, err := anatloc.NewAnatomicalCoordinatesTable(anatloc.TableConfig{
//	    Name:   "electrode_coordinates",
//	    Space:  space,
//	    Method: "histology",
//	    Target: electrodes,
//	})
//	err = tbl.AddRow(anatloc.CoordinateRow{X: 1, Y: 2, Z: 3, BrainRegion: "CA1", Entity: 0})
//
//	loc := anatloc.NewLocalization("")
//	_ = loc.AddSpace(space)
//	_ = loc.AddTable(tbl)
package anatloc
