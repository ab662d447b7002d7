// SPDX-License-Identifier: MIT

// Package catalog reads airport lists into core.Nodes.
//
// Supported sources:
//   - OurAirports-style CSV (ReadCSV). Only large and medium airports with
//     scheduled service and an IATA code are kept; the IATA code becomes the
//     node ID and "municipality, region_name" its location.
//   - YAML or JSON documents of the form {"nodes": [...]} (ReadYAML,
//     ReadJSON), the same shape POST /api/graph accepts.
//
// LoadFile picks the reader from the file extension.
package catalog
