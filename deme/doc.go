// SPDX-License-Identifier: MIT

// Package deme defines the in-memory model of a tumour: its demes, their side
// (lineage group) and their methylation arrays.
//
// 🚀 What is a deme dataset?
//
//	A deme is a spatially localized sub-population of cells summarized by an
//	array of methylation fractions in [0,1], one per fCpG site. A tumour is
//	compared as exactly Count demes split evenly between two sides (A and B).
//
// ✨ Two input formats, one internal form:
//
//   - Structured: simulator rows carrying Side, OriginTime and the array.
//   - Columnar: observed data, raw columns without side metadata; the
//     first half of the columns is side A, the second half side B.
//
// Normalize maps either format onto Normalized (ordered arrays plus sides) so
// every distance metric downstream is format-agnostic. Structured rows are
// ordered by (Side, OriginTime); columnar data keeps its column order.
//
// Helpers for the simulator's raw output are included: ParseArray reads a
// ";"-separated AverageArray cell, LastGeneration keeps the final generation,
// FromColumns orders observed columns A-first.
//
// Normalization never copies or mutates methylation arrays; Normalized
// shares them read-only with the input.
package deme
