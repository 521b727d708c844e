// Package io provides JSON import and export for skill trees.
//
// # JSON Format
//
// A tree is an object with metadata and a nested node list:
//
//	{
//	  "id": "frontend",
//	  "name": "Frontend Developer",
//	  "description": "From markup to frameworks",
//	  "progress": 38,
//	  "nodes": [
//	    {
//	      "id": "basics",
//	      "name": "Basics",
//	      "status": "in-progress",
//	      "progress": 75,
//	      "children": [
//	        {"id": "html", "name": "HTML", "status": "completed", "progress": 100},
//	        {"id": "css", "name": "CSS", "status": "in-progress", "progress": 50,
//	         "dependencies": ["html"]}
//	      ]
//	    }
//	  ]
//	}
//
// # Node Fields
//
// Required: id, name. Optional: status (not-started, in-progress, completed;
// defaults to not-started), progress (0-100), description, notes, resources,
// dependencies, category, difficulty (easy, medium, hard), color, position
// ({"x":..,"y":..}), children.
//
// # Validation
//
// [ReadJSON] rejects duplicate ids anywhere in the tree and dependency ids
// that do not resolve within the same tree. Progress values outside
// [0, 100] are clamped rather than rejected. Aggregate progress is
// recomputed after import, so the stored values of parent nodes are
// advisory.
//
// # Export
//
// [WriteJSON] emits keys in a fixed order with two-space indentation, so
// exporting the same tree twice yields identical bytes.
package io
