// Package kinship is an in-memory playground for building and querying
// family graphs — persons, parent lines, marriages, and the ancestry
// questions they answer.
//
// 🚀 What is kinship?
//
//	A small, thread-safe, zero-dependency library that brings together:
//		• Core primitives: register persons, attach parent links safely under locks
//		• Relation tables: marriage and parent edges kept apart from identity
//		• Ancestor collection: deduplicated upward BFS over father/mother lines
//		• Cousin grading: how many recorded generations sit above a shared line
//		• Fixtures: deterministic family builders for tests and demos
//
// ✨ Why choose kinship?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – R/W locks, acyclicity enforced on every insert
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – add custom hooks (OnVisit, OnLevel…) for custom logic
//
// Under the hood, everything is organized under four subpackages:
//
//	core/     — Registry, Person, ID and the relation tables (thread-safe primitives)
//	ancestry/ — ancestor collector: BFS upward over parent edges
//	cousins/  — cousin-grade resolver: climb above the common-ancestor frontier
//	builder/  — deterministic family fixtures (couples, lineages, diamonds)
//
// Quick ASCII example:
//
//	    Ioan
//	    /  \
//	Vasile  Mihaela       ← half-siblings through Ioan
//	   │      │
//	  Ion   Elena         ← cousin grade 1: one recorded generation
//	                        above their common-ancestor frontier
//
// Dive into examples/ for runnable demos, starting with the family saga.
package kinship
