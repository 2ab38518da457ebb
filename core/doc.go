// Package core defines the typed objects exchanged with the summarization
// API: sources consumed by job submission, jobs and their lifecycle statuses,
// summaries, transcripts, and account stats.
//
// Polymorphic families (sources, job kinds, summary types) are modeled as
// tagged values rather than inheritance: a Source carries its kind and knows
// its own request payload, a Job carries a Kind discriminated on decode.
//
// Objects are immutable from the client's point of view. Jobs transition
// server-side only; the client observes transitions by re-fetching.
package core
