// Package demo holds the illustrative collaborators the example pipelines
// feed into the pipe combinators: a person roster, a school ranking table,
// a notifier resource, and a structured logger.
//
// Nothing in here is load-bearing for the combinators themselves. The
// package exists so the command, the examples, and the end-to-end tests
// have realistic callables to hand over.
package demo
