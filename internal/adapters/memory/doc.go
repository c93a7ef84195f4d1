// Package memory implements the quiz ports with process-local data structures.
//
// All state lives in memory and is lost on restart. Each type is safe for
// concurrent use.
package memory
