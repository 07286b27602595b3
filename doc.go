// Package jlite provides an interpreter for a small Java-like statement
// language used in programming exercises.
//
// A jlite program is a sequence of lines, one statement per line:
//
//	final int limit = 3;
//	String s = "";
//	for (int i = 0; i < limit; i++) {
//	    s += "*";
//	    System.out.println(s);
//	}
//
// Supported statements are declarations of int, double, boolean and String
// variables (optionally final), assignment and compound assignment
// (+=, -=, *=, /=, ++, --), if/else if/else chains, counted for loops and
// console printing. Braces open at the end of a header line, and a closing
// brace stands alone on its own line.
//
// # Quick Start
//
// For simple one-off execution:
//
//	out, err := jlite.Run("int x = 4;\nSystem.out.println(x);", nil)
//	// out: []string{"4"}
//
// # Results
//
// A run produces either the printed entries or exactly one [Diagnostic].
// A diagnostic discards everything printed before it. [Evaluate] folds
// both outcomes into a [Result] whose JSON form is an array of strings or
// an array holding one {kind, message} record.
//
// # Configuration
//
// The [Config] type allows customization of execution:
//   - An output writer for printed entries
//   - A zerolog logger for instruction traces
//   - A bound on loop iterations
//
// # Error Handling
//
// Failures are returned as [*Diagnostic]. Its [Kind] names the failure,
// for example [KindDivideByZero] or [KindAlterConstant].
//
// # Thread Safety
//
// [Program] objects are safe for concurrent use. Each call to
// [Program.Run] creates an independent register store. A [Session] is not
// safe for concurrent use.
package jlite
