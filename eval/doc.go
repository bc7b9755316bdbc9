// Package eval implements the calculator's expression engine.
//
// Pipeline (fixed):
//
//	Input string → Tokenizer → Recursive-descent parser → AST → Evaluation.
//
// The engine never shells out to a host-language evaluator: the grammar is
// closed (arithmetic operators, a fixed function table, π/e, ANS and the
// sampling variable x) and every failure is classified (syntax, unknown
// token, domain, division by zero) and returned to the caller.
//
// Evaluation is a pure function of (expression, angle mode, last answer).
// Session adds the single piece of retained state, the ANS value, and Series
// provides finite restartable sampling over a numeric range for plotting.
package eval
