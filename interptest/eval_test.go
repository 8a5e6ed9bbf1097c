package interptest

import "testing"

func TestEvalArithmetic(t *testing.T) {
	RunTestSuite(t, TestSuite{
		{"addition", TestSequence{
			{"(+)", "0"},
			{"(+ 2)", "2"},
			{"(+ 1 2 3)", "6"},
			{"(+ 1 -1)", "0"},
			{"(+ 1 2.5)", "3.5"},
			{"(+ 0.5 0.25)", "0.75"},
		}},
		{"multiplication", TestSequence{
			{"(*)", "1"},
			{"(* 2 3)", "6"},
			{"(* 2 3 4)", "24"},
			{"(* 2 0.5)", "1"},
		}},
		{"comparison", TestSequence{
			{"(> 3 2)", "t"},
			{"(> 2 3)", "nil"},
			{"(> 3 2 1)", "t"},
			{"(> 3 1 2)", "nil"},
			{"(> 2.5 2)", "t"},
		}},
		{"promotion errors", TestSequence{
			{`(+ 1 "one")`, `error: (wrong-argument-type (or realp integerp) "one")`},
		}},
	})
}

func TestEvalQuote(t *testing.T) {
	RunTestSuite(t, TestSuite{
		{"quote", TestSequence{
			{"(quote x)", "x"},
			{"'x", "x"},
			{"'(1 2 3)", "(1 2 3)"},
			{"(car (quote (a b c)))", "a"},
			{"(equal (quote (1 2)) (list 1 2))", "t"},
			{"(equal 'x 'x)", "t"},
		}},
		{"quasiquote", TestSequence{
			{"`x", "x"},
			{"`(1 2 3)", "(1 2 3)"},
			{"`(1 ,(+ 2 3) 3)", "(1 5 3)"},
			{"(equal `(a b) '(a b))", "t"},
			{"(set y 7)", "7"},
			{"`(x ,y)", "(x 7)"},
			{"`(a (b ,(+ 1 1)))", "(a (b 2))"},
		}},
		{"unquote outside quasiquote", TestSequence{
			{",(+ 1 2)", `error: "Using unquote outside of quasiquote."`},
		}},
	})
}

func TestEvalLists(t *testing.T) {
	RunTestSuite(t, TestSuite{
		{"list", TestSequence{
			{"(list)", "nil"},
			{"(list 1 2 3)", "(1 2 3)"},
			{"(list 1 (+ 1 1) 3)", "(1 2 3)"},
		}},
		{"car", TestSequence{
			{"(car '(1 2))", "1"},
			{"(car nil)", "nil"},
			{"(car 5)", "error: (wrong-argument-type consp 5)"},
		}},
		{"cons", TestSequence{
			{"(cons 1 2)", "(1 . 2)"},
			{"(cons 1 '(2 3))", "(1 2 3)"},
		}},
		{"append", TestSequence{
			{"(append)", "nil"},
			{"(append '(1 2))", "(1 2)"},
			{"(append '(1 2) '(3))", "(1 2 3)"},
			{"(append '(1) '(2) '(3 4))", "(1 2 3 4)"},
			{"(append nil '(1))", "(1)"},
		}},
		{"assoc", TestSequence{
			{"(assoc 'b '((a . 1) (b . 2)))", "(b . 2)"},
			{"(assoc 'z '((a . 1)))", "nil"},
		}},
		{"equal", TestSequence{
			{"(equal 1 1)", "t"},
			{"(equal 1 2)", "nil"},
			{"(equal 1.0 1.0000001)", "t"},
			{`(equal "a" "a")`, "t"},
			{"(equal '(1 (2 3)) '(1 (2 3)))", "t"},
			{"(equal '(1 2) '(1 . 2))", "nil"},
		}},
	})
}

func TestEvalSpecialForms(t *testing.T) {
	RunTestSuite(t, TestSuite{
		{"set and lookup", TestSequence{
			{"(set a 1)", "1"},
			{"a", "1"},
			{"(set a 2)", "2"},
			{"a", "2"},
			{"b", "error: (void-variable . b)"},
		}},
		{"begin", TestSequence{
			{"(begin 1 2 3)", "3"},
			{"(begin)", "nil"},
			{"(begin (set x 1) (+ x 1))", "2"},
		}},
		{"when", TestSequence{
			{"(when t 1 2)", "2"},
			{"(when nil 1 2)", "nil"},
			{"(when (> 2 1) 'yes)", "yes"},
		}},
		{"lambda", TestSequence{
			{"(lambda (x) x)", "<lambda>"},
			{"((lambda (x) x) 42)", "42"},
			{"((lambda (x y) (+ x y)) 1 2)", "3"},
			{"((λ (x) (* x x)) 3)", "9"},
			{"((lambda (x) x) 1 2)", "error: (wrong-integer-of-arguments . 2)"},
			{"(5 1)", "error: (expected-callable . 5)"},
		}},
		{"constants", TestSequence{
			{"t", "t"},
			{"nil", "nil"},
			{"()", "nil"},
		}},
		{"self-evaluating atoms", TestSequence{
			{"5", "5"},
			{"2.5", "2.5"},
			{`"hello"`, `"hello"`},
		}},
	})
}

func TestEvalClosures(t *testing.T) {
	RunTestSuite(t, TestSuite{
		{"closures see later global bindings", TestSequence{
			{"(set x 10)", "10"},
			{"(defun get-x () x)", "<lambda>"},
			{"(set x 20)", "20"},
			{"(get-x)", "20"},
		}},
		{"defun and recursion", TestSequence{
			// when yields nil at the base case, so the naive factorial
			// multiplies by nil one level up and surfaces a shape error.
			{"(defun fact (n) (when (> n 0) (* n (fact (+ n -1)))))", "<lambda>"},
			{"(fact 0)", "nil"},
			{"(fact 1)", "error: (wrong-argument-type (or realp integerp) nil)"},
			// Recursion that terminates through cons needs no base value.
			{"(defun count (n) (when (> n 0) (cons n (count (+ n -1)))))", "<lambda>"},
			{"(count 5)", "(5 4 3 2 1)"},
		}},
		{"factorial through a thunked if", TestSequence{
			// A two-armed conditional built from when and append: the
			// then thunk only runs when the condition is non-nil; the else
			// thunk always runs, and its value is the first element only
			// when the condition is nil.
			{"(defun if* (c th el) (car (append (when c (list (th))) (list (el)))))", "<lambda>"},
			{"(defun fact (n) (if* (> n 0) (lambda () (* n (fact (+ n -1)))) (lambda () 1)))", "<lambda>"},
			{"(fact 0)", "1"},
			{"(fact 1)", "1"},
			{"(fact 5)", "120"},
		}},
		{"identity law", TestSequence{
			{"(defun id (v) v)", "<lambda>"},
			{"(id 42)", "42"},
			{"(id 'sym)", "sym"},
			{`(id "str")`, `"str"`},
			{"(equal (id '(1 2)) '(1 2))", "t"},
		}},
		{"parameters shadow globals", TestSequence{
			{"(set n 100)", "100"},
			{"(defun f (n) (+ n 1))", "<lambda>"},
			{"(f 1)", "2"},
			{"n", "100"},
		}},
	})
}

func TestEvalWithCollection(t *testing.T) {
	// Sequences like the ones above, but a collection pass rooted at the
	// global scope runs before every form the way the interactive loop
	// collects.  Every binding must survive.
	r := &Runner{Collect: true}
	r.RunTestSuite(t, TestSuite{
		{"bindings survive collection", TestSequence{
			{"(set xs '(1 2 3))", "(1 2 3)"},
			{"(set f (lambda (v) (cons v xs)))", "<lambda>"},
			{"(set a 1)", "1"},
			{"xs", "(1 2 3)"},
			{"(f 0)", "(0 1 2 3)"},
			{"(set xs '(4))", "(4)"},
			{"(f 0)", "(0 4)"},
			{"(equal xs '(4))", "t"},
		}},
		{"recursion survives collection", TestSequence{
			{"(defun count (n) (when (> n 0) (cons n (count (+ n -1)))))", "<lambda>"},
			{"(count 3)", "(3 2 1)"},
			{"(count 5)", "(5 4 3 2 1)"},
		}},
	})
}
