package interrotron

import "github.com/andrewvc/interrotron/token"

// specialForms is the fixed set of macros bound in every root frame:
// the nine forms a rule author can write, each receiving un-evaluated
// argument nodes rather than values.
var specialForms = map[string]MacroFunc{
	"if":        opIf,
	"cond":      opCond,
	"and":       opAnd,
	"or":        opOr,
	"let":       opLet,
	"lambda":    opLambda,
	"defn":      opDefn,
	"setglobal": opSetglobal,
	"expr":      opExpr,
}

func opIf(ev *evaluation, frame *Frame, args []*Node) (Value, *Node, error) {
	if len(args) != 3 {
		return Value{}, nil, argErrorf("if: three arguments expected (got %d)", len(args))
	}
	pred, err := Eval(ev, frame, args[0])
	if err != nil {
		return Value{}, nil, err
	}
	if pred.Truthy() {
		return Value{}, args[1], nil
	}
	return Value{}, args[2], nil
}

// (cond p1 e1 p2 e2 ...)
func opCond(ev *evaluation, frame *Frame, args []*Node) (Value, *Node, error) {
	if len(args) == 0 || len(args)%2 != 0 {
		return Value{}, nil, argErrorf("cond: expected a non-empty, even number of arguments (got %d)", len(args))
	}
	for i := 0; i+1 < len(args); i += 2 {
		pred, err := Eval(ev, frame, args[i])
		if err != nil {
			return Value{}, nil, err
		}
		if pred.Truthy() {
			return Value{}, args[i+1], nil
		}
	}
	return Nil, nil, nil
}

// (and x1 ... xn): evaluates left to right, short-circuiting on the
// first falsy result. (and) with zero arguments returns true, the
// identity element for logical AND.
func opAnd(ev *evaluation, frame *Frame, args []*Node) (Value, *Node, error) {
	if len(args) == 0 {
		return Bool(true), nil, nil
	}
	var last Value
	for _, a := range args {
		v, err := Eval(ev, frame, a)
		if err != nil {
			return Value{}, nil, err
		}
		if !v.Truthy() {
			return Bool(false), nil, nil
		}
		last = v
	}
	return last, nil, nil
}

// (or x1 ... xn): (or) with zero arguments returns false.
func opOr(ev *evaluation, frame *Frame, args []*Node) (Value, *Node, error) {
	for _, a := range args {
		v, err := Eval(ev, frame, a)
		if err != nil {
			return Value{}, nil, err
		}
		if v.Truthy() {
			return v, nil, nil
		}
	}
	return Bool(false), nil, nil
}

// (let (n1 v1 n2 v2 ...) body...)
func opLet(ev *evaluation, frame *Frame, args []*Node) (Value, *Node, error) {
	if len(args) == 0 {
		return Value{}, nil, argErrorf("let: missing binding list")
	}
	bindings := args[0]
	body := args[1:]
	if bindings.IsAtom() {
		return Value{}, nil, argErrorf("let: binding list is not a list")
	}
	if len(bindings.Items)%2 != 0 {
		return Value{}, nil, argErrorf("let: binding list has an odd number of elements")
	}
	letFrame := frame.NewChild()
	for i := 0; i+1 < len(bindings.Items); i += 2 {
		nameNode := bindings.Items[i]
		if nameNode.IsAtom() == false || nameNode.Tok.Kind != token.VAR {
			return Value{}, nil, argErrorf("let: binding name is not a symbol")
		}
		val, err := Eval(ev, letFrame, bindings.Items[i+1])
		if err != nil {
			return Value{}, nil, err
		}
		letFrame.SetLocal(nameNode.Tok.Text, val)
	}
	result := Nil
	for _, form := range body {
		val, err := Eval(ev, letFrame, form)
		if err != nil {
			return Value{}, nil, err
		}
		result = val
	}
	return result, nil, nil
}

// (lambda (p1 ... pk) body...)
func opLambda(ev *evaluation, frame *Frame, args []*Node) (Value, *Node, error) {
	if len(args) < 2 {
		return Value{}, nil, argErrorf("lambda: expected a formal list and at least one body expression")
	}
	formals := args[0]
	if formals.IsAtom() {
		return Value{}, nil, argErrorf("lambda: formal argument list is not a list")
	}
	params := make([]string, len(formals.Items))
	for i, p := range formals.Items {
		if !p.IsAtom() || p.Tok.Kind != token.VAR {
			return Value{}, nil, argErrorf("lambda: formal argument is not a symbol")
		}
		params[i] = p.Tok.Text
	}
	fn := Value{
		Kind:   KindHostFn,
		Params: params,
		Body:   args[1:],
		Env:    frame,
	}
	return fn, nil, nil
}

// (defn name (p...) body...) == (setglobal name (lambda (p...) body...))
func opDefn(ev *evaluation, frame *Frame, args []*Node) (Value, *Node, error) {
	if len(args) < 2 {
		return Value{}, nil, argErrorf("defn: expected a name, formal list, and at least one body expression")
	}
	nameNode := args[0]
	if !nameNode.IsAtom() || nameNode.Tok.Kind != token.VAR {
		return Value{}, nil, argErrorf("defn: first argument is not a symbol")
	}
	fn, _, err := opLambda(ev, frame, args[1:])
	if err != nil {
		return Value{}, nil, err
	}
	fn.Name = nameNode.Tok.Text
	frame.SetRoot(nameNode.Tok.Text, fn)
	return fn, nil, nil
}

// (setglobal name value)
func opSetglobal(ev *evaluation, frame *Frame, args []*Node) (Value, *Node, error) {
	if len(args) != 2 {
		return Value{}, nil, argErrorf("setglobal: two arguments expected (got %d)", len(args))
	}
	nameNode := args[0]
	if !nameNode.IsAtom() || nameNode.Tok.Kind != token.VAR {
		return Value{}, nil, argErrorf("setglobal: first argument is not a symbol")
	}
	val, err := Eval(ev, frame, args[1])
	if err != nil {
		return Value{}, nil, err
	}
	frame.SetRoot(nameNode.Tok.Text, val)
	return val, nil, nil
}

// (expr e1 ... en): evaluates in the current frame, no new scope.
func opExpr(ev *evaluation, frame *Frame, args []*Node) (Value, *Node, error) {
	return evalBody(ev, frame, args)
}

func evalBody(ev *evaluation, frame *Frame, body []*Node) (Value, *Node, error) {
	if len(body) == 0 {
		return Nil, nil, nil
	}
	for _, form := range body[:len(body)-1] {
		if _, err := Eval(ev, frame, form); err != nil {
			return Value{}, nil, err
		}
	}
	return Value{}, body[len(body)-1], nil
}
