package interrotron

// newRootFrame builds a fresh root Frame carrying every special form and
// builtin, the boolean constants true and false, plus any host-supplied
// bindings. Each Program.Run/Interpreter.Run gets its own root frame so
// that a host binding from one call can never leak into another.
func newRootFrame(hostBindings map[string]Value) *Frame {
	root := NewFrame()
	root.SetLocal("true", Bool(true))
	root.SetLocal("false", Bool(false))
	for name, fn := range specialForms {
		root.SetLocal(name, newMacro(name, fn))
	}
	for name, fn := range builtins {
		root.SetLocal(name, NewHostFunc(name, fn))
	}
	for name, v := range hostBindings {
		root.SetLocal(name, v)
	}
	return root
}
