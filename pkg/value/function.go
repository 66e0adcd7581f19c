package value

// NativeFunc is the signature of host functions exposed to programs.
type NativeFunc func(args []Value) (Value, error)

// Native is a host function value.
type Native struct {
	Name string
	Fn   NativeFunc
}

func NewNative(name string, fn NativeFunc) *Native {
	return &Native{Name: name, Fn: fn}
}

func (n *Native) Kind() Kind     { return KindFunction }
func (n *Native) Raw() any       { return n.Fn }
func (n *Native) String() string { return "function " + n.Name + "() { [native code] }" }

func (n *Native) Call(args []Value) (Value, error) {
	return n.Fn(args)
}

// Closure is a function value created by the program. Scope is the frame the
// function was defined in and Body is the function's statement; both are
// opaque to this package so it does not depend on the environment or the
// syntax tree.
type Closure struct {
	Params []string
	Body   any
	Scope  any
	source string
}

func NewClosure(params []string, body any, scope any, source string) *Closure {
	return &Closure{
		Params: params,
		Body:   body,
		Scope:  scope,
		source: source,
	}
}

func (c *Closure) Kind() Kind     { return KindFunction }
func (c *Closure) Raw() any       { return c }
func (c *Closure) String() string { return c.source }
