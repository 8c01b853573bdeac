package find

// Filter is a decorator node: it wraps a child expression and forwards
// every call to it unchanged. Concrete filters embed Filter and override
// only the methods whose behavior they alter.
type Filter struct {
	Expr Expression
}

func NewFilter(e Expression) *Filter { return &Filter{Expr: e} }

func (f *Filter) Apply(item Item, depth int) (Result, error) { return f.Expr.Apply(item, depth) }
func (f *Filter) SetOptions(opts *Options) error             { return f.Expr.SetOptions(opts) }
func (f *Filter) Finish() error                              { return f.Expr.Finish() }
func (f *Filter) Usage() []string                            { return f.Expr.Usage() }
func (f *Filter) Help() []string                             { return f.Expr.Help() }
func (f *Filter) IsAction() bool                             { return f.Expr.IsAction() }
func (f *Filter) Precedence() int                            { return f.Expr.Precedence() }
func (f *Filter) AddChildren(children []Expression)          { f.Expr.AddChildren(children) }
func (f *Filter) AddArguments(args []string)                 { f.Expr.AddArguments(args) }
