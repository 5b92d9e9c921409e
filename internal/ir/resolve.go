package ir

import (
	"wasmir/internal/diag"
)

// resolver rewrites symbolic Vars to index form using the module's
// binding tables. Labels resolve against a scope stack to their
// relative depth. Misses are reported and the Var left as written.
type resolver struct {
	module *Module
	fn     *Func
	labels []string
	bag    *diag.Bag
}

// ResolveModule rewrites every name-form Var in m to its index form.
// Unresolved names are reported into bag; the scan keeps going so one
// pass surfaces every miss.
func ResolveModule(m *Module, bag *diag.Bag) {
	r := &resolver{module: m, bag: bag}
	m.Fields.Each(func(f *ModuleField) bool {
		switch f.Kind {
		case FieldFunc:
			r.resolveFunc(f.Func)
		case FieldGlobal:
			r.resolveGlobal(f.Global)
		case FieldImport:
			if f.Import.Kind == ExternalFunc {
				r.resolveDecl(&f.Import.Func.Decl)
			}
			if f.Import.Kind == ExternalEvent {
				r.resolveDecl(&f.Import.Event.Decl)
			}
		case FieldExport:
			r.resolveExport(f.Export)
		case FieldElemSegment:
			r.resolveElemSegment(f.ElemSegment)
		case FieldDataSegment:
			r.resolveDataSegment(f.DataSegment)
		case FieldStart:
			r.resolveVar(f.Start, m.FuncBindings, "function")
		case FieldEvent:
			r.resolveDecl(&f.Event.Decl)
		}
		return true
	})
}

func (r *resolver) resolveVar(v *Var, h BindingHash, kind string) {
	if v.IsIndex() {
		return
	}
	i := h.FindIndex(v.Name())
	if i == InvalidIndex {
		r.bag.Add(diag.Errorf(v.Loc, "undefined %s %s", kind, v.Name()))
		return
	}
	v.SetIndex(i)
}

func (r *resolver) resolveDecl(decl *FuncDeclaration) {
	if decl.HasFuncType {
		r.resolveVar(&decl.TypeVar, r.module.FuncTypeBindings, "type")
	}
}

func (r *resolver) resolveFunc(fn *Func) {
	r.fn = fn
	r.resolveDecl(&fn.Decl)
	r.resolveExprList(&fn.Exprs)
	r.fn = nil
}

func (r *resolver) resolveGlobal(g *Global) {
	r.resolveExprList(&g.Init)
}

func (r *resolver) resolveExport(e *Export) {
	switch e.Kind {
	case ExternalFunc:
		r.resolveVar(&e.Var, r.module.FuncBindings, "function")
	case ExternalTable:
		r.resolveVar(&e.Var, r.module.TableBindings, "table")
	case ExternalMemory:
		r.resolveVar(&e.Var, r.module.MemoryBindings, "memory")
	case ExternalGlobal:
		r.resolveVar(&e.Var, r.module.GlobalBindings, "global")
	case ExternalEvent:
		r.resolveVar(&e.Var, r.module.EventBindings, "event")
	}
}

func (r *resolver) resolveElemSegment(s *ElemSegment) {
	if !s.IsPassive() {
		r.resolveVar(&s.TableVar, r.module.TableBindings, "table")
		r.resolveExprList(&s.Offset)
	}
	for i := range s.ElemExprs {
		if s.ElemExprs[i].Kind == ElemExprRefFunc {
			r.resolveVar(&s.ElemExprs[i].Var, r.module.FuncBindings, "function")
		}
	}
}

func (r *resolver) resolveDataSegment(s *DataSegment) {
	if !s.IsPassive() {
		r.resolveVar(&s.MemoryVar, r.module.MemoryBindings, "memory")
		r.resolveExprList(&s.Offset)
	}
}

func (r *resolver) pushLabel(label string) { r.labels = append(r.labels, label) }
func (r *resolver) popLabel()              { r.labels = r.labels[:len(r.labels)-1] }

// resolveLabel rewrites a label name to its relative depth: 0 is the
// innermost enclosing block.
func (r *resolver) resolveLabel(v *Var) {
	if v.IsIndex() {
		return
	}
	for depth := 0; depth < len(r.labels); depth++ {
		if r.labels[len(r.labels)-1-depth] == v.Name() {
			v.SetIndex(Index(depth))
			return
		}
	}
	r.bag.Add(diag.Errorf(v.Loc, "undefined label %s", v.Name()))
}

func (r *resolver) resolveLocal(v *Var) {
	if v.IsIndex() || r.fn == nil {
		return
	}
	i := r.fn.Bindings.FindIndex(v.Name())
	if i == InvalidIndex {
		r.bag.Add(diag.Errorf(v.Loc, "undefined local %s", v.Name()))
		return
	}
	v.SetIndex(i)
}

func (r *resolver) resolveBlock(b *Block) {
	r.resolveDecl(&b.Decl)
	r.pushLabel(b.Label)
	r.resolveExprList(&b.Exprs)
	r.popLabel()
}

func (r *resolver) resolveExprList(list *ExprList) {
	list.Each(func(e *Expr) bool {
		r.resolveExpr(e)
		return true
	})
}

func (r *resolver) resolveExpr(e *Expr) {
	switch e.Kind {
	case ExprBlock, ExprLoop:
		r.resolveBlock(e.Block)
	case ExprIf:
		r.resolveDecl(&e.Block.Decl)
		r.pushLabel(e.Block.Label)
		r.resolveExprList(&e.Block.Exprs)
		r.resolveExprList(&e.ElseExprs)
		r.popLabel()
	case ExprTry:
		r.resolveDecl(&e.Block.Decl)
		r.pushLabel(e.Block.Label)
		r.resolveExprList(&e.Block.Exprs)
		r.resolveExprList(&e.ElseExprs)
		r.popLabel()
	case ExprBr, ExprBrIf:
		r.resolveLabel(&e.Var)
	case ExprBrOnExn:
		r.resolveLabel(&e.Var)
		r.resolveVar(&e.Var2, r.module.EventBindings, "event")
	case ExprBrTable:
		for i := range e.Targets {
			r.resolveLabel(&e.Targets[i])
		}
		r.resolveLabel(&e.DefaultTarget)
	case ExprCall, ExprReturnCall, ExprRefFunc:
		r.resolveVar(&e.Var, r.module.FuncBindings, "function")
	case ExprCallIndirect, ExprReturnCallIndirect:
		r.resolveDecl(&e.Decl)
		r.resolveVar(&e.Var2, r.module.TableBindings, "table")
	case ExprLocalGet, ExprLocalSet, ExprLocalTee:
		r.resolveLocal(&e.Var)
	case ExprGlobalGet, ExprGlobalSet:
		r.resolveVar(&e.Var, r.module.GlobalBindings, "global")
	case ExprThrow:
		r.resolveVar(&e.Var, r.module.EventBindings, "event")
	case ExprMemoryInit, ExprDataDrop:
		r.resolveVar(&e.Var, r.module.DataSegmentBindings, "data segment")
	case ExprElemDrop:
		r.resolveVar(&e.Var, r.module.ElemSegmentBindings, "element segment")
	case ExprTableInit:
		r.resolveVar(&e.Var, r.module.ElemSegmentBindings, "element segment")
		r.resolveVar(&e.Var2, r.module.TableBindings, "table")
	case ExprTableCopy:
		r.resolveVar(&e.Var, r.module.TableBindings, "table")
		r.resolveVar(&e.Var2, r.module.TableBindings, "table")
	case ExprTableGet, ExprTableSet, ExprTableGrow, ExprTableSize:
		r.resolveVar(&e.Var, r.module.TableBindings, "table")
	}
}
