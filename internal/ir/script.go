package ir

import (
	"fmt"

	"wasmir/internal/source"
)

// ActionKind distinguishes script actions.
type ActionKind uint8

const (
	// ActionInvoke calls an exported function with constant arguments.
	ActionInvoke ActionKind = iota
	// ActionGet reads an exported global.
	ActionGet
)

// Action names an export of a (possibly named) module instance and,
// for invoke, carries the argument constants.
type Action struct {
	Kind      ActionKind
	Loc       source.Loc
	ModuleVar Var
	Name      string
	Args      []Const
}

// ScriptModuleKind distinguishes how a script-level module was written.
type ScriptModuleKind uint8

const (
	// ScriptModuleText is an inline textual module, already parsed.
	ScriptModuleText ScriptModuleKind = iota
	// ScriptModuleBinary is an undecoded binary module.
	ScriptModuleBinary
	// ScriptModuleQuoted is undecoded quoted module text.
	ScriptModuleQuoted
)

// ScriptModule is a module that may not be decoded yet, so malformed
// modules inside assert_malformed survive until validation time. The
// Module field is set only for the text kind; Data holds the raw
// payload of the other two.
type ScriptModule struct {
	Kind ScriptModuleKind

	Module *Module

	Loc  source.Loc
	Name string
	Data []byte
}

// Location returns the module's own location for text modules and the
// recorded one otherwise.
func (sm *ScriptModule) Location() source.Loc {
	if sm.Kind == ScriptModuleText && sm.Module != nil {
		return sm.Module.Loc
	}
	return sm.Loc
}

// CommandKind enumerates script command variants.
type CommandKind uint8

const (
	// CmdModule defines a module instance.
	CmdModule CommandKind = iota
	// CmdAction performs an action for its side effects.
	CmdAction
	// CmdRegister names a module instance for imports.
	CmdRegister
	// CmdAssertMalformed asserts a module fails to decode or parse.
	CmdAssertMalformed
	// CmdAssertInvalid asserts a module fails validation.
	CmdAssertInvalid
	// CmdAssertUnlinkable asserts instantiation fails at link time.
	CmdAssertUnlinkable
	// CmdAssertUninstantiable asserts instantiation traps.
	CmdAssertUninstantiable
	// CmdAssertReturn asserts an action returns the expected constants.
	CmdAssertReturn
	// CmdAssertReturnFunc asserts an action returns a function
	// reference.
	CmdAssertReturnFunc
	// CmdAssertReturnCanonicalNan asserts a canonical NaN result.
	CmdAssertReturnCanonicalNan
	// CmdAssertReturnArithmeticNan asserts an arithmetic NaN result.
	CmdAssertReturnArithmeticNan
	// CmdAssertTrap asserts an action traps with the given text.
	CmdAssertTrap
	// CmdAssertExhaustion asserts an action exhausts resources.
	CmdAssertExhaustion
)

func (k CommandKind) String() string {
	switch k {
	case CmdModule:
		return "module"
	case CmdAction:
		return "action"
	case CmdRegister:
		return "register"
	case CmdAssertMalformed:
		return "assert_malformed"
	case CmdAssertInvalid:
		return "assert_invalid"
	case CmdAssertUnlinkable:
		return "assert_unlinkable"
	case CmdAssertUninstantiable:
		return "assert_uninstantiable"
	case CmdAssertReturn:
		return "assert_return"
	case CmdAssertReturnFunc:
		return "assert_return_func"
	case CmdAssertReturnCanonicalNan:
		return "assert_return_canonical_nan"
	case CmdAssertReturnArithmeticNan:
		return "assert_return_arithmetic_nan"
	case CmdAssertTrap:
		return "assert_trap"
	case CmdAssertExhaustion:
		return "assert_exhaustion"
	}
	return "unknown"
}

// Command is one script-level command. The Kind tag selects which
// payload fields are meaningful:
//
//	CmdModule                   Module
//	CmdAction                   Action
//	CmdRegister                 ModuleName, Var
//	CmdAssert{Malformed,Invalid,Unlinkable,Uninstantiable}
//	                            ScriptModule, Text
//	CmdAssertReturn             Action, Expected
//	CmdAssertReturnFunc         Action
//	CmdAssertReturn*Nan         Action
//	CmdAssertTrap, CmdAssertExhaustion
//	                            Action, Text
type Command struct {
	Kind CommandKind

	Module       *Module
	Action       *Action
	ScriptModule *ScriptModule
	ModuleName   string
	Var          Var
	Expected     []Const
	Text         string
}

// AsModule returns the module of a CmdModule command.
func (c *Command) AsModule() (*Module, error) {
	if c.Kind != CmdModule {
		return nil, fmt.Errorf("%w: command is a %s", ErrWrongVariant, c.Kind)
	}
	return c.Module, nil
}

// AsAction returns the action payload of an action-carrying command.
func (c *Command) AsAction() (*Action, error) {
	switch c.Kind {
	case CmdAction, CmdAssertReturn, CmdAssertReturnFunc,
		CmdAssertReturnCanonicalNan, CmdAssertReturnArithmeticNan,
		CmdAssertTrap, CmdAssertExhaustion:
		return c.Action, nil
	}
	return nil, fmt.Errorf("%w: command is a %s", ErrWrongVariant, c.Kind)
}

// Script is an ordered sequence of commands plus a binding table from
// module name to command position.
type Script struct {
	Commands       []*Command
	ModuleBindings BindingHash
}

// NewScript makes an empty script.
func NewScript() *Script {
	return &Script{ModuleBindings: BindingHash{}}
}

// GetFirstModule scans forward for the first module command and
// returns its module, or nil when the script has none.
func (s *Script) GetFirstModule() *Module {
	for _, c := range s.Commands {
		if c.Kind == CmdModule {
			return c.Module
		}
	}
	return nil
}

// GetModule resolves a module reference against the script's module
// bindings, or nil.
func (s *Script) GetModule(v Var) *Module {
	i := v.Index()
	if v.IsName() {
		i = s.ModuleBindings.FindIndex(v.Name())
	}
	if int64(i) >= int64(len(s.Commands)) {
		return nil
	}
	c := s.Commands[i]
	if c.Kind != CmdModule {
		return nil
	}
	return c.Module
}
