package ir

import (
	"testing"

	"wasmir/internal/source"
)

func TestGetFirstModuleScansForward(t *testing.T) {
	s := NewScript()
	if s.GetFirstModule() != nil {
		t.Fatal("empty script has no first module")
	}

	s.Commands = append(s.Commands, &Command{
		Kind:       CmdRegister,
		ModuleName: "spectest",
		Var:        IndexVar(0, source.Loc{}),
	})
	m := NewModule()
	m.Name = "$m"
	s.Commands = append(s.Commands, &Command{Kind: CmdModule, Module: m})
	s.ModuleBindings.Bind("$m", Binding{Index: 1})

	// The scan steps past non-module commands.
	if got := s.GetFirstModule(); got != m {
		t.Fatalf("GetFirstModule = %v, want the registered module", got)
	}
}

func TestGetModule(t *testing.T) {
	s := NewScript()
	m := NewModule()
	m.Name = "$m"
	s.Commands = append(s.Commands, &Command{Kind: CmdModule, Module: m})
	s.ModuleBindings.Bind("$m", Binding{Index: 0})

	if got := s.GetModule(NameVar("$m", source.Loc{})); got != m {
		t.Error("GetModule by name failed")
	}
	if got := s.GetModule(IndexVar(0, source.Loc{})); got != m {
		t.Error("GetModule by index failed")
	}
	if s.GetModule(NameVar("$missing", source.Loc{})) != nil {
		t.Error("missing module should be nil")
	}
	if s.GetModule(IndexVar(9, source.Loc{})) != nil {
		t.Error("out-of-range module should be nil")
	}
}

func TestCommandDowncast(t *testing.T) {
	c := &Command{Kind: CmdAssertReturn, Action: &Action{Kind: ActionInvoke, Name: "run"}}
	a, err := c.AsAction()
	if err != nil || a.Name != "run" {
		t.Fatalf("AsAction = %v, %v", a, err)
	}
	if _, err := c.AsModule(); err == nil {
		t.Fatal("AsModule on an assertion should fail")
	}
}

func TestScriptModuleLocation(t *testing.T) {
	m := NewModule()
	m.Loc = source.Loc{Filename: "a.wast", Line: 3}
	text := &ScriptModule{Kind: ScriptModuleText, Module: m}
	if got := text.Location(); got.Line != 3 {
		t.Errorf("text module location = %v", got)
	}

	bin := &ScriptModule{
		Kind: ScriptModuleBinary,
		Loc:  source.Loc{Filename: "a.wast", Line: 8},
		Data: []byte{0x00, 0x61, 0x73, 0x6d},
	}
	if got := bin.Location(); got.Line != 8 {
		t.Errorf("binary module location = %v", got)
	}
}
