package wat

import (
	"testing"

	"github.com/stretchr/testify/require"

	wasm "github.com/rajatjindal/wasm-tools/internal/wasm"
	"github.com/rajatjindal/wasm-tools/internal/wasm/opcode"
)

func mustOp(t *testing.T, mnemonic string) *opcode.Entry {
	t.Helper()
	e, ok := opcode.ByMnemonic(mnemonic)
	require.True(t, ok, "no opcode table entry for %s", mnemonic)
	return e
}

func mnemonics(body []wasm.Instruction) []string {
	out := make([]string, len(body))
	for i, in := range body {
		out[i] = in.Mnemonic()
	}
	return out
}

func TestParseModuleEmpty(t *testing.T) {
	m, err := ParseModule([]byte("(module)"))
	require.NoError(t, err)
	require.Empty(t, m.TypeSection)
	require.Empty(t, m.FunctionSection)
}

func TestParseFuncPlainBody(t *testing.T) {
	m, err := ParseModule([]byte(`(module
		(func $add (param $a i32) (param $b i32) (result i32)
			local.get 0
			local.get 1
			i32.add))`))
	require.NoError(t, err)
	require.Len(t, m.TypeSection, 1)
	require.Equal(t, []wasm.ValueType{wasm.ValueTypeI32, wasm.ValueTypeI32}, m.TypeSection[0].Params)
	require.Equal(t, []wasm.ValueType{wasm.ValueTypeI32}, m.TypeSection[0].Results)
	require.Len(t, m.CodeSection, 1)
	require.Equal(t, []string{"local.get", "local.get", "i32.add", "end"}, mnemonics(m.CodeSection[0].Body))
	require.Equal(t, wasm.IndexImm{Index: 0}, m.CodeSection[0].Body[0].Imm)
	require.Equal(t, wasm.IndexImm{Index: 1}, m.CodeSection[0].Body[1].Imm)
}

func TestParseFuncFoldedBody(t *testing.T) {
	m, err := ParseModule([]byte(`(module
		(func $add (param $a i32) (param $b i32) (result i32)
			(i32.add (local.get $a) (local.get $b))))`))
	require.NoError(t, err)
	require.Len(t, m.CodeSection, 1)
	require.Equal(t, []string{"local.get", "local.get", "i32.add", "end"}, mnemonics(m.CodeSection[0].Body))
}

func TestParseFuncNamedLocalsAndCall(t *testing.T) {
	m, err := ParseModule([]byte(`(module
		(func $id (param $x i32) (result i32) local.get $x)
		(func $caller (result i32) (call $id (i32.const 5))))`))
	require.NoError(t, err)
	require.Len(t, m.FunctionSection, 2)
	callerBody := m.CodeSection[1].Body
	require.Equal(t, []string{"i32.const", "call", "end"}, mnemonics(callerBody))
	require.Equal(t, wasm.IndexImm{Index: 0}, callerBody[1].Imm)
}

func TestParseFoldedBlockAndLoop(t *testing.T) {
	m, err := ParseModule([]byte(`(module
		(func $f
			(block $done
				(loop $top
					br $top))))`))
	require.NoError(t, err)
	body := m.CodeSection[0].Body
	require.Equal(t, []string{"block", "loop", "br", "end", "end", "end"}, mnemonics(body))
	// br $top targets the loop, its innermost enclosing label: depth 0.
	require.Equal(t, wasm.IndexImm{Index: 0}, body[2].Imm)
}

func TestParsePlainIfElse(t *testing.T) {
	m, err := ParseModule([]byte(`(module
		(func $f (param $c i32) (result i32)
			local.get $c
			if (result i32)
				i32.const 1
			else
				i32.const 0
			end))`))
	require.NoError(t, err)
	body := m.CodeSection[0].Body
	require.Equal(t, []string{"local.get", "if", "i32.const", "else", "i32.const", "end", "end"}, mnemonics(body))
}

func TestParseFoldedIfThenElse(t *testing.T) {
	m, err := ParseModule([]byte(`(module
		(func $f (param $c i32) (result i32)
			(if (result i32) (local.get $c)
				(then (i32.const 1))
				(else (i32.const 0)))))`))
	require.NoError(t, err)
	body := m.CodeSection[0].Body
	require.Equal(t, []string{"local.get", "if", "i32.const", "else", "i32.const", "end", "end"}, mnemonics(body))
}

func TestParseImportExportGlobalMemory(t *testing.T) {
	m, err := ParseModule([]byte(`(module
		(import "env" "log" (func $log (param i32)))
		(memory (export "mem") 1 2)
		(global $g (mut i32) (i32.const 0))
		(func $main (call $log (global.get $g)))
		(export "main" (func $main)))`))
	require.NoError(t, err)
	require.Len(t, m.ImportSection, 1)
	require.Equal(t, "env", m.ImportSection[0].Module)
	require.Equal(t, wasm.ImportKindFunc, m.ImportSection[0].Kind)
	require.Len(t, m.MemorySection, 1)
	require.Equal(t, uint32(1), m.MemorySection[0].Limits.Min)
	require.Equal(t, uint32(2), *m.MemorySection[0].Limits.Max)
	require.NotNil(t, m.ExportSection["mem"])
	require.Equal(t, wasm.ExportKindMemory, m.ExportSection["mem"].Kind)
	require.Len(t, m.GlobalSection, 1)
	require.True(t, m.GlobalSection[0].Type.Mutable)
	require.NotNil(t, m.ExportSection["main"])
	// $main is the second function (after the imported $log).
	require.Equal(t, uint32(1), m.ExportSection["main"].Index)
	mainBody := m.CodeSection[0].Body
	require.Equal(t, []string{"global.get", "call", "end"}, mnemonics(mainBody))
}

func TestParseElemAndData(t *testing.T) {
	m, err := ParseModule([]byte(`(module
		(func $f)
		(table 1 funcref)
		(memory 1)
		(elem (i32.const 0) func $f)
		(data (i32.const 0) "hi"))`))
	require.NoError(t, err)
	require.Len(t, m.ElementSection, 1)
	require.Equal(t, wasm.ElemModeActive, m.ElementSection[0].Mode)
	require.Equal(t, []uint32{0}, m.ElementSection[0].FuncIndices)
	require.Len(t, m.DataSection, 1)
	require.Equal(t, []byte("hi"), m.DataSection[0].Init)
}

func TestParseStartSection(t *testing.T) {
	m, err := ParseModule([]byte(`(module
		(func $init)
		(start $init))`))
	require.NoError(t, err)
	require.NotNil(t, m.StartSection)
	require.Equal(t, uint32(0), *m.StartSection)
}

func TestParseRejectsUndefinedIdentifier(t *testing.T) {
	_, err := ParseModule([]byte(`(module (func (call $nope)))`))
	require.Error(t, err)
}

func TestParseForwardReference(t *testing.T) {
	// $later is declared after $caller textually; the Collect pass must make
	// it resolvable anyway.
	m, err := ParseModule([]byte(`(module
		(func $caller (call $later))
		(func $later))`))
	require.NoError(t, err)
	require.Equal(t, []string{"call", "end"}, mnemonics(m.CodeSection[0].Body))
	require.Equal(t, wasm.IndexImm{Index: 1}, m.CodeSection[0].Body[0].Imm)
}

func TestParseCallIndirectTypeUse(t *testing.T) {
	m, err := ParseModule([]byte(`(module
		(type $t (func (param i32) (result i32)))
		(table 1 funcref)
		(func $caller (param i32) (result i32)
			(call_indirect (type $t) (local.get 0) (i32.const 0))))`))
	require.NoError(t, err)
	body := m.CodeSection[0].Body
	require.Equal(t, []string{"local.get", "i32.const", "call_indirect", "end"}, mnemonics(body))
	require.Equal(t, wasm.Index2Imm{A: 0, B: 0}, body[2].Imm)
}

func TestParseCallIndirectInlineTypeUse(t *testing.T) {
	// No (type $t): the inline (param)/(result) list interns a fresh type.
	m, err := ParseModule([]byte(`(module
		(table 1 funcref)
		(func $caller (result i32)
			(call_indirect (param) (result i32) (i32.const 0))))`))
	require.NoError(t, err)
	require.Len(t, m.TypeSection, 1)
	require.Equal(t, []wasm.ValueType{wasm.ValueTypeI32}, m.TypeSection[0].Results)
	body := m.CodeSection[0].Body
	require.Equal(t, wasm.Index2Imm{A: 0, B: 0}, body[1].Imm)
}

func TestParseSelectWithResultType(t *testing.T) {
	m, err := ParseModule([]byte(`(module
		(func $f (param i32) (result i32)
			(select (result i32) (i32.const 1) (i32.const 2) (local.get 0))))`))
	require.NoError(t, err)
	body := m.CodeSection[0].Body
	require.Equal(t, []string{"i32.const", "i32.const", "local.get", "select t", "end"}, mnemonics(body))
	require.Equal(t, wasm.SelectTypesImm{Types: []wasm.ValueType{wasm.ValueTypeI32}}, body[3].Imm)
}

func TestParsePlainSelectHasNoResultType(t *testing.T) {
	m, err := ParseModule([]byte(`(module
		(func $f (param i32 i32) (result i32)
			local.get 0
			local.get 1
			local.get 0
			select))`))
	require.NoError(t, err)
	body := m.CodeSection[0].Body
	require.Equal(t, "select", mnemonics(body)[3])
	require.Nil(t, body[3].Imm)
}

func TestParseBrTable(t *testing.T) {
	m, err := ParseModule([]byte(`(module
		(func $f (param i32)
			(block $a
				(block $b
					(br_table $a $b (local.get 0))))))`))
	require.NoError(t, err)
	body := m.CodeSection[0].Body
	require.Equal(t, []string{"block", "block", "local.get", "br_table", "end", "end", "end"}, mnemonics(body))
	// Innermost enclosing label is $b (depth 0), $a is depth 1.
	require.Equal(t, wasm.BrTableImm{Labels: []uint32{1}, Default: 0}, body[3].Imm)
}
