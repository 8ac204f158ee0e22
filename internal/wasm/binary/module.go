package binary

import wasm "github.com/rajatjindal/wasm-tools/internal/wasm"

// Decode is a convenience wrapper around Reader for callers who want the
// whole module materialized at once rather than driving the streaming
// protocol themselves (§5: building on top of the streaming reader, not
// replacing it). It is the only place in this package that accumulates a
// *wasm.Module.
func Decode(data []byte, opts ...ReaderOption) (*wasm.Module, error) {
	r := NewReader(data, opts...)
	m := &wasm.Module{ExportSection: map[string]*wasm.Export{}}

	for {
		p, err := r.Read()
		if err != nil {
			return nil, err
		}
		switch pl := p.(type) {
		case VersionPayload:
			// nothing to accumulate
		case TypeSectionPayload:
			m.TypeSection, err = pl.Reader.ReadAll()
		case ImportSectionPayload:
			m.ImportSection, err = pl.Reader.ReadAll()
		case FunctionSectionPayload:
			m.FunctionSection, err = pl.Reader.ReadAll()
		case TableSectionPayload:
			m.TableSection, err = pl.Reader.ReadAll()
		case MemorySectionPayload:
			m.MemorySection, err = pl.Reader.ReadAll()
		case TagSectionPayload:
			m.TagSection, err = pl.Reader.ReadAll()
		case GlobalSectionPayload:
			m.GlobalSection, err = pl.Reader.ReadAll()
		case ExportSectionPayload:
			var exports []*wasm.Export
			exports, err = pl.Reader.ReadAll()
			for _, e := range exports {
				m.ExportSection[e.Name] = e
			}
		case StartSectionPayload:
			idx := pl.FuncIndex
			m.StartSection = &idx
		case ElementSectionPayload:
			m.ElementSection, err = pl.Reader.ReadAll()
		case DataCountSectionPayload:
			n := pl.Count
			m.DataCountSection = &n
		case CodeSectionStartPayload:
			m.CodeSection = make([]*wasm.Code, 0, pl.Count)
		case CodeSectionEntryPayload:
			m.CodeSection = append(m.CodeSection, pl.Body)
		case DataSectionPayload:
			m.DataSection, err = pl.Reader.ReadAll()
		case CustomSectionPayload:
			if pl.Name == "name" {
				m.NameSection, err = decodeNameSection(pl.Data)
			} else {
				m.CustomSections = append(m.CustomSections, &wasm.CustomSection{Name: pl.Name, Data: pl.Data})
			}
		case EndPayload:
			if m.DataCountSection == nil && m.NeedsDataCount() {
				return nil, newErr(ErrDataCountRequired, pl.Offset, "module uses memory.init/data.drop/array.new_data without a preceding datacount section")
			}
			return m, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
