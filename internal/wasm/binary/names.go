package binary

import wasm "github.com/rajatjindal/wasm-tools/internal/wasm"

// Name-section subsection ids (§9 "name section round-trip").
const (
	nameSubsectionModule    = 0
	nameSubsectionFunction  = 1
	nameSubsectionLocal     = 2
)

func decodeNameSection(data []byte) (*wasm.NameSection, error) {
	c := NewCursor(data, 0)
	ns := &wasm.NameSection{}
	for c.Remaining() > 0 {
		id, err := c.ReadU8()
		if err != nil {
			return nil, err
		}
		size, err := c.ReadVarU32AsUsize()
		if err != nil {
			return nil, err
		}
		sub, err := c.Window(size)
		if err != nil {
			return nil, err
		}
		switch id {
		case nameSubsectionModule:
			ns.ModuleName, err = sub.ReadName()
			if err != nil {
				return nil, err
			}
		case nameSubsectionFunction:
			ns.FunctionNames, err = decodeNameMap(sub)
			if err != nil {
				return nil, err
			}
		case nameSubsectionLocal:
			n, err := sub.ReadVarU32AsUsize()
			if err != nil {
				return nil, err
			}
			if ns.LocalNames == nil {
				ns.LocalNames = map[uint32][]wasm.NameAssoc{}
			}
			for i := 0; i < n; i++ {
				funcIdx, err := sub.ReadU32Leb128()
				if err != nil {
					return nil, err
				}
				assocs, err := decodeNameMap(sub)
				if err != nil {
					return nil, err
				}
				ns.LocalNames[funcIdx] = assocs
			}
		}
		// Unknown subsection ids are skipped: sub's window already advanced
		// the parent cursor past them.
	}
	return ns, nil
}

func decodeNameMap(c *Cursor) ([]wasm.NameAssoc, error) {
	n, err := c.ReadVarU32AsUsize()
	if err != nil {
		return nil, err
	}
	out := make([]wasm.NameAssoc, n)
	for i := 0; i < n; i++ {
		idx, err := c.ReadU32Leb128()
		if err != nil {
			return nil, err
		}
		name, err := c.ReadName()
		if err != nil {
			return nil, err
		}
		out[i] = wasm.NameAssoc{Index: idx, Name: name}
	}
	return out, nil
}

func encodeNameSection(ns *wasm.NameSection) []byte {
	w := &writer{}
	if ns.ModuleName != "" {
		sub := &writer{}
		sub.name(ns.ModuleName)
		w.u8(nameSubsectionModule)
		w.withLengthPrefix(sub.bytes())
	}
	if len(ns.FunctionNames) > 0 {
		sub := &writer{}
		encodeNameMap(sub, ns.FunctionNames)
		w.u8(nameSubsectionFunction)
		w.withLengthPrefix(sub.bytes())
	}
	if len(ns.LocalNames) > 0 {
		sub := &writer{}
		funcIdxs := make([]uint32, 0, len(ns.LocalNames))
		for idx := range ns.LocalNames {
			funcIdxs = append(funcIdxs, idx)
		}
		for i := 1; i < len(funcIdxs); i++ {
			for j := i; j > 0 && funcIdxs[j-1] > funcIdxs[j]; j-- {
				funcIdxs[j-1], funcIdxs[j] = funcIdxs[j], funcIdxs[j-1]
			}
		}
		sub.uleb32(uint32(len(funcIdxs)))
		for _, idx := range funcIdxs {
			sub.uleb32(idx)
			encodeNameMap(sub, ns.LocalNames[idx])
		}
		w.u8(nameSubsectionLocal)
		w.withLengthPrefix(sub.bytes())
	}
	return w.bytes()
}

func encodeNameMap(w *writer, assocs []wasm.NameAssoc) {
	w.uleb32(uint32(len(assocs)))
	for _, a := range assocs {
		w.uleb32(a.Index)
		w.name(a.Name)
	}
}
