package binary

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReaderRejectsUnknownSectionID(t *testing.T) {
	// magic + version, then a bogus section id 200 with length 0.
	data := []byte{0x00, 0x61, 0x73, 0x6D, 1, 0, 0, 0, 200, 0}
	r := NewReader(data)
	_, err := r.Read() // version
	require.NoError(t, err)
	_, err = r.Read() // section
	require.Error(t, err)
	var bErr *Error
	require.ErrorAs(t, err, &bErr)
	require.Equal(t, ErrUnknownSection, bErr.Kind)
	require.Equal(t, 8, bErr.Offset)
}

func TestReaderRejectsDuplicateSections(t *testing.T) {
	// type section (id 1) then another type section: duplicate.
	data := []byte{0x00, 0x61, 0x73, 0x6D, 1, 0, 0, 0, 1, 1, 0, 1, 1, 0}
	r := NewReader(data)
	_, err := r.Read() // version
	require.NoError(t, err)
	p, err := r.Read() // first type section
	require.NoError(t, err)
	tsp := p.(TypeSectionPayload)
	require.Equal(t, uint32(0), tsp.Reader.Count())

	_, err = r.Read() // second type section: duplicate
	require.Error(t, err)
	var bErr *Error
	require.ErrorAs(t, err, &bErr)
	require.Equal(t, ErrInvalidEncoding, bErr.Kind)
}

func TestReaderEndsCleanlyOnEmptyModule(t *testing.T) {
	data := []byte{0x00, 0x61, 0x73, 0x6D, 1, 0, 0, 0}
	r := NewReader(data)
	_, err := r.Read()
	require.NoError(t, err)
	p, err := r.Read()
	require.NoError(t, err)
	_, ok := p.(EndPayload)
	require.True(t, ok)
}

func TestSectionReaderFlagsSizeMismatch(t *testing.T) {
	// A type section window one byte larger than its single declared entry
	// needs: the trailing byte should surface as SectionSizeMismatch.
	data := []byte{0x00, 0x61, 0x73, 0x6D, 1, 0, 0, 0, 1, 5, 1, 0x60, 0, 0, 0x00}
	r := NewReader(data)
	_, err := r.Read()
	require.NoError(t, err)
	p, err := r.Read()
	require.NoError(t, err)
	tsp := p.(TypeSectionPayload)
	_, err = tsp.Reader.Read()
	require.Error(t, err)
	var bErr *Error
	require.ErrorAs(t, err, &bErr)
	require.Equal(t, ErrSectionSizeMismatch, bErr.Kind)
}
