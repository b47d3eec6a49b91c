package errors

import "strconv"

// Kind categorizes a failure. The numeric value is part of the public contract.
type Kind uint32

// Codes are append-only. Never renumber or reuse a value; 0 means "no error".
const (
	KindUnexpectedNegativeNumber Kind = 1  // negative line, column, source or name index
	KindUnexpectedlyBigNumber    Kind = 2  // value above math.MaxUint32
	KindVlqUnexpectedEOF         Kind = 3  // input ended in the middle of a VLQ
	KindVlqInvalidBase64         Kind = 4  // byte outside the base64 alphabet
	KindVlqOverflow              Kind = 5  // decoded VLQ does not fit in 32 bits
	KindIO                       Kind = 6  // byte stream read/write failed
	KindNameOutOfRange           Kind = 7  // name table index out of bounds
	KindSourceOutOfRange         Kind = 8  // source table index out of bounds
	KindBuffer                   Kind = 9  // buffer serialization failed
	KindInvalidFilePath          Kind = 10 // unusable file path
	KindFromUTF8                 Kind = 11 // bytes are not valid UTF-8
)

const lastKind = KindFromUTF8

type kindInfo struct {
	name   string
	phrase string
}

// kindTable is indexed by code; index 0 is the reserved "no error" slot.
var kindTable = [...]kindInfo{
	{},
	KindUnexpectedNegativeNumber: {"UnexpectedNegativeNumber", "Unexpected Negative Number"},
	KindUnexpectedlyBigNumber:    {"UnexpectedlyBigNumber", "Unexpected Big Number"},
	KindVlqUnexpectedEOF:         {"VlqUnexpectedEof", "VLQ Unexpected end of file"},
	KindVlqInvalidBase64:         {"VlqInvalidBase64", "VLQ Invalid Base 64 value"},
	KindVlqOverflow:              {"VlqOverflow", "VLQ Value overflowed, does not fit in u32"},
	KindIO:                       {"IOError", "IO Error"},
	KindNameOutOfRange:           {"NameOutOfRange", "Name out of range"},
	KindSourceOutOfRange:         {"SourceOutOfRange", "Source out of range"},
	KindBuffer:                   {"BufferError", "Something went wrong while writing/reading a sourcemap buffer"},
	KindInvalidFilePath:          {"InvalidFilePath", "Invalid FilePath"},
	KindFromUTF8:                 {"FromUtf8Error", "Could not convert utf-8 array to string"},
}

// Valid reports whether k is a member of the taxonomy.
func (k Kind) Valid() bool {
	return k > 0 && k <= lastKind
}

// Code returns the stable numeric identity of k.
func (k Kind) Code() uint32 {
	return uint32(k)
}

// Phrase returns the user-facing phrase for k, or "" if k is not valid.
func (k Kind) Phrase() string {
	if !k.Valid() {
		return ""
	}
	return kindTable[k].phrase
}

// String returns the identifier-style name of k.
func (k Kind) String() string {
	if !k.Valid() {
		return "Kind(" + strconv.FormatUint(uint64(k), 10) + ")"
	}
	return kindTable[k].name
}

// Kinds returns every kind in code order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, lastKind)
	for k := Kind(1); k <= lastKind; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// KindFromCode resolves a persisted numeric identity.
func KindFromCode(code uint32) (Kind, bool) {
	k := Kind(code)
	if !k.Valid() {
		return 0, false
	}
	return k, true
}

// ParseKind resolves the name returned by Kind.String.
func ParseKind(name string) (Kind, bool) {
	for k := Kind(1); k <= lastKind; k++ {
		if kindTable[k].name == name {
			return k, true
		}
	}
	return 0, false
}
