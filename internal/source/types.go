package source

// FileID indexes a File inside its FileSet. IDs are dense and start at 0.
type FileID uint32

// FileFlags records how a file was obtained and what Normalize changed.
type FileFlags uint8

const (
	FileVirtual FileFlags = 1 << iota // из памяти, на диск не пишем
	FileHadBOM
	FileNormalizedCRLF
	FileNormalizedNFC
)

// Has reports whether every bit of flag is set.
func (f FileFlags) Has(flag FileFlags) bool {
	return f&flag == flag
}

// File is one loaded source. Text is the character buffer the lexer walks;
// nothing changes after Add.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	Text    []rune
	LineIdx []uint32 // character offsets of '\n'
	Hash    [32]byte // sha256 of Content
	Flags   FileFlags
}

// LineCol is a 1-based position for humans.
type LineCol struct {
	Line uint32
	Col  uint32
}
