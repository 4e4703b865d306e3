package argp

import (
	"fmt"
	"os"
)

// TypeTag is the kind of value an option expects. It is fixed when
// the option is registered.
type TypeTag int

const (
	Float TypeTag = iota
	Int
	String
	Char
	Bool
	ReadFile
	WriteFile
	ReadWriteFile
	BinaryReadFile
	BinaryWriteFile
	BinaryReadWriteFile
	lastType // keep this one last in the list
)

type typeInfo struct {
	name  string
	token string
	flag  int // os.OpenFile flags, file types only
}

var typeInfos = [...]typeInfo{
	Float:               {name: "float", token: "<float>"},
	Int:                 {name: "int", token: "<integer>"},
	String:              {name: "string", token: "<string>"},
	Char:                {name: "char", token: "<char>"},
	Bool:                {name: "bool", token: "<bool>"},
	ReadFile:            {name: "read file", token: "<read_file>", flag: os.O_RDONLY},
	WriteFile:           {name: "write file", token: "<write_file>", flag: os.O_WRONLY | os.O_CREATE | os.O_TRUNC},
	ReadWriteFile:       {name: "read-write file", token: "<read_write_file>", flag: os.O_RDWR | os.O_CREATE},
	BinaryReadFile:      {name: "binary read file", token: "<binary_read_file>", flag: os.O_RDONLY},
	BinaryWriteFile:     {name: "binary write file", token: "<binary_write_file>", flag: os.O_WRONLY | os.O_CREATE | os.O_TRUNC},
	BinaryReadWriteFile: {name: "binary read-write file", token: "<binary_read_write_file>", flag: os.O_RDWR | os.O_CREATE},
}

// Valid is false for values outside of the declared constants.
func (t TypeTag) Valid() bool {
	return t >= 0 && t < lastType
}

// String is the human readable name used in help output, eg "read-write file".
func (t TypeTag) String() string {
	if !t.Valid() {
		return fmt.Sprintf("unknown(%d)", int(t))
	}
	return typeInfos[t].name
}

// Token is the placeholder shown after the keys in help output, eg "<integer>".
func (t TypeTag) Token() string {
	if !t.Valid() {
		return ""
	}
	return typeInfos[t].token
}

// IsFile is true for the six file-opening tags.
func (t TypeTag) IsFile() bool {
	return t >= ReadFile && t <= BinaryReadWriteFile
}

// IsBinary is true for the three binary file tags. Go does no newline
// translation so binary and text files are opened the same way.
func (t TypeTag) IsBinary() bool {
	return t >= BinaryReadFile && t <= BinaryReadWriteFile
}

// takesValue is false only for Bool, which consumes no value token.
func (t TypeTag) takesValue() bool {
	return t != Bool
}

// openFlags are the os.OpenFile flags for a file tag:
//
//	read:       must exist
//	write:      create or truncate
//	read-write: open both ways, creating if needed
func (t TypeTag) openFlags() (int, bool) {
	if !t.IsFile() {
		return 0, false
	}
	return typeInfos[t].flag, true
}
