package property

// Break represents the physical line break used when rendering vCard text.
type Break string

// Constants for use when selecting a line break for rendered output. If you
// don't know what to pick, choose CRLF, which is what RFC 6350 specifies.
const (
	CRLF Break = "\x0d\x0a" // \r\n - what the RFC wants on the wire
	LF   Break = "\x0a"     // \n - what files on disk usually have
	CR   Break = "\x0d"     // \r - old Macs, mostly hypothetical
)

// String returns the break as a string.
func (b Break) String() string {
	return string(b)
}

// Bytes returns the break as a slice of bytes.
func (b Break) Bytes() []byte {
	return []byte(b)
}
