// Package encoding installs a charset decoder for property values carrying
// a legacy CHARSET parameter, as vCard 2.1 and 3.0 permitted. vCard 4 is
// UTF-8 only, so the core does not pull this in; import this package for
// its side effect when you need to read older cards:
//
//	import _ "github.com/zostay/go-vcard/encoding"
//
// This loads all the encodings provided with
// golang.org/x/text/encoding/ianaindex, which will make your compiled
// binaries considerably larger. But it will also let your code decode
// pretty much any character set it might encounter in old address book
// exports.
package encoding

import (
	"fmt"

	_ "golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/zostay/go-vcard/card/property"
)

func init() {
	property.CharsetDecoder = CharsetDecoder
}

// CharsetDecoder decodes bytes in the named character set into a UTF-8
// string. It handles every character set in the IANA index.
func CharsetDecoder(charset string, b []byte) (string, error) {
	e, err := ianaindex.MIME.Encoding(charset)
	if err != nil {
		return "", err
	}

	if e == nil {
		return "", fmt.Errorf("no encoding found for charset %q", charset)
	}

	eb, err := e.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}

	return string(eb), nil
}
