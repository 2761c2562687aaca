package encode

import (
	"bytes"

	"github.com/sexp-format/go-sexp/node"
)

func MustString(n *node.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(n, buf); err != nil {
		panic(err)
	}
	return buf.String()
}
