package source

import (
	"regexp"
	"strings"
)

// Header keys recognized in document header lines.
const (
	HeaderOrder  = "order"
	HeaderClient = "client"
)

var (
	labeledHeader = regexp.MustCompile(`(?i)^\s*(order(?:\s*(?:no\.?|nr\.?|number|#))?|client|customer)\s*:\s*(.+?)\s*$`)
	orderNumber   = regexp.MustCompile(`(?i)^\s*order(?:\s*(?:no\.?|nr\.?|number))?\s*#?\s*(\d[\w/-]*)\s*$`)
)

// ParseHeader recognizes an order or client header line such as
// "Order no: 4512" or "Client: Stone Works". It returns the header key
// (HeaderOrder or HeaderClient) and its value.
func ParseHeader(line string) (key, value string, ok bool) {
	if m := labeledHeader.FindStringSubmatch(line); m != nil {
		label := strings.ToLower(m[1])
		if strings.HasPrefix(label, "order") {
			return HeaderOrder, m[2], true
		}
		return HeaderClient, m[2], true
	}
	if m := orderNumber.FindStringSubmatch(line); m != nil {
		return HeaderOrder, m[1], true
	}
	return "", "", false
}
