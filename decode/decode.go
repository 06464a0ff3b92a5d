package decode

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/geoanalytics/xjson-format/go-xjson/debug"
	"github.com/geoanalytics/xjson-format/go-xjson/ir"
	"github.com/geoanalytics/xjson-format/go-xjson/nsmap"
)

const xmlnsPrefix = "xmlns"

type frame struct {
	node *ir.Node
	key  string
	// raw character data accumulated since the last element boundary;
	// encoding/xml splits one text run into several CharData tokens at
	// CDATA and entity boundaries, so trimming happens per run on
	// flush, not per token
	text string
}

// flushText ends the current text run of fr at an element boundary:
// edge whitespace goes, interior whitespace stays verbatim.
func flushText(fr *frame) {
	text := strings.TrimSpace(fr.text)
	fr.text = ""
	if text == "" {
		return
	}
	fr.node.SetData(fr.node.Data() + text)
}

// Decode runs a single pass over the XML event stream of d and returns
// the body mapping and the namespace context built along the way. The
// body has exactly one top-level key, the (shortened) root tag.
func Decode(d []byte, opts ...DecodeOption) (*ir.Node, *nsmap.Map, error) {
	dOpts := &decodeOpts{}
	for _, f := range opts {
		f(dOpts)
	}
	doc := NewPosDoc(d)
	dec := xml.NewDecoder(bytes.NewReader(d))
	ns := nsmap.New()
	body := ir.Object()
	var frames []frame
	rootClosed := false

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, parseErrAt(doc, dec.InputOffset(), err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if rootClosed {
				return nil, nil, parseErrAt(doc, dec.InputOffset(),
					fmt.Errorf("element <%s> after document end", t.Name.Local))
			}
			// register declarations first so the element's own
			// namespace keeps its declared prefix
			for _, a := range t.Attr {
				switch {
				case a.Name.Space == xmlnsPrefix:
					ns.AddBinding(a.Name.Local, a.Value)
				case a.Name.Space == "" && a.Name.Local == xmlnsPrefix:
					ns.AddBinding("", a.Value)
				}
			}
			if len(frames) > 0 {
				flushText(&frames[len(frames)-1])
			}
			node := ir.Object()
			for _, a := range t.Attr {
				if a.Name.Space == xmlnsPrefix ||
					(a.Name.Space == "" && a.Name.Local == xmlnsPrefix) {
					continue
				}
				node.SetAttribute(keyFor(ns, a.Name, dOpts), a.Value)
			}
			frames = append(frames, frame{node: node, key: keyFor(ns, t.Name, dOpts)})

		case xml.CharData:
			if len(frames) == 0 {
				if text := strings.TrimSpace(string(t)); text != "" {
					return nil, nil, parseErrAt(doc, dec.InputOffset(),
						fmt.Errorf("text %q outside root element", text))
				}
				continue
			}
			frames[len(frames)-1].text += string(t)

		case xml.EndElement:
			flushText(&frames[len(frames)-1])
			fr := frames[len(frames)-1]
			frames = frames[:len(frames)-1]
			if len(frames) == 0 {
				body.AddChild(fr.key, fr.node)
				rootClosed = true
				continue
			}
			frames[len(frames)-1].node.AddChild(fr.key, fr.node)
		}
	}
	if len(frames) != 0 {
		return nil, nil, parseErrAt(doc, dec.InputOffset(),
			fmt.Errorf("unbalanced element <%s>", frames[len(frames)-1].key))
	}
	if !rootClosed {
		return nil, nil, parseErrAt(doc, dec.InputOffset(),
			errors.New("no root element"))
	}
	if debug.Decode() {
		debug.Logf("decoded %d byte document, %d namespaces\n", len(d), ns.Len())
	}
	return body, ns, nil
}

func keyFor(ns *nsmap.Map, name xml.Name, opts *decodeOpts) string {
	if name.Space == "" {
		return name.Local
	}
	clark := "{" + name.Space + "}" + name.Local
	if opts.preserve {
		return clark
	}
	return ns.Shorten(clark)
}
