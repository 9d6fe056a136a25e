package ini

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/Snowlt/go-ini/internal/scan"
)

// Decoder reads an INI document from an input stream.
type Decoder struct {
	r    io.Reader
	opts []Option
}

// NewDecoder returns a new decoder that reads from r.
//
// Functional options configure classification and text handling, for
// example CommentPrefixes, NoTrim or DanglingText.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Decode reads the stream to its end and returns the parsed Document.
//
// Decoding never fails on malformed text: every line is absorbed as a
// comment, a section header, an entry, a value continuation or dangling
// text. The only error sources are invalid options and the reader itself.
func (d *Decoder) Decode() (*Document, error) {
	o, err := buildOptions(d.opts)
	if err != nil {
		return nil, err
	}

	doc := New()
	p := &parseState{doc: doc, opts: &o}
	p.open(doc.untitled)

	// Lines are read without a length cap so value lines can be as long
	// as the stream provides.
	br := bufio.NewReader(d.r)
	for {
		raw, err := br.ReadString('\n')
		if raw != "" {
			raw = strings.TrimSuffix(raw, "\n")
			p.line(strings.TrimSuffix(raw, "\r"))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	p.flush()
	return doc, nil
}

// Parse parses data and returns the resulting Document. It is shorthand
// for NewDecoder over an in-memory reader.
func Parse(data []byte, opts ...Option) (*Document, error) {
	return NewDecoder(bytes.NewReader(data), opts...).Decode()
}

// ParseString parses src and returns the resulting Document.
func ParseString(src string, opts ...Option) (*Document, error) {
	return NewDecoder(strings.NewReader(src), opts...).Decode()
}

// parseState carries the deserializer's cross-line state: the section
// being populated, the items queued for it, and the index of the most
// recently parsed entry, which continuation lines append to.
//
// Queued items are flushed into the section when a new header opens or the
// stream ends; trimming and the dangling-text policy apply at that point.
type parseState struct {
	doc  *Document
	opts *options

	sec       *Section
	pending   []item
	lastEntry int
}

func (p *parseState) open(sec *Section) {
	p.sec = sec
	p.pending = p.pending[:0]
	p.lastEntry = -1
}

func (p *parseState) line(raw string) {
	ln := scan.Classify(raw, p.opts.commentPrefixes)
	switch ln.Kind {
	case scan.Comment:
		p.pending = append(p.pending, item{kind: itemComment, text: ln.Text})
	case scan.SectionHeader:
		p.flush()
		name := ln.Name
		if p.opts.trimSectionNames {
			name = strings.TrimSpace(name)
		}
		// A repeated header reopens the existing section.
		p.open(p.doc.SectionOrCreate(name))
	case scan.KeyValue:
		p.pending = append(p.pending, item{kind: itemEntry, key: ln.Key, value: ln.Value})
		p.lastEntry = len(p.pending) - 1
	case scan.Raw:
		if p.lastEntry >= 0 {
			p.pending[p.lastEntry].value += "\n" + ln.Text
		} else {
			p.pending = append(p.pending, item{kind: itemDangling, text: ln.Text})
		}
	}
}

// flush moves the queued items into the open section, applying trim
// options and the dangling-text policy.
func (p *parseState) flush() {
	o := p.opts
	var dangling []string
	for _, it := range p.pending {
		switch it.kind {
		case itemDangling:
			switch o.danglingPolicy {
			case DanglingKeep:
				dangling = append(dangling, it.text)
			case DanglingToComment:
				p.sec.items = append(p.sec.items, item{kind: itemComment, text: trim(it.text, o.trimComments)})
			case DanglingDrop:
			}
		case itemComment:
			p.sec.items = append(p.sec.items, item{kind: itemComment, text: trim(it.text, o.trimComments)})
		case itemEntry:
			key := trim(it.key, o.trimKeys)
			value := trim(it.value, o.trimValues)
			// Duplicate keys keep the first occurrence's position.
			if i := p.sec.find(key); i >= 0 {
				p.sec.items[i].value = value
			} else {
				p.sec.items = append(p.sec.items, item{kind: itemEntry, key: key, value: value})
			}
		}
	}
	if len(dangling) > 0 {
		p.sec.appendDangling(dangling)
	}
	p.pending = p.pending[:0]
	p.lastEntry = -1
}

func trim(s string, on bool) string {
	if on {
		return strings.TrimSpace(s)
	}
	return s
}
