package ini

import (
	"fmt"
	"strings"
)

// DanglingPolicy governs what the deserializer does with raw, non-comment
// content found before the first recognized entry of a section.
type DanglingPolicy int

const (
	// DanglingKeep stores the content as the section's dangling text.
	DanglingKeep DanglingPolicy = iota
	// DanglingToComment converts each raw line into a leading comment,
	// keeping its position relative to real comment lines.
	DanglingToComment
	// DanglingDrop discards the content.
	DanglingDrop
)

// Option configures parsing, formatting and the file adapter.
type Option func(*options) error

type options struct {
	// deserializer
	commentPrefixes  []string
	trimSectionNames bool
	trimKeys         bool
	trimValues       bool
	trimComments     bool
	danglingPolicy   DanglingPolicy

	// serializer
	lineSeparator      string
	commentPrefix      string
	spaceAroundEquals  bool
	spaceBeforeComment bool

	// file adapter
	encoding string
}

func defaultOptions() options {
	return options{
		commentPrefixes:    []string{";", "#"},
		trimSectionNames:   true,
		trimKeys:           true,
		trimValues:         true,
		trimComments:       true,
		danglingPolicy:     DanglingKeep,
		lineSeparator:      "\n",
		commentPrefix:      ";",
		spaceBeforeComment: true,
	}
}

func buildOptions(opts []Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return o, err
		}
	}
	return o, nil
}

// CommentPrefixes sets the strings recognized as comment markers when
// parsing. A line whose first non-whitespace characters are one of the
// prefixes is a comment; the first prefix in the given order that matches
// wins, so order is significant when one prefix starts with another.
//
// The default prefixes are ";" and "#".
func CommentPrefixes(prefixes ...string) Option {
	return func(o *options) error {
		if len(prefixes) == 0 {
			return fmt.Errorf("ini: at least one comment prefix is required")
		}
		for _, p := range prefixes {
			if p == "" {
				return fmt.Errorf("ini: comment prefix must not be empty")
			}
		}
		o.commentPrefixes = append([]string(nil), prefixes...)
		return nil
	}
}

// TrimSectionNames controls whether surrounding whitespace is removed from
// parsed section names. Enabled by default.
func TrimSectionNames(on bool) Option {
	return func(o *options) error {
		o.trimSectionNames = on
		return nil
	}
}

// TrimKeys controls whether surrounding whitespace is removed from parsed
// keys. Enabled by default.
func TrimKeys(on bool) Option {
	return func(o *options) error {
		o.trimKeys = on
		return nil
	}
}

// TrimValues controls whether surrounding whitespace is removed from parsed
// values. Continuation lines are joined first; only the outer whitespace of
// the joined value is trimmed. Enabled by default.
func TrimValues(on bool) Option {
	return func(o *options) error {
		o.trimValues = on
		return nil
	}
}

// TrimComments controls whether surrounding whitespace is removed from
// parsed comment text. Enabled by default.
func TrimComments(on bool) Option {
	return func(o *options) error {
		o.trimComments = on
		return nil
	}
}

// DanglingText sets the policy for raw content found before the first
// entry of a section. The default is DanglingKeep.
func DanglingText(policy DanglingPolicy) Option {
	return func(o *options) error {
		switch policy {
		case DanglingKeep, DanglingToComment, DanglingDrop:
			o.danglingPolicy = policy
			return nil
		default:
			return fmt.Errorf("ini: unknown dangling text policy %d", policy)
		}
	}
}

// NoTrim disables all trimming, making the deserializer preserve text
// exactly as it appears in the source.
func NoTrim() Option {
	return func(o *options) error {
		o.trimSectionNames = false
		o.trimKeys = false
		o.trimValues = false
		o.trimComments = false
		return nil
	}
}

// LineSeparator sets the separator emitted between lines when formatting.
// The default is "\n".
func LineSeparator(sep string) Option {
	return func(o *options) error {
		if sep == "" {
			return fmt.Errorf("ini: line separator must not be empty")
		}
		o.lineSeparator = sep
		return nil
	}
}

// CommentPrefix sets the marker emitted before comment lines when
// formatting. For round-trip fidelity it should be one of the configured
// parse prefixes. The default is ";".
func CommentPrefix(prefix string) Option {
	return func(o *options) error {
		if prefix == "" {
			return fmt.Errorf("ini: comment prefix must not be empty")
		}
		if strings.ContainsAny(prefix, "\r\n") {
			return fmt.Errorf("ini: comment prefix must not contain line breaks")
		}
		o.commentPrefix = prefix
		return nil
	}
}

// SpaceAroundEquals controls whether a single space is emitted on each side
// of "=" when formatting entries. Disabled by default.
func SpaceAroundEquals(on bool) Option {
	return func(o *options) error {
		o.spaceAroundEquals = on
		return nil
	}
}

// SpaceBeforeComment controls whether a single space is emitted between the
// comment prefix and the comment text when formatting. Enabled by default.
func SpaceBeforeComment(on bool) Option {
	return func(o *options) error {
		o.spaceBeforeComment = on
		return nil
	}
}

// Encoding sets the character encoding used by the file adapter (Load,
// Save and the stream variants). The name is resolved through the IANA
// registry, e.g. "utf-8", "utf-16le", "windows-1252", "latin1". The
// default is UTF-8. Parsing and formatting of in-memory data always work
// on UTF-8 text regardless of this option.
func Encoding(name string) Option {
	return func(o *options) error {
		if name == "" {
			return fmt.Errorf("ini: encoding name must not be empty")
		}
		o.encoding = name
		return nil
	}
}
