/*
Package ini reads and writes INI configuration documents with full
structural fidelity: the original order of sections, entries and comments
survives a parse/format round trip.

The package offers two workflows depending on the use case:

1. Parsing and Formatting

Parse (or a Decoder) turns INI text into a Document; Marshal (or an
Encoder) turns a Document back into text. Parsing is total: malformed
lines are never rejected. A line is classified, in priority order, as a
comment, a section header, a key=value entry, or raw text that either
continues the previous value or accumulates as the section's dangling
text.

	doc, err := ini.Parse(data)
	if err != nil {
		// handle error (stream failure; malformed text never errors)
	}
	host, _ := doc.SectionOrCreate("server").Get("host")

2. Document Manipulation

A Document is an insertion-ordered collection of Sections plus one
always-present untitled section for content appearing before the first
[name] header. Sections store entries and comments in a single ordered
sequence, so removing a key keeps its trailing comments attached to the
neighboring entry, and renaming a key keeps its position. Typed getters
(GetInt, GetBool, ...) parse on demand and report failure as a
recoverable *AccessError instead of panicking.

	doc := ini.New()
	doc.Edit("server").
		Set("host", "127.0.0.1").
		SetInt("port", 8080).
		CommentAfter("port", "change in production").
		Done()
	out, err := ini.Marshal(doc, ini.SpaceAroundEquals(true))

Load and Save move documents through the file system, with named
character encodings (Encoding option) resolved via golang.org/x/text.

A Document is not safe for concurrent mutation; guard shared documents
with a mutex.
*/
package ini
