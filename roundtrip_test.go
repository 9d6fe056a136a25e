package ini_test

import (
	"testing"

	ini "github.com/Snowlt/go-ini"
	"github.com/stretchr/testify/require"
)

// Round trip: a document built through the model API survives
// serialize-then-deserialize structurally intact.
func TestRoundTrip(t *testing.T) {
	build := func() *ini.Document {
		doc := ini.New()
		doc.Untitled().Set("greeting", "hello world")

		server := doc.SectionOrCreate("server")
		server.Set("host", "127.0.0.1")
		server.Set("port", "8080")
		require.NoError(t, server.AddCommentsBefore("host", "bind address"))
		require.NoError(t, server.AddCommentsAfter("port", "keep in sync", "with the proxy"))

		client := doc.SectionOrCreate("client")
		client.Set("retries", "3")
		client.Set("note", "first=second")
		return doc
	}

	t.Run("default options", func(t *testing.T) {
		doc := build()
		out, err := ini.Marshal(doc)
		require.NoError(t, err)

		back, err := ini.Parse(out)
		require.NoError(t, err)
		require.True(t, doc.Equal(back), "parsed document differs:\n%s", out)
	})

	t.Run("identity options preserve exact text", func(t *testing.T) {
		doc := build()
		// Comment text with meaningful outer whitespace survives only
		// without trimming and without injected prefix spacing.
		sec, _ := doc.Section("client")
		require.NoError(t, sec.AddCommentsAfter("retries", "  indented comment"))

		out, err := ini.Marshal(doc, ini.SpaceBeforeComment(false))
		require.NoError(t, err)

		back, err := ini.Parse(out, ini.NoTrim())
		require.NoError(t, err)
		require.True(t, doc.Equal(back), "parsed document differs:\n%s", out)
	})

	t.Run("multiline value", func(t *testing.T) {
		doc := ini.New()
		doc.SectionOrCreate("mail").Set("signature", "Best regards,\nThe Team")

		out, err := ini.Marshal(doc)
		require.NoError(t, err)
		back, err := ini.Parse(out)
		require.NoError(t, err)
		require.True(t, doc.Equal(back))
	})

	t.Run("text fixed point", func(t *testing.T) {
		src := []byte("top=1\n[server]\nhost=127.0.0.1\n; note\nport=8080\n")
		doc, err := ini.Parse(src)
		require.NoError(t, err)
		out, err := ini.Marshal(doc)
		require.NoError(t, err)
		require.Equal(t, string(src), string(out))
	})
}
