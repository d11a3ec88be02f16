package htmlinspect_test

import (
	"testing"

	"github.com/fwojciec/htmlinspect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	t.Run("resolves relative references against the base", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name string
			raw  string
			base string
			want string
		}{
			{"path relative", "page.html", "https://ex.com/sub/", "https://ex.com/sub/page.html"},
			{"rooted path", "/top.html", "https://ex.com/sub/dir/", "https://ex.com/top.html"},
			{"parent traversal", "../up.html", "https://ex.com/a/b/", "https://ex.com/a/up.html"},
			{"authority relative", "//cdn.ex.com/x.js", "https://ex.com/", "https://cdn.ex.com/x.js"},
			{"query relative", "?q=1", "https://ex.com/a/page.html", "https://ex.com/a/page.html?q=1"},
			{"fragment only", "#frag", "https://ex.com/a/page.html", "https://ex.com/a/page.html#frag"},
			{"dot segment", "./here.html", "https://ex.com/a/", "https://ex.com/a/here.html"},
			{"leading whitespace trimmed", "  page.html\t\n", "https://ex.com/sub/", "https://ex.com/sub/page.html"},
		}

		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				got, err := htmlinspect.Normalize(tt.raw, tt.base)
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			})
		}
	})

	t.Run("canonicalizes absolute references without consulting the base", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name string
			raw  string
			want string
		}{
			{"scheme and host folded, path untouched", "HTTP://EX.com/Mixed/Case", "http://ex.com/Mixed/Case"},
			{"default https port removed", "https://ex.com:443/a", "https://ex.com/a"},
			{"default http port removed", "http://ex.com:80/a", "http://ex.com/a"},
			{"non-default port kept", "https://ex.com:8443/a", "https://ex.com:8443/a"},
			{"dot segments collapsed", "https://ex.com/a/../b/./c", "https://ex.com/b/c"},
			{"trailing slash preserved", "https://ex.com/a/b/", "https://ex.com/a/b/"},
			{"empty path becomes slash", "https://ex.com", "https://ex.com/"},
			{"needless percent escape dropped", "http://ex.com/%7Euser", "http://ex.com/~user"},
			{"mailto passthrough", "mailto:Joe@Example.com", "mailto:Joe@Example.com"},
			{"upper-case mailto scheme folded", "MAILTO:joe@example.com", "mailto:joe@example.com"},
			{"tel passthrough", "tel:+15551234567", "tel:+15551234567"},
			{"data passthrough", "data:text/plain;base64,SGVsbG8=", "data:text/plain;base64,SGVsbG8="},
			{"ftp default port removed", "ftp://Files.Ex.com:21/pub/", "ftp://files.ex.com/pub/"},
		}

		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				// The base is deliberately unusable to prove it is not consulted.
				got, err := htmlinspect.Normalize(tt.raw, "not-an-absolute-base")
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			})
		}
	})

	t.Run("empty reference", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{"", "   ", "\t\n", "\x00\x01"} {
			_, err := htmlinspect.Normalize(raw, "https://ex.com/")
			assert.Equal(t, htmlinspect.EEMPTYREF, htmlinspect.ErrorCode(err), "raw=%q", raw)
		}
	})

	t.Run("unresolvable reference", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{"not a url", "http://ex.com/a b", "a\tb"} {
			_, err := htmlinspect.Normalize(raw, "https://ex.com/")
			assert.Equal(t, htmlinspect.EUNRESOLVABLE, htmlinspect.ErrorCode(err), "raw=%q", raw)
		}
	})

	t.Run("invalid base", func(t *testing.T) {
		t.Parallel()

		for _, base := range []string{"", "ex.com/a", "/rooted/only"} {
			_, err := htmlinspect.Normalize("page.html", base)
			assert.Equal(t, htmlinspect.EINVALIDBASE, htmlinspect.ErrorCode(err), "base=%q", base)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()

		first, err := htmlinspect.Normalize("../x/./y.html?a=1#f", "https://EX.com:443/a/b/")
		require.NoError(t, err)
		second, err := htmlinspect.Normalize("../x/./y.html?a=1#f", "https://EX.com:443/a/b/")
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestNormalizeBase(t *testing.T) {
	t.Parallel()

	t.Run("canonicalizes a valid location", func(t *testing.T) {
		t.Parallel()

		got, err := htmlinspect.NormalizeBase("HTTPS://EX.com:443/Sub/Dir/")
		require.NoError(t, err)
		assert.Equal(t, "https://ex.com/Sub/Dir/", got)
	})

	t.Run("rejects unusable locations", func(t *testing.T) {
		t.Parallel()

		for _, location := range []string{"", "   ", "/relative/", "ex.com/a", "not a url", "http://"} {
			_, err := htmlinspect.NormalizeBase(location)
			assert.Equal(t, htmlinspect.EINVALIDBASE, htmlinspect.ErrorCode(err), "location=%q", location)
		}
	})
}
