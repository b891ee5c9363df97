package vuln

import (
	"testing"

	"devsecops-app/core/expr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Evaluate(t *testing.T) {
	svc := NewService(Config{Enabled: true}, nil)

	t.Run("Expression", func(t *testing.T) {
		got, err := svc.Evaluate("6 * 7")
		require.NoError(t, err)
		assert.Equal(t, 42.0, got)
	})

	t.Run("EmptyUsesDefault", func(t *testing.T) {
		got, err := svc.Evaluate("")
		require.NoError(t, err)
		assert.Equal(t, 2.0, got)
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := svc.Evaluate("+++")
		var evalErr *expr.Error
		require.ErrorAs(t, err, &evalErr)
		assert.Equal(t, expr.KindSyntax, evalErr.Kind)
	})
}

func TestService_Render(t *testing.T) {
	const msg = `<script>alert("x")</script>`

	t.Run("Verbatim", func(t *testing.T) {
		svc := NewService(Config{}, nil)
		assert.Equal(t,
			`<html><body><h1>Message</h1><div><script>alert("x")</script></div></body></html>`,
			svc.Render(msg))
	})

	t.Run("Escaped", func(t *testing.T) {
		svc := NewService(Config{EscapeReflect: true}, nil)
		out := svc.Render(msg)
		assert.NotContains(t, out, msg)
		assert.Contains(t, out, "&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt;")
	})

	t.Run("Empty", func(t *testing.T) {
		svc := NewService(Config{}, nil)
		assert.Equal(t, "<html><body><h1>Message</h1><div></div></body></html>", svc.Render(""))
	})

	t.Run("PercentIsNotAVerb", func(t *testing.T) {
		svc := NewService(Config{}, nil)
		assert.Contains(t, svc.Render("100%s"), "<div>100%s</div>")
	})
}
