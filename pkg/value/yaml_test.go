package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSerializeYAML(t *testing.T) {
	t.Run("record and sorted map", func(t *testing.T) {
		v := NewRecord("Config",
			F("name", String("svc")),
			F("ports", Seq{Int(80), Int(443)}),
			F("labels", Map{
				{Key: String("tier"), Value: String("web")},
				{Key: String("app"), Value: String("api")},
			}),
			F("empty", Seq{}),
		)

		want := "name: svc\n" +
			"ports:\n" +
			"  - 80\n" +
			"  - 443\n" +
			"labels:\n" +
			"  app: api\n" +
			"  tier: web\n" +
			"empty: []"
		assert.Equal(t, want, SerializeYAML(v))
	})

	t.Run("multi-line strings use literal style", func(t *testing.T) {
		v := NewRecord("", F("text", String("a\nb")))
		assert.Equal(t, "text: |-\n  a\n  b", SerializeYAML(v))
	})

	t.Run("scalar document", func(t *testing.T) {
		assert.Equal(t, "42", SerializeYAML(Int(42)))
		assert.Equal(t, "null", SerializeYAML(Null{}))
	})
}
