package schema_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/curvedit/pkg/schema"
)

func entrySchema() *schema.RecordType {
	return schema.NewRecord("entry",
		schema.Field("name", schema.String()),
		schema.Field("weight", schema.Float(), schema.WithKey("+Weight:")),
		schema.Field("count", schema.Int(), schema.Optional()),
		schema.Field("cache", schema.String(), schema.Skip()),
	)
}

func TestRecord_PlainFields(t *testing.T) {
	v, s, err := schema.Bind(entrySchema(), "; leading comment\n$Name: First Entry\n+Weight: 2.5\n$Count: 3\n")
	require.NoError(t, err)
	assert.True(t, s.AtEnd())

	rec := v.(schema.Record)
	assert.Equal(t, "First Entry", rec["name"])
	assert.Equal(t, 2.5, rec["weight"])
	assert.Equal(t, int64(3), rec["count"])
	assert.NotContains(t, rec, "cache", "skipped fields are never bound")
}

func TestRecord_OptionalAbsentRollsBack(t *testing.T) {
	typ := schema.NewRecord("entry",
		schema.Field("name", schema.String()),
		schema.Field("count", schema.Int(), schema.Optional()),
	)

	s := schema.NewState("$Name: a\n$Count: many\n$Name: b")
	v, err := typ.Bind(s)
	require.NoError(t, err)

	rec := v.(schema.Record)
	assert.Equal(t, "a", rec["name"])
	assert.NotContains(t, rec, "count")
	assert.Equal(t, "\n$Count: many\n$Name: b", s.Remaining(), "failed optional must not consume its key")
}

func TestRecord_MissingKey(t *testing.T) {
	_, _, err := schema.Bind(entrySchema(), "$Name: x\n\n$Weight: 1\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrKeyNotFound)

	var pe *schema.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 3, pe.Line)
	assert.Contains(t, pe.Reason, `"+Weight:"`)
	assert.True(t, strings.HasPrefix(pe.Reason, "weight: "), pe.Reason)
}

func TestRecord_TypeMismatchLeavesCursor(t *testing.T) {
	s := schema.NewState("$Name: x\n+Weight: heavy")
	_, err := entrySchema().Bind(s)
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrTypeMismatch)
	assert.Equal(t, 0, s.Pos(), "a failed record rolls back to where it started")
}

func TestRepeated_StopsAtFirstNonMatching(t *testing.T) {
	item := schema.NewRecord("item", schema.Field("v", schema.Float(), schema.WithKey("$V:")))
	list := schema.NewRecord("list", schema.Field("items", item, schema.Repeated(), schema.WithKey("")))

	for n := 0; n <= 4; n++ {
		var sb strings.Builder
		for i := 0; i < n; i++ {
			sb.WriteString("$V: 1\n")
		}
		sb.WriteString("#End")

		s := schema.NewState(sb.String())
		v, err := list.Bind(s)
		require.NoError(t, err)
		assert.Len(t, v.(schema.Record)["items"], n)
		assert.Equal(t, "#End", s.Remaining(), "n=%d", n)
	}
}

func TestRepeated_KeyConsumedOnce(t *testing.T) {
	list := schema.NewRecord("list",
		schema.Field("values", schema.Float(), schema.AtLeast(2)),
		schema.Field("tail", schema.String()),
	)

	v, _, err := schema.Bind(list, "$Values: 1 2\n 3\n$Tail: done")
	require.NoError(t, err)

	rec := v.(schema.Record)
	assert.Equal(t, []any{1.0, 2.0, 3.0}, rec["values"])
	assert.Equal(t, "done", rec["tail"])
}

func TestRepeated_AtLeast(t *testing.T) {
	list := schema.NewRecord("list", schema.Field("values", schema.Float(), schema.AtLeast(2)))

	_, _, err := schema.Bind(list, "$Values: 1\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrArity)
	assert.Contains(t, err.Error(), "expected at least 2 float, got 1")
}

func TestBind_TrailingQuotesDeepestFailure(t *testing.T) {
	item := schema.NewRecord("item",
		schema.Field("name", schema.String()),
		schema.Field("weight", schema.Float()),
	)
	list := schema.NewRecord("list", schema.Field("items", item, schema.Repeated(), schema.WithKey("")))

	_, _, err := schema.Bind(list, "$Name: a\n$Weight: 1\n$Name: b\n$Weight: oops\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrTrailing)

	var pe *schema.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 3, pe.Line)
	assert.Contains(t, pe.Reason, "line 4: weight: expected float")
}

func TestRecord_SpewRoundTrip(t *testing.T) {
	typ := entrySchema()
	in := schema.Record{"name": "Entry", "weight": float32(0.25), "count": 7}

	text, err := schema.Spew(typ, in)
	require.NoError(t, err)
	assert.Equal(t, "$Name: Entry\n+Weight: 0.25\n$Count: 7\n", text)

	out, _, err := schema.Bind(typ, text)
	require.NoError(t, err)
	assert.Equal(t, schema.Record{"name": "Entry", "weight": 0.25, "count": int64(7)}, out)
}

func TestRecord_SpewMissingRequired(t *testing.T) {
	_, err := schema.Spew(entrySchema(), schema.Record{"name": "Entry"})
	assert.ErrorIs(t, err, schema.ErrUnrepresentable)
}

func TestDescribe(t *testing.T) {
	got := schema.Describe(entrySchema())
	assert.Contains(t, got, "entry:\n")
	assert.Contains(t, got, "\t$Name: string\n")
	assert.Contains(t, got, "\t+Weight: float\n")
	assert.Contains(t, got, "\t[$Count: int]\n")
	assert.NotContains(t, got, "cache")
}

func TestBind_VersionMarkerIsTrivia(t *testing.T) {
	v, s, err := schema.Bind(entrySchema(), ";;FSO 23.0.0;;\n// header\n$Name: x\n+Weight: 1\n")
	require.NoError(t, err)
	assert.Equal(t, ";;FSO 23.0.0;;", s.Version())
	assert.Equal(t, "x", v.(schema.Record)["name"])
}
