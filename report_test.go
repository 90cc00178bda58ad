package texverts_test

import (
	"bytes"
	"testing"

	"github.com/bjaus/texverts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func singleEntry(t *testing.T) []texverts.Entry {
	t.Helper()
	return texverts.Report(texverts.Find(`\begin{longtable}[c]{@{}ll@{}}`))
}

func TestParseFormat(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    texverts.Format
		wantErr require.ErrorAssertionFunc
	}{
		"json":     {input: "json", want: texverts.JSON, wantErr: require.NoError},
		"jsonl":    {input: "jsonl", want: texverts.JSONL, wantErr: require.NoError},
		"yaml":     {input: "yaml", want: texverts.YAML, wantErr: require.NoError},
		"plain":    {input: "plain", want: texverts.Plain, wantErr: require.NoError},
		"tsv":      {input: "tsv", want: texverts.TSV, wantErr: require.NoError},
		"markdown": {input: "markdown", want: texverts.Markdown, wantErr: require.NoError},
		"unknown": {input: "xml", wantErr: func(t require.TestingT, err error, _ ...any) {
			require.ErrorIs(t, err, texverts.ErrUnsupportedFormat)
		}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := texverts.ParseFormat(tc.input)
			tc.wantErr(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormats(t *testing.T) {
	t.Parallel()
	got := texverts.Formats()
	assert.Len(t, got, 6)
	got[0] = "mutated"
	assert.Equal(t, texverts.JSON, texverts.Formats()[0])
	assert.Equal(t, "json", texverts.JSON.String())
}

func TestReport(t *testing.T) {
	t.Parallel()
	got := texverts.Report(texverts.Find(multiInput), texverts.WithoutOuterRules())
	require.Len(t, got, 3)
	assert.Equal(t, texverts.Entry{Line: 3, Offset: 69, Columns: "llllll", Ruled: "l|l|l|l|l|l"}, got[1])
}

func TestWriteReportPlain(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, texverts.WriteReport(&buf, texverts.Plain, singleEntry(t)))
	assert.Equal(t, "1:0 ll -> |l|l|\n", buf.String())
}

func TestWriteReportJSON(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, texverts.WriteReport(&buf, texverts.JSON, singleEntry(t)))
	assert.JSONEq(t, `[{"line":1,"offset":0,"columns":"ll","ruled":"|l|l|"}]`, buf.String())
}

func TestWriteReportJSONEmpty(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, texverts.WriteReport(&buf, texverts.JSON, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestWriteReportJSONL(t *testing.T) {
	t.Parallel()
	entries := texverts.Report(texverts.Find(multiInput))
	var buf bytes.Buffer
	require.NoError(t, texverts.WriteReport(&buf, texverts.JSONL, entries))
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)
	assert.JSONEq(t, `{"line":7,"offset":118,"columns":"l","ruled":"|l|"}`, string(lines[2]))
}

func TestWriteReportYAML(t *testing.T) {
	t.Parallel()
	entries := texverts.Report(texverts.Find(multiInput))
	var buf bytes.Buffer
	require.NoError(t, texverts.WriteReport(&buf, texverts.YAML, entries))
	assert.Contains(t, buf.String(), "- line: 1\n")

	var decoded []texverts.Entry
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, entries, decoded)
}

func TestWriteReportTSV(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, texverts.WriteReport(&buf, texverts.TSV, singleEntry(t)))
	assert.Equal(t, "Line\tOffset\tColumns\tRuled\n1\t0\tll\t|l|l|\n", buf.String())
}

func TestWriteReportTSVEmpty(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, texverts.WriteReport(&buf, texverts.TSV, nil))
	assert.Empty(t, buf.String())
}

func TestWriteReportMarkdown(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, texverts.WriteReport(&buf, texverts.Markdown, singleEntry(t)))
	want := "| Line | Offset | Columns | Ruled    |\n" +
		"| ---: | -----: | ------- | -------- |\n" +
		"|    1 |      0 | ll      | \\|l\\|l\\| |\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteReportUnsupported(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := texverts.WriteReport(&buf, texverts.Format("xml"), singleEntry(t))
	require.ErrorIs(t, err, texverts.ErrUnsupportedFormat)
	assert.Empty(t, buf.String())
}

func TestWriteReportWriteError(t *testing.T) {
	t.Parallel()
	for _, f := range texverts.Formats() {
		t.Run(f.String(), func(t *testing.T) {
			t.Parallel()
			err := texverts.WriteReport(errWriter{}, f, singleEntry(t))
			assert.Error(t, err)
		})
	}
}

func TestMarshalReport(t *testing.T) {
	t.Parallel()
	data, err := texverts.MarshalReport(texverts.Plain, singleEntry(t))
	require.NoError(t, err)
	assert.Equal(t, "1:0 ll -> |l|l|\n", string(data))

	_, err = texverts.MarshalReport(texverts.Format("xml"), nil)
	assert.ErrorIs(t, err, texverts.ErrUnsupportedFormat)
}
