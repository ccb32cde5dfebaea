package suggestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(s string) *string { return &s }

func TestParse(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantCategory *string
		wantTags     *string
		wantSource   Source
	}{
		{
			name:         "fenced json with tag list",
			raw:          "```json\n{\"categoria\": \"Livro\", \"tags\": [\"ficção\", \" aventura \"]}\n```",
			wantCategory: ptr("Livro"),
			wantTags:     ptr("ficção, aventura"),
			wantSource:   SourceStructured,
		},
		{
			name:         "line fallback",
			raw:          "Categoria: caneca\nTags: presente, colecionavel",
			wantCategory: ptr("Caneca"),
			wantTags:     ptr("presente, colecionavel"),
			wantSource:   SourceFallback,
		},
		{
			name:       "empty input",
			raw:        "",
			wantSource: SourceNone,
		},
		{
			name:         "plain json with tags as string",
			raw:          `  {"descricao_ia": "x", "categoria": "utensílio de cozinha", "tags": "  cozinha, metal "}  `,
			wantCategory: ptr("Utensílio de cozinha"),
			wantTags:     ptr("cozinha, metal"),
			wantSource:   SourceStructured,
		},
		{
			name:         "structured keeps case after the first letter",
			raw:          `{"categoria": "eLetrônico"}`,
			wantCategory: ptr("ELetrônico"),
			wantSource:   SourceStructured,
		},
		{
			name:         "empty and blank tag entries are dropped",
			raw:          `{"categoria": "Livro", "tags": ["", "  ", "romance", 3]}`,
			wantCategory: ptr("Livro"),
			wantTags:     ptr("romance"),
			wantSource:   SourceStructured,
		},
		{
			name:         "tags that end up empty are absent",
			raw:          `{"categoria": "Livro", "tags": ["  "]}`,
			wantCategory: ptr("Livro"),
			wantSource:   SourceStructured,
		},
		{
			name:       "valid json without known keys",
			raw:        `{"descricao_ia": "um objeto"}`,
			wantSource: SourceNone,
		},
		{
			name:       "json array falls back to the line scan",
			raw:        `["categoria"]`,
			wantSource: SourceNone,
		},
		{
			name:         "fallback takes text after the first marker and lowercases",
			raw:          "Aqui está:\n- **Categoria:** Ferramenta Elétrica\n- Tags: furadeira, OBRA",
			wantCategory: ptr("** ferramenta elétrica"),
			wantTags:     ptr("furadeira, obra"),
			wantSource:   SourceFallback,
		},
		{
			name:         "fallback category wins over tags on the same line",
			raw:          "categoria: livro tags: a, b",
			wantCategory: ptr("Livro tags: a, b"),
			wantSource:   SourceFallback,
		},
		{
			name:         "fallback on json with unquoted keys",
			raw:          "```json\n{categoria: Livro, tags: [a",
			wantCategory: ptr("Livro, tags: [a"),
			wantSource:   SourceFallback,
		},
		{
			name:       "quoted keys do not match the line markers",
			raw:        "{\"categoria\": \"Livro\",\n\"tags\": [\"a\"",
			wantSource: SourceNone,
		},
		{
			name:       "blank category in fallback is absent",
			raw:        "categoria:   \ntags:",
			wantSource: SourceNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Parse(tt.raw)

			assert.Equal(t, tt.wantCategory, res.Category)
			assert.Equal(t, tt.wantTags, res.Tags)
			assert.Equal(t, tt.wantSource, res.Source)
		})
	}
}

func TestResult_TagList(t *testing.T) {
	assert.Equal(t, []string{}, Result{}.TagList())
	assert.Equal(t, []string{"ficção", "aventura"}, Result{Tags: ptr("ficção, aventura")}.TagList())
}

func TestSource_String(t *testing.T) {
	assert.Equal(t, "structured", SourceStructured.String())
	assert.Equal(t, "fallback", SourceFallback.String())
	assert.Equal(t, "none", SourceNone.String())
}
