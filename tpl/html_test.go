package tpl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BurntSushi/cinedex/catalog"
	"github.com/BurntSushi/cinedex/catalog/search"
)

func execSearchPage(t *testing.T, sp *SearchPage) string {
	t.Helper()
	tpls, err := ParseHTML("")
	require.NoError(t, err)

	buf := new(bytes.Buffer)
	require.NoError(t, ExecHTML(tpls.Lookup("search_page"), buf, sp))
	return buf.String()
}

func TestSearchPage(t *testing.T) {
	params := search.Params{Query: "괴물", Genre: "SF, 드라마", YearStart: "2000", Index: "ㄱ"}
	page := &search.Page{
		Movies:   []catalog.Movie{{ID: 2, Name: "괴물", EngName: "The Host", Year: 2006}},
		Number:   2,
		NumPages: 3,
		Total:    21,
		PageSize: 10,
	}
	facets := &catalog.Facets{
		Genres: []string{"SF", "공포", "드라마"},
		States: []string{"개봉"},
	}
	html := execSearchPage(t, NewSearchPage(params, page, facets))

	assert.Contains(t, html, `name="q" value="괴물"`)
	assert.Contains(t, html, `<option value="SF" selected>SF</option>`)
	assert.Contains(t, html, `<option value="드라마" selected>드라마</option>`)
	assert.Contains(t, html, `<option value="공포">공포</option>`)
	assert.Contains(t, html, `<option value="2000" selected>2000</option>`)
	assert.Contains(t, html, `<option value="2029">2029</option>`)
	assert.NotContains(t, html, `<option value="2030">`)
	assert.Contains(t, html, `<input type="hidden" name="index" value="ㄱ">`)
	assert.Contains(t, html, `class="active">ㄱ</a>`)
	assert.Contains(t, html, `>Z</a>`)
	assert.Contains(t, html, "검색 결과 21건")
	assert.Contains(t, html, "<td>The Host</td>")
	assert.Contains(t, html, "<strong>2</strong>")
	assert.Contains(t, html, "page=3")
	assert.Contains(t, html, "이전")
	assert.Contains(t, html, "다음")
}

func TestSearchPageWithoutResults(t *testing.T) {
	html := execSearchPage(t, NewSearchPage(search.Params{}, nil, nil))
	assert.Contains(t, html, "<form")
	assert.NotContains(t, html, "검색 결과")
	assert.Contains(t, html, `class="active">전체</a>`)
}

func TestSearchPageEmptyResults(t *testing.T) {
	page := &search.Page{Number: 1, NumPages: 1, PageSize: 10}
	html := execSearchPage(t, NewSearchPage(search.Params{Query: "없음"}, page, nil))
	assert.Contains(t, html, "검색 결과가 없습니다.")
	assert.NotContains(t, html, `class="pages"`)
}

func TestSearchPageEscapes(t *testing.T) {
	params := search.Params{Query: `<script>alert("x")</script>`}
	html := execSearchPage(t, NewSearchPage(params, nil, nil))
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestNewSearchPage(t *testing.T) {
	sp := NewSearchPage(search.Params{}, nil, nil)
	assert.NotNil(t, sp.Facets)
	assert.Len(t, sp.Years, LastYear-FirstYear+1)
	assert.Equal(t, FirstYear, sp.Years[0])
	assert.Len(t, sp.Letters, 14+26)
}
