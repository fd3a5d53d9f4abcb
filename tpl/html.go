package tpl

import "strings"

// HTMLDefaults are the HTML templates used by the web server when the user
// hasn't written their own. The page is the "search_page" template.
var HTMLDefaults = strings.TrimSpace(`
{{ define "search_page" }}
	<!DOCTYPE html>
	<html lang="ko">
	<head>
	<meta charset="utf-8">
	<title>영화 검색</title>
	</head>
	<body>
	<h1>영화 검색</h1>
	{{ template "search_form" . }}
	{{ template "search_index" . }}
	{{ with .Page }}
		{{ template "search_results" (combine "Page" . "Params" $.Params) }}
	{{ end }}
	</body>
	</html>
{{ end }}

{{ define "search_form" }}
	<form method="get" action="/movies/search">
	<input type="text" name="q" value="{{ .Params.Query }}" placeholder="영화명">
	<input type="text" name="director" value="{{ .Params.Director }}" placeholder="감독">
	{{ template "facet_select" (combine "Name" "genre" "Label" "장르" "Options" .Facets.Genres "Selected" .Params.Genre) }}
	{{ template "year_select" (combine "Name" "year_start" "Label" "시작 연도" "Years" .Years "Selected" .Params.YearStart) }}
	{{ template "year_select" (combine "Name" "year_end" "Label" "종료 연도" "Years" .Years "Selected" .Params.YearEnd) }}
	{{ template "facet_select" (combine "Name" "movie_state" "Label" "제작상태" "Options" .Facets.States "Selected" .Params.State) }}
	{{ template "facet_select" (combine "Name" "movie_type" "Label" "유형" "Options" .Facets.Types "Selected" .Params.Type) }}
	{{ template "facet_select" (combine "Name" "nation" "Label" "국가" "Options" .Facets.Nations "Selected" .Params.Nation) }}
	{{ if .Params.Index }}
		<input type="hidden" name="index" value="{{ .Params.Index }}">
	{{ end }}
	<button type="submit">검색</button>
	</form>
{{ end }}

{{ define "facet_select" }}
	{{ $selected := split .Selected }}
	<select name="{{ .Name }}">
	<option value="">{{ .Label }}</option>
	{{ range .Options }}
		<option value="{{ . }}"{{ if contains $selected . }} selected{{ end }}>{{ . }}</option>
	{{ end }}
	</select>
{{ end }}

{{ define "year_select" }}
	{{ $selected := .Selected }}
	<select name="{{ .Name }}">
	<option value="">{{ .Label }}</option>
	{{ range .Years }}
		<option value="{{ . }}"{{ if eq (print .) $selected }} selected{{ end }}>{{ . }}</option>
	{{ end }}
	</select>
{{ end }}

{{ define "search_index" }}
	<nav class="index">
	<a href="{{ index_url .Params "" }}"{{ if not .Params.Index }} class="active"{{ end }}>전체</a>
	{{ range .Letters }}
		<a href="{{ index_url $.Params . }}"{{ if eq . $.Params.Index }} class="active"{{ end }}>{{ . }}</a>
	{{ end }}
	</nav>
{{ end }}

{{ define "search_results" }}
	{{ $page := .Page }}
	{{ $params := .Params }}
	<p class="summary">검색 결과 {{ $page.Total }}건 ({{ printf "%.2f" $page.QueryMillis }} ms)</p>
	<table class="results">
	<thead><tr><th>영화명</th><th>영화명(영문)</th><th>제작연도</th><th>유형</th><th>제작상태</th></tr></thead>
	<tbody>
	{{ range $page.Movies }}
		<tr><td>{{ .Name }}</td><td>{{ .EngName }}</td><td>{{ .Year }}</td><td>{{ .Type }}</td><td>{{ .State }}</td></tr>
	{{ else }}
		<tr><td colspan="5">검색 결과가 없습니다.</td></tr>
	{{ end }}
	</tbody>
	</table>
	{{ if $page.HasOther }}
		<nav class="pages">
		{{ if $page.HasPrevious }}
			<a href="{{ page_url $params 1 }}">처음</a>
			<a href="{{ page_url $params $page.PrevNumber }}">이전</a>
		{{ end }}
		{{ range $page.Window 10 }}
			{{ if eq . $page.Number }}
				<strong>{{ . }}</strong>
			{{ else }}
				<a href="{{ page_url $params . }}">{{ . }}</a>
			{{ end }}
		{{ end }}
		{{ if $page.HasNext }}
			<a href="{{ page_url $params $page.NextNumber }}">다음</a>
			<a href="{{ page_url $params $page.NumPages }}">마지막</a>
		{{ end }}
		</nav>
	{{ end }}
{{ end }}
`)
