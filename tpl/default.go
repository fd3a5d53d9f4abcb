package tpl

import "strings"

// Defaults are the text templates used by the command line when the user
// hasn't written their own.
var Defaults = strings.TrimSpace(`
{{ define "search_result" }}
	{{ $p := .X }}
	{{ range $i, $m := $p.Movies }}
		{{ printf "%3d. %s (%d)" (add $p.StartIndex $i) $m.Name $m.Year }}
		{{ if $m.EngName }}{{ printf " [%s]" $m.EngName }}{{ end }}
		{{ if $m.Type }}{{ printf " %s" $m.Type }}{{ end }}
		{{ if $m.State }}{{ printf ", %s" $m.State }}{{ end }}
		{{ printf " #%d" $m.ID }}\
	{{ end }}

	{{ printf "Page %d of %d (%d movies, %.2f ms)" $p.Number $p.NumPages $p.Total $p.QueryMillis }}\
	{{ if $p.HasNext }}
		{{ printf "Use {page:%d} for the next page." $p.NextNumber }}\
	{{ end }}
{{ end }}

{{ define "movie_info" }}
	{{ $m := .X }}
	{{ printf "%s (%d)" $m.Name $m.Year | underlined "=" }}\
	{{ if $m.EngName }}
		{{ printf "English title: %s" $m.EngName }}\
	{{ end }}
	{{ if $m.Type }}
		{{ printf "Type: %s" $m.Type }}\
	{{ end }}
	{{ if $m.State }}
		{{ printf "State: %s" $m.State }}\
	{{ end }}
	{{ template "bit_list" (combine "Title" "Directors" "Values" $m.Directors) }}
	{{ template "bit_list" (combine "Title" "Genres" "Values" $m.Genres) }}
	{{ template "bit_list" (combine "Title" "Nations" "Values" $m.Nations) }}
	{{ if .A.Full }}
		{{ template "bit_list" (combine "Title" "Companies" "Values" $m.Companies) }}
	{{ end }}
{{ end }}

{{ define "facets" }}
	{{ template "bit_facet" (combine "Title" "Types" "Values" .X.Types) }}

	{{ template "bit_facet" (combine "Title" "States" "Values" .X.States) }}

	{{ template "bit_facet" (combine "Title" "Genres" "Values" .X.Genres) }}

	{{ template "bit_facet" (combine "Title" "Nations" "Values" .X.Nations) }}
{{ end }}

{{ define "bit_list" }}
	{{ if .Values }}
		{{ printf "%s: %s" .Title (join ", " .Values) | wrap 80 }}\
	{{ end }}
{{ end }}

{{ define "bit_facet" }}
	{{ underlined "-" .Title }}\
	{{ if .Values }}
		{{ join ", " .Values | wrap 80 }}\
	{{ else }}
		{{ "(none)" }}\
	{{ end }}
{{ end }}
`)
