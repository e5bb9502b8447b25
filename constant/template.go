package constant

// SiteTemplate is a Go text/template for scaffolding new site definition files.
const SiteTemplate = `# {{ .Name }}
# author: {{ .Author }}

name = "{{ .Name }}"
url = "{{ .URL }}"
catalogue_url = "{{ .URL }}{{ .CataloguePath }}"
catalogue_path = "{{ .CataloguePath }}"
proxy = "{{ .Proxy }}"
supports_dub = true
servers = [{{ range $i, $s := .Servers }}{{ if $i }}, {{ end }}"{{ $s }}"{{ end }}]

[selectors]
# Tried in order, the first selector matching anything wins.
catalogue = ["a[href^='{{ .CataloguePath }}/']", "a[href*='{{ .CatalogueKeyword }}']", "a"]
headings = ["h3", "h2", "h1"]
season_link = "a[href]"
episode = "[data-episode]"
`
