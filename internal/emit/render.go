package emit

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	tmpl "either-generator/internal/template"
)

// declData feeds the declaration templates.
type declData struct {
	Doc    []string
	Name   string
	Params string
	Fields []fieldData
	Target string
}

type fieldData struct {
	Doc     []string
	Name    string
	Type    string
	Tag     string
	Comment string
}

var declTemplates = template.Must(template.New("decl").Parse(`
{{- define "struct" -}}
{{range .Doc}}{{.}}
{{end}}type {{.Name}}{{.Params}} struct {
{{- range .Fields}}
{{range .Doc}}	{{.}}
{{end}}	{{if .Name}}{{.Name}} {{end}}{{.Type}}{{with .Tag}} {{.}}{{end}}{{with .Comment}} {{.}}{{end}}
{{- end}}
}
{{- end}}

{{- define "alias" -}}
{{range .Doc}}{{.}}
{{end}}type {{.Name}}{{.Params}} = {{.Target}}
{{- end}}
`))

func render(name string, data *declData) (string, error) {
	var buf bytes.Buffer
	if err := declTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("rendering %s %s: %w", name, data.Name, err)
	}

	return buf.String(), nil
}

// paramList renders a type parameter list, or "" when there is none.
func paramList(params []tmpl.TypeParam) string {
	if len(params) == 0 {
		return ""
	}

	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, p.Name+" "+p.Constraint)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// newField renders f with type typ under name.
func newField(f *tmpl.Field, name, typ string) (fieldData, error) {
	tag, err := f.StrippedTag()
	if err != nil {
		return fieldData{}, fmt.Errorf("field %s: %w", f.Key, err)
	}

	return fieldData{
		Doc:     f.Doc,
		Name:    name,
		Type:    typ,
		Tag:     tag,
		Comment: strings.Join(f.Comment, " "),
	}, nil
}

func derivedDoc(name, template string) []string {
	return []string{fmt.Sprintf("// %s is derived from the %s template.", name, template)}
}
