package rendering

import (
	"encoding/base64"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/lmoreno/resume-wizard/internal/types"
)

// pageTemplate positions every draw command absolutely, in millimeter
// units, inside fixed-size page divs. Chrome's print engine maps each div
// onto one A4 sheet via the @page rule.
const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
@page { size: {{.WidthMM}}mm {{.HeightMM}}mm; margin: 0; }
body { margin: 0; font-family: Helvetica, Arial, sans-serif; }
.page { position: relative; width: {{.WidthMM}}mm; height: {{.HeightMM}}mm; overflow: hidden; page-break-after: always; }
.el { position: absolute; white-space: nowrap; }
</style>
</head>
<body>
{{- range .Pages}}
<div class="page">
{{- range .Elements}}
<div class="el" style="{{.Style}}">{{.Text}}{{if .ImageSrc}}<img src="{{.ImageSrc}}" style="width:100%;height:100%">{{end}}</div>
{{- end}}
</div>
{{- end}}
</body>
</html>
`

type htmlElement struct {
	Style    template.CSS
	Text     string
	ImageSrc template.URL
}

type htmlPage struct {
	Elements []htmlElement
}

type htmlDoc struct {
	WidthMM  float64
	HeightMM float64
	Pages    []htmlPage
}

var tmpl = template.Must(template.New("pages").Parse(pageTemplate))

// EmitHTML converts a page description into a standalone HTML document.
// The output is deterministic: commands are emitted in order, one element
// each, with no layout decisions left to the browser.
func EmitHTML(pd *types.PageDescription) (string, error) {
	doc := htmlDoc{
		WidthMM:  pd.Metadata.WidthMM,
		HeightMM: pd.Metadata.HeightMM,
	}

	for _, page := range pd.Pages {
		hp := htmlPage{}
		for _, cmd := range page.Commands {
			el, err := elementFor(cmd)
			if err != nil {
				return "", err
			}
			hp.Elements = append(hp.Elements, el)
		}
		doc.Pages = append(doc.Pages, hp)
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, doc); err != nil {
		return "", &TemplateError{Message: "failed to execute page template", Cause: err}
	}
	return sb.String(), nil
}

func elementFor(cmd types.DrawCommand) (htmlElement, error) {
	switch cmd.Op {
	case types.OpText:
		style := fmt.Sprintf("left:%.3fmm;top:%.3fmm;font-size:%.2fpt;color:%s;%s",
			cmd.X, cmd.Y, cmd.FontSize, cssColor(cmd.Color), cssWeight(cmd.FontWeight))
		return htmlElement{Style: template.CSS(style), Text: cmd.Text}, nil

	case types.OpRect:
		style := fmt.Sprintf("left:%.3fmm;top:%.3fmm;width:%.3fmm;height:%.3fmm;background:%s",
			cmd.X, cmd.Y, cmd.Width, cmd.Height, cssColor(cmd.Color))
		return htmlElement{Style: template.CSS(style)}, nil

	case types.OpLine:
		// Only horizontal rules are emitted by the engine; render as a
		// thin filled div.
		style := fmt.Sprintf("left:%.3fmm;top:%.3fmm;width:%.3fmm;height:0.3mm;background:%s",
			cmd.X, cmd.Y, cmd.X2-cmd.X, cssColor(cmd.Color))
		return htmlElement{Style: template.CSS(style)}, nil

	case types.OpImage:
		mime := http.DetectContentType(cmd.Bytes)
		src := "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(cmd.Bytes)
		style := fmt.Sprintf("left:%.3fmm;top:%.3fmm;width:%.3fmm;height:%.3fmm",
			cmd.X, cmd.Y, cmd.Width, cmd.Height)
		return htmlElement{Style: template.CSS(style), ImageSrc: template.URL(src)}, nil

	default:
		return htmlElement{}, &RenderError{Message: fmt.Sprintf("unknown draw op %q", cmd.Op)}
	}
}

func cssColor(c types.Color) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

func cssWeight(w types.FontWeight) string {
	switch w {
	case types.WeightBold:
		return "font-weight:bold"
	case types.WeightItalic:
		return "font-style:italic"
	default:
		return "font-weight:normal"
	}
}
