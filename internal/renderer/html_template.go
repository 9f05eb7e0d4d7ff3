package renderer

import (
	"bytes"
	"html/template"
)

const standaloneHTML = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <script src="https://cdn.tailwindcss.com"></script>
    <script>
      tailwind.config = {
        theme: {
          extend: {
            colors: {
              'plan-black': '#050517',
              'plan-seasalt': '#fcfaf9',
              'plan-lime': '#97db4f',
              'plan-teal': '#026c7c',
              'plan-deep-teal': '#055864',
            },
            fontFamily: {
              sans: ['Poppins', 'sans-serif'],
            },
          },
        },
      }
    </script>
    <link rel="preconnect" href="https://fonts.googleapis.com">
    <link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>
    <link href="https://fonts.googleapis.com/css2?family=Poppins:wght@300;400;500;600;700&display=swap" rel="stylesheet">
    <style>
        body {
            font-family: 'Poppins', sans-serif;
        }
        @media print {
            body { -webkit-print-color-adjust: exact; print-color-adjust: exact; }
            .no-print { display: none; }
        }
        .page-break-before {
            page-break-before: always;
        }
    </style>
</head>
<body class="bg-white">
    <div class="p-8 mx-auto max-w-4xl">{{.Content}}</div>
</body>
</html>
`

// DocumentTitle is the <title> of exported standalone HTML files.
const DocumentTitle = "Proposta Comercial - PlanPaineis"

var standaloneTmpl = template.Must(template.New("standalone").Parse(standaloneHTML))

// StandaloneHTML wraps inner markup in the fixed export boilerplate.
func StandaloneHTML(inner string) []byte {
	var buf bytes.Buffer
	// The template is static and the data cannot fail to render.
	_ = standaloneTmpl.Execute(&buf, struct {
		Title   string
		Content template.HTML
	}{Title: DocumentTitle, Content: template.HTML(inner)})
	return buf.Bytes()
}
