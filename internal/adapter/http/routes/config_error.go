package routes

import (
	"bytes"
	"html/template"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

const configErrorHTML = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
    <meta charset="UTF-8">
    <title>Erro de configuração</title>
</head>
<body style="font-family: sans-serif; padding: 2rem;">
    <h1>Erro de configuração</h1>
    <p>O serviço não pode iniciar porque variáveis de ambiente obrigatórias não foram definidas.</p>
    {{- if .Missing}}
    <ul>{{range .Missing}}<li><code>{{.}}</code></li>{{end}}</ul>
    {{- end}}
    <p>Defina as variáveis (por exemplo em um arquivo <code>.env</code>) e reinicie o serviço.</p>
</body>
</html>
`

var configErrorTmpl = template.Must(template.New("config-error").Parse(configErrorHTML))

// ConfigErrorPage renders the page served while the configuration is invalid.
func ConfigErrorPage(missing []string) []byte {
	var buf bytes.Buffer
	_ = configErrorTmpl.Execute(&buf, struct{ Missing []string }{Missing: missing})
	return buf.Bytes()
}

// configErrorRouter answers every request with the configuration error page.
func configErrorRouter(missing []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	page := ConfigErrorPage(missing)
	r.NoRoute(func(c *gin.Context) {
		c.Data(http.StatusServiceUnavailable, "text/html; charset=utf-8", page)
	})
	return r
}

// RunConfigError serves only the configuration error page instead of crashing.
func RunConfigError(addr string, missing []string) {
	log.Printf("[routes][config] serving configuration error page addr=%s missing=%v", addr, missing)
	if err := configErrorRouter(missing).Run(addr); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}
