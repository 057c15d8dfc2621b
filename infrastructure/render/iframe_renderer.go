package render

import (
	"bytes"
	"html/template"

	"bunny-video/domain/repository"
)

const embedTemplate = `<div class="bunny-video-embed" style="position:relative;padding-top:56.25%;">` +
	`<iframe src="{{.Src}}" loading="lazy" ` +
	`style="border:0;position:absolute;top:0;left:0;width:100%;height:100%;" ` +
	`allow="accelerometer;gyroscope;autoplay;encrypted-media;picture-in-picture;" ` +
	`allowfullscreen="true" title="{{.Title}}"></iframe></div>`

const errorTemplate = `<div class="notice notice-error"><p>{{.}}</p></div>`

// IframeRenderer renders the player markup with html/template so every value is escaped
type IframeRenderer struct {
	embed *template.Template
	error *template.Template
	title string
}

func NewIframeRenderer() repository.IRenderer {
	return &IframeRenderer{
		embed: template.Must(template.New("embed").Parse(embedTemplate)),
		error: template.Must(template.New("error").Parse(errorTemplate)),
		title: "Bunny Stream video",
	}
}

func (r *IframeRenderer) RenderEmbed(src string) (string, error) {
	var buf bytes.Buffer
	err := r.embed.Execute(&buf, struct {
		Src   string
		Title string
	}{Src: src, Title: r.title})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r *IframeRenderer) RenderError(message string) (string, error) {
	var buf bytes.Buffer
	if err := r.error.Execute(&buf, message); err != nil {
		return "", err
	}
	return buf.String(), nil
}
